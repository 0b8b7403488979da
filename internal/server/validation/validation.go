// Package validation checks request payloads before any persistence or
// hashing work happens. Checks are pure and collect every violation rather
// than stopping at the first.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/campushub/campushub/internal/server/models"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Violation describes one field-level rule failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the full set of rule failures for one payload.
// It implements error so services can return it directly.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Field + ": " + violation.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// CheckRegistration validates a registration payload and returns all
// violations found, or an empty set when the payload is valid.
func CheckRegistration(email, password string, role models.Role) Violations {
	var out Violations

	if !emailPattern.MatchString(email) {
		out = append(out, Violation{Field: "email", Message: "must be a valid email address"})
	}
	if len(password) < MinPasswordLength {
		out = append(out, Violation{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		})
	}
	if !role.Valid() {
		out = append(out, Violation{Field: "role", Message: "must be one of: student, admin"})
	}

	return out
}

// CheckEvent validates an event creation payload.
func CheckEvent(title string, startsAt, endsAt time.Time) Violations {
	var out Violations

	if strings.TrimSpace(title) == "" {
		out = append(out, Violation{Field: "title", Message: "must not be empty"})
	}
	if startsAt.IsZero() {
		out = append(out, Violation{Field: "starts_at", Message: "must be set"})
	}
	if !startsAt.IsZero() && !endsAt.IsZero() && !endsAt.After(startsAt) {
		out = append(out, Violation{Field: "ends_at", Message: "must be after starts_at"})
	}

	return out
}
