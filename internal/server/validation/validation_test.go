package validation

import (
	"testing"
	"time"

	"github.com/campushub/campushub/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func violationFields(v Violations) []string {
	fields := make([]string, len(v))
	for i, violation := range v {
		fields[i] = violation.Field
	}
	return fields
}

func TestCheckRegistration_Valid(t *testing.T) {
	v := CheckRegistration("a@x.com", "secret1", models.RoleStudent)
	assert.Empty(t, v)
}

func TestCheckRegistration_CollectsAllViolations(t *testing.T) {
	v := CheckRegistration("not-an-email", "short", models.Role("teacher"))

	assert.Len(t, v, 3)
	assert.ElementsMatch(t, []string{"email", "password", "role"}, violationFields(v))
}

func TestCheckRegistration_Email(t *testing.T) {
	for _, email := range []string{"", "plain", "no@tld", "a b@x.com", "@x.com"} {
		v := CheckRegistration(email, "secret1", models.RoleAdmin)
		assert.Equal(t, []string{"email"}, violationFields(v), "email %q", email)
	}
	for _, email := range []string{"a@x.com", "first.last+tag@sub.example.org"} {
		v := CheckRegistration(email, "secret1", models.RoleAdmin)
		assert.Empty(t, v, "email %q", email)
	}
}

func TestCheckRegistration_PasswordLength(t *testing.T) {
	assert.Equal(t, []string{"password"}, violationFields(CheckRegistration("a@x.com", "12345", models.RoleStudent)))
	assert.Empty(t, CheckRegistration("a@x.com", "123456", models.RoleStudent))
}

func TestCheckRegistration_Role(t *testing.T) {
	assert.Empty(t, CheckRegistration("a@x.com", "secret1", models.RoleStudent))
	assert.Empty(t, CheckRegistration("a@x.com", "secret1", models.RoleAdmin))
	assert.Equal(t, []string{"role"}, violationFields(CheckRegistration("a@x.com", "secret1", models.Role(""))))
	assert.Equal(t, []string{"role"}, violationFields(CheckRegistration("a@x.com", "secret1", models.Role("Student"))))
}

func TestViolations_Error(t *testing.T) {
	v := CheckRegistration("bad", "bad", models.Role("bad"))
	msg := v.Error()
	assert.Contains(t, msg, "email")
	assert.Contains(t, msg, "password")
	assert.Contains(t, msg, "role")
}

func TestCheckEvent(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	assert.Empty(t, CheckEvent("Orientation", start, start.Add(time.Hour)))
	assert.Equal(t, []string{"title"}, violationFields(CheckEvent("  ", start, start.Add(time.Hour))))
	assert.Equal(t, []string{"ends_at"}, violationFields(CheckEvent("Orientation", start, start)))
	assert.Equal(t, []string{"starts_at"}, violationFields(CheckEvent("Orientation", time.Time{}, time.Time{})))
}
