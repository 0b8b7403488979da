// Package accounts owns the persisted identity records and the
// authentication service built on top of them.
package accounts

import (
	"context"

	"github.com/campushub/campushub/internal/server/models"
)

// Repository persists Account records. Email is the unique key; Create must
// fail with common.ErrDuplicateAccount when the email is already taken, and
// the uniqueness check has to hold under concurrent calls, not just as a
// lookup-then-insert.
//
// Emails are stored and matched exactly as submitted; no case
// normalization is performed anywhere.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
