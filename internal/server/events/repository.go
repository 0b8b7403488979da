// Package events holds the campus schedule entries that authenticated
// clients read and admins maintain.
package events

import (
	"context"

	"github.com/campushub/campushub/internal/server/models"
)

// Repository persists Event records.
type Repository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
}
