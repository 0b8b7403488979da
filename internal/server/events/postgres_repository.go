package events

import (
	"context"
	"fmt"

	"github.com/campushub/campushub/internal/dbx"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {

	query :=
		`INSERT INTO events (id, title, location, starts_at, ends_at, created_by)
	     VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	event.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.Title, event.Location, event.StartsAt, event.EndsAt, event.CreatedBy).Scan(&event.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return event, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Event, error) {
	query :=
		`SELECT id, title, location, starts_at, ends_at, created_by, created_at FROM events
		 ORDER BY starts_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Location,
			&event.StartsAt, &event.EndsAt, &event.CreatedBy, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
