package events

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/campushub/campushub/internal/server/validation"
)

// Service exposes the schedule operations behind the authenticated routes.
type Service struct {
	repo         Repository
	storeTimeout time.Duration
}

func NewService(repo Repository, storeTimeout time.Duration) *Service {
	return &Service{repo: repo, storeTimeout: storeTimeout}
}

// List returns all events ordered by start time.
func (s *Service) List(ctx context.Context) ([]*models.Event, error) {
	ctx, cancel := s.boundStoreCtx(ctx)
	defer cancel()

	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing events: %v", common.ErrServiceUnavailable, err)
	}
	return result, nil
}

// Create validates and persists a new event on behalf of createdBy.
func (s *Service) Create(ctx context.Context, title, location string, startsAt, endsAt time.Time, createdBy string) (*models.Event, error) {

	if v := validation.CheckEvent(title, startsAt, endsAt); len(v) > 0 {
		return nil, v
	}

	ctx, cancel := s.boundStoreCtx(ctx)
	defer cancel()

	event, err := s.repo.Create(ctx, &models.Event{
		Title:     title,
		Location:  location,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating event: %v", common.ErrServiceUnavailable, err)
	}

	return event, nil
}

func (s *Service) boundStoreCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
