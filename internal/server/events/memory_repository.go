package events

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campushub/campushub/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps events in memory for tests and the no-DSN dev mode.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []*models.Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *event
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.events = append(r.events, &stored)

	result := stored
	return &result, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Event, 0, len(r.events))
	for _, event := range r.events {
		copied := *event
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartsAt.Before(result[j].StartsAt)
	})

	return result, nil
}
