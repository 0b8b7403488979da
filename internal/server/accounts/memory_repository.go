package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps accounts in a mutex-guarded map keyed by email.
// Used by tests and by the server when no database DSN is configured.
// Holding the lock across the existence check and the insert gives the same
// per-email atomicity the unique index gives the Postgres implementation.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]*models.Account)}
}

func (r *MemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[account.Email]; exists {
		return nil, common.ErrDuplicateAccount
	}

	stored := *account
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byEmail[stored.Email] = &stored

	result := stored
	return &result, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}

	result := *account
	return &result, nil
}

// Len reports the number of stored accounts.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
