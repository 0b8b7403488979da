package accounts

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/server/models"
)

func TestMemoryCreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()

	created, err := repo.Create(context.Background(), &models.Account{
		Email:        "a@x.com",
		PasswordHash: "hash",
		Role:         models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("id/created_at not assigned: %+v", created)
	}

	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("id mismatch: %q vs %q", got.ID, created.ID)
	}

	if _, err := repo.GetByEmail(context.Background(), "ghost@x.com"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCreate_Duplicate(t *testing.T) {
	repo := NewMemoryRepository()

	if _, err := repo.Create(context.Background(), &models.Account{Email: "a@x.com"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	if _, err := repo.Create(context.Background(), &models.Account{Email: "a@x.com"}); !errors.Is(err, common.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("store must hold exactly one account, has %d", repo.Len())
	}
}

func TestMemoryCreate_EmailCasePreserved(t *testing.T) {
	repo := NewMemoryRepository()

	// No normalization: case-variant emails are distinct accounts.
	if _, err := repo.Create(context.Background(), &models.Account{Email: "a@x.com"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := repo.Create(context.Background(), &models.Account{Email: "A@x.com"}); err != nil {
		t.Fatalf("Create error for case-variant email: %v", err)
	}
	if repo.Len() != 2 {
		t.Fatalf("expected 2 accounts, got %d", repo.Len())
	}
}

func TestMemoryCreate_ConcurrentDuplicates(t *testing.T) {
	repo := NewMemoryRepository()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(context.Background(), &models.Account{Email: "a@x.com"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, common.ErrDuplicateAccount) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("exactly one concurrent registration may win, got %d", succeeded)
	}
	if repo.Len() != 1 {
		t.Fatalf("store must hold exactly one account, has %d", repo.Len())
	}
}
