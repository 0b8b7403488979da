package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newSQLMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresCreate_Success(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), "a@x.com", "hash", "student").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	account, err := repo.Create(context.Background(), &models.Account{
		Email:        "a@x.com",
		PasswordHash: "hash",
		Role:         models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if account.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !account.CreatedAt.Equal(created) {
		t.Fatalf("created_at not scanned: %v", account.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresCreate_UniqueViolation(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "accounts_email_key"})

	_, err := repo.Create(context.Background(), &models.Account{
		Email:        "a@x.com",
		PasswordHash: "hash",
		Role:         models.RoleStudent,
	})
	if !errors.Is(err, common.ErrDuplicateAccount) {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
}

func TestPostgresCreate_DriverError(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectQuery("INSERT INTO accounts").WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), &models.Account{Email: "a@x.com"})
	if err == nil || errors.Is(err, common.ErrDuplicateAccount) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestPostgresGetByEmail_Found(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	created := time.Now()
	mock.ExpectQuery("SELECT id, email, password_hash, role, created_at FROM accounts").
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
			AddRow("u1", "a@x.com", "hash", "admin", created))

	account, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if account.ID != "u1" || account.Role != models.RoleAdmin {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestPostgresGetByEmail_NotFound(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectQuery("SELECT id, email, password_hash, role, created_at FROM accounts").
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}))

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
