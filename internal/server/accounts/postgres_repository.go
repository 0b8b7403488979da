package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/dbx"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the account and assigns its id. The unique index on email
// makes concurrent duplicate registrations lose the race at the database,
// surfacing here as common.ErrDuplicateAccount.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (id, email, password_hash, role)
	     VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	account.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.PasswordHash, string(account.Role)).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, password_hash, role, created_at FROM accounts
		 WHERE email = $1
		 `

	account := &models.Account{}
	var role string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID, &account.Email, &account.PasswordHash, &role, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.Role = models.Role(role)
	return account, nil
}
