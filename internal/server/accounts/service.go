package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/campushub/internal/common"
	"github.com/campushub/campushub/internal/server/auth"
	"github.com/campushub/campushub/internal/server/models"
	"github.com/campushub/campushub/internal/server/password"
	"github.com/campushub/campushub/internal/server/validation"
)

// dummyHash is a valid bcrypt record for a random throwaway password.
// Authenticate burns a comparison against it when the email is unknown, so
// unknown emails and wrong passwords take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthResult is the outcome of a successful register or authenticate call.
type AuthResult struct {
	Account *models.Account
	Token   string
}

// Service composes validation, the credential store, the password hasher,
// and the token issuer into the two public authentication operations.
type Service struct {
	repo         Repository
	hasher       *password.Hasher
	issuer       *auth.Issuer
	storeTimeout time.Duration
}

func NewService(repo Repository, hasher *password.Hasher, issuer *auth.Issuer, storeTimeout time.Duration) *Service {
	return &Service{
		repo:         repo,
		hasher:       hasher,
		issuer:       issuer,
		storeTimeout: storeTimeout,
	}
}

// Register validates the payload, rejects duplicate emails, persists the
// account with a freshly hashed password, and returns a signed token for it.
//
// Error set: validation.Violations (all violations, found before any store
// or hashing work), common.ErrDuplicateAccount, common.ErrServiceUnavailable.
func (s *Service) Register(ctx context.Context, email, plaintext string, role models.Role) (*AuthResult, error) {

	if v := validation.CheckRegistration(email, plaintext, role); len(v) > 0 {
		return nil, v
	}

	ctx, cancel := s.boundStoreCtx(ctx)
	defer cancel()

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrDuplicateAccount
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("%w: account lookup: %v", common.ErrServiceUnavailable, err)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %v", common.ErrInternal, err)
	}

	account, err := s.repo.Create(ctx, &models.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		// A concurrent registration can still win the race between the
		// lookup above and this insert; the store reports it either way.
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("%w: creating account: %v", common.ErrServiceUnavailable, err)
	}

	token, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %v", common.ErrInternal, err)
	}

	return &AuthResult{Account: account, Token: token}, nil
}

// Authenticate verifies the credentials and returns a signed token. Unknown
// email and wrong password both yield common.ErrInvalidCredentials so the
// response never reveals which factor failed.
func (s *Service) Authenticate(ctx context.Context, email, plaintext string) (*AuthResult, error) {

	ctx, cancel := s.boundStoreCtx(ctx)
	defer cancel()

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.Verify(plaintext, dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: account lookup: %v", common.ErrServiceUnavailable, err)
	}

	if !s.hasher.Verify(plaintext, account.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: issuing token: %v", common.ErrInternal, err)
	}

	return &AuthResult{Account: account, Token: token}, nil
}

// boundStoreCtx caps store access time so a stuck database surfaces as
// common.ErrServiceUnavailable instead of an unbounded wait.
func (s *Service) boundStoreCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
