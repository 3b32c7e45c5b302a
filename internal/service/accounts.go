// Package service holds the business rules between the HTTP handlers
// and the store: validate the candidate entity, then delegate.
package service

import (
	"errors"
	"fmt"

	"github.com/pliu/bulletin/internal/models"
	"github.com/pliu/bulletin/internal/store"
)

var (
	// ErrRejected marks input that failed a business rule. Specific
	// rejections wrap it so errors.Is(err, ErrRejected) holds.
	ErrRejected = errors.New("rejected")

	// ErrInvalidCredentials is returned on a failed login, whether the
	// account is missing or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService struct {
	store store.Store
}

func NewAccountService(s store.Store) *AccountService {
	return &AccountService{store: s}
}

// Register creates a new account. The username must be non-empty and
// not already taken, and the password at least 4 characters.
func (s *AccountService) Register(candidate *models.Account) (*models.Account, error) {
	if candidate.Username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", ErrRejected)
	}
	if len(candidate.Password) < 4 {
		return nil, fmt.Errorf("%w: password must be at least 4 characters", ErrRejected)
	}

	_, err := s.store.GetAccountByUsername(candidate.Username)
	if err == nil {
		return nil, fmt.Errorf("%w: username %q is taken", ErrRejected, candidate.Username)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return s.store.CreateAccount(candidate.Username, candidate.Password)
}

// Login returns the account matching the exact credential pair.
func (s *AccountService) Login(candidate *models.Account) (*models.Account, error) {
	acct, err := s.store.AuthenticateAccount(candidate.Username, candidate.Password)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return acct, nil
}
