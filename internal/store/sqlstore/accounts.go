package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/pliu/bulletin/internal/models"
	"github.com/pliu/bulletin/internal/store"
)

func (s *SQLStore) CreateAccount(username, password string) (*models.Account, error) {
	acct := models.Account{Username: username, Password: password}
	query := s.db.Rebind("INSERT INTO account (username, password) VALUES (?, ?) RETURNING account_id")
	if err := s.db.QueryRow(query, username, password).Scan(&acct.ID); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (s *SQLStore) GetAccountByUsername(username string) (*models.Account, error) {
	var acct models.Account
	query := s.db.Rebind("SELECT account_id, username, password FROM account WHERE username = ?")
	if err := s.db.Get(&acct, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}

func (s *SQLStore) GetAccountByID(id int) (*models.Account, error) {
	var acct models.Account
	query := s.db.Rebind("SELECT account_id, username, password FROM account WHERE account_id = ?")
	if err := s.db.Get(&acct, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// AuthenticateAccount does an exact credential match; a wrong password
// is indistinguishable from a missing account by design.
func (s *SQLStore) AuthenticateAccount(username, password string) (*models.Account, error) {
	var acct models.Account
	query := s.db.Rebind("SELECT account_id, username, password FROM account WHERE username = ? AND password = ?")
	if err := s.db.Get(&acct, query, username, password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}
