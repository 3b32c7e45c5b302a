package sqlstore

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // Postgres driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLStore struct {
	db *sqlx.DB
}

func New(driverName, dataSourceName string) (*SQLStore, error) {
	db, err := sqlx.Connect(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}

	s := &SQLStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) createTables() error {
	// Two tables, created idempotently at startup. posted_by carries
	// no foreign-key constraint; existence is a business rule, not a
	// schema rule.
	query := `
	CREATE TABLE IF NOT EXISTS account (
		account_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS message (
		message_id INTEGER PRIMARY KEY AUTOINCREMENT,
		posted_by INTEGER,
		message_text TEXT NOT NULL,
		time_posted_epoch BIGINT
	);
	`

	if s.db.DriverName() == "postgres" {
		// Adjust for Postgres syntax
		query = strings.ReplaceAll(query, "INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY")
	}

	_, err := s.db.Exec(query)
	return err
}
