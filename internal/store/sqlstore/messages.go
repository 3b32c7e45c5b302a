package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/pliu/bulletin/internal/models"
	"github.com/pliu/bulletin/internal/store"
)

func (s *SQLStore) CreateMessage(postedBy int, text string, postedAt int64) (*models.Message, error) {
	msg := models.Message{PostedBy: postedBy, Text: text, PostedAt: postedAt}
	query := s.db.Rebind("INSERT INTO message (posted_by, message_text, time_posted_epoch) VALUES (?, ?, ?) RETURNING message_id")
	if err := s.db.QueryRow(query, postedBy, text, postedAt).Scan(&msg.ID); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *SQLStore) GetAllMessages() ([]models.Message, error) {
	// Initialized so an empty board serializes as [] rather than null.
	messages := []models.Message{}
	err := s.db.Select(&messages, "SELECT message_id, posted_by, message_text, time_posted_epoch FROM message")
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *SQLStore) GetMessageByID(id int) (*models.Message, error) {
	var msg models.Message
	query := s.db.Rebind("SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE message_id = ?")
	if err := s.db.Get(&msg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// DeleteMessageByID reads the row, then deletes it, returning the
// pre-deletion row. Deleting an id that never existed is ErrNotFound,
// which callers treat as a no-op.
func (s *SQLStore) DeleteMessageByID(id int) (*models.Message, error) {
	msg, err := s.GetMessageByID(id)
	if err != nil {
		return nil, err
	}

	query := s.db.Rebind("DELETE FROM message WHERE message_id = ?")
	if _, err := s.db.Exec(query, id); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *SQLStore) UpdateMessage(id, postedBy int, text string, postedAt int64) error {
	query := s.db.Rebind("UPDATE message SET posted_by = ?, message_text = ?, time_posted_epoch = ? WHERE message_id = ?")
	result, err := s.db.Exec(query, postedBy, text, postedAt, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *SQLStore) GetMessagesByAccount(accountID int) ([]models.Message, error) {
	messages := []models.Message{}
	query := s.db.Rebind("SELECT message_id, posted_by, message_text, time_posted_epoch FROM message WHERE posted_by = ?")
	err := s.db.Select(&messages, query, accountID)
	if err != nil {
		return nil, err
	}
	return messages, nil
}
