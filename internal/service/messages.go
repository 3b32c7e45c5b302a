package service

import (
	"errors"
	"fmt"

	"github.com/pliu/bulletin/internal/models"
	"github.com/pliu/bulletin/internal/store"
)

type MessageService struct {
	store store.Store
}

func NewMessageService(s store.Store) *MessageService {
	return &MessageService{store: s}
}

func validateText(text string) error {
	if len(text) == 0 {
		return fmt.Errorf("%w: message text must not be empty", ErrRejected)
	}
	if len(text) >= 255 {
		return fmt.Errorf("%w: message text must be under 255 characters", ErrRejected)
	}
	return nil
}

// Create posts a new message. The text must be 1-254 characters and
// the author must be an existing account.
func (s *MessageService) Create(candidate *models.Message) (*models.Message, error) {
	if err := validateText(candidate.Text); err != nil {
		return nil, err
	}

	if _, err := s.store.GetAccountByID(candidate.PostedBy); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %d does not exist", ErrRejected, candidate.PostedBy)
		}
		return nil, err
	}

	return s.store.CreateMessage(candidate.PostedBy, candidate.Text, candidate.PostedAt)
}

func (s *MessageService) GetAll() ([]models.Message, error) {
	return s.store.GetAllMessages()
}

func (s *MessageService) GetByID(id int) (*models.Message, error) {
	return s.store.GetMessageByID(id)
}

// DeleteByID removes a message and returns it. A missing id surfaces
// as store.ErrNotFound, which callers treat as "nothing to report".
func (s *MessageService) DeleteByID(id int) (*models.Message, error) {
	return s.store.DeleteMessageByID(id)
}

// Update replaces a message's fields and returns the freshly reloaded
// row. The message must exist and the new text must pass the length
// rule.
func (s *MessageService) Update(id int, candidate *models.Message) (*models.Message, error) {
	if _, err := s.store.GetMessageByID(id); err != nil {
		return nil, err
	}
	if err := validateText(candidate.Text); err != nil {
		return nil, err
	}

	if err := s.store.UpdateMessage(id, candidate.PostedBy, candidate.Text, candidate.PostedAt); err != nil {
		return nil, err
	}
	return s.store.GetMessageByID(id)
}

func (s *MessageService) ListByAccount(accountID int) ([]models.Message, error) {
	return s.store.GetMessagesByAccount(accountID)
}
