package store

import (
	"errors"

	"github.com/pliu/bulletin/internal/models"
)

// ErrNotFound is returned when a lookup matches no row. Callers tell
// it apart from a store failure with errors.Is.
var ErrNotFound = errors.New("store: not found")

type Store interface {
	// Account operations
	CreateAccount(username, password string) (*models.Account, error)
	GetAccountByUsername(username string) (*models.Account, error)
	GetAccountByID(id int) (*models.Account, error)
	AuthenticateAccount(username, password string) (*models.Account, error)

	// Message operations
	CreateMessage(postedBy int, text string, postedAt int64) (*models.Message, error)
	GetAllMessages() ([]models.Message, error)
	GetMessageByID(id int) (*models.Message, error)
	DeleteMessageByID(id int) (*models.Message, error)
	UpdateMessage(id, postedBy int, text string, postedAt int64) error
	GetMessagesByAccount(accountID int) ([]models.Message, error)
}
