package store

import "github.com/courier-im/courier/internal/models"

// Store is the persistence boundary. All durable state lives behind it; the
// service keeps no authoritative copies between requests.
type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByToken(token string) (*models.User, error)
	UpdateUserToken(userID, token string) error
	SearchUsers(query, excludeUserID string) ([]models.User, error)

	// Contact operations
	AddContact(ownerID, contactID string) error
	ListContacts(ownerID string) ([]models.User, error)

	// Message operations
	SaveMessage(msg *models.Message) error
	GetMessagesSince(recipientID string, sinceID int64) ([]models.Message, error)

	Ping() error
	Close() error
}
