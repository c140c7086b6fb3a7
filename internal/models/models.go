package models

import "time"

// MessageKind is the closed set of message payload types.
type MessageKind string

const (
	KindText  MessageKind = "text"
	KindVoice MessageKind = "voice"
)

// Valid reports whether k is one of the accepted message kinds.
func (k MessageKind) Valid() bool {
	return k == KindText || k == KindVoice
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Token        string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Contact is one direction of the symmetric is-contact-of relation.
// Adding a contact always writes both directions.
type Contact struct {
	OwnerID   string `json:"owner_id"`
	ContactID string `json:"contact_id"`
}

type Message struct {
	ID          int64       `json:"id"`
	SenderID    string      `json:"-"`
	Sender      string      `json:"sender"` // sender's username, filled on read
	RecipientID string      `json:"-"`
	Kind        MessageKind `json:"type"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"timestamp"`
	// Read is carried in the schema but never set by any operation.
	Read bool `json:"-"`
}
