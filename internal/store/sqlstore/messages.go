package sqlstore

import (
	"time"

	"github.com/courier-im/courier/internal/models"
)

// SaveMessage persists msg, filling in its engine-assigned id and timestamp.
func (s *SQLStore) SaveMessage(msg *models.Message) error {
	msg.CreatedAt = time.Now().UTC()
	query := s.rebind("INSERT INTO messages (sender_id, recipient_id, kind, content, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id")
	return s.db.QueryRow(query, msg.SenderID, msg.RecipientID, string(msg.Kind), msg.Content, msg.CreatedAt).Scan(&msg.ID)
}

// GetMessagesSince returns messages addressed to recipientID with id strictly
// greater than sinceID, ascending by id. Fetching never marks anything read.
func (s *SQLStore) GetMessagesSince(recipientID string, sinceID int64) ([]models.Message, error) {
	query := s.rebind(`
		SELECT m.id, m.sender_id, u.username, m.kind, m.content, m.created_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.recipient_id = ? AND m.id > ?
		ORDER BY m.id ASC
	`)
	rows, err := s.db.Query(query, recipientID, sinceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.Sender, &m.Kind, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.RecipientID = recipientID
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
