package sqlstore

import (
	"fmt"

	"github.com/courier-im/courier/internal/apperr"
	"github.com/courier-im/courier/internal/models"
)

// AddContact records the symmetric is-contact-of relation by inserting both
// directions in one transaction. Either both rows land or neither does.
func (s *SQLStore) AddContact(ownerID, contactID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := s.rebind("INSERT INTO contacts (owner_id, contact_id) VALUES (?, ?)")
	if _, err := tx.Exec(query, ownerID, contactID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("contact edge: %w", apperr.ErrConflict)
		}
		return err
	}
	if _, err := tx.Exec(query, contactID, ownerID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("contact edge: %w", apperr.ErrConflict)
		}
		return err
	}

	return tx.Commit()
}

// ListContacts returns the users on the caller's contact edges. The inner
// join silently drops edges whose target no longer resolves.
func (s *SQLStore) ListContacts(ownerID string) ([]models.User, error) {
	query := s.rebind(`
		SELECT u.id, u.username
		FROM contacts c
		JOIN users u ON u.id = c.contact_id
		WHERE c.owner_id = ?
		ORDER BY u.username
	`)
	rows, err := s.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
