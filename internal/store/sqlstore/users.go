package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/courier-im/courier/internal/apperr"
	"github.com/courier-im/courier/internal/models"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	query := s.rebind("INSERT INTO users (id, username, password_hash, token) VALUES (?, ?, ?, ?)")
	_, err := s.db.Exec(query, user.ID, user.Username, user.PasswordHash, user.Token)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %q: %w", user.Username, apperr.ErrConflict)
		}
		return err
	}
	return nil
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	query := s.rebind("SELECT id, username, password_hash, COALESCE(token, '') FROM users WHERE username = ?")
	return s.scanUser(s.db.QueryRow(query, username))
}

func (s *SQLStore) GetUserByID(id string) (*models.User, error) {
	query := s.rebind("SELECT id, username, password_hash, COALESCE(token, '') FROM users WHERE id = ?")
	return s.scanUser(s.db.QueryRow(query, id))
}

func (s *SQLStore) GetUserByToken(token string) (*models.User, error) {
	query := s.rebind("SELECT id, username, password_hash, COALESCE(token, '') FROM users WHERE token = ?")
	return s.scanUser(s.db.QueryRow(query, token))
}

func (s *SQLStore) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserToken replaces the user's session token wholesale; the previous
// token stops authenticating immediately.
func (s *SQLStore) UpdateUserToken(userID, token string) error {
	query := s.rebind("UPDATE users SET token = ? WHERE id = ?")
	result, err := s.db.Exec(query, token, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// SearchUsers returns users whose username contains query as a
// case-insensitive substring, excluding excludeUserID.
func (s *SQLStore) SearchUsers(queryStr, excludeUserID string) ([]models.User, error) {
	query := s.rebind("SELECT id, username FROM users WHERE LOWER(username) LIKE LOWER(?) AND id <> ? ORDER BY username")
	rows, err := s.db.Query(query, "%"+queryStr+"%", excludeUserID)
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
