package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/courier-im/courier/internal/apperr"
	"github.com/courier-im/courier/internal/logging"
	"github.com/courier-im/courier/internal/models"
	"github.com/courier-im/courier/internal/store"
	"github.com/courier-im/courier/internal/token"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Store store.Store
	Log   logging.Logger
}

// Register creates a user, mints their first session token and returns it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, h.Log, fmt.Errorf("malformed body: %w", apperr.ErrValidation))
		return
	}
	if creds.Username == "" || creds.Password == "" {
		writeError(w, r, h.Log, fmt.Errorf("username and password are required: %w", apperr.ErrValidation))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	tok, err := token.New()
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     creds.Username,
		PasswordHash: string(hashed),
		Token:        tok,
	}
	if err := h.Store.CreateUser(user); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"token":   tok,
		"user_id": user.ID,
	})
}

// Login verifies credentials and rotates the session token. The previous
// token stops authenticating.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, r, h.Log, fmt.Errorf("malformed body: %w", apperr.ErrValidation))
		return
	}

	user, err := h.Store.GetUserByUsername(creds.Username)
	if errors.Is(err, apperr.ErrNotFound) {
		writeError(w, r, h.Log, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized))
		return
	}
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		writeError(w, r, h.Log, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized))
		return
	}

	tok, err := token.New()
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	if err := h.Store.UpdateUserToken(user.ID, tok); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":   tok,
		"user_id": user.ID,
	})
}

// SearchUsers matches usernames by case-insensitive substring, excluding the
// caller. An empty query returns an empty list, never "all users".
func (h *AuthHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	caller, err := authenticate(h.Store, r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	query := r.URL.Query().Get("username")
	if query == "" {
		writeJSON(w, http.StatusOK, map[string]any{"users": []models.User{}})
		return
	}

	users, err := h.Store.SearchUsers(query, caller.ID)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}
