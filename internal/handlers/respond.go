package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/courier-im/courier/internal/apperr"
	"github.com/courier-im/courier/internal/logging"
	"github.com/courier-im/courier/internal/models"
	"github.com/courier-im/courier/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP status codes. Anything outside
// the taxonomy is a store failure: logged in full, reported generically.
func writeError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, apperr.ErrUnauthorized):
		status = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	default:
		log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	writeJSON(w, status, map[string]string{"error": msg})
}

// authenticate resolves the caller from a bearer token. Every operation
// except register, login and health starts here.
func authenticate(s store.Store, tok string) (*models.User, error) {
	if tok == "" {
		return nil, fmt.Errorf("missing token: %w", apperr.ErrUnauthorized)
	}
	user, err := s.GetUserByToken(tok)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("invalid token: %w", apperr.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
