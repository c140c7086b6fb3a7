package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/courier-im/courier/internal/apperr"
	"github.com/courier-im/courier/internal/logging"
	"github.com/courier-im/courier/internal/store"
)

type ContactHandler struct {
	Store store.Store
	Log   logging.Logger
}

type AddContactRequest struct {
	Token     string `json:"token"`
	ContactID string `json:"contact_id"`
}

// AddContact inserts both directions of the contact edge atomically.
func (h *ContactHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	var req AddContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Log, fmt.Errorf("malformed body: %w", apperr.ErrValidation))
		return
	}

	caller, err := authenticate(h.Store, req.Token)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	if req.ContactID == "" {
		writeError(w, r, h.Log, fmt.Errorf("contact_id is required: %w", apperr.ErrValidation))
		return
	}

	contact, err := h.Store.GetUserByID(req.ContactID)
	if errors.Is(err, apperr.ErrNotFound) {
		writeError(w, r, h.Log, fmt.Errorf("user %q: %w", req.ContactID, apperr.ErrNotFound))
		return
	}
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	if err := h.Store.AddContact(caller.ID, contact.ID); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ListContacts returns the usernames on the caller's contact edges.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	caller, err := authenticate(h.Store, r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	contacts, err := h.Store.ListContacts(caller.ID)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	usernames := make([]string, 0, len(contacts))
	for _, c := range contacts {
		usernames = append(usernames, c.Username)
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": usernames})
}
