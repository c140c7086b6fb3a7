package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/courier-im/courier/internal/apperr"
	"github.com/courier-im/courier/internal/logging"
	"github.com/courier-im/courier/internal/models"
	"github.com/courier-im/courier/internal/store"
)

type MessageHandler struct {
	Store store.Store
	Log   logging.Logger
}

type SendRequest struct {
	Token     string `json:"token"`
	Recipient string `json:"recipient"`
	Type      string `json:"type"`
	Content   string `json:"content"`
}

// Send stores a message for later pickup by the recipient. Only the text and
// voice kinds are accepted.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Log, fmt.Errorf("malformed body: %w", apperr.ErrValidation))
		return
	}

	caller, err := authenticate(h.Store, req.Token)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	kind := models.MessageKind(req.Type)
	if !kind.Valid() {
		writeError(w, r, h.Log, fmt.Errorf("type must be text or voice: %w", apperr.ErrValidation))
		return
	}

	recipient, err := h.Store.GetUserByUsername(req.Recipient)
	if errors.Is(err, apperr.ErrNotFound) {
		writeError(w, r, h.Log, fmt.Errorf("recipient %q: %w", req.Recipient, apperr.ErrNotFound))
		return
	}
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	msg := &models.Message{
		SenderID:    caller.ID,
		RecipientID: recipient.ID,
		Kind:        kind,
		Content:     req.Content,
	}
	if err := h.Store.SaveMessage(msg); err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message_id": msg.ID,
	})
}

// Fetch pages through the caller's inbox by increasing message id. The caller
// passes the highest id it has seen as last_id; nothing is marked read.
func (h *MessageHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	caller, err := authenticate(h.Store, r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}

	var sinceID int64
	if raw := r.URL.Query().Get("last_id"); raw != "" {
		sinceID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, h.Log, fmt.Errorf("last_id must be an integer: %w", apperr.ErrValidation))
			return
		}
	}

	messages, err := h.Store.GetMessagesSince(caller.ID, sinceID)
	if err != nil {
		writeError(w, r, h.Log, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
