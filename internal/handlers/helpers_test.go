package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/courier-im/courier/internal/logging"
	"github.com/courier-im/courier/internal/store/sqlstore"
)

func newTestStore(t *testing.T) *sqlstore.SQLStore {
	t.Helper()
	s, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	return out
}

// register drives the real handler and returns the issued token and user id.
func register(t *testing.T, h *AuthHandler, username, password string) (token, userID string) {
	t.Helper()
	rr := doJSON(t, h.Register, "POST", "/register", Credentials{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, rr.Code)
	body := decodeBody(t, rr)
	return body["token"].(string), body["user_id"].(string)
}

func testLogger() logging.Logger {
	return logging.Discard()
}
