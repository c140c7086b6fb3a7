// Package token mints the opaque bearer credentials handed out at
// registration and login. Tokens never expire; the only revocation is the
// wholesale overwrite on the user's next login.
package token

import (
	"crypto/rand"
	"encoding/hex"
)

const numBytes = 32

// New returns a fresh random token: 32 bytes of entropy, hex encoded.
func New() (string, error) {
	b := make([]byte, numBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
