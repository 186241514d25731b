package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomTokenHex returns nBytes of cryptographic randomness hex-encoded,
// used as refresh token material.
func RandomTokenHex(nBytes int) (string, error) {
	b := make([]byte, nBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
