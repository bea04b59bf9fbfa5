package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// SecretTokenBytes is the entropy of a site secret token
const SecretTokenBytes = 24

// GenerateUUID returns a random (version 4) UUID string
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateSecretToken returns a random hex token suitable as a site secret
func GenerateSecretToken() (string, error) {
	buf := make([]byte, SecretTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
