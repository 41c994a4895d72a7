package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// GeneratedPasswordBytes is the entropy of auto-generated passwords. The
// resulting token is URL-safe base64, 11 characters.
const GeneratedPasswordBytes = 8

// HashPassword hashes a plaintext password to the stored credential format:
// an unsalted SHA-256 hex digest. Existing rows were written in this format,
// so it cannot change without invalidating every stored credential.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a stored hash against a plaintext candidate.
func CheckPassword(storedHash, password string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(candidate)) == 1
}

// GeneratePassword returns a random URL-safe password for the "generate"
// password policy. The plaintext is surfaced to the caller exactly once and
// never stored.
func GeneratePassword() (string, error) {
	buf := make([]byte, GeneratedPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
