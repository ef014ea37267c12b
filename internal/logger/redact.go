package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

var hashSalt string

func init() {
	// Load salt from environment or fall back to a default one.
	// In production, set LOG_HASH_SALT environment variable.
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// RedactToken creates a privacy-preserving fingerprint of an auth token.
// This allows correlating requests in logs without ever exposing the
// credential itself.
func RedactToken(token string) string {
	if token == "" {
		return "<none>"
	}
	hash := sha256.Sum256([]byte(token + ":" + hashSalt))
	// First 8 characters are enough for correlation.
	return hex.EncodeToString(hash[:])[:8]
}

// SanitizeQuery removes user-provided assistant query text from logs while
// preserving length information for debugging.
func SanitizeQuery(query string) string {
	if query == "" {
		return "<empty>"
	}

	words := strings.Fields(query)
	return fmt.Sprintf("<redacted: %d words, %d chars>", len(words), len(query))
}

// SanitizeText is a general-purpose sanitizer for any user-provided text.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}

	if len(text) <= 10 {
		return fmt.Sprintf("<%d chars>", len(text))
	}

	return fmt.Sprintf("%s...<%d chars>", text[:3], len(text))
}
