package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashUserID derives the pseudonymous key under which all moderation data is
// stored. The raw identity must never be persisted alongside violations, so
// every boundary that accepts a raw user ID hashes it before anything else.
func HashUserID(rawUserID string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(rawUserID)))
	return hex.EncodeToString(sum[:])
}
