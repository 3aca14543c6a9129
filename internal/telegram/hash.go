package telegram

import (
	"crypto/sha256"
	"encoding/hex"
)

// escapeCacheKey derives the scratch-cache key for a piece of outbound text.
// Hashing keeps key length bounded regardless of message size.
func escapeCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "escaped_html:" + hex.EncodeToString(sum[:])
}
