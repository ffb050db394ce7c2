// Package cache memoizes pipeline results. The engine is deterministic,
// so identical (content, research, mode, style) inputs always produce the
// same output and can be served from cache.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for result caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ResultKey generates a cache key from the inputs that determine a run's
// output.
func ResultKey(content, researchDigest, mode, style string) string {
	h := sha256.New()
	h.Write([]byte(content))
	h.Write([]byte{0})
	h.Write([]byte(researchDigest))
	h.Write([]byte{0})
	h.Write([]byte(mode))
	h.Write([]byte{0})
	h.Write([]byte(style))
	return "contentpipe:v1:" + hex.EncodeToString(h.Sum(nil))
}

// Digest hashes raw bytes, used to fingerprint a research bundle.
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
