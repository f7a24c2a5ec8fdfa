// Package cache stores rendered .ods archives keyed by the input that
// produced them. The HTTP service uses it to skip re-converting
// descriptions it has already seen; the CLI runs without one.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface for conversion results.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ConvertKey derives the cache key for a conversion: the hash of the
// raw input bytes, scoped by input format and generator version so a
// release with different output never serves stale archives.
func ConvertKey(input []byte, format, version string) string {
	h := sha256.New()
	h.Write(input)
	h.Write([]byte{0})
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(version))
	return "convert:" + hex.EncodeToString(h.Sum(nil))
}

// Hash computes the SHA-256 hex digest of data. FileCache uses it to
// map keys onto filenames.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
