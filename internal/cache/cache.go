// Package cache stores per-image OCR text so repeated analysis of the same
// label image skips the engine entirely. OCR is the dominant cost of a
// submission; everything after it is cheap regex work.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage contract shared by the memory, disk and layered
// implementations
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the engine name and raw image bytes. Keyed by
// engine so switching engines never serves stale text.
func Key(engineName string, image []byte) string {
	h := sha256.New()
	h.Write([]byte(engineName))
	h.Write([]byte{0})
	h.Write(image)
	return "labelvet:v1:" + hex.EncodeToString(h.Sum(nil))
}
