package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Padding  int    `json:"padding"`
	Branches string `json:"branches"`
	Detailed bool   `json:"detailed,omitempty"`
}

// ArtifactKey returns the cache key for one rendered format of a document.
func ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", documentHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
