package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SVGKey is the cache key of the SVG rendering of a DOT document.
func SVGKey(dot string) string {
	return "svg:" + Hash([]byte(dot))
}
