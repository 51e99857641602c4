package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const keyVersion = "v1"

const (
	NamespaceDiscover = "discover"
	NamespacePhoto    = "photo"
)

// Key builds a versioned cache key from the JSON encoding of parts, e.g.
// "cache:v1:photo:3f786850e387550fdab836ed7e6dc881de23001b".
func Key(namespace string, parts any) (string, error) {
	data, err := json.Marshal(parts)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	sum := sha1.Sum(data)
	return fmt.Sprintf("cache:%s:%s:%s", keyVersion, namespace, hex.EncodeToString(sum[:])), nil
}
