package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// HashAPIKey strips prefix from a raw API key and returns the hex-encoded
// HMAC-SHA256 digest of the remainder. The digest is what gets stored in
// and looked up from the api_keys table.
//
// Surrounding whitespace is ignored. A key that does not carry prefix is
// hashed as is.
func HashAPIKey(rawKey, prefix, hashKey string) string {
	key := strings.TrimSpace(rawKey)
	if prefix != "" {
		key = strings.TrimPrefix(key, prefix)
	}
	return HashString(key, hashKey)
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
