package models

import "time"

// APIKey is a hashed credential that authenticates requests on behalf of a user.
// The plain key is never stored; HashedKey holds its keyed digest.
type APIKey struct {
	ID        string     `json:"id"`
	UserID    int64      `json:"userId"`
	HashedKey string     `json:"-"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the APIKey model.
func (k APIKey) TableName() string {
	return "api_keys"
}

// IsExpired reports whether the key has an expiry date that is not after now.
// Keys without an expiry date never expire.
func (k APIKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}
