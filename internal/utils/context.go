// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, API key hashing,
// HTTP response writing, HTTP client initialization and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key under which the auth middleware stores the
	// identifier of the authenticated user.
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
	UserIDCtxKey = contextKey("userID")

	// QueryIDCtxKey is the key under which the query id middleware stores
	// the validated numeric {id} path parameter.
	QueryIDCtxKey = contextKey("queryID")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetQueryIDFromContext retrieves the validated {id} path parameter.
// The ok flag follows the same rules as [GetUserIDFromContext].
func GetQueryIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(QueryIDCtxKey).(int64)
	return id, ok
}
