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

// CallerEmailCtxKey is the key used to store the email of the
// authenticated caller in the context. Used together with
// GetCallerEmailFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CallerEmailCtxKey, "sad@example.com")
var CallerEmailCtxKey = contextKey("callerEmail")

// GetCallerEmailFromContext retrieves the authenticated caller's email
// from the context.
//
// Returns the email and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetCallerEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(CallerEmailCtxKey).(string)
	return email, ok
}
