// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package grustnogram

import (
	"errors"
	"fmt"
)

// Sentinel errors matched against the numeric codes of the response
// envelope. Operations return them wrapped inside [*APIError]; test with
// [errors.Is].
var (
	// ErrEmailExists is reported during registration when the email is
	// already taken (code 100).
	ErrEmailExists = errors.New("email already exists")

	// ErrLoginExists is reported during registration when the nickname is
	// already taken (code 101).
	ErrLoginExists = errors.New("login already exists")

	// ErrUserNotFound is reported when the account a request refers to
	// does not exist (code 102).
	ErrUserNotFound = errors.New("user not found")

	// ErrBadCredentials is reported when the password does not match
	// (code 103).
	ErrBadCredentials = errors.New("bad credentials")

	// ErrUnknown covers every envelope failure the client has no specific
	// sentinel for. The [*APIError] wrapping it carries the raw envelope.
	ErrUnknown = errors.New("unknown api error")

	// ErrCodeFuncRequired is returned by Register when no phone code
	// callback was supplied. There is no default prompt.
	ErrCodeFuncRequired = errors.New("phone code callback is required")
)

// Wire error codes the client maps to sentinels. Any other nonzero code in
// the envelope maps to [ErrUnknown].
const (
	CodeEmailExists    = 100
	CodeLoginExists    = 101
	CodeUserNotFound   = 102
	CodeBadCredentials = 103
)

// APIError is an error reported by the Grustnogram API inside its response
// envelope. It unwraps to one of the package sentinels and keeps the raw
// envelope bytes for diagnostics.
type APIError struct {
	// Codes holds the numeric error codes exactly as listed in the
	// envelope's err field.
	Codes []int

	// Envelope is the raw response body the error was decoded from.
	Envelope []byte

	err error
}

// Error implements the error interface. The message names the matched
// sentinel and the envelope codes.
func (e *APIError) Error() string {
	return fmt.Sprintf("%v (codes %v)", e.err, e.Codes)
}

// Unwrap returns the sentinel matched from the envelope codes, enabling
// errors.Is checks against [ErrEmailExists], [ErrBadCredentials] and the
// other package sentinels.
func (e *APIError) Unwrap() error {
	return e.err
}
