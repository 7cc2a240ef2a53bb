// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package grustnogram

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeFromJSON(t *testing.T, raw string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	return env
}

func TestMapEnvelopeError_Success(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty list", `{"err":[],"data":{"ok":true}}`},
		{"absent field", `{"data":{"ok":true}}`},
		{"null list", `{"err":null,"data":{"ok":true}}`},
		{"only zeros", `{"err":[0,0,0],"data":{"ok":true}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := envelopeFromJSON(t, tt.raw)
			assert.NoError(t, mapEnvelopeError(env, []byte(tt.raw)))
		})
	}
}

func TestMapEnvelopeError_KnownCodes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"email exists", `{"err":[100]}`, ErrEmailExists},
		{"login exists", `{"err":[101]}`, ErrLoginExists},
		{"user not found", `{"err":[102]}`, ErrUserNotFound},
		{"bad credentials", `{"err":[103]}`, ErrBadCredentials},
		{"priority email over credentials", `{"err":[100,103]}`, ErrEmailExists},
		{"priority holds regardless of order", `{"err":[103,100]}`, ErrEmailExists},
		{"priority login over not found", `{"err":[102,101]}`, ErrLoginExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := envelopeFromJSON(t, tt.raw)
			err := mapEnvelopeError(env, []byte(tt.raw))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapEnvelopeError_UnknownCode(t *testing.T) {
	raw := `{"err":[0,424],"data":null}`
	env := envelopeFromJSON(t, raw)

	err := mapEnvelopeError(env, []byte(raw))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []int{0, 424}, apiErr.Codes)
	assert.Equal(t, raw, string(apiErr.Envelope))
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Codes: []int{100}, err: ErrEmailExists}

	assert.Contains(t, err.Error(), "email already exists")
	assert.Contains(t, err.Error(), "100")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAPIError_DoesNotMatchOtherSentinels(t *testing.T) {
	err := &APIError{Codes: []int{102}, err: ErrUserNotFound}

	assert.False(t, errors.Is(err, ErrBadCredentials))
	assert.False(t, errors.Is(err, ErrUnknown))
}
