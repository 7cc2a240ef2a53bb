// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package grustnogram

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/go-resty/resty/v2"
)

// envelope is the uniform shape of every API response. The err list is the
// only failure signal; the HTTP status code carries no meaning.
type envelope struct {
	Err  []int           `json:"err"`
	Data json.RawMessage `json:"data"`
}

// codeSentinels maps wire error codes to sentinels in priority order: when
// the envelope lists several known codes the first table entry wins.
var codeSentinels = []struct {
	code int
	err  error
}{
	{CodeEmailExists, ErrEmailExists},
	{CodeLoginExists, ErrLoginExists},
	{CodeUserNotFound, ErrUserNotFound},
	{CodeBadCredentials, ErrBadCredentials},
}

// decodeEnvelope parses resp as a Grustnogram envelope and returns its data
// payload. An envelope listing a nonzero error code yields an [*APIError];
// a body that is not a valid envelope yields a plain wrapped error, which
// keeps proxy garbage and API failures on separate channels.
func decodeEnvelope(resp *resty.Response) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	if err := mapEnvelopeError(env, resp.Body()); err != nil {
		return nil, err
	}

	return env.Data, nil
}

// mapEnvelopeError converts the envelope's err list into an [*APIError].
// An empty list means success, and so does a list of only zeros; the
// original service pads the list with zeros on some endpoints.
func mapEnvelopeError(env envelope, raw []byte) error {
	if len(env.Err) == 0 {
		return nil
	}

	for _, m := range codeSentinels {
		if slices.Contains(env.Err, m.code) {
			return &APIError{Codes: env.Err, Envelope: raw, err: m.err}
		}
	}

	for _, code := range env.Err {
		if code != 0 {
			return &APIError{Codes: env.Err, Envelope: raw, err: ErrUnknown}
		}
	}

	return nil
}
