// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package server

import "errors"

var (
	errNoServerCreated = errors.New("no server is created")
)
