// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

// Package session persists the local sign-in between runs of the client.
//
// The store keeps at most one row in a SQLite database file: saving a new
// session replaces the previous one, matching how the API treats tokens
// (a fresh login invalidates nothing server-side, but the client only
// ever acts as one account). Schema management is delegated to the
// migrations package on open.
package session
