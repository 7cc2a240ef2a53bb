// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

// Package client implements the interactive client application runtime.
//
// It wires the API client, the persisted session store and the terminal UI
// flows into a single process lifecycle: restore a saved session or walk
// the sign-in flow, then run the action menu until quit or logout.
package client
