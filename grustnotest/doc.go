// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

// Package grustnotest is an in-process stub of the Grustnogram API for
// testing code built on this module's client.
//
// The stub reproduces the API's wire behaviour: every response is the
// {"err": [...], "data": ...} envelope, error codes 100-103 match
// production, the comment listing endpoint reads its page window from a
// GET request body, and failure statuses vary so that clients deciding by
// status instead of envelope get caught. Codes from 104 up stand in for
// the failures the public API leaves undocumented.
//
//	srv := grustnotest.NewServer()
//	defer srv.Close()
//
//	srv.SeedUser("sadalice", "alice@example.com", "secret")
//	postID := srv.SeedPost("alice@example.com", "все грустно")
//
//	client, _ := grustnogram.NewClient(grustnogram.Config{BaseURL: srv.URL()})
//	_, _ = client.Login(ctx, "alice@example.com", "secret")
//	_ = client.LikePost(ctx, postID)
//
// The registration flow works end to end: no call is placed, and the code
// it would have dictated is available via ActivationCode. The same
// handler also powers the standalone development server binary, which
// logs each code instead.
package grustnotest
