// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

// Package grustnogram provides quick and easy access to the Grustnogram
// API at https://api.grustnogram.ru.
//
// A [Client] holds one session at a time. Open it with [Client.Login] for
// an existing account or [Client.Register] for a new one; both store the
// issued access token on the client, and every authenticated call attaches
// it verbatim in the access-token header. Tokens are opaque strings: the
// client never parses or refreshes them.
//
//	client, err := grustnogram.NewClient(grustnogram.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := client.Login(ctx, "sad@example.com", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := client.LikePost(ctx, 42); err != nil {
//	    log.Fatal(err)
//	}
//
// Registration is a three-step flow behind a single call: the account is
// created, the service places a verification call to the given phone
// number, and the [CodeFunc] supplied by the caller must return the digits
// that call dictates.
//
// # Errors
//
// The API reports failures inside its response envelope, not through HTTP
// status codes. Every operation surfaces envelope failures as an
// [*APIError] that unwraps to one of the package sentinels, so callers can
// branch with the errors package:
//
//	_, err := client.Login(ctx, login, password)
//	if errors.Is(err, grustnogram.ErrBadCredentials) {
//	    // wrong password
//	}
//
// Transport failures (DNS, TLS, timeouts, malformed responses) are
// returned as ordinary wrapped errors and never as [*APIError], keeping
// the two failure channels distinguishable with [errors.As].
//
// # Wire quirks
//
// The production API has rough edges the client reproduces on purpose:
// request bodies are JSON while the content-type header says
// application/x-www-form-urlencoded, the comment listing endpoint reads
// its page window from the body of a GET request, and comment deletion is
// routed under /posts/comment/{id}. Changing any of these would break
// against the live service.
package grustnogram
