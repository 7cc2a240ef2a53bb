// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package session

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/grustnolabs/go-grustnogram/models"
)

// sessionColumns is the scan order used by Load. It must match the
// migration that creates the table.
var sessionColumns = []string{"session_id", "email", "nickname", "access_token", "created_at"}

// buildInsertSessionQuery builds the INSERT for a new session row.
// SQLite assigns session_id.
func buildInsertSessionQuery(sess models.Session) (string, []any, error) {
	return sq.Insert(sess.TableName()).
		Columns("email", "nickname", "access_token", "created_at").
		Values(sess.Email, sess.Nickname, sess.AccessToken, sess.CreatedAt).
		ToSql()
}

// buildSelectSessionQuery builds the SELECT for the current session. The
// table holds at most one row in practice; ordering by session_id keeps
// Load deterministic if a crash ever leaves more.
func buildSelectSessionQuery() (string, []any, error) {
	return sq.Select(sessionColumns...).
		From(models.Session{}.TableName()).
		OrderBy("session_id DESC").
		Limit(1).
		ToSql()
}

// buildDeleteSessionsQuery builds the DELETE that empties the table.
func buildDeleteSessionsQuery() (string, []any, error) {
	return sq.Delete(models.Session{}.TableName()).ToSql()
}
