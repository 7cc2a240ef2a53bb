// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grustnolabs/go-grustnogram/models"
)

func Test_buildInsertSessionQuery(t *testing.T) {
	now := time.Now()
	sess := models.Session{
		Email:       "alice@example.com",
		Nickname:    "sadalice",
		AccessToken: "tok-abc",
		CreatedAt:   now,
	}

	query, args, err := buildInsertSessionQuery(sess)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into sessions")
	require.Contains(t, q, "email")
	require.Contains(t, q, "nickname")
	require.Contains(t, q, "access_token")
	require.Contains(t, q, "created_at")

	// session_id is assigned by SQLite, never inserted
	assert.NotContains(t, q, "session_id")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")

	require.Len(t, args, 4)
	assert.Equal(t, "alice@example.com", args[0])
	assert.Equal(t, "sadalice", args[1])
	assert.Equal(t, "tok-abc", args[2])
	assert.Equal(t, now, args[3])
}

func Test_buildSelectSessionQuery(t *testing.T) {
	query, args, err := buildSelectSessionQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from sessions")
	require.Contains(t, q, "order by session_id desc")
	require.Contains(t, q, "limit 1")

	// columns presence, in scan order
	for _, c := range sessionColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildDeleteSessionsQuery(t *testing.T) {
	query, args, err := buildDeleteSessionsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from sessions")

	// no WHERE: the whole table goes
	assert.NotContains(t, q, "where")
}
