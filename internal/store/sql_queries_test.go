// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildFindPasswordHashQuery(t *testing.T) {
	query, args, err := buildFindPasswordHashQuery(sqliteBuilder, "admin")
	require.NoError(t, err)

	assert.Equal(t, "SELECT password_hash FROM users WHERE username = ?", query)
	assert.Equal(t, []any{"admin"}, args)

	query, _, err = buildFindPasswordHashQuery(postgresBuilder, "admin")
	require.NoError(t, err)
	assert.Contains(t, query, "username = $1")
}

func Test_buildSeedUserQuery(t *testing.T) {
	query, args, err := buildSeedUserQuery(postgresBuilder, "admin", "hash")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into users"))
	assert.Contains(t, query, "VALUES ($1,$2)")
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (username) DO NOTHING"))
	assert.Equal(t, []any{"admin", "hash"}, args)
}

func Test_buildListUsernamesQuery(t *testing.T) {
	query, args, err := buildListUsernamesQuery(sqliteBuilder)
	require.NoError(t, err)

	assert.Equal(t, "SELECT username FROM users ORDER BY username", query)
	assert.Empty(t, args)
}
