// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectAllShapesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectAllShapesQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from shapes")
	require.Contains(t, q, "order by created_at")

	// columns presence (subset / key columns)
	for _, col := range []string{"id", "shape_type", "base_lat", "base_lng", "updated_at", "deleted_at", "color"} {
		require.Contains(t, q, col)
	}
}

func Test_buildSelectShapeQuery(t *testing.T) {
	query, args, err := buildSelectShapeQuery("abc")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "abc", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "where")
	require.Contains(t, q, "id = ?")
}

func Test_buildUpsertShapeQuery(t *testing.T) {
	row, err := newShapeRow(validShape("s1"))
	require.NoError(t, err)

	query, args, err := buildUpsertShapeQuery(row)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into shapes"))
	assert.Contains(t, q, "on conflict(id) do update set")
	assert.Contains(t, q, "updated_at = excluded.updated_at")
	assert.NotContains(t, q, "created_at = excluded.created_at",
		"created_at is immutable and must not be overwritten on upsert")

	require.Len(t, args, len(shapeColumns))
	assert.Equal(t, "s1", args[0])
}

func Test_buildDeleteExpiredShapesQuery(t *testing.T) {
	now := time.Now().UTC()
	query, args, err := buildDeleteExpiredShapesQuery(now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from shapes")
	assert.Contains(t, q, "flight_end_date is not null")
	assert.Contains(t, q, "flight_end_date < ?")

	require.Len(t, args, 1)
	assert.Equal(t, now, args[0])
}

func Test_buildSettingQueries(t *testing.T) {
	query, args, err := buildSelectSettingQuery("default_color")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "from settings")
	require.Len(t, args, 1)

	now := time.Now().UTC()
	query, args, err = buildUpsertSettingQuery("default_color", "#ff0000", now)
	require.NoError(t, err)
	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into settings")
	assert.Contains(t, q, "on conflict(key) do update set")
	require.Len(t, args, 3)
	assert.Equal(t, "#ff0000", args[1])
}
