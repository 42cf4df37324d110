// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// shapeColumns is the canonical column order shared by every SELECT and
// the row scan helpers.
var shapeColumns = []string{
	"id",
	"title",
	"memo",
	"address",
	"shape_type",
	"base_lat",
	"base_lng",
	"radius",
	"second_lat",
	"second_lng",
	"polygon_coordinates",
	"polyline_coordinates",
	"color",
	"created_at",
	"updated_at",
	"flight_start_date",
	"flight_end_date",
	"deleted_at",
}

// upsertConflictClause makes every insert an id-keyed upsert so that
// SaveAll and reconciliation merges never fail on an existing row.
const upsertConflictClause = `ON CONFLICT(id) DO UPDATE SET
	title = excluded.title,
	memo = excluded.memo,
	address = excluded.address,
	shape_type = excluded.shape_type,
	base_lat = excluded.base_lat,
	base_lng = excluded.base_lng,
	radius = excluded.radius,
	second_lat = excluded.second_lat,
	second_lng = excluded.second_lng,
	polygon_coordinates = excluded.polygon_coordinates,
	polyline_coordinates = excluded.polyline_coordinates,
	color = excluded.color,
	updated_at = excluded.updated_at,
	flight_start_date = excluded.flight_start_date,
	flight_end_date = excluded.flight_end_date,
	deleted_at = excluded.deleted_at`

func buildSelectAllShapesQuery() (string, []any, error) {
	query, args, err := sq.Select(shapeColumns...).
		From("shapes").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select all shapes: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectShapeQuery(id string) (string, []any, error) {
	query, args, err := sq.Select(shapeColumns...).
		From("shapes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select shape: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertShapeQuery(row shapeRow) (string, []any, error) {
	query, args, err := sq.Insert("shapes").
		Columns(shapeColumns...).
		Values(row.values()...).
		Suffix(upsertConflictClause).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert shape: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteShapeQuery(id string) (string, []any, error) {
	query, args, err := sq.Delete("shapes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete shape: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllShapesQuery() (string, []any, error) {
	query, args, err := sq.Delete("shapes").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete all shapes: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteExpiredShapesQuery(now time.Time) (string, []any, error) {
	query, args, err := sq.Delete("shapes").
		Where(sq.NotEq{"flight_end_date": nil}).
		Where(sq.Lt{"flight_end_date": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete expired shapes: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSettingQuery(key string) (string, []any, error) {
	query, args, err := sq.Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select setting: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSettingQuery(key, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix(`ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert setting: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSettingQuery(key string) (string, []any, error) {
	query, args, err := sq.Delete("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete setting: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
