// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"id", "email", "password", "first_name", "last_name", "phone_number",
		"college_id_url", "role", "is_active", "created_at", "updated_at",
	}
	itemColumns = []string{
		"id", "owner_id", "name", "description", "price_per_hour", "price_per_day",
		"category", "location", "is_available", "images", "created_at", "updated_at",
	}

	userColumnList = strings.Join(userColumns, ", ")
	itemColumnList = strings.Join(itemColumns, ", ")
)

var (
	createUser = `INSERT INTO users (email, password, first_name, last_name, phone_number, role)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumnList + `;`

	findActiveUserByEmail = `SELECT ` + userColumnList + `
    FROM users
    WHERE email = $1 AND is_active;`

	findUserByID = `SELECT ` + userColumnList + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumnList + `
    FROM users
    ORDER BY id;`

	getItem = `SELECT ` + itemColumnList + `
    FROM items
    WHERE id = $1;`

	listItems = `SELECT ` + itemColumnList + `
    FROM items
    ORDER BY id;`

	lockItemOwner = `SELECT owner_id
    FROM items
    WHERE id = $1
    FOR UPDATE;`

	deleteItem = `DELETE FROM items WHERE id = $1;`
)

// buildUpdateQuery renders "UPDATE <table> SET <fields>, updated_at = now()
// WHERE id = ? RETURNING <columns>" with Postgres placeholders. Fields are
// written in column-name order.
func buildUpdateQuery(table string, id int64, fields map[string]any, returning string) (string, []any, error) {
	query, args, err := psql.Update(table).
		SetMap(fields).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returning).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertItemQuery renders the INSERT for a new item. images must be
// the JSON encoding of the image list.
func buildInsertItemQuery(values map[string]any) (string, []any, error) {
	query, args, err := psql.Insert("items").
		SetMap(values).
		Suffix("RETURNING " + itemColumnList).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
