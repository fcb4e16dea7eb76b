// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/mouza-form/db"
)

type dbHandle struct {
	conn    *sql.DB
	dialect db.Dialect
}

func openMemory(t *testing.T) (*dbHandle, context.Context) {
	t.Helper()
	ctx := context.Background()
	url := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, dialect, err := db.Open(ctx, db.TypeSQLite, url, 0)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &dbHandle{conn: conn, dialect: dialect}, ctx
}

func TestCreateSchema_Idempotent(t *testing.T) {
	h, ctx := openMemory(t)

	require.NoError(t, db.CreateSchema(ctx, h.conn, h.dialect))
	require.NoError(t, db.CreateSchema(ctx, h.conn, h.dialect))

	for _, table := range []string{"form_data", "mouza_info"} {
		var name string
		err := h.conn.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestCreateSchema_UnknownDialect(t *testing.T) {
	h, ctx := openMemory(t)

	err := db.CreateSchema(ctx, h.conn, db.Dialect("oracle"))
	assert.Error(t, err)
}

func TestForeignKeysEnforced(t *testing.T) {
	h, ctx := openMemory(t)
	require.NoError(t, db.CreateSchema(ctx, h.conn, h.dialect))

	_, err := h.conn.ExecContext(ctx,
		`INSERT INTO mouza_info (form_data_id, "mouzaName", "surveyType", "sheetNumber") VALUES ($1, $2, $3, $4)`,
		4242, "Orphan", "RS", "1")
	assert.Error(t, err, "insert referencing a missing form_data row must fail")
}

func TestCascadeOnParentDelete(t *testing.T) {
	h, ctx := openMemory(t)
	require.NoError(t, db.CreateSchema(ctx, h.conn, h.dialect))

	var id int64
	err := h.conn.QueryRowContext(ctx,
		`INSERT INTO form_data (division, district, upazila, "union") VALUES ($1, $2, $3, $4) RETURNING id`,
		"Dhaka", "Dhaka", "Savar", "Ashulia").Scan(&id)
	require.NoError(t, err)

	_, err = h.conn.ExecContext(ctx,
		`INSERT INTO mouza_info (form_data_id, "mouzaName", "surveyType", "sheetNumber") VALUES ($1, $2, $3, $4)`,
		id, "Jamgora", "RS", "12")
	require.NoError(t, err)

	_, err = h.conn.ExecContext(ctx, "DELETE FROM form_data WHERE id = $1", id)
	require.NoError(t, err)

	var count int
	require.NoError(t, h.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM mouza_info").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, _, err := db.Open(context.Background(), "oracle", "whatever", 0)
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestSupported(t *testing.T) {
	assert.True(t, db.Supported(db.TypeSQLite))
	assert.True(t, db.Supported(db.TypePostgres))
	assert.True(t, db.Supported(db.TypePgx))
	assert.False(t, db.Supported("oracle"))
	assert.False(t, db.Supported(""))
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"file:database.db", "file:database.db?_pragma=foreign_keys(1)"},
		{"file:x?mode=memory", "file:x?mode=memory&_pragma=foreign_keys(1)"},
		{"file:x?_pragma=foreign_keys(0)", "file:x?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, db.SQLiteDSN(tt.in))
		})
	}
}
