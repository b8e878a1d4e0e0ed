package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnconfigured_EveryCallFails(t *testing.T) {
	db := Unconfigured()
	ctx := context.Background()

	_, err := db.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, ErrNotConfigured)

	var n int
	assert.ErrorIs(t, db.QueryRow(ctx, "SELECT 1").Scan(&n), ErrNotConfigured)

	_, err = db.Exec(ctx, "DELETE FROM tours")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = db.Begin(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, db.Ping(ctx), ErrNotConfigured)
	assert.NotPanics(t, db.Close)
}

func TestMigrate_Unconfigured(t *testing.T) {
	err := Migrate(context.Background(), Unconfigured())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS tours")
}
