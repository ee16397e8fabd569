// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/registrar/academics/internal/app/migrations"
	"github.com/registrar/academics/internal/db"
)

// NewDatabase returns a migrated SQLite database under t.TempDir()
func NewDatabase(t *testing.T) *db.Database {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "academics.db"))
	require.NoError(t, err)
	t.Cleanup(database.Close)

	_, err = migrations.NewMigrator(database, zerolog.Nop()).Up(context.Background())
	require.NoError(t, err)
	return database
}
