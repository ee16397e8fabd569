package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrar/academics/internal/db"
)

func TestUp_AppliesOnce(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "academics.db"))
	require.NoError(t, err)
	t.Cleanup(database.Close)

	m := NewMigrator(database, zerolog.Nop())
	ctx := context.Background()

	applied, err := m.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	applied, err = m.Up(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	for _, table := range []string{
		"students", "instructors", "departments", "programs", "courses",
		"terms", "enrollments", "assignments", "course_schedules",
	} {
		var n int
		err := database.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
		assert.NoError(t, err, table)
	}
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id INT);\n\n  CREATE INDEX i ON a(id);\n")
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX i ON a(id)"}, stmts)
}
