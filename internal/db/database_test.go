package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrar/academics/internal/config"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(database.Close)

	_, err = database.DB.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return database
}

func countItems(t *testing.T, database *Database) int {
	t.Helper()
	var n int
	require.NoError(t, database.DB.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestInsertReturningID(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	first, err := database.InsertReturningID(ctx, database.Builder().Insert("items").Columns("name").Values("a"))
	require.NoError(t, err)
	second, err := database.InsertReturningID(ctx, database.Builder().Insert("items").Columns("name").Values("b"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	affected, err := database.ExecAffected(ctx, database.Builder().Update("items").Set("name", "c").Where("id = ?", first))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	database := openTestDB(t)
	boom := errors.New("boom")

	err := database.WithTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := database.InsertReturningID(ctx, database.Builder().Insert("items").Columns("name").Values("a")); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countItems(t, database))
}

func TestWithTransaction_Commits(t *testing.T) {
	database := openTestDB(t)

	err := database.WithTransaction(context.Background(), func(ctx context.Context) error {
		// nested call joins the outer transaction
		return database.WithTransaction(ctx, func(ctx context.Context) error {
			_, err := database.InsertReturningID(ctx, database.Builder().Insert("items").Columns("name").Values("a"))
			return err
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, database))
}

func TestTimeScan(t *testing.T) {
	var got time.Time
	s := Time{Dest: &got}

	require.NoError(t, s.Scan("2024-03-01 10:20:30"))
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), got)

	require.NoError(t, s.Scan([]byte("2024-03-01T10:20:30Z")))
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), got)

	assert.Error(t, s.Scan("yesterday"))
	assert.Error(t, s.Scan(42))
}

func TestDateScan(t *testing.T) {
	var got *string
	s := Date{Dest: &got}

	require.NoError(t, s.Scan(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, got)
	assert.Equal(t, "2024-09-01", *got)

	require.NoError(t, s.Scan("2025-01-15T00:00:00Z"))
	assert.Equal(t, "2025-01-15", *got)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, got)
}

func TestInsertQuery_Dialects(t *testing.T) {
	tests := []struct {
		name     string
		database *Database
		want     string
	}{
		{
			name: "postgres",
			database: &Database{
				dialect: config.DriverPostgres,
				sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
			},
			want: "INSERT INTO items (name,code) VALUES ($1,$2) RETURNING id",
		},
		{
			name: "sqlite",
			database: &Database{
				dialect: config.DriverSQLite,
				sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
			},
			want: "INSERT INTO items (name,code) VALUES (?,?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.database.insertQuery(
				tt.database.Builder().Insert("items").Columns("name", "code").Values("Physics", "PHY"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"Physics", "PHY"}, args)
		})
	}
}
