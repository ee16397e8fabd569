package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/registrar/academics/internal/db"
)

//go:embed sql
var migrationFiles embed.FS

// Migrator applies the embedded schema files for the database dialect
type Migrator struct {
	db     *db.Database
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.Database, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     database,
		logger: logger,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	if _, err := m.db.DB.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := m.db.Builder().
		Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration status query: %w", err)
	}

	var count int
	if err := m.db.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// recordMigration marks a migration as applied; ctx carries the migration's transaction
func (m *Migrator) recordMigration(ctx context.Context, version string) error {
	_, err := m.db.ExecAffected(ctx, m.db.Builder().
		Insert("schema_migrations").
		Columns("version").
		Values(version))
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// files lists the migration files for the current dialect in order
func (m *Migrator) files() ([]string, error) {
	dir := path.Join("sql", m.db.Dialect())
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, path.Join(dir, entry.Name()))
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

// Up applies every pending migration and returns how many were applied
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return 0, err
	}

	files, err := m.files()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, file := range files {
		ok, err := m.migrateFile(ctx, file)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
		}
	}
	return applied, nil
}

// migrateFile applies a single file inside its own transaction
func (m *Migrator) migrateFile(ctx context.Context, file string) (bool, error) {
	// "001_init.sql" => "001"
	filename := path.Base(file)
	version := strings.Split(filename, "_")[0]

	done, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return false, err
	}
	if done {
		m.logger.Debug().Str("file", filename).Msg("Migration already applied, skipping")
		return false, nil
	}

	content, err := migrationFiles.ReadFile(file)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file: %w", err)
	}

	err = m.db.WithTransaction(ctx, func(ctx context.Context) error {
		for _, stmt := range splitStatements(string(content)) {
			if _, err := m.db.Conn(ctx).ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("error occurred during SQL migration execution: %w", err)
			}
		}
		return m.recordMigration(ctx, version)
	})
	if err != nil {
		return false, fmt.Errorf("migration %s: %w", filename, err)
	}

	m.logger.Info().Str("file", filename).Str("dialect", m.db.Dialect()).Msg("Migration file successfully applied")
	return true, nil
}

func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
