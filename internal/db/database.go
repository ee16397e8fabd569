package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/registrar/academics/internal/config"
	"github.com/registrar/academics/internal/pkg/helpers"
	"github.com/registrar/academics/internal/pkg/logger"
)

// Querier is satisfied by both *sql.DB and *sql.Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Database is the data-access handle shared by repositories, migrations and seed
type Database struct {
	DB      *sql.DB
	dialect string
	pool    *pgxpool.Pool
	sb      squirrel.StatementBuilderType
}

type txKey struct{}

// New opens the database selected by cfg.Database.Driver
func New(ctx context.Context, cfg *config.Config) (*Database, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return newPostgres(ctx, cfg)
	case config.DriverSQLite:
		return OpenSQLite(cfg.Database.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func newPostgres(ctx context.Context, cfg *config.Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)

	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &Database{
		DB:      stdlib.OpenDBFromPool(pool),
		dialect: config.DriverPostgres,
		pool:    pool,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// OpenSQLite opens (creating if needed) a SQLite database file with foreign keys enforced
func OpenSQLite(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &Database{
		DB:      sqlDB,
		dialect: config.DriverSQLite,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Dialect returns the driver name the database was opened with
func (d *Database) Dialect() string {
	return d.dialect
}

// Builder returns a statement builder using the dialect's placeholder format
func (d *Database) Builder() squirrel.StatementBuilderType {
	return d.sb
}

// Conn returns the transaction bound to ctx, or the database itself
func (d *Database) Conn(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return d.DB
}

// insertQuery builds an insert; postgres reports the new id through RETURNING
func (d *Database) insertQuery(q squirrel.InsertBuilder) (string, []any, error) {
	if d.dialect == config.DriverPostgres {
		q = q.Suffix("RETURNING id")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build insert query: %w", err)
	}
	return query, args, nil
}

// InsertReturningID executes an insert and returns the generated id
func (d *Database) InsertReturningID(ctx context.Context, q squirrel.InsertBuilder) (int64, error) {
	query, args, err := d.insertQuery(q)
	if err != nil {
		return 0, err
	}

	if d.dialect == config.DriverPostgres {
		var id int64
		if err := d.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := d.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ExecAffected executes a statement and returns the number of affected rows
func (d *Database) ExecAffected(ctx context.Context, q squirrel.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	res, err := d.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Ping checks that the database is reachable
func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Close releases the connection pool
func (d *Database) Close() {
	if d.DB != nil {
		_ = d.DB.Close()
	}
	if d.pool != nil {
		d.pool.Close()
	}
}

// WithTransaction runs fn with a transaction bound to its context.
// Nested calls join the outer transaction.
func (d *Database) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
