package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
	"github.com/registrar/academics/internal/pkg/apperrors"
	"github.com/registrar/academics/internal/pkg/dberrors"
	"github.com/registrar/academics/internal/pkg/logger"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = apperrors.ErrResourceNotFound

// notArchived restricts statements to active rows
var notArchived = squirrel.Eq{"is_archived": false}

type scanner interface {
	Scan(dest ...any) error
}

// entityTable implements the six statements every entity repository exposes.
// columns lists the writable columns in the order values returns them and scan reads them.
type entityTable[T any] struct {
	db           *db.Database
	table        string
	columns      []string
	values       func(*T) []any
	scan         func(scanner) (*T, error)
	activeFilter squirrel.Sqlizer
}

func (t *entityTable[T]) selectColumns() []string {
	cols := make([]string, 0, len(t.columns)+4)
	cols = append(cols, "id")
	cols = append(cols, t.columns...)
	return append(cols, "created_at", "updated_at", "is_archived")
}

// scanRecord reads a row laid out by selectColumns
func scanRecord(row scanner, base *models.Base, fields ...any) error {
	dest := make([]any, 0, len(fields)+4)
	dest = append(dest, &base.ID)
	dest = append(dest, fields...)
	dest = append(dest, db.Time{Dest: &base.CreatedAt}, db.Time{Dest: &base.UpdatedAt}, &base.IsArchived)
	return row.Scan(dest...)
}

func (t *entityTable[T]) query(ctx context.Context, q squirrel.SelectBuilder) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", t.table, err)
	}

	rows, err := t.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", t.table).Msg("Error executing select query")
		return nil, dberrors.Classify(err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := t.scan(rows)
		if err != nil {
			return nil, dberrors.Classify(err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, dberrors.Classify(err)
	}
	return records, nil
}

// GetAll returns every row, or only the active ones when activeOnly is set
func (t *entityTable[T]) GetAll(ctx context.Context, activeOnly bool) ([]T, error) {
	q := t.db.Builder().Select(t.selectColumns()...).From(t.table).OrderBy("id")
	if activeOnly {
		q = q.Where(t.activeFilter)
	}
	return t.query(ctx, q)
}

// GetByID returns a single row, archived or not
func (t *entityTable[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query, args, err := t.db.Builder().
		Select(t.selectColumns()...).
		From(t.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", t.table, err)
	}

	record, err := t.scan(t.db.Conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, dberrors.Classify(err)
	}
	return record, nil
}

// GetByIDs returns the rows with the given ids ordered by id
func (t *entityTable[T]) GetByIDs(ctx context.Context, ids []int64) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return t.query(ctx, t.db.Builder().
		Select(t.selectColumns()...).
		From(t.table).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id"))
}

// Insert stores a new row and returns its id
func (t *entityTable[T]) Insert(ctx context.Context, record *T) (int64, error) {
	id, err := t.db.InsertReturningID(ctx, t.db.Builder().
		Insert(t.table).
		Columns(t.columns...).
		Values(t.values(record)...))
	if err != nil {
		return 0, dberrors.Classify(err)
	}
	return id, nil
}

// Update rewrites an active row and returns the number of rows changed
func (t *entityTable[T]) Update(ctx context.Context, id int64, record *T) (int64, error) {
	values := t.values(record)
	q := t.db.Builder().Update(t.table)
	for i, col := range t.columns {
		q = q.Set(col, values[i])
	}
	q = q.Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		Where(notArchived)

	affected, err := t.db.ExecAffected(ctx, q)
	if err != nil {
		return 0, dberrors.Classify(err)
	}
	return affected, nil
}

// Archive soft-deletes an active row and returns the number of rows changed
func (t *entityTable[T]) Archive(ctx context.Context, id int64) (int64, error) {
	affected, err := t.db.ExecAffected(ctx, t.db.Builder().
		Update(t.table).
		Set("is_archived", true).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		Where(notArchived))
	if err != nil {
		return 0, dberrors.Classify(err)
	}
	return affected, nil
}
