package repositories

import (
	"context"

	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
	"github.com/registrar/academics/internal/pkg/dberrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	entityTable[models.Department]
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(database *db.Database) *DepartmentRepository {
	return &DepartmentRepository{entityTable[models.Department]{
		db:      database,
		table:   "departments",
		columns: []string{"name"},
		values: func(d *models.Department) []any {
			return []any{d.Name}
		},
		scan: func(row scanner) (*models.Department, error) {
			var d models.Department
			if err := scanRecord(row, &d.Base, &d.Name); err != nil {
				return nil, err
			}
			return &d, nil
		},
		activeFilter: notArchived,
	}}
}

// Count returns the number of departments, archived ones included
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.db.Builder().Select("COUNT(*)").From(r.table).ToSql()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := r.db.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, dberrors.Classify(err)
	}
	return count, nil
}
