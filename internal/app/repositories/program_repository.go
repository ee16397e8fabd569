package repositories

import (
	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
)

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	entityTable[models.Program]
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(database *db.Database) *ProgramRepository {
	return &ProgramRepository{entityTable[models.Program]{
		db:      database,
		table:   "programs",
		columns: []string{"name", "type", "department_id"},
		values: func(p *models.Program) []any {
			return []any{p.Name, p.Type, p.DepartmentID}
		},
		scan: func(row scanner) (*models.Program, error) {
			var p models.Program
			if err := scanRecord(row, &p.Base, &p.Name, &p.Type, &p.DepartmentID); err != nil {
				return nil, err
			}
			return &p, nil
		},
		activeFilter: notArchived,
	}}
}
