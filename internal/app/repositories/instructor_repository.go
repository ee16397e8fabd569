package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository struct {
	entityTable[models.Instructor]
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(database *db.Database) *InstructorRepository {
	return &InstructorRepository{entityTable[models.Instructor]{
		db:    database,
		table: "instructors",
		columns: []string{
			"first_name", "last_name", "email", "address", "province",
			"employment", "status", "department_id",
		},
		values: func(i *models.Instructor) []any {
			return []any{
				i.FirstName, i.LastName, i.Email, i.Address, i.Province,
				i.Employment, i.Status, i.DepartmentID,
			}
		},
		scan: func(row scanner) (*models.Instructor, error) {
			var i models.Instructor
			err := scanRecord(row, &i.Base,
				&i.FirstName, &i.LastName, &i.Email, &i.Address, &i.Province,
				&i.Employment, &i.Status, &i.DepartmentID)
			if err != nil {
				return nil, err
			}
			return &i, nil
		},
		activeFilter: squirrel.And{notArchived, squirrel.Eq{"status": models.StatusActive}},
	}}
}
