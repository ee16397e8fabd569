package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	entityTable[models.Student]
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.Database) *StudentRepository {
	return &StudentRepository{entityTable[models.Student]{
		db:    database,
		table: "students",
		columns: []string{
			"first_name", "last_name", "email", "address", "city", "province", "country",
			"address_type", "status", "coop", "is_international", "program_id",
		},
		values: func(s *models.Student) []any {
			return []any{
				s.FirstName, s.LastName, s.Email, s.Address, s.City, s.Province, s.Country,
				s.AddressType, s.Status, s.Coop, s.IsInternational, s.ProgramID,
			}
		},
		scan: func(row scanner) (*models.Student, error) {
			var s models.Student
			err := scanRecord(row, &s.Base,
				&s.FirstName, &s.LastName, &s.Email, &s.Address, &s.City, &s.Province, &s.Country,
				&s.AddressType, &s.Status, &s.Coop, &s.IsInternational, &s.ProgramID)
			if err != nil {
				return nil, err
			}
			return &s, nil
		},
		activeFilter: squirrel.And{notArchived, squirrel.Eq{"status": models.StatusActive}},
	}}
}
