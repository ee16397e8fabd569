package repositories

import (
	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
	"github.com/registrar/academics/internal/pkg/helpers"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	entityTable[models.Enrollment]
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database *db.Database) *EnrollmentRepository {
	return &EnrollmentRepository{entityTable[models.Enrollment]{
		db:      database,
		table:   "enrollments",
		columns: []string{"student_id", "course_id", "grade"},
		values: func(e *models.Enrollment) []any {
			return []any{e.StudentID, e.CourseID, helpers.NullString(e.Grade)}
		},
		scan: func(row scanner) (*models.Enrollment, error) {
			var e models.Enrollment
			if err := scanRecord(row, &e.Base, &e.StudentID, &e.CourseID, &e.Grade); err != nil {
				return nil, err
			}
			return &e, nil
		},
		activeFilter: notArchived,
	}}
}

// AssignmentRepository handles database operations for instructor assignments
type AssignmentRepository struct {
	entityTable[models.Assignment]
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(database *db.Database) *AssignmentRepository {
	return &AssignmentRepository{entityTable[models.Assignment]{
		db:      database,
		table:   "assignments",
		columns: []string{"instructor_id", "course_id"},
		values: func(a *models.Assignment) []any {
			return []any{a.InstructorID, a.CourseID}
		},
		scan: func(row scanner) (*models.Assignment, error) {
			var a models.Assignment
			if err := scanRecord(row, &a.Base, &a.InstructorID, &a.CourseID); err != nil {
				return nil, err
			}
			return &a, nil
		},
		activeFilter: notArchived,
	}}
}
