package repositories

import (
	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	entityTable[models.Course]
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *db.Database) *CourseRepository {
	return &CourseRepository{entityTable[models.Course]{
		db:      database,
		table:   "courses",
		columns: []string{"title", "code", "term_id", "department_id"},
		values: func(c *models.Course) []any {
			return []any{c.Title, c.Code, c.TermID, c.DepartmentID}
		},
		scan: func(row scanner) (*models.Course, error) {
			var c models.Course
			if err := scanRecord(row, &c.Base, &c.Title, &c.Code, &c.TermID, &c.DepartmentID); err != nil {
				return nil, err
			}
			return &c, nil
		},
		activeFilter: notArchived,
	}}
}
