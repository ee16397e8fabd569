package repositories

import (
	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
	"github.com/registrar/academics/internal/pkg/helpers"
)

// CourseScheduleRepository handles database operations for course schedules
type CourseScheduleRepository struct {
	entityTable[models.CourseSchedule]
}

// NewCourseScheduleRepository creates a new course schedule repository
func NewCourseScheduleRepository(database *db.Database) *CourseScheduleRepository {
	return &CourseScheduleRepository{entityTable[models.CourseSchedule]{
		db:      database,
		table:   "course_schedules",
		columns: []string{"course_id", "day", "time", "room"},
		values: func(s *models.CourseSchedule) []any {
			return []any{s.CourseID, s.Day, s.Time, helpers.NullString(s.Room)}
		},
		scan: func(row scanner) (*models.CourseSchedule, error) {
			var s models.CourseSchedule
			if err := scanRecord(row, &s.Base, &s.CourseID, &s.Day, &s.Time, &s.Room); err != nil {
				return nil, err
			}
			return &s, nil
		},
		activeFilter: notArchived,
	}}
}
