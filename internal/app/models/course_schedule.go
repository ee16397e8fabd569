package models

// CourseSchedule is a weekly meeting slot of a course
type CourseSchedule struct {
	Base
	CourseID int64   `json:"course_id" db:"course_id" validate:"required,gt=0"`
	Day      string  `json:"day" db:"day" validate:"required"`
	Time     string  `json:"time" db:"time" validate:"required"`
	Room     *string `json:"room" db:"room"`
}
