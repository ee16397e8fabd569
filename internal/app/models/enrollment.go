package models

// Enrollment links a student to a course
type Enrollment struct {
	Base
	StudentID int64   `json:"student_id" db:"student_id" validate:"required,gt=0"`
	CourseID  int64   `json:"course_id" db:"course_id" validate:"required,gt=0"`
	Grade     *string `json:"grade" db:"grade"`
}

// Assignment records that an instructor teaches a course
type Assignment struct {
	Base
	InstructorID int64 `json:"instructor_id" db:"instructor_id" validate:"required,gt=0"`
	CourseID     int64 `json:"course_id" db:"course_id" validate:"required,gt=0"`
}
