package models

// Course represents a course offered in a term
type Course struct {
	Base
	Title        string `json:"title" db:"title" validate:"required"`
	Code         string `json:"code" db:"code" validate:"required"`
	TermID       *int64 `json:"term_id" db:"term_id" validate:"omitempty,gt=0"`
	DepartmentID *int64 `json:"department_id" db:"department_id" validate:"omitempty,gt=0"`
}
