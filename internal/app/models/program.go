package models

// Program represents a credential offered by a department
type Program struct {
	Base
	Name         string `json:"name" db:"name" validate:"required"`
	Type         string `json:"type" db:"type"`
	DepartmentID *int64 `json:"department_id" db:"department_id" validate:"omitempty,gt=0"`
}

// DefaultProgram returns a program with the optional fields defaulted
func DefaultProgram() Program {
	return Program{Type: "diploma"}
}
