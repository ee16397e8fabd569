package models

// Instructor represents a teaching staff member
type Instructor struct {
	Base
	FirstName    string `json:"first_name" db:"first_name" validate:"required"`
	LastName     string `json:"last_name" db:"last_name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	Address      string `json:"address" db:"address"`
	Province     string `json:"province" db:"province"`
	Employment   string `json:"employment" db:"employment"`
	Status       string `json:"status" db:"status" validate:"oneof=active inactive"`
	DepartmentID *int64 `json:"department_id" db:"department_id" validate:"omitempty,gt=0"`
}

// DefaultInstructor returns an instructor with the optional fields defaulted
func DefaultInstructor() Instructor {
	return Instructor{
		Employment: "full-time",
		Status:     StatusActive,
	}
}
