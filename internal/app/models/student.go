package models

// Student status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Student represents an enrolled student
type Student struct {
	Base
	FirstName       string `json:"first_name" db:"first_name" validate:"required"`
	LastName        string `json:"last_name" db:"last_name" validate:"required"`
	Email           string `json:"email" db:"email" validate:"required,email"`
	Address         string `json:"address" db:"address"`
	City            string `json:"city" db:"city"`
	Province        string `json:"province" db:"province"`
	Country         string `json:"country" db:"country"`
	AddressType     string `json:"address_type" db:"address_type"`
	Status          string `json:"status" db:"status" validate:"oneof=active inactive"`
	Coop            bool   `json:"coop" db:"coop"`
	IsInternational bool   `json:"is_international" db:"is_international"`
	ProgramID       *int64 `json:"program_id" db:"program_id" validate:"omitempty,gt=0"`
}

// DefaultStudent returns a student with the optional fields defaulted
func DefaultStudent() Student {
	return Student{
		AddressType: "local",
		Status:      StatusActive,
	}
}
