package models

// Department represents an academic department
type Department struct {
	Base
	Name string `json:"name" db:"name" validate:"required"`
}
