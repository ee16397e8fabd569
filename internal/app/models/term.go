package models

// DateLayout is the wire and storage format of term dates
const DateLayout = "2006-01-02"

// Term represents an academic term
type Term struct {
	Base
	Name      string  `json:"name" db:"name" validate:"required"`
	StartDate *string `json:"start_date" db:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" db:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
