package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the cross-field rules of the models to v
func RegisterValidations(v *validator.Validate) {
	v.RegisterStructValidation(termDateOrder, Term{})
}

// termDateOrder rejects a term that ends before it starts
func termDateOrder(sl validator.StructLevel) {
	term := sl.Current().Interface().(Term)
	if term.StartDate == nil || term.EndDate == nil {
		return
	}
	start, err := time.Parse(DateLayout, *term.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(DateLayout, *term.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(term.EndDate, "end_date", "EndDate", "date_order", "start_date")
	}
}
