package bulk

import (
	"fmt"
	"strings"

	"github.com/registrar/academics/internal/pkg/validation"
)

// Kind classifies why a single item failed
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindIntegrity  Kind = "integrity"
	KindDatabase   Kind = "database"
)

// Op names a bulk operation
type Op string

const (
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpArchive Op = "archive"
)

// pastTense returns "created", "updated" or "archived"
func (o Op) pastTense() string {
	return string(o) + "d"
}

// FieldError is a field-level validation message
type FieldError = validation.FieldError

// ItemError describes the failure of one item in a batch
type ItemError struct {
	Index   int          `json:"index"`
	ID      *int64       `json:"id,omitempty"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// Failure is returned when no item of a batch succeeded
type Failure struct {
	Op      Op
	Message string
	Errors  []ItemError
}

func (f *Failure) Error() string {
	return f.Message
}

// Noun names the entity in user-facing messages
type Noun struct {
	Singular string
	Plural   string
}

// Title returns the singular noun with an upper-case first letter
func (n Noun) Title() string {
	if n.Singular == "" {
		return n.Singular
	}
	return strings.ToUpper(n.Singular[:1]) + n.Singular[1:]
}

func (n Noun) missingID() string {
	return fmt.Sprintf("Missing %s ID for update.", n.Singular)
}

func (n Noun) noneSucceeded(op Op) string {
	return fmt.Sprintf("No %s were %s.", n.Plural, op.pastTense())
}
