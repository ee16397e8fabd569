package helpers

import "database/sql"

// NullString converts an optional string to sql.NullString.
// Both nil and the empty string are stored as NULL.
func NullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
