package dberrors

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/registrar/academics/internal/pkg/apperrors"
)

// pgIntegrityClass is the SQLSTATE class for integrity constraint violations
const pgIntegrityClass = "23"

// Classify wraps a driver error with the application sentinel it corresponds to.
// The driver error stays in the chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrIntegrity) || errors.Is(err, apperrors.ErrDatabase) ||
		errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, err)
	}
	if IsIntegrityViolation(err) {
		return fmt.Errorf("%w: %w", apperrors.ErrIntegrity, err)
	}
	return fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
}

// IsIntegrityViolation reports whether err is a constraint violation from either supported driver
func IsIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgIntegrityClass)
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
