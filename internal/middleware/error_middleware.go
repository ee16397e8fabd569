package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registrar/academics/internal/app/bulk"
	"github.com/registrar/academics/internal/app/models/dto"
	"github.com/registrar/academics/internal/pkg/apperrors"
	"github.com/registrar/academics/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var failure *bulk.Failure

	switch {
	case errors.As(err, &failure):
		// nothing to archive is reported apart from invalid input
		status, code := http.StatusBadRequest, dto.ErrorCodeValidationFailed
		if failure.Op == bulk.OpArchive {
			status, code = http.StatusUnprocessableEntity, dto.ErrorCodeUnprocessable
		}
		detail := dto.NewErrorDetail(code, failure.Message)
		if len(failure.Errors) > 0 {
			detail = detail.WithDetails(failure.Errors)
		}
		abortWithError(c, status, detail)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWithError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, apperrors.Message(err, "Bad request")))
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err, "Validation failed"))
		if details := apperrors.Details(err); len(details) > 0 {
			detail = detail.WithDetails(details)
			if len(details) == 1 {
				for field := range details {
					detail = detail.WithField(field)
				}
			}
		}
		abortWithError(c, http.StatusBadRequest, detail)
	case errors.Is(err, apperrors.ErrPayloadTooLarge):
		abortWithError(c, http.StatusRequestEntityTooLarge,
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, apperrors.Message(err, "Request body too large")))
	case errors.Is(err, apperrors.ErrIntegrity):
		abortWithError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeConflict, apperrors.ErrIntegrity.Error()))
	case errors.Is(err, apperrors.ErrDatabase):
		logError(c, err, "Database error")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error").WithSeverity(dto.ErrorSeverityCritical))
	default:
		logError(c, err, "Unhandled error")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical))
	}
}

func logError(c *gin.Context, err error, msg string) {
	logger.Error().Err(err).
		Str("request_id", c.GetString(RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg(msg)
}

// abortWithError writes the error body; client errors are downgraded to warnings
func abortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	if status < http.StatusInternalServerError && detail.Severity == dto.ErrorSeverityError {
		detail = detail.WithSeverity(dto.ErrorSeverityWarning)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// Recovery turns a panic into the standard 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").WithSeverity(dto.ErrorSeverityCritical))
	})
}

// NoRoute answers unknown paths with the standard error body
func NoRoute(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found"))
}
