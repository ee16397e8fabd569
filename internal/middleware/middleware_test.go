package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrar/academics/internal/app/bulk"
	"github.com/registrar/academics/internal/app/models/dto"
	"github.com/registrar/academics/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generated", incoming: "", reuse: false},
		{name: "reused", incoming: "abc-123", reuse: true},
		{name: "too long", incoming: strings.Repeat("x", maxRequestIDLength+1), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Header().Get(RequestIDHeader)
			assert.Equal(t, id, w.Body.String())
			if tt.reuse {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
				assert.Len(t, id, 36)
			}
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{
			name:    "create failure",
			err:     &bulk.Failure{Op: bulk.OpCreate, Message: "No programs were created.", Errors: []bulk.ItemError{{Index: 0}}},
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeValidationFailed,
			message: "No programs were created.",
		},
		{
			name:    "archive failure",
			err:     &bulk.Failure{Op: bulk.OpArchive, Message: "No programs were archived."},
			status:  http.StatusUnprocessableEntity,
			code:    dto.ErrorCodeUnprocessable,
			message: "No programs were archived.",
		},
		{
			name:    "not found",
			err:     apperrors.NewResourceNotFoundError("Term not found."),
			status:  http.StatusNotFound,
			code:    dto.ErrorCodeResourceNotFound,
			message: "Term not found.",
		},
		{
			name:    "bad request",
			err:     apperrors.NewBadRequestError("No IDs provided."),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeBadRequest,
			message: "No IDs provided.",
		},
		{
			name:    "integrity",
			err:     fmt.Errorf("%w: UNIQUE constraint failed", apperrors.ErrIntegrity),
			status:  http.StatusConflict,
			code:    dto.ErrorCodeConflict,
			message: "integrity error",
		},
		{
			name:    "validation",
			err:     apperrors.NewValidationError("Invalid term ID"),
			status:  http.StatusBadRequest,
			code:    dto.ErrorCodeValidationFailed,
			message: "Invalid term ID",
		},
		{
			name:    "payload too large",
			err:     apperrors.NewPayloadTooLargeError("Request body too large"),
			status:  http.StatusRequestEntityTooLarge,
			code:    dto.ErrorCodeBadRequest,
			message: "Request body too large",
		},
		{
			name:    "database",
			err:     fmt.Errorf("%w: %w", apperrors.ErrDatabase, errors.New("relation \"terms\" does not exist")),
			status:  http.StatusInternalServerError,
			code:    dto.ErrorCodeDatabaseError,
			message: "Database error",
		},
		{
			name:    "unknown is not leaked",
			err:     errors.New("pq: password authentication failed"),
			status:  http.StatusInternalServerError,
			code:    dto.ErrorCodeInternalServer,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.NotContains(t, w.Body.String(), "does not exist")
			if tt.status < http.StatusInternalServerError {
				assert.Equal(t, dto.ErrorSeverityWarning, resp.Error.Severity)
			} else {
				assert.Equal(t, dto.ErrorSeverityCritical, resp.Error.Severity)
			}
		})
	}
}

func TestHandleAPIError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/terms/x", nil)

	HandleAPIError(c, apperrors.NewValidationError("Invalid term ID").
		WithDetails(map[string]interface{}{"id": "Term ID must be a valid number"}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "id", resp.Error.Field)
	assert.Equal(t, map[string]interface{}{"id": "Term ID must be a valid number"}, resp.Error.Details)
}

func TestRequestLogger_UsesInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), RequestLogger(zerolog.New(&buf)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/ok", "/missing?active_only=true"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "info", first["level"])
	assert.Equal(t, float64(http.StatusOK), first["status"])
	assert.NotEmpty(t, first["request_id"])
	assert.Equal(t, "warn", second["level"])
	assert.Equal(t, "/missing?active_only=true", second["path"])
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestBodyLimit(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(8))
	router.POST("/", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "too long"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
