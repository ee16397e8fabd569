package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrar/academics/internal/app/bulk"
	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/app/models/dto"
	"github.com/registrar/academics/internal/middleware"
)

// stubService records the flags it was called with and returns canned results
type stubService struct {
	records    []models.Department
	err        error
	activeOnly bool
	atomic     bool
	body       string
}

func (s *stubService) Noun() bulk.Noun {
	return bulk.Noun{Singular: "department", Plural: "departments"}
}

func (s *stubService) GetAll(_ context.Context, activeOnly bool) ([]models.Department, error) {
	s.activeOnly = activeOnly
	return s.records, s.err
}

func (s *stubService) GetByID(_ context.Context, _ int64) (*models.Department, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.records[0], nil
}

func (s *stubService) result(body []byte, atomic bool) (*bulk.Result[models.Department], error) {
	s.body, s.atomic = string(body), atomic
	if s.err != nil {
		return nil, s.err
	}
	return &bulk.Result[models.Department]{Items: s.records}, nil
}

func (s *stubService) Create(_ context.Context, body []byte, atomic bool) (*bulk.Result[models.Department], error) {
	return s.result(body, atomic)
}

func (s *stubService) Update(_ context.Context, body []byte, atomic bool) (*bulk.Result[models.Department], error) {
	return s.result(body, atomic)
}

func (s *stubService) Archive(_ context.Context, body []byte, atomic bool) (*bulk.Result[models.Department], error) {
	return s.result(body, atomic)
}

func newStubRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewEntityController[models.Department](svc)
	router.GET("/departments", ctrl.List)
	router.GET("/departments/:id", ctrl.Get)
	router.POST("/departments", ctrl.Create)
	router.PATCH("/departments", ctrl.Archive)
	return router
}

func department(id int64, name string) models.Department {
	d := models.Department{Name: name}
	d.ID = id
	return d
}

func TestList_ActiveOnlyFlag(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{query: "", want: false},
		{query: "?active_only=true", want: true},
		{query: "?active_only=True", want: true},
		{query: "?active_only=1", want: false},
		{query: "?active_only=false", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := &stubService{records: []models.Department{}}
			w := httptest.NewRecorder()
			newStubRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments"+tt.query, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, svc.activeOnly)
		})
	}
}

func TestCreate_ResponseShape(t *testing.T) {
	svc := &stubService{records: []models.Department{department(1, "Physics")}}
	router := newStubRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments?atomic=true", strings.NewReader(`{"name": "Physics"}`)))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.atomic)
	assert.JSONEq(t, `{"name": "Physics"}`, svc.body)

	var single struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &single))
	assert.Equal(t, "Department created successfully.", single.Message)
	assert.Equal(t, "Physics", single.Data["name"])

	svc.records = append(svc.records, department(2, "Chemistry"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`[{}, {}]`)))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, svc.atomic)

	var many struct {
		Message string           `json:"message"`
		Data    []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &many))
	assert.Equal(t, "2 departments created successfully.", many.Message)
	assert.Len(t, many.Data, 2)
}

func TestInternalErrorIsNotLeaked(t *testing.T) {
	svc := &stubService{err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}

	w := httptest.NewRecorder()
	newStubRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/departments", strings.NewReader(`[1]`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)
}

func TestGet_InvalidID(t *testing.T) {
	w := httptest.NewRecorder()
	newStubRouter(&stubService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments/1.5", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "Invalid department ID", resp.Error.Message)
	assert.Equal(t, "id", resp.Error.Field)
}

func TestCreate_OversizedChunkedBody(t *testing.T) {
	svc := &stubService{records: []models.Department{department(1, "Physics")}}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.BodyLimit(16))
	router.POST("/departments", NewEntityController[models.Department](svc).Create)

	req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`[{"name": "`+strings.Repeat("x", 64)+`"}]`))
	// no Content-Length, as with a chunked upload
	req.ContentLength = -1
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, svc.body)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Request body too large", resp.Error.Message)
}
