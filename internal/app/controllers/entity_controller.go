package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/registrar/academics/internal/app/bulk"
	"github.com/registrar/academics/internal/app/models/dto"
	"github.com/registrar/academics/internal/middleware"
	"github.com/registrar/academics/internal/pkg/apperrors"
)

// EntityService is what an EntityController needs from the service layer
type EntityService[T any] interface {
	Noun() bulk.Noun
	GetAll(ctx context.Context, activeOnly bool) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, body []byte, atomic bool) (*bulk.Result[T], error)
	Update(ctx context.Context, body []byte, atomic bool) (*bulk.Result[T], error)
	Archive(ctx context.Context, body []byte, atomic bool) (*bulk.Result[T], error)
}

// EntityController serves the five endpoints of one entity
type EntityController[T any] struct {
	service EntityService[T]
}

// NewEntityController creates a new EntityController
func NewEntityController[T any](service EntityService[T]) *EntityController[T] {
	return &EntityController[T]{service: service}
}

// List handles GET /<entity>
func (ec *EntityController[T]) List(c *gin.Context) {
	records, err := ec.service.GetAll(c.Request.Context(), queryFlag(c, "active_only"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(records,
		fmt.Sprintf("%d %s retrieved successfully.", len(records), ec.service.Noun().Plural)))
}

// Get handles GET /<entity>/:id
func (ec *EntityController[T]) Get(c *gin.Context) {
	noun := ec.service.Noun()
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(fmt.Sprintf("Invalid %s ID", noun.Singular)).
			WithDetails(map[string]interface{}{"id": fmt.Sprintf("%s ID must be a valid number", noun.Title())}))
		return
	}

	record, err := ec.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(record, fmt.Sprintf("%s retrieved successfully.", noun.Title())))
}

// Create handles POST /<entity>
func (ec *EntityController[T]) Create(c *gin.Context) {
	ec.write(c, http.StatusCreated, "created", ec.service.Create)
}

// Update handles PUT /<entity>
func (ec *EntityController[T]) Update(c *gin.Context) {
	ec.write(c, http.StatusOK, "updated", ec.service.Update)
}

// Archive handles PATCH /<entity>
func (ec *EntityController[T]) Archive(c *gin.Context) {
	ec.write(c, http.StatusOK, "archived", ec.service.Archive)
}

type bulkOp[T any] func(ctx context.Context, body []byte, atomic bool) (*bulk.Result[T], error)

func (ec *EntityController[T]) write(c *gin.Context, status int, verb string, op bulkOp[T]) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.HandleAPIError(c, apperrors.NewPayloadTooLargeError("Request body too large"))
			return
		}
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("Could not read request body."))
		return
	}

	result, err := op(c.Request.Context(), body, queryFlag(c, "atomic"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(status, batchResponse(ec.service.Noun(), verb, result))
}

// batchResponse reports one record as an object and several as an array
func batchResponse[T any](noun bulk.Noun, verb string, result *bulk.Result[T]) dto.APIResponse {
	var response dto.APIResponse
	if len(result.Items) == 1 {
		response = dto.NewSuccessResponse(result.Items[0], fmt.Sprintf("%s %s successfully.", noun.Title(), verb))
	} else {
		response = dto.NewSuccessResponse(result.Items,
			fmt.Sprintf("%d %s %s successfully.", len(result.Items), noun.Plural, verb))
	}
	if len(result.Errors) > 0 {
		response.Errors = result.Errors
	}
	return response
}

// queryFlag reads a boolean query parameter; only "true" in any case enables it
func queryFlag(c *gin.Context, name string) bool {
	return strings.EqualFold(c.Query(name), "true")
}
