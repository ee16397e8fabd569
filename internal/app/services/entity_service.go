package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/registrar/academics/internal/app/bulk"
	"github.com/registrar/academics/internal/pkg/apperrors"
)

// EntityRepository is the storage an EntityService reads and writes
type EntityRepository[T any] interface {
	bulk.Repository[T]
	GetAll(ctx context.Context, activeOnly bool) ([]T, error)
}

// Dependencies are shared by every entity service
type Dependencies struct {
	Validate *validator.Validate
	Tx       bulk.Transactor
	Logger   zerolog.Logger
}

// EntityService exposes the read and bulk write operations of one entity
type EntityService[T bulk.Record] struct {
	repo EntityRepository[T]
	bulk *bulk.Helper[T]
	noun bulk.Noun
}

// NewEntityService wires the bulk helper to repo and the entity's defaults
func NewEntityService[T bulk.Record](repo EntityRepository[T], noun bulk.Noun, defaults func() T, deps Dependencies) *EntityService[T] {
	return &EntityService[T]{
		repo: repo,
		noun: noun,
		bulk: bulk.New(bulk.Config[T]{
			Repo:     repo,
			Noun:     noun,
			Defaults: defaults,
			Validate: deps.Validate,
			Tx:       deps.Tx,
			Logger:   deps.Logger,
		}),
	}
}

// Noun returns the names used in messages about this entity
func (s *EntityService[T]) Noun() bulk.Noun {
	return s.noun
}

// GetAll lists every record, or only the active ones
func (s *EntityService[T]) GetAll(ctx context.Context, activeOnly bool) ([]T, error) {
	records, err := s.repo.GetAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.noun.Plural, err)
	}
	return records, nil
}

// GetByID returns one record; archived records are returned too
func (s *EntityService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s not found.", s.noun.Title()))
		}
		return nil, fmt.Errorf("failed to get %s %d: %w", s.noun.Singular, id, err)
	}
	return record, nil
}

// Create inserts one record or a batch
func (s *EntityService[T]) Create(ctx context.Context, body []byte, atomic bool) (*bulk.Result[T], error) {
	return s.bulk.Create(ctx, body, atomic)
}

// Update applies partial updates to one record or a batch
func (s *EntityService[T]) Update(ctx context.Context, body []byte, atomic bool) (*bulk.Result[T], error) {
	return s.bulk.Update(ctx, body, atomic)
}

// Archive soft-deletes one record or a batch
func (s *EntityService[T]) Archive(ctx context.Context, body []byte, atomic bool) (*bulk.Result[T], error) {
	return s.bulk.Archive(ctx, body, atomic)
}
