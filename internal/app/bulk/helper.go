// Package bulk implements the create, update and archive orchestration shared by every entity.
//
// Each item of a batch commits on its own by default, so a batch can partly succeed; the
// failed items are reported next to the records that were written. With atomic set, the
// batch runs in one transaction that is rolled back at the first failing item.
package bulk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/registrar/academics/internal/pkg/apperrors"
	"github.com/registrar/academics/internal/pkg/validation"
)

// Record is implemented by every entity model
type Record interface {
	Key() int64
	Archived() bool
}

// Repository is the storage a Helper drives
type Repository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetByIDs(ctx context.Context, ids []int64) ([]T, error)
	Insert(ctx context.Context, record *T) (int64, error)
	Update(ctx context.Context, id int64, record *T) (int64, error)
	Archive(ctx context.Context, id int64) (int64, error)
}

// Transactor runs fn inside a single transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result holds the re-read records of a batch and the items that failed
type Result[T any] struct {
	Items  []T
	Errors []ItemError
}

// Config wires a Helper to one entity
type Config[T Record] struct {
	Repo     Repository[T]
	Noun     Noun
	Defaults func() T
	Validate *validator.Validate
	// Tx backs atomic batches; without it every batch commits per item
	Tx     Transactor
	Logger zerolog.Logger
}

// Helper runs bulk operations for one entity type
type Helper[T Record] struct {
	repo     Repository[T]
	noun     Noun
	defaults func() T
	validate *validator.Validate
	tx       Transactor
	logger   zerolog.Logger
	// required holds the JSON names of fields that cannot be cleared with null
	required map[string]bool
}

// errAbort stops an atomic batch so its transaction rolls back
var errAbort = errors.New("batch aborted")

// New creates a Helper from cfg
func New[T Record](cfg Config[T]) *Helper[T] {
	h := &Helper[T]{
		repo:     cfg.Repo,
		noun:     cfg.Noun,
		defaults: cfg.Defaults,
		validate: cfg.Validate,
		tx:       cfg.Tx,
		logger:   cfg.Logger.With().Str("entity", cfg.Noun.Plural).Logger(),
		required: requiredFields(reflect.TypeFor[T]()),
	}
	if h.defaults == nil {
		h.defaults = func() T {
			var zero T
			return zero
		}
	}
	if h.validate == nil {
		h.validate = validation.New()
	}
	return h
}

// Create inserts every item of body, a single object or an array of them
func (h *Helper[T]) Create(ctx context.Context, body []byte, atomic bool) (*Result[T], error) {
	items, err := Items(body)
	if err != nil {
		return nil, err
	}

	return h.run(ctx, OpCreate, len(items), atomic, func(ctx context.Context, i int) (int64, *ItemError) {
		item, ok := items[i].(map[string]any)
		if !ok {
			return 0, h.notAnObject(OpCreate, i)
		}
		trimStrings(item)

		record := h.defaults()
		if itemErr := h.prepare(OpCreate, i, nil, payload(item), &record); itemErr != nil {
			return 0, itemErr
		}

		id, err := h.repo.Insert(ctx, &record)
		if err != nil {
			return 0, h.storageError(OpCreate, i, nil, err)
		}
		return id, nil
	})
}

// Update merges every item of body over the stored record it names by id
func (h *Helper[T]) Update(ctx context.Context, body []byte, atomic bool) (*Result[T], error) {
	items, err := Items(body)
	if err != nil {
		return nil, err
	}

	return h.run(ctx, OpUpdate, len(items), atomic, func(ctx context.Context, i int) (int64, *ItemError) {
		item, ok := items[i].(map[string]any)
		if !ok {
			return 0, h.notAnObject(OpUpdate, i)
		}
		trimStrings(item)

		id, ok := asInt(item["id"])
		if !ok || id <= 0 {
			return 0, h.itemError(OpUpdate, i, nil, KindValidation, h.noun.missingID())
		}

		existing, err := h.repo.GetByID(ctx, id)
		if errors.Is(err, apperrors.ErrResourceNotFound) || (err == nil && (*existing).Archived()) {
			return 0, h.itemError(OpUpdate, i, &id, KindNotFound, fmt.Sprintf("%s ID %d not found.", h.noun.Title(), id))
		}
		if err != nil {
			return 0, h.storageError(OpUpdate, i, &id, err)
		}

		// incoming fields win over the stored ones
		record := *existing
		if itemErr := h.prepare(OpUpdate, i, &id, payload(item), &record); itemErr != nil {
			return 0, itemErr
		}

		affected, err := h.repo.Update(ctx, id, &record)
		if err != nil {
			return 0, h.storageError(OpUpdate, i, &id, err)
		}
		if affected == 0 {
			return 0, h.itemError(OpUpdate, i, &id, KindNotFound, fmt.Sprintf("%s ID %d not updated.", h.noun.Title(), id))
		}
		return id, nil
	})
}

// Archive soft-deletes the records named by body
func (h *Helper[T]) Archive(ctx context.Context, body []byte, atomic bool) (*Result[T], error) {
	ids, err := IDs(body)
	if err != nil {
		return nil, err
	}

	return h.run(ctx, OpArchive, len(ids), atomic, func(ctx context.Context, i int) (int64, *ItemError) {
		id := ids[i]
		notFound := fmt.Sprintf("%s ID %d not found or already archived.", h.noun.Title(), id)

		existing, err := h.repo.GetByID(ctx, id)
		if errors.Is(err, apperrors.ErrResourceNotFound) || (err == nil && (*existing).Archived()) {
			return 0, h.itemError(OpArchive, i, &id, KindNotFound, notFound)
		}
		if err != nil {
			return 0, h.storageError(OpArchive, i, &id, err)
		}

		affected, err := h.repo.Archive(ctx, id)
		if err != nil {
			return 0, h.storageError(OpArchive, i, &id, err)
		}
		if affected == 0 {
			return 0, h.itemError(OpArchive, i, &id, KindNotFound, fmt.Sprintf("%s ID %d not archived.", h.noun.Title(), id))
		}
		return id, nil
	})
}

// run applies step to every item, then re-reads the records that were written
func (h *Helper[T]) run(ctx context.Context, op Op, n int, atomic bool,
	step func(ctx context.Context, i int) (int64, *ItemError)) (*Result[T], error) {
	var ids []int64
	var itemErrs []ItemError
	atomic = atomic && h.tx != nil

	loop := func(ctx context.Context) error {
		for i := 0; i < n; i++ {
			id, itemErr := step(ctx, i)
			if itemErr != nil {
				itemErrs = append(itemErrs, *itemErr)
				if atomic {
					return errAbort
				}
				continue
			}
			ids = append(ids, id)
		}
		return nil
	}

	if atomic {
		err := h.tx.WithTransaction(ctx, loop)
		switch {
		case errors.Is(err, errAbort):
			observe(h.noun.Plural, op, outcomeRolledBack, len(ids))
			ids = nil
		case err != nil:
			return nil, err
		}
	} else {
		_ = loop(ctx)
	}

	observe(h.noun.Plural, op, outcomeFailed, len(itemErrs))

	if len(ids) == 0 {
		return nil, &Failure{
			Op:      op,
			Message: h.noun.noneSucceeded(op),
			Errors:  itemErrs,
		}
	}
	observe(h.noun.Plural, op, outcomeSucceeded, len(ids))

	records, err := h.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &Result[T]{Items: records, Errors: itemErrs}, nil
}

// prepare overlays fields onto record and validates the outcome
func (h *Helper[T]) prepare(op Op, index int, id *int64, fields map[string]any, record *T) *ItemError {
	invalid := fmt.Sprintf("Invalid %s data.", h.noun.Singular)

	if nulls := h.nullRequired(fields); len(nulls) > 0 {
		itemErr := h.itemError(op, index, id, KindValidation, invalid)
		itemErr.Fields = nulls
		return itemErr
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return h.itemError(op, index, id, KindValidation, invalid)
	}
	if err := json.Unmarshal(raw, record); err != nil {
		itemErr := h.itemError(op, index, id, KindValidation, invalid)
		itemErr.Fields = decodeFields(err)
		return itemErr
	}

	if err := h.validate.Struct(record); err != nil {
		itemErr := h.itemError(op, index, id, KindValidation, invalid)
		if itemErr.Fields = validation.Fields(err); itemErr.Fields == nil {
			itemErr.Message = err.Error()
		}
		return itemErr
	}
	return nil
}

// nullRequired reports required fields that an item sets to null
func (h *Helper[T]) nullRequired(fields map[string]any) []FieldError {
	var out []FieldError
	for name, v := range fields {
		if v == nil && h.required[name] {
			out = append(out, FieldError{Field: name, Message: name + " is required"})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// requiredFields collects the JSON names of non-pointer fields tagged required, embedded structs included
func requiredFields(t reflect.Type) map[string]bool {
	out := map[string]bool{}
	if t.Kind() != reflect.Struct {
		return out
	}
	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() || f.Type.Kind() == reflect.Pointer {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
			if rule == "required" {
				out[name] = true
			}
		}
	}
	return out
}

// decodeFields turns a JSON type mismatch into a field message
func decodeFields(err error) []FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()),
		}}
	}
	return []FieldError{{Field: "", Message: "malformed value"}}
}

func (h *Helper[T]) notAnObject(op Op, index int) *ItemError {
	return h.itemError(op, index, nil, KindValidation, fmt.Sprintf("Each %s must be a JSON object.", h.noun.Singular))
}

func (h *Helper[T]) itemError(op Op, index int, id *int64, kind Kind, message string) *ItemError {
	h.logger.Debug().Str("op", string(op)).Int("index", index).Str("kind", string(kind)).Msg(message)
	return &ItemError{Index: index, ID: id, Kind: kind, Message: message}
}

// storageError reports a failed statement without exposing driver text
func (h *Helper[T]) storageError(op Op, index int, id *int64, err error) *ItemError {
	kind, message := KindDatabase, apperrors.ErrDatabase.Error()
	if errors.Is(err, apperrors.ErrIntegrity) {
		kind, message = KindIntegrity, apperrors.ErrIntegrity.Error()
	}
	h.logger.Warn().Err(err).Str("op", string(op)).Int("index", index).Str("kind", string(kind)).Msg("Bulk item failed")
	return &ItemError{Index: index, ID: id, Kind: kind, Message: message}
}
