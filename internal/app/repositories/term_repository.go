package repositories

import (
	"github.com/registrar/academics/internal/app/models"
	"github.com/registrar/academics/internal/db"
	"github.com/registrar/academics/internal/pkg/helpers"
)

// TermRepository handles database operations for terms
type TermRepository struct {
	entityTable[models.Term]
}

// NewTermRepository creates a new term repository
func NewTermRepository(database *db.Database) *TermRepository {
	return &TermRepository{entityTable[models.Term]{
		db:      database,
		table:   "terms",
		columns: []string{"name", "start_date", "end_date"},
		values: func(t *models.Term) []any {
			return []any{t.Name, helpers.NullString(t.StartDate), helpers.NullString(t.EndDate)}
		},
		scan: func(row scanner) (*models.Term, error) {
			var t models.Term
			err := scanRecord(row, &t.Base,
				&t.Name, db.Date{Dest: &t.StartDate}, db.Date{Dest: &t.EndDate})
			if err != nil {
				return nil, err
			}
			return &t, nil
		},
		activeFilter: notArchived,
	}}
}
