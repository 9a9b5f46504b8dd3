package fortune

import (
	"context"
	"database/sql"

	"teapot-fortune/feature/fortune/models"

	"gorm.io/gorm"
)

// Repository is the read-only view of the entry table.
// Implementations must be safe for concurrent use.
type Repository interface {
	// MaxID returns the largest identifier in the table, or the configured fallback
	// when the query fails or the table is empty. It never returns an error.
	MaxID(ctx context.Context) int64
	// FetchByID returns the entry with the given identifier. Missing rows and read
	// failures are both reported as (nil, false).
	FetchByID(ctx context.Context, id int64) (*models.Entry, bool)
}

type gormRepository struct {
	db            *gorm.DB
	table         string
	fallbackMaxID int64
}

// NewRepository creates a Repository over table in db.
func NewRepository(db *gorm.DB, table string, fallbackMaxID int64) Repository {
	return &gormRepository{db: db, table: table, fallbackMaxID: fallbackMaxID}
}

func (r *gormRepository) MaxID(ctx context.Context) int64 {
	var max sql.NullInt64
	row := r.db.WithContext(ctx).Table(r.table).Select("max(id)").Row()
	if row == nil {
		return r.fallbackMaxID
	}
	if err := row.Scan(&max); err != nil || !max.Valid || max.Int64 <= 0 {
		return r.fallbackMaxID
	}
	return max.Int64
}

func (r *gormRepository) FetchByID(ctx context.Context, id int64) (*models.Entry, bool) {
	var entry models.Entry
	err := r.db.WithContext(ctx).Table(r.table).Select("id", "body").Where("id = ?", id).Take(&entry).Error
	if err != nil {
		return nil, false
	}
	return &entry, true
}
