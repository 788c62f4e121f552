package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// NotSoftDeleted keeps rows whose soft-delete flag is unset. Only the
// paginated listing and soft delete apply it; id lookup, title search and
// hard delete intentionally see soft-deleted rows too.
type NotSoftDeleted struct{}

func (s NotSoftDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`"isDeleted" = ?`, false)
}

// Pagination applies a skip/take window. No ordering is imposed, rows come
// back in storage order.
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
