package model

import (
	"time"

	"github.com/google/uuid"
)

// Note maps the "note" table. Soft delete is a plain boolean column
// (named isDeleted by the original migration), not gorm.DeletedAt:
// soft-deleted rows must stay visible to id lookup, title search and
// hard delete, and only the paginated listing filters on the flag.
type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:isDeleted;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Note) TableName() string {
	return "note"
}
