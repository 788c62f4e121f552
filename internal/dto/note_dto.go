package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdateNoteRequest carries a partial update. Nil fields are left
// untouched on the stored note.
type UpdateNoteRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	IsDeleted bool       `json:"isDeleted"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// NotePageResponse is the data payload of the paginated listing.
type NotePageResponse struct {
	Notes []*NoteResponse `json:"notes"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
