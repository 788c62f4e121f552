package specification

import "gorm.io/gorm"

// TitleContains filters notes whose title contains the substring,
// case-insensitive and unanchored (ILIKE '%substr%').
type TitleContains struct {
	Substring string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Substring + "%"
	return db.Where("title ILIKE ?", pattern)
}
