package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Category groups notes and carries a display color for the UI.
// The fixed default set (Random Thoughts, School, Personal) is seeded at startup.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	ColorHex  string    `json:"color_hex" gorm:"size:7"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Notes []Note `json:"-" gorm:"foreignKey:CategoryID"`
}

// BeforeSave derives the slug from the name when none was provided.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}
