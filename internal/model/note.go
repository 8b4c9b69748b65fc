package model

import "time"

// Note is the core entity: a titled piece of text owned by one user and
// filed under exactly one category. Deleting the owner or the category
// cascades to the note.
type Note struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text"`
	CategoryID uint      `json:"category" gorm:"not null;index:idx_notes_owner_category,priority:2"`
	OwnerID    uint      `json:"owner" gorm:"not null;index:idx_notes_owner_category,priority:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"index"`

	// Relations
	Category Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Owner    User     `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
