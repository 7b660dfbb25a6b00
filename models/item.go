package models

import "time"

// Item is a trackable lost/found object. Every item belongs to exactly one
// organizer and references exactly one category. The category reference is
// intentionally allowed to dangle after a category delete (no cascade);
// existence is checked at write time by the handlers, not by the store.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Location    string    `gorm:"size:100" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	OrganizerID uint      `gorm:"not null;index" json:"organizer_id"`
	Organizer   Organizer `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
