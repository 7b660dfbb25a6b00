package models

// Category is a shared classification label for items. It has no owner and
// is visible to every organizer.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}
