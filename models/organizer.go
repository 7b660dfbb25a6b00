package models

// Organizer is an authenticated user acting as the owner of items.
// Exactly one organizer exists per user; it is created during registration.
type Organizer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"user"`
	PhoneNumber string `gorm:"size:25" json:"phone_number"`
	Items       []Item `gorm:"foreignKey:OrganizerID" json:"items,omitempty"`
}
