package models

// CategoryItem is the legacy (item, category) join row. The direct
// CategoryID on Item superseded it; it is migrated for schema parity but
// no handler consults it.
type CategoryItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ItemID     uint `gorm:"not null;index" json:"item_id"`
	CategoryID uint `gorm:"not null;index" json:"category_id"`
}
