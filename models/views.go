package models

// ItemSummary is the narrow item projection embedded in category listings.
type ItemSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryDetail is the read model returned by the category listing: the
// category plus the requesting organizer's items in it. It is built fresh
// for every request so one organizer's view can never leak into another's.
type CategoryDetail struct {
	ID             uint          `json:"id"`
	Name           string        `json:"name"`
	OrganizerItems []ItemSummary `json:"organizer_items"`
}

// NewCategoryDetail builds a CategoryDetail from a category and the
// organizer's items in it. OrganizerItems is always allocated, so an
// organizer with nothing in the category serializes as an empty array.
func NewCategoryDetail(cat Category, items []Item) CategoryDetail {
	summaries := make([]ItemSummary, 0, len(items))
	for _, it := range items {
		summaries = append(summaries, ItemSummary{ID: it.ID, Name: it.Name})
	}
	return CategoryDetail{ID: cat.ID, Name: cat.Name, OrganizerItems: summaries}
}
