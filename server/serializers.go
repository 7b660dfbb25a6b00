package server

import (
	"time"

	"foundit/models"
)

// Per-endpoint projection functions. Each entity serializes to a flat
// mapping of its fields; relationship fields expand exactly one level into
// the related entity's own flat mapping.

type userResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsActive   bool      `json:"is_active"`
	DateJoined time.Time `json:"date_joined"`
}

type organizerResponse struct {
	ID          uint         `json:"id"`
	PhoneNumber string       `json:"phone_number"`
	User        userResponse `json:"user"`
}

type categoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type itemResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	Location    string            `json:"location"`
	CreatedAt   time.Time         `json:"created_at"`
	Category    categoryResponse  `json:"category"`
	Organizer   organizerResponse `json:"organizer"`
}

func newUserResponse(u models.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		IsActive:   u.IsActive,
		DateJoined: u.DateJoined,
	}
}

func newOrganizerResponse(o models.Organizer) organizerResponse {
	return organizerResponse{
		ID:          o.ID,
		PhoneNumber: o.PhoneNumber,
		User:        newUserResponse(o.User),
	}
}

func newCategoryResponse(cat models.Category) categoryResponse {
	return categoryResponse{ID: cat.ID, Name: cat.Name}
}

func newItemResponse(item models.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Location:    item.Location,
		CreatedAt:   item.CreatedAt,
		Category:    newCategoryResponse(item.Category),
		Organizer:   newOrganizerResponse(item.Organizer),
	}
}

func newItemResponses(items []models.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, newItemResponse(it))
	}
	return out
}

func newOrganizerResponses(organizers []models.Organizer) []organizerResponse {
	out := make([]organizerResponse, 0, len(organizers))
	for _, o := range organizers {
		out = append(out, newOrganizerResponse(o))
	}
	return out
}

func newUserResponses(users []models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}
