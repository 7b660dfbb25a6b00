// Package seed fills the database with demo organizers, categories and items.
package seed

import (
	"fmt"
	"log"

	"foundit/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"Tools", "Electronics", "Clothing", "Keys", "Bags",
	"Jewelry", "Documents", "Sports Gear", "Toys", "Misc",
}

var locations = []string{
	"Front desk", "Lobby", "Parking lot", "Cafeteria", "Locker room",
	"Conference room B", "Bus stop", "Gym", "Library", "Storage closet",
}

// DemoPassword is the password every seeded account gets.
const DemoPassword = "FoundIt2024demo"

// Run populates the database with organizers (one per user), the shared
// category set, and a handful of items per organizer.
func Run(db *gorm.DB, organizerCount, itemsPerOrganizer int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		cat := models.Category{Name: name}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
		categories = append(categories, cat)
	}

	for i := 0; i < organizerCount; i++ {
		user := models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:     gofakeit.Email(),
			Password:  string(hash),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			IsActive:  true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		organizer := models.Organizer{
			UserID:      user.ID,
			PhoneNumber: gofakeit.Phone(),
		}
		if err := db.Create(&organizer).Error; err != nil {
			return err
		}

		for j := 0; j < itemsPerOrganizer; j++ {
			item := models.Item{
				Name:        gofakeit.ProductName(),
				Description: gofakeit.Sentence(8),
				Quantity:    gofakeit.Number(1, 5),
				Location:    locations[gofakeit.Number(0, len(locations)-1)],
				OrganizerID: organizer.ID,
				CategoryID:  categories[gofakeit.Number(0, len(categories)-1)].ID,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d categories, %d organizers, %d items",
		len(categories), organizerCount, organizerCount*itemsPerOrganizer)
	return nil
}
