package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"foundit/database"
	"foundit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedOrganizer(t *testing.T, db *gorm.DB, username string) *models.Organizer {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)

	organizer := models.Organizer{UserID: user.ID, PhoneNumber: "615-555-0100"}
	require.NoError(t, db.Create(&organizer).Error)
	organizer.User = user
	return &organizer
}

func TestOrganizerDeleteCascadesToItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	organizers := NewOrganizerRepository(db)
	items := NewItemRepository(db)

	owner := seedOrganizer(t, db, "owner")
	bystander := seedOrganizer(t, db, "bystander")

	category := models.Category{Name: "Tools"}
	require.NoError(t, db.Create(&category).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, items.Create(ctx, &models.Item{
			Name:        fmt.Sprintf("item-%d", i),
			Description: "d",
			Quantity:    1,
			Location:    "shelf",
			OrganizerID: owner.ID,
			CategoryID:  category.ID,
		}))
	}
	kept := &models.Item{
		Name: "kept", Description: "d", Quantity: 1, Location: "shelf",
		OrganizerID: bystander.ID, CategoryID: category.ID,
	}
	require.NoError(t, items.Create(ctx, kept))

	require.NoError(t, organizers.Delete(ctx, owner.ID))

	// The owner's items went with it
	orphaned, err := items.ListByOrganizer(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, orphaned)

	// Another organizer's items are untouched
	remaining, err := items.ListByOrganizer(ctx, bystander.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	_, err = organizers.GetByID(ctx, owner.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestOrganizerDeleteMissing(t *testing.T) {
	db := newTestDB(t)

	err := NewOrganizerRepository(db).Delete(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestItemUpdateQuantityTouchesSingleColumn(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	items := NewItemRepository(db)
	owner := seedOrganizer(t, db, "owner")
	category := models.Category{Name: "Tools"}
	require.NoError(t, db.Create(&category).Error)

	item := &models.Item{
		Name: "Hammer", Description: "claw", Quantity: 3, Location: "desk",
		OrganizerID: owner.ID, CategoryID: category.ID,
	}
	require.NoError(t, items.Create(ctx, item))

	require.NoError(t, items.UpdateQuantity(ctx, item.ID, 1))

	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, "Hammer", got.Name)
	assert.Equal(t, "claw", got.Description)

	err = items.UpdateQuantity(ctx, 9999, 1)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCategoryDeleteLeavesItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	categories := NewCategoryRepository(db)
	items := NewItemRepository(db)
	owner := seedOrganizer(t, db, "owner")

	category := models.Category{Name: "Tools"}
	require.NoError(t, db.Create(&category).Error)

	item := &models.Item{
		Name: "Hammer", Description: "d", Quantity: 1, Location: "desk",
		OrganizerID: owner.ID, CategoryID: category.ID,
	}
	require.NoError(t, items.Create(ctx, item))

	require.NoError(t, categories.Delete(ctx, category.ID))

	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, got.CategoryID)
	assert.Zero(t, got.Category.ID)
}
