package repository

import (
	"context"

	"foundit/models"

	"gorm.io/gorm"
)

// ItemRepository defines the interface for item data operations
type ItemRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Item, error)
	ListByOrganizer(ctx context.Context, organizerID uint) ([]models.Item, error)
	ListByCategoryAndOrganizer(ctx context.Context, categoryID, organizerID uint) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organizer").
		Preload("Organizer.User").
		First(&item, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Item", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateQuantity mutates the quantity column only; every other field keeps
// its stored value.
func (r *itemRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	tx := r.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Update("quantity", quantity)
	if tx.Error != nil {
		return models.NewInternalError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("Item", id)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if tx.Error != nil {
		return models.NewInternalError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return models.NewNotFoundError("Item", id)
	}
	return nil
}

func (r *itemRepository) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organizer").
		Preload("Organizer.User").
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) ListByOrganizer(ctx context.Context, organizerID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organizer").
		Preload("Organizer.User").
		Where("organizer_id = ?", organizerID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) ListByCategoryAndOrganizer(ctx context.Context, categoryID, organizerID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND organizer_id = ?", categoryID, organizerID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
