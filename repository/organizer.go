package repository

import (
	"context"

	"foundit/models"

	"gorm.io/gorm"
)

// OrganizerRepository defines the interface for organizer data operations
type OrganizerRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Organizer, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Organizer, error)
	Create(ctx context.Context, organizer *models.Organizer) error
	Update(ctx context.Context, organizer *models.Organizer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Organizer, error)
}

type organizerRepository struct {
	db *gorm.DB
}

// NewOrganizerRepository creates a new organizer repository
func NewOrganizerRepository(db *gorm.DB) OrganizerRepository {
	return &organizerRepository{db: db}
}

func (r *organizerRepository) GetByID(ctx context.Context, id uint) (*models.Organizer, error) {
	var organizer models.Organizer
	if err := r.db.WithContext(ctx).Preload("User").First(&organizer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Organizer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &organizer, nil
}

func (r *organizerRepository) GetByUserID(ctx context.Context, userID uint) (*models.Organizer, error) {
	var organizer models.Organizer
	if err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&organizer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("Organizer for user", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &organizer, nil
}

func (r *organizerRepository) Create(ctx context.Context, organizer *models.Organizer) error {
	if err := r.db.WithContext(ctx).Create(organizer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *organizerRepository) Update(ctx context.Context, organizer *models.Organizer) error {
	if err := r.db.WithContext(ctx).Save(organizer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the organizer and its items. Constraint creation is
// disabled at migration time, so the owner cascade lives here.
func (r *organizerRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organizer_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Organizer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return models.NewNotFoundError("Organizer", id)
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *organizerRepository) List(ctx context.Context) ([]models.Organizer, error) {
	var organizers []models.Organizer
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&organizers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return organizers, nil
}
