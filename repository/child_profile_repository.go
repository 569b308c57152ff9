package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/moodmatebackend/models"
	"gorm.io/gorm"
)

// GormChildProfileRepository handles database operations for child profiles
type GormChildProfileRepository struct {
	db *gorm.DB
}

func NewGormChildProfileRepository(db *gorm.DB) ChildProfileRepository {
	return &GormChildProfileRepository{db: db}
}

func (r *GormChildProfileRepository) Create(profile *models.ChildProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create child profile %s for user %d: %w", profile.Name, profile.UserID, err)
	}
	return nil
}

func (r *GormChildProfileRepository) GetByID(id uint) (*models.ChildProfile, error) {
	var profile models.ChildProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get child profile by ID %d: %w", id, err)
	}
	return &profile, nil
}

// ListByUserID returns the user's profiles in creation order. Clients treat
// the first one as the default profile.
func (r *GormChildProfileRepository) ListByUserID(userID uint) ([]models.ChildProfile, error) {
	var profiles []models.ChildProfile
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list child profiles for user %d: %w", userID, err)
	}
	return profiles, nil
}
