package repository

import (
	"errors"
	"fmt"

	"github.com/camden-git/moodmatebackend/models"
	"gorm.io/gorm"
)

type GormExpressionRecordRepository struct {
	db *gorm.DB
}

func NewGormExpressionRecordRepository(db *gorm.DB) ExpressionRecordRepository {
	return &GormExpressionRecordRepository{db: db}
}

func (r *GormExpressionRecordRepository) Create(record *models.ExpressionRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create expression record for child profile %d: %w", record.ChildProfileID, err)
	}
	return nil
}

func (r *GormExpressionRecordRepository) GetByID(id uint) (*models.ExpressionRecord, error) {
	var record models.ExpressionRecord
	if err := r.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get expression record by ID %d: %w", id, err)
	}
	return &record, nil
}

// ListByChildProfile returns the entries userID wrote about a profile,
// newest first.
func (r *GormExpressionRecordRepository) ListByChildProfile(userID, childProfileID uint) ([]models.ExpressionRecord, error) {
	var records []models.ExpressionRecord
	err := r.db.Where("child_profile_id = ? AND user_id = ?", childProfileID, userID).
		Order("created_at DESC").Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expression records for child profile %d: %w", childProfileID, err)
	}
	return records, nil
}

// Update writes title, text and child profile of an existing record and
// refreshes record.UpdatedAt.
func (r *GormExpressionRecordRepository) Update(record *models.ExpressionRecord) error {
	now := r.db.NowFunc()
	result := r.db.Model(&models.ExpressionRecord{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"title":            record.Title,
		"text":             record.Text,
		"child_profile_id": record.ChildProfileID,
		"updated_at":       now,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update expression record ID %d: %w", record.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	record.UpdatedAt = now
	return nil
}

func (r *GormExpressionRecordRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ExpressionRecord{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expression record ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
