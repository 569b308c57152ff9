package repository

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/camden-git/moodmatebackend/models"
	"gorm.io/gorm"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type GormEmotionRecordRepository struct {
	db *gorm.DB
}

func NewGormEmotionRecordRepository(db *gorm.DB) EmotionRecordRepository {
	return &GormEmotionRecordRepository{db: db}
}

func (r *GormEmotionRecordRepository) Create(record *models.EmotionRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create emotion record for child profile %d: %w", record.ChildProfileID, err)
	}
	return nil
}

// ListByChildProfileID returns every emotion record of a profile, newest first.
func (r *GormEmotionRecordRepository) ListByChildProfileID(childProfileID uint) ([]models.EmotionRecord, error) {
	var records []models.EmotionRecord
	err := r.db.Where("child_profile_id = ?", childProfileID).
		Order("created_at DESC").Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list emotion records for child profile %d: %w", childProfileID, err)
	}
	return records, nil
}

func (r *GormEmotionRecordRepository) ListInRange(childProfileID uint, rng EmotionRange) ([]models.EmotionRecord, error) {
	queryBuilder := psql.Select("id", "child_profile_id", "emotion", "detection_type", "created_at").
		From("emotion_records").
		Where(sq.Eq{"child_profile_id": childProfileID}).
		Where("LOWER(emotion) <> ?", models.EmotionUnknown).
		OrderBy("created_at ASC", "id ASC")

	// stored timestamps are UTC, so the bounds must be too
	if rng.Start != nil {
		queryBuilder = queryBuilder.Where(sq.GtOrEq{"created_at": rng.Start.UTC()})
	}
	if rng.End != nil {
		queryBuilder = queryBuilder.Where(sq.LtOrEq{"created_at": rng.End.UTC()})
	}

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for ListInRange: %w", err)
	}

	var records []models.EmotionRecord
	if err := r.db.Raw(sqlStr, args...).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list emotion records in range for child profile %d: %w", childProfileID, err)
	}
	return records, nil
}
