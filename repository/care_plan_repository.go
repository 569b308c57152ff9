package repository

import (
	"fmt"
	"sort"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/facette/natsort"
	"gorm.io/gorm"
)

type GormCarePlanRepository struct {
	db *gorm.DB
}

func NewGormCarePlanRepository(db *gorm.DB) CarePlanRepository {
	return &GormCarePlanRepository{db: db}
}

func (r *GormCarePlanRepository) CreateMany(kind CarePlanKind, childProfileID uint, values []string) error {
	if len(values) == 0 {
		return nil
	}

	var rows interface{}
	switch kind {
	case CopingStrategies:
		items := make([]models.CopingStrategy, len(values))
		for i, v := range values {
			items[i] = models.CopingStrategy{ChildProfileID: childProfileID, Strategy: v}
		}
		rows = &items
	case MoodTriggers:
		items := make([]models.MoodTrigger, len(values))
		for i, v := range values {
			items[i] = models.MoodTrigger{ChildProfileID: childProfileID, Trigger: v}
		}
		rows = &items
	case SensoryPreferences:
		items := make([]models.SensoryPreference, len(values))
		for i, v := range values {
			items[i] = models.SensoryPreference{ChildProfileID: childProfileID, Preference: v}
		}
		rows = &items
	default:
		return fmt.Errorf("unknown care plan kind %q", kind)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create %d %s rows for child profile %d: %w", len(values), kind, childProfileID, err)
	}
	return nil
}

// List returns a profile's care plan entries in natural order of their value
// ("Hitung 2" before "Hitung 10").
func (r *GormCarePlanRepository) List(kind CarePlanKind, childProfileID uint) ([]models.CarePlanItem, error) {
	var (
		table  string
		column string
	)
	switch kind {
	case CopingStrategies:
		table, column = "coping_strategies", "strategy"
	case MoodTriggers:
		table, column = "mood_triggers", "`trigger`"
	case SensoryPreferences:
		table, column = "sensory_preferences", "preference"
	default:
		return nil, fmt.Errorf("unknown care plan kind %q", kind)
	}

	var items []models.CarePlanItem
	err := r.db.Table(table).
		Select("id, child_profile_id, "+column+" AS value, created_at").
		Where("child_profile_id = ?", childProfileID).
		Order("id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s for child profile %d: %w", kind, childProfileID, err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value == items[j].Value {
			return false
		}
		return natsort.Compare(items[i].Value, items[j].Value)
	})
	return items, nil
}
