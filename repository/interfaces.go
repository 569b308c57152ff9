package repository

import (
	"time"

	"github.com/camden-git/moodmatebackend/models"
)

// UserRepository defines the methods for user data operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	MarkOnboarded(id uint) (*models.User, error)
}

// ChildProfileRepository defines the methods for child profile data operations
type ChildProfileRepository interface {
	Create(profile *models.ChildProfile) error
	GetByID(id uint) (*models.ChildProfile, error)
	ListByUserID(userID uint) ([]models.ChildProfile, error)
}

// EmotionRange bounds a ranged emotion query. Nil bounds are open.
type EmotionRange struct {
	Start *time.Time
	End   *time.Time
}

// EmotionRecordRepository defines the methods for emotion record data operations
type EmotionRecordRepository interface {
	Create(record *models.EmotionRecord) error
	ListByChildProfileID(childProfileID uint) ([]models.EmotionRecord, error)
	// ListInRange returns known emotions for a profile, oldest first.
	ListInRange(childProfileID uint, rng EmotionRange) ([]models.EmotionRecord, error)
}

// ExpressionRecordRepository defines the methods for expression record data operations
type ExpressionRecordRepository interface {
	Create(record *models.ExpressionRecord) error
	GetByID(id uint) (*models.ExpressionRecord, error)
	ListByChildProfile(userID, childProfileID uint) ([]models.ExpressionRecord, error)
	Update(record *models.ExpressionRecord) error
	Delete(id uint) error
}

// CarePlanKind selects one of the three care plan lists.
type CarePlanKind string

const (
	CopingStrategies   CarePlanKind = "coping_strategy"
	MoodTriggers       CarePlanKind = "mood_trigger"
	SensoryPreferences CarePlanKind = "sensory_preference"
)

// CarePlanRepository defines bulk inserts and listings for coping
// strategies, mood triggers and sensory preferences.
type CarePlanRepository interface {
	// CreateMany inserts all values for the profile or none of them.
	CreateMany(kind CarePlanKind, childProfileID uint, values []string) error
	List(kind CarePlanKind, childProfileID uint) ([]models.CarePlanItem, error)
}
