package models

import "time"

// CopingStrategy is one strategy a caregiver selected for a child.
type CopingStrategy struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	ChildProfileID uint   `gorm:"not null;index"`
	Strategy       string `gorm:"not null"`
	CreatedAt      time.Time
}

// MoodTrigger is one known trigger of a mood change for a child.
type MoodTrigger struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	ChildProfileID uint   `gorm:"not null;index"`
	Trigger        string `gorm:"column:trigger;not null"`
	CreatedAt      time.Time
}

// SensoryPreference is one sensory preference recorded for a child.
type SensoryPreference struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	ChildProfileID uint   `gorm:"not null;index"`
	Preference     string `gorm:"not null"`
	CreatedAt      time.Time
}

// CarePlanItem is the common read shape of the three care plan lists.
type CarePlanItem struct {
	ID             uint
	ChildProfileID uint
	Value          string
	CreatedAt      time.Time
}
