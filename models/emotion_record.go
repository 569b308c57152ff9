package models

import "time"

// Detection types accepted for an EmotionRecord.
const (
	DetectionManual = "manual"
	DetectionCamera = "camera"
)

// EmotionUnknown is stored when camera detection could not classify a face.
// Range queries leave it out.
const EmotionUnknown = "unknown"

// EmotionRecord is a single observed emotion for a child.
type EmotionRecord struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	ChildProfileID uint      `gorm:"not null;index:idx_emotion_child_created"`
	Emotion        string    `gorm:"not null"`
	DetectionType  string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"index:idx_emotion_child_created"`
}

// ValidDetectionType reports whether t is one of the supported detection types.
func ValidDetectionType(t string) bool {
	return t == DetectionManual || t == DetectionCamera
}
