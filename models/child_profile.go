package models

import "time"

// ChildProfile is the tracked subject of mood data. It is owned by exactly
// one User and every child-scoped record references it.
type ChildProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Age       int       `json:"age" gorm:"not null"`
	Avatar    int       `json:"avatar" gorm:"not null"` // index into the client's avatar set
	Autism    bool      `json:"autism" gorm:"not null;default:false"`
	ADHD      bool      `json:"adhd" gorm:"column:adhd;not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EmotionRecords     []EmotionRecord     `json:"-" gorm:"foreignKey:ChildProfileID;constraint:OnDelete:CASCADE"`
	ExpressionRecords  []ExpressionRecord  `json:"-" gorm:"foreignKey:ChildProfileID;constraint:OnDelete:CASCADE"`
	CopingStrategies   []CopingStrategy    `json:"-" gorm:"foreignKey:ChildProfileID;constraint:OnDelete:CASCADE"`
	MoodTriggers       []MoodTrigger       `json:"-" gorm:"foreignKey:ChildProfileID;constraint:OnDelete:CASCADE"`
	SensoryPreferences []SensoryPreference `json:"-" gorm:"foreignKey:ChildProfileID;constraint:OnDelete:CASCADE"`
}

// OwnedBy reports whether the profile belongs to userID.
func (p *ChildProfile) OwnedBy(userID uint) bool {
	return p != nil && p.UserID == userID
}
