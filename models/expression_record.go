package models

import "time"

// DefaultExpressionTitle is used when a journal entry is saved without a title.
const DefaultExpressionTitle = "Tanpa Judul"

// ExpressionRecord is a free-text journal entry written by a caregiver about
// one of their children.
type ExpressionRecord struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	UserID         uint      `gorm:"not null;index"`
	ChildProfileID uint      `gorm:"not null;index"`
	Title          string    `gorm:"not null"`
	Text           string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// OwnedBy reports whether the record was written by userID.
func (r *ExpressionRecord) OwnedBy(userID uint) bool {
	return r != nil && r.UserID == userID
}
