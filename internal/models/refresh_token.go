package models

import "time"

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"uniqueIndex;size:512"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
