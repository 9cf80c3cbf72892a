package models

import "time"

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	OwnerID   uint      `gorm:"index" json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}
