package models

import "time"

// Category is unique per company by (name, type). The composite unique
// index backs the atomic get-or-create used by the CSV import.
type Category struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CompanyID uint            `gorm:"uniqueIndex:idx_categories_natural_key" json:"companyId"`
	Name      string          `gorm:"uniqueIndex:idx_categories_natural_key;size:100" json:"name"`
	Type      TransactionType `gorm:"uniqueIndex:idx_categories_natural_key;size:10" json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
}
