package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CompanyID  uint            `gorm:"index" json:"companyId"`
	CategoryID uint            `gorm:"index" json:"categoryId"`
	Category   *Category       `json:"category,omitempty"`
	Type       TransactionType `gorm:"index;size:10" json:"type"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Currency   string          `gorm:"size:3" json:"currency"`
	Date       time.Time       `json:"date"`
	Comment    string          `gorm:"size:500" json:"comment,omitempty"`
	CreatedBy  uint            `json:"createdBy"`
	CreatedAt  time.Time       `json:"createdAt"`
}
