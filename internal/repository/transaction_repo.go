package repository

import (
	"time"

	"finance-tracker-backend/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) DB() *gorm.DB {
	return r.db
}

type TransactionFilter struct {
	CompanyID  uint
	DateFrom   *time.Time
	DateTo     *time.Time
	Type       models.TransactionType
	CategoryID uint
	Limit      int
	Offset     int
}

// List returns a page of transactions plus the total count matching the
// filter, newest first.
func (r *TransactionRepository) List(f TransactionFilter) ([]models.Transaction, int64, error) {
	query := r.db.Model(&models.Transaction{}).Where("company_id = ?", f.CompanyID)

	if f.DateFrom != nil {
		query = query.Where("date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		query = query.Where("date <= ?", *f.DateTo)
	}
	if f.Type == models.TypeIncome || f.Type == models.TypeExpense {
		query = query.Where("type = ?", f.Type)
	}
	if f.CategoryID != 0 {
		query = query.Where("category_id = ?", f.CategoryID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []models.Transaction
	err := query.
		Preload("Category").
		Order("date DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&txs).Error
	return txs, total, err
}

func (r *TransactionRepository) Create(tx *models.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *TransactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.Preload("Category").First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) Update(tx *models.Transaction) error {
	return r.db.Save(tx).Error
}

func (r *TransactionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Transaction{}, "id = ?", id).Error
}

func (r *TransactionRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
