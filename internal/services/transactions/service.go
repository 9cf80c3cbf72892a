package transactions

import (
	"errors"
	"time"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("transaction not found")
	ErrCategoryNotFound = errors.New("category not found in this company")
)

type Service struct {
	transactions *repository.TransactionRepository
	categories   *repository.CategoryRepository
}

func NewService(transactions *repository.TransactionRepository, categories *repository.CategoryRepository) *Service {
	return &Service{transactions: transactions, categories: categories}
}

type ListResult struct {
	Data   []models.Transaction `json:"data"`
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

func (s *Service) List(filter repository.TransactionFilter) (*ListResult, error) {
	txs, total, err := s.transactions.List(filter)
	if err != nil {
		return nil, err
	}
	return &ListResult{Data: txs, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}

type CreateInput struct {
	CategoryID uint
	Type       models.TransactionType
	Amount     decimal.Decimal
	Currency   string
	Date       time.Time
	Comment    string
}

func (s *Service) Create(companyID, userID uint, input CreateInput) (*models.Transaction, error) {
	if _, err := s.categories.GetForCompany(input.CategoryID, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	tx := &models.Transaction{
		CompanyID:  companyID,
		CategoryID: input.CategoryID,
		Type:       input.Type,
		Amount:     input.Amount,
		Currency:   input.Currency,
		Date:       input.Date,
		Comment:    input.Comment,
		CreatedBy:  userID,
	}
	if err := s.transactions.Create(tx); err != nil {
		return nil, err
	}
	return s.transactions.GetByID(tx.ID)
}

type UpdateInput struct {
	CategoryID *uint
	Type       *models.TransactionType
	Amount     *decimal.Decimal
	Currency   *string
	Date       *time.Time
	Comment    *string
}

func (s *Service) Update(id uint, input UpdateInput) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.CategoryID != nil {
		tx.CategoryID = *input.CategoryID
		tx.Category = nil
	}
	if input.Type != nil {
		tx.Type = *input.Type
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Currency != nil {
		tx.Currency = *input.Currency
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.Comment != nil {
		tx.Comment = *input.Comment
	}

	if err := s.transactions.Update(tx); err != nil {
		return nil, err
	}
	return s.transactions.GetByID(id)
}

func (s *Service) Delete(id uint) error {
	if _, err := s.transactions.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.transactions.Delete(id)
}
