package categories

import (
	"errors"
	"fmt"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("category not found")
	ErrDuplicate = errors.New("category with this name and type already exists")
	ErrInUse     = errors.New("category is used by transactions")
)

type Service struct {
	categories   *repository.CategoryRepository
	transactions *repository.TransactionRepository
}

func NewService(categories *repository.CategoryRepository, transactions *repository.TransactionRepository) *Service {
	return &Service{categories: categories, transactions: transactions}
}

func (s *Service) List(companyID uint, txType models.TransactionType) ([]models.Category, error) {
	return s.categories.List(companyID, txType)
}

func (s *Service) Create(companyID uint, name string, txType models.TransactionType) (*models.Category, error) {
	_, err := s.categories.FindByNaturalKey(companyID, name, txType)
	if err == nil {
		return nil, ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat := &models.Category{CompanyID: companyID, Name: name, Type: txType}
	if err := s.categories.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) Update(id uint, name string, txType models.TransactionType) (*models.Category, error) {
	cat, err := s.categories.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if name != "" {
		cat.Name = name
	}
	if txType == models.TypeIncome || txType == models.TypeExpense {
		cat.Type = txType
	}
	if err := s.categories.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) Delete(id uint) error {
	if _, err := s.categories.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	used, err := s.transactions.CountByCategory(id)
	if err != nil {
		return err
	}
	if used > 0 {
		return fmt.Errorf("%w: %d transactions reference it", ErrInUse, used)
	}
	return s.categories.Delete(id)
}
