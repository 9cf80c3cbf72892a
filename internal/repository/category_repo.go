package repository

import (
	"finance-tracker-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) DB() *gorm.DB {
	return r.db
}

// GetOrCreate resolves a category by its natural key (companyId, name,
// type), inserting it on first use. The insert goes through ON CONFLICT
// DO NOTHING on the composite unique index, so concurrent imports
// referencing the same triple cannot create duplicates.
func (r *CategoryRepository) GetOrCreate(companyID uint, name string, txType models.TransactionType) (uint, error) {
	cat := models.Category{CompanyID: companyID, Name: name, Type: txType}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "company_id"}, {Name: "name"}, {Name: "type"}},
		DoNothing: true,
	}).Create(&cat).Error
	if err != nil {
		return 0, err
	}
	if cat.ID != 0 {
		return cat.ID, nil
	}

	// Conflict: the triple already exists, read it back.
	err = r.db.
		Where("company_id = ? AND name = ? AND type = ?", companyID, name, txType).
		First(&cat).Error
	return cat.ID, err
}

func (r *CategoryRepository) FindByNaturalKey(companyID uint, name string, txType models.TransactionType) (*models.Category, error) {
	var cat models.Category
	err := r.db.
		Where("company_id = ? AND name = ? AND type = ?", companyID, name, txType).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) List(companyID uint, txType models.TransactionType) ([]models.Category, error) {
	var cats []models.Category
	query := r.db.Where("company_id = ?", companyID)
	if txType == models.TypeIncome || txType == models.TypeExpense {
		query = query.Where("type = ?", txType)
	}
	err := query.Order("type ASC").Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var cat models.Category
	if err := r.db.First(&cat, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetForCompany scopes the lookup to the owning company; a category
// belonging to another company appears absent.
func (r *CategoryRepository) GetForCompany(id, companyID uint) (*models.Category, error) {
	var cat models.Category
	if err := r.db.First(&cat, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *models.Category) error {
	return r.db.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *models.Category) error {
	return r.db.Save(cat).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}
