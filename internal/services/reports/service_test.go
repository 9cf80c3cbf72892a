package reports

import (
	"testing"
	"time"

	"finance-tracker-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Transaction{}))
	return db
}

func seedTransactions(t *testing.T, db *gorm.DB) {
	t.Helper()

	sales := models.Category{CompanyID: 1, Name: "Sales", Type: models.TypeIncome}
	rent := models.Category{CompanyID: 1, Name: "Rent", Type: models.TypeExpense}
	require.NoError(t, db.Create(&sales).Error)
	require.NoError(t, db.Create(&rent).Error)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := []models.Transaction{
		{CompanyID: 1, CategoryID: sales.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(1000), Currency: "KZT", Date: date},
		{CompanyID: 1, CategoryID: sales.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(500), Currency: "KZT", Date: date},
		{CompanyID: 1, CategoryID: rent.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(300), Currency: "KZT", Date: date},
		// Other company and out-of-range rows must not leak in.
		{CompanyID: 2, CategoryID: rent.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(9999), Currency: "KZT", Date: date},
		{CompanyID: 1, CategoryID: sales.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(777), Currency: "KZT", Date: date.AddDate(1, 0, 0)},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func window() (time.Time, time.Time) {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
}

func TestSummary(t *testing.T) {
	db := newTestDB(t)
	seedTransactions(t, db)
	from, to := window()

	summary, err := NewService(db).Summary(1, from, to)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", summary.DateFrom)
	assert.Equal(t, "2024-01-31", summary.DateTo)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(1500)), "income: %s", summary.TotalIncome)
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(300)), "expense: %s", summary.TotalExpense)
	assert.True(t, summary.Profit.Equal(decimal.NewFromInt(1200)), "profit: %s", summary.Profit)
}

func TestSummaryEmptyRange(t *testing.T) {
	db := newTestDB(t)
	from, to := window()

	summary, err := NewService(db).Summary(1, from, to)
	require.NoError(t, err)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Profit.IsZero())
}

func TestByCategory(t *testing.T) {
	db := newTestDB(t)
	seedTransactions(t, db)
	from, to := window()

	report, err := NewService(db).ByCategory(1, from, to)
	require.NoError(t, err)

	require.Len(t, report.Income, 1)
	assert.Equal(t, "Sales", report.Income[0].CategoryName)
	assert.True(t, report.Income[0].Amount.Equal(decimal.NewFromInt(1500)))

	require.Len(t, report.Expense, 1)
	assert.Equal(t, "Rent", report.Expense[0].CategoryName)
	assert.True(t, report.Expense[0].Amount.Equal(decimal.NewFromInt(300)))
}
