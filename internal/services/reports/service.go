package reports

import (
	"time"

	"finance-tracker-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

const dateLayout = "2006-01-02"

type Summary struct {
	DateFrom     string          `json:"date_from"`
	DateTo       string          `json:"date_to"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Profit       decimal.Decimal `json:"profit"`
}

type typeTotal struct {
	Type  models.TransactionType
	Total decimal.Decimal
}

func (s *Service) Summary(companyID uint, from, to time.Time) (*Summary, error) {
	var rows []typeTotal
	err := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("company_id = ? AND date >= ? AND date <= ?", companyID, from, to).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &Summary{DateFrom: from.Format(dateLayout), DateTo: to.Format(dateLayout)}
	for _, row := range rows {
		if row.Type == models.TypeIncome {
			summary.TotalIncome = row.Total
		} else {
			summary.TotalExpense = row.Total
		}
	}
	summary.Profit = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

type CategoryTotal struct {
	CategoryID   uint            `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

type ByCategory struct {
	DateFrom string          `json:"date_from"`
	DateTo   string          `json:"date_to"`
	Income   []CategoryTotal `json:"income"`
	Expense  []CategoryTotal `json:"expense"`
}

func (s *Service) ByCategory(companyID uint, from, to time.Time) (*ByCategory, error) {
	var rows []struct {
		CategoryID   uint
		CategoryName string
		Type         models.TransactionType
		Amount       decimal.Decimal
	}
	err := s.db.Model(&models.Transaction{}).
		Select("transactions.category_id, categories.name AS category_name, transactions.type, SUM(transactions.amount) AS amount").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.company_id = ? AND transactions.date >= ? AND transactions.date <= ?", companyID, from, to).
		Group("transactions.category_id, categories.name, transactions.type").
		Order("amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	report := &ByCategory{
		DateFrom: from.Format(dateLayout),
		DateTo:   to.Format(dateLayout),
		Income:   []CategoryTotal{},
		Expense:  []CategoryTotal{},
	}
	for _, row := range rows {
		entry := CategoryTotal{CategoryID: row.CategoryID, CategoryName: row.CategoryName, Amount: row.Amount}
		if row.Type == models.TypeIncome {
			report.Income = append(report.Income, entry)
		} else {
			report.Expense = append(report.Expense, entry)
		}
	}
	return report, nil
}

type TimelinePoint struct {
	Period  string          `json:"period"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type Timeline struct {
	DateFrom string          `json:"date_from"`
	DateTo   string          `json:"date_to"`
	Group    string          `json:"group"`
	Timeline []TimelinePoint `json:"timeline"`
}

// Timeline buckets income and expense by day or week. DATE_TRUNC keeps
// the bucketing in Postgres, as the rest of the aggregation queries do.
func (s *Service) Timeline(companyID uint, from, to time.Time, group string) (*Timeline, error) {
	var rows []struct {
		Period time.Time
		Type   models.TransactionType
		Total  decimal.Decimal
	}
	err := s.db.Raw(`
		SELECT DATE_TRUNC(?, date) AS period, type, SUM(amount) AS total
		FROM transactions
		WHERE company_id = ? AND date >= ? AND date <= ?
		GROUP BY DATE_TRUNC(?, date), type
		ORDER BY period ASC`,
		group, companyID, from, to, group,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	report := &Timeline{
		DateFrom: from.Format(dateLayout),
		DateTo:   to.Format(dateLayout),
		Group:    group,
		Timeline: []TimelinePoint{},
	}
	index := make(map[string]int)
	for _, row := range rows {
		key := row.Period.Format(dateLayout)
		i, ok := index[key]
		if !ok {
			report.Timeline = append(report.Timeline, TimelinePoint{Period: key})
			i = len(report.Timeline) - 1
			index[key] = i
		}
		if row.Type == models.TypeIncome {
			report.Timeline[i].Income = row.Total
		} else {
			report.Timeline[i].Expense = row.Total
		}
	}
	return report, nil
}
