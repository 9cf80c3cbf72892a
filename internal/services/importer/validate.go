package importer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"finance-tracker-backend/internal/models"

	"github.com/shopspring/decimal"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Draft is a row's validated, not-yet-persisted transaction data.
type Draft struct {
	Date     time.Time
	Type     models.TransactionType
	Category string
	Amount   decimal.Decimal
	Comment  string
}

// validateRow turns one raw row into a Draft or a rejection. Rules run
// in order and the first failure wins: date, type, amount, category.
func validateRow(row RawRow) (*Draft, error) {
	rawDate := strings.TrimSpace(row["date"])
	if !datePattern.MatchString(rawDate) {
		return nil, fmt.Errorf("invalid date: %q", row["date"])
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %q", row["date"])
	}

	txType := models.TransactionType(strings.TrimSpace(row["type"]))
	if txType != models.TypeIncome && txType != models.TypeExpense {
		return nil, fmt.Errorf("invalid type: %q", row["type"])
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row["amount"]))
	if err != nil || !amount.IsPositive() {
		return nil, fmt.Errorf("invalid amount: %q", row["amount"])
	}

	category := strings.TrimSpace(row["category"])
	if category == "" {
		return nil, fmt.Errorf("category name must not be empty")
	}

	return &Draft{
		Date:     date,
		Type:     txType,
		Category: category,
		Amount:   amount,
		Comment:  strings.TrimSpace(row["comment"]),
	}, nil
}
