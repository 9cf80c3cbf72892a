package importer

import (
	"testing"
	"time"

	"finance-tracker-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRowValid(t *testing.T) {
	draft, err := validateRow(RawRow{
		"date":     "2024-01-15",
		"type":     "income",
		"category": "  Sales  ",
		"amount":   "1500.50",
		"comment":  "  first invoice  ",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), draft.Date)
	assert.Equal(t, models.TypeIncome, draft.Type)
	assert.Equal(t, "Sales", draft.Category)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("1500.50")))
	assert.Equal(t, "first invoice", draft.Comment)
}

func TestValidateRowCommentOptional(t *testing.T) {
	draft, err := validateRow(RawRow{
		"date":     "2024-02-01",
		"type":     "expense",
		"category": "Rent",
		"amount":   "300",
		"comment":  "   ",
	})
	require.NoError(t, err)
	assert.Empty(t, draft.Comment)
}

func TestValidateRowRejections(t *testing.T) {
	tests := []struct {
		name    string
		row     RawRow
		wantErr string
	}{
		{
			name:    "missing date",
			row:     RawRow{"type": "income", "category": "Sales", "amount": "10"},
			wantErr: `invalid date: ""`,
		},
		{
			name:    "wrong date format",
			row:     RawRow{"date": "15-01-2024", "type": "income", "category": "Sales", "amount": "10"},
			wantErr: `invalid date: "15-01-2024"`,
		},
		{
			name:    "impossible calendar date",
			row:     RawRow{"date": "2024-13-40", "type": "income", "category": "Sales", "amount": "10"},
			wantErr: `invalid date: "2024-13-40"`,
		},
		{
			name:    "unknown type",
			row:     RawRow{"date": "2024-01-15", "type": "transfer", "category": "Sales", "amount": "10"},
			wantErr: `invalid type: "transfer"`,
		},
		{
			name:    "non numeric amount",
			row:     RawRow{"date": "2024-01-15", "type": "income", "category": "Sales", "amount": "abc"},
			wantErr: `invalid amount: "abc"`,
		},
		{
			name:    "negative amount",
			row:     RawRow{"date": "2024-01-15", "type": "income", "category": "Sales", "amount": "-5"},
			wantErr: `invalid amount: "-5"`,
		},
		{
			name:    "zero amount",
			row:     RawRow{"date": "2024-01-15", "type": "income", "category": "Sales", "amount": "0"},
			wantErr: `invalid amount: "0"`,
		},
		{
			name:    "empty category",
			row:     RawRow{"date": "2024-01-15", "type": "income", "category": "   ", "amount": "10"},
			wantErr: "category name must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := validateRow(tt.row)
			assert.Nil(t, draft)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateRowFirstFailureWins(t *testing.T) {
	// Everything is invalid at once; the date rule runs first.
	_, err := validateRow(RawRow{
		"date":     "garbage",
		"type":     "transfer",
		"category": "",
		"amount":   "abc",
	})
	assert.EqualError(t, err, `invalid date: "garbage"`)

	// Valid date, everything after it invalid; the type rule wins.
	_, err = validateRow(RawRow{
		"date":     "2024-01-15",
		"type":     "transfer",
		"category": "",
		"amount":   "abc",
	})
	assert.EqualError(t, err, `invalid type: "transfer"`)
}
