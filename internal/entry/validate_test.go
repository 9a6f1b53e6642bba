package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeEntry returns an entry that passes validation.
func completeEntry() TradeEntry {
	expiry := date(2024, time.March, 28)
	return TradeEntry{
		Username:  "alice",
		TradeDate: date(2024, time.March, 10),
		Item:      "GOLD",
		Expiry:    &expiry,
		LotSize:   "10",
		NumberLot: "3",
		BuyQty:    30,
		BuyPrice:  "100",
	}
}

func TestValidateComplete(t *testing.T) {
	assert.NoError(t, Validate(completeEntry()))
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*TradeEntry)
		expected string
	}{
		{
			name:     "Missing username",
			mutate:   func(e *TradeEntry) { e.Username = "" },
			expected: FieldUsername,
		},
		{
			name:     "Missing trade date",
			mutate:   func(e *TradeEntry) { e.TradeDate = time.Time{} },
			expected: FieldDate,
		},
		{
			name:     "Missing item",
			mutate:   func(e *TradeEntry) { e.Item = "" },
			expected: FieldItem,
		},
		{
			name:     "Missing expiry",
			mutate:   func(e *TradeEntry) { e.Expiry = nil },
			expected: FieldExpiry,
		},
		{
			name:     "Missing lot size",
			mutate:   func(e *TradeEntry) { e.LotSize = "" },
			expected: FieldLotSize,
		},
		{
			name:     "Missing lot count",
			mutate:   func(e *TradeEntry) { e.NumberLot = "" },
			expected: FieldNumberLot,
		},
		{
			name:     "Missing buy price",
			mutate:   func(e *TradeEntry) { e.BuyPrice = "" },
			expected: FieldBuyPrice,
		},
		{
			// item comes before lotsize and buyprice in the enumeration,
			// so it must be the only field reported.
			name: "Multiple missing reports earliest",
			mutate: func(e *TradeEntry) {
				e.Item = ""
				e.LotSize = ""
				e.BuyPrice = ""
			},
			expected: FieldItem,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := completeEntry()
			tc.mutate(&e)

			err := Validate(e)
			require.Error(t, err)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.expected, missing.Field)
		})
	}
}

func TestValidateZeroValues(t *testing.T) {
	// Numeric zero is a value, not an absence. Only empty strings and
	// unset dates fail the gate.
	e := completeEntry()
	e.LotSize = "0"
	e.NumberLot = "0"
	e.BuyQty = 0
	e.BuyPrice = "0"

	assert.NoError(t, Validate(e))
}

func TestValidateOptionalSellFields(t *testing.T) {
	e := completeEntry()
	e.SellQty = ""
	e.SellPrice = ""
	assert.NoError(t, Validate(e))
}
