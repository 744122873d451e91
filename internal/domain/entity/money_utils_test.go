package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCoinAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"10.", 1000},
			{" 500 ", 50000},
			{"1234567.89", 123456789},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				units, err := ParseCoinAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, units)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"   ", errs.ErrInvalidAmount, "Whitespace only"},
			{"0", errs.ErrInvalidAmount, "Zero"},
			{"0.00", errs.ErrInvalidAmount, "Zero with decimals"},
			{"-1.00", errs.ErrInvalidAmount, "Negative amount"},
			{"+1.00", errs.ErrInvalidAmount, "Explicit sign"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"NaN", errs.ErrInvalidAmount, "Not a number"},
			{"Inf", errs.ErrInvalidAmount, "Infinity"},
			{".50", errs.ErrInvalidAmount, "Missing whole part"},
			{"1,000.00", errs.ErrInvalidAmount, "Comma as thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"99999999999999999999", errs.ErrAmountOverflow, "Overflow"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseCoinAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestFormatCoinAmount(t *testing.T) {
	testCases := []struct {
		units    int64
		expected string
	}{
		{10000, "100.00"},
		{1, "0.01"},
		{10, "0.10"},
		{150, "1.50"},
		{0, "0.00"},
		{-10000, "-100.00"},
		{-1, "-0.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCoinAmount(tc.units))
		})
	}
}

func TestAddAmounts(t *testing.T) {
	sum, err := AddAmounts(150, 250)
	assert.NoError(t, err)
	assert.Equal(t, int64(400), sum)

	_, err = AddAmounts(math.MaxInt64, 1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)

	_, err = AddAmounts(math.MinInt64, -1)
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
}

func TestValuation(t *testing.T) {
	// 12.50 coins at 0.20 each
	v := Valuation(1250, decimal.RequireFromString("0.20"))
	assert.True(t, v.Equal(decimal.RequireFromString("2.5")), "got %s", v)
}

func TestParseUnitValue(t *testing.T) {
	v, err := ParseUnitValue("0.125")
	assert.NoError(t, err)
	assert.True(t, v.Equal(decimal.RequireFromString("0.125")))

	_, err = ParseUnitValue("0")
	assert.ErrorIs(t, err, errs.ErrInvalidCoinType)

	_, err = ParseUnitValue("cheap")
	assert.ErrorIs(t, err, errs.ErrInvalidCoinType)
}
