package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for coin amounts
const MaxDecimalPlaces = 2

// minorUnitsPerCoin is 10^MaxDecimalPlaces
const minorUnitsPerCoin = 100

// ParseCoinAmount converts a decimal string like "10.5" into minor units (1050).
// The amount must be strictly positive.
// - If no decimal point: appends "00"
// - If one digit after decimal: appends "0"
// - If two digits after decimal: uses them as is
func ParseCoinAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") || strings.HasPrefix(amount, "+") {
		return 0, fmt.Errorf("%w: signed values are not accepted", errs.ErrInvalidAmount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 || parts[0] == "" {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	var integerValue string
	if len(parts) == 1 {
		integerValue = parts[0] + "00"
	} else {
		switch len(parts[1]) {
		case 0:
			integerValue = parts[0] + "00"
		case 1:
			integerValue = parts[0] + parts[1] + "0"
		case 2:
			integerValue = parts[0] + parts[1]
		default:
			return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		}
	}

	value, err := strconv.ParseInt(integerValue, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if value <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	return value, nil
}

// FormatCoinAmount converts minor units to a decimal string.
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
func FormatCoinAmount(minorUnits int64) string {
	isNegative := minorUnits < 0
	if isNegative {
		minorUnits = -minorUnits
	}

	amountStr := strconv.FormatInt(minorUnits, 10)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - MaxDecimalPlaces
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// AddAmounts adds two minor-unit amounts and reports overflow
func AddAmounts(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, errs.ErrAmountOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}

// AmountToDecimal converts minor units to a coin-denominated decimal
func AmountToDecimal(minorUnits int64) decimal.Decimal {
	return decimal.New(minorUnits, -MaxDecimalPlaces)
}

// Valuation returns the worth of an amount at the given unit value
func Valuation(minorUnits int64, unitValue decimal.Decimal) decimal.Decimal {
	return AmountToDecimal(minorUnits).Mul(unitValue)
}

// ParseUnitValue parses a positive decimal unit value such as "0.25"
func ParseUnitValue(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: unit value %q is not a number", errs.ErrInvalidCoinType, value)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: unit value must be positive", errs.ErrInvalidCoinType)
	}
	return d, nil
}
