package tools

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundToStep rounds number to the nearest multiple of step.
func RoundToStep(number, step decimal.Decimal) decimal.Decimal {
	if step.IsZero() {
		return number
	}
	k := number.Div(step).Round(0)
	return step.Mul(k)
}

// FormatPrice rounds a price to the instrument's display precision, the way
// the broker accepts it: fixed number of decimals, no exponent.
func FormatPrice(price float64, precision int32) (string, error) {
	if precision < 0 {
		return "", fmt.Errorf("negative precision %d", precision)
	}
	step := decimal.New(1, -precision)
	return RoundToStep(decimal.NewFromFloat(price), step).StringFixed(precision), nil
}

// FormatUnits renders an order size. Negative units sell.
func FormatUnits(units int64) string {
	return decimal.NewFromInt(units).String()
}
