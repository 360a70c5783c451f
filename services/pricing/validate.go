package pricing

import "github.com/shopspring/decimal"

// validateCount checks a caller-supplied count (rooms, bathrooms).
func validateCount(value int, field string) (int, error) {
	if value < 0 {
		return 0, newValidationError(field, "cannot be negative")
	}
	return value, nil
}

// validateAmount checks a caller-supplied decimal (areas, money).
func validateAmount(value decimal.Decimal, field string) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Zero, newValidationError(field, "cannot be negative")
	}
	return value, nil
}
