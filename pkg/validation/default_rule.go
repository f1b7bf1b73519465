package validation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Event categories accepted by the catalog.
var eventCategories = []string{"Live shows", "Tourism", "Fever Origin"}

// ValidateCategory checks category against the supported set.
func ValidateCategory(category string) error {
	for _, c := range eventCategories {
		if c == category {
			return nil
		}
	}
	return errors.New("unsupported category: " + category)
}

// ValidatePrice accepts "Free" or a non-negative decimal amount and returns
// the normalized form stored on the catalog.
func ValidatePrice(price string) (string, error) {
	price = strings.TrimSpace(price)
	if strings.EqualFold(price, "Free") || price == "" {
		return "Free", nil
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return "", errors.New("price must be a decimal amount or \"Free\"")
	}
	if d.IsNegative() {
		return "", errors.New("price must not be negative")
	}
	return d.String(), nil
}
