package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	maxCategoryNameLen = 100
	maxProductNameLen  = 255
	maxBrandLen        = 100
)

// blankField reports whether the key is absent, not a string, or blank after
// trimming. Non-string values for a text field count as missing.
func blankField(data map[string]interface{}, key string) bool {
	value, ok := data[key]
	if !ok {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return true
	}
	return strings.TrimSpace(s) == ""
}

// fieldTooLong reports whether the string value under key exceeds max
// characters. Non-string values never trip it; blankField owns those.
func fieldTooLong(data map[string]interface{}, key string, max int) bool {
	s, ok := data[key].(string)
	if !ok {
		return false
	}
	return utf8.RuneCountInString(s) > max
}

// validateCategoryData checks the category payload, name before description.
func validateCategoryData(data map[string]interface{}) error {
	if blankField(data, "name") {
		return domain.NewInvalidInputError("Category name cannot be empty.")
	}
	if fieldTooLong(data, "name", maxCategoryNameLen) {
		return domain.NewInvalidInputError("Category name cannot exceed 100 characters.")
	}
	if blankField(data, "description") {
		return domain.NewInvalidInputError("Category description cannot be empty.")
	}
	return nil
}

// validateProductData checks the product payload field by field; the first
// failure wins. Price and quantity deliberately reuse one message each for
// both the unparseable and the out-of-range case.
func validateProductData(data map[string]interface{}) error {
	if blankField(data, "name") {
		return domain.NewInvalidInputError("Product name cannot be empty.")
	}
	if fieldTooLong(data, "name", maxProductNameLen) {
		return domain.NewInvalidInputError("Product name cannot exceed 255 characters.")
	}
	if blankField(data, "description") {
		return domain.NewInvalidInputError("Product description cannot be empty.")
	}
	if categoryBlank(data) {
		return domain.NewInvalidInputError("Product category cannot be empty.")
	}
	if blankField(data, "brand") {
		return domain.NewInvalidInputError("Product brand cannot be empty.")
	}
	if fieldTooLong(data, "brand", maxBrandLen) {
		return domain.NewInvalidInputError("Product brand cannot exceed 100 characters.")
	}
	if _, err := parsePrice(data["price"]); err != nil {
		return err
	}
	if _, err := parseQuantity(data["quantity"]); err != nil {
		return err
	}
	return nil
}

// categoryBlank treats a non-string category value (an already resolved id)
// as present; only a missing key or a blank string fails.
func categoryBlank(data map[string]interface{}) bool {
	value, ok := data["category"]
	if !ok || value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// parsePrice accepts the price however JSON (or a caller) delivered it and
// normalizes it to a positive amount rounded to two decimal places.
func parsePrice(value interface{}) (float64, error) {
	invalid := domain.NewInvalidInputError("Price must be a valid number (float).")

	var price decimal.Decimal
	var err error
	switch v := value.(type) {
	case float64:
		price = decimal.NewFromFloat(v)
	case float32:
		price = decimal.NewFromFloat32(v)
	case int:
		price = decimal.NewFromInt(int64(v))
	case int64:
		price = decimal.NewFromInt(v)
	case json.Number:
		price, err = decimal.NewFromString(v.String())
	case string:
		price, err = decimal.NewFromString(strings.TrimSpace(v))
	case decimal.Decimal:
		price = v
	default:
		return 0, invalid
	}
	if err != nil {
		return 0, invalid
	}
	if !price.IsPositive() {
		return 0, invalid
	}
	return price.Round(2).InexactFloat64(), nil
}

// parseQuantity accepts an integer quantity of any JSON shape and requires it
// to be non-negative.
func parseQuantity(value interface{}) (int, error) {
	invalid := domain.NewInvalidInputError("Quantity must be a valid integer.")

	var quantity int
	switch v := value.(type) {
	case int:
		quantity = v
	case int64:
		quantity = int(v)
	case float64:
		quantity = int(v)
		if float64(quantity) != v {
			return 0, invalid
		}
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, invalid
		}
		quantity = int(parsed)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, invalid
		}
		quantity = parsed
	default:
		return 0, invalid
	}
	if quantity < 0 {
		return 0, invalid
	}
	return quantity, nil
}
