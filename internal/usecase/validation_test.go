package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func validProductData() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Laptop",
		"description": "High-performance laptop",
		"category":    "Electronics",
		"price":       1200.00,
		"brand":       "Dell",
		"quantity":    10,
	}
}

func TestValidateProductData_Valid(t *testing.T) {
	assert.NoError(t, validateProductData(validProductData()))
}

func TestValidateProductData_FieldOrder(t *testing.T) {
	// name is checked before description, description before category, and
	// so on; with everything invalid the name error must win.
	data := map[string]interface{}{
		"name":        "",
		"description": "",
		"category":    "",
		"brand":       "",
		"price":       -1,
		"quantity":    -1,
	}
	err := validateProductData(data)
	assert.EqualError(t, err, "Product name cannot be empty.")
	assert.True(t, domain.IsInvalidInputError(err))
}

func TestValidateProductData_RequiredFields(t *testing.T) {
	tests := []struct {
		field   string
		message string
	}{
		{"name", "Product name cannot be empty."},
		{"description", "Product description cannot be empty."},
		{"category", "Product category cannot be empty."},
		{"brand", "Product brand cannot be empty."},
	}
	for _, tt := range tests {
		t.Run(tt.field+" blank", func(t *testing.T) {
			data := validProductData()
			data[tt.field] = "   "
			assert.EqualError(t, validateProductData(data), tt.message)
		})
		t.Run(tt.field+" missing", func(t *testing.T) {
			data := validProductData()
			delete(data, tt.field)
			assert.EqualError(t, validateProductData(data), tt.message)
		})
	}
}

func TestValidateProductData_Price(t *testing.T) {
	// Format failures and sign failures share one message.
	for _, price := range []interface{}{"not-a-number", -10.0, 0, 0.0, "-5.50", nil, true} {
		data := validProductData()
		data["price"] = price
		err := validateProductData(data)
		assert.EqualError(t, err, "Price must be a valid number (float).", "price=%v", price)
		assert.True(t, domain.IsInvalidInputError(err))
	}
}

func TestValidateProductData_Quantity(t *testing.T) {
	for _, quantity := range []interface{}{"not-a-number", -2, -2.0, 2.5, nil, true} {
		data := validProductData()
		data["quantity"] = quantity
		err := validateProductData(data)
		assert.EqualError(t, err, "Quantity must be a valid integer.", "quantity=%v", quantity)
	}
}

func TestValidateProductData_QuantityZeroAllowed(t *testing.T) {
	data := validProductData()
	data["quantity"] = 0
	assert.NoError(t, validateProductData(data))
}

func TestValidateProductData_MaxLengths(t *testing.T) {
	data := validProductData()
	data["name"] = strings.Repeat("a", 300)
	assert.EqualError(t, validateProductData(data), "Product name cannot exceed 255 characters.")

	data = validProductData()
	data["brand"] = strings.Repeat("b", 150)
	assert.EqualError(t, validateProductData(data), "Product brand cannot exceed 100 characters.")

	// exactly at the limit is fine
	data = validProductData()
	data["name"] = strings.Repeat("a", 255)
	data["brand"] = strings.Repeat("b", 100)
	assert.NoError(t, validateProductData(data))
}

func TestValidateCategoryData(t *testing.T) {
	assert.NoError(t, validateCategoryData(map[string]interface{}{
		"name":        "Electronics",
		"description": "Devices and gadgets",
	}))

	// name is checked before description
	err := validateCategoryData(map[string]interface{}{"name": "", "description": ""})
	assert.EqualError(t, err, "Category name cannot be empty.")

	err = validateCategoryData(map[string]interface{}{"name": "Electronics", "description": "  "})
	assert.EqualError(t, err, "Category description cannot be empty.")
}

func TestValidateCategoryData_NameMaxLength(t *testing.T) {
	err := validateCategoryData(map[string]interface{}{
		"name":        strings.Repeat("a", 150),
		"description": "Devices and gadgets",
	})
	assert.EqualError(t, err, "Category name cannot exceed 100 characters.")
	assert.True(t, domain.IsInvalidInputError(err))

	assert.NoError(t, validateCategoryData(map[string]interface{}{
		"name":        strings.Repeat("a", 100),
		"description": "Devices and gadgets",
	}))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
		ok    bool
	}{
		{"float", 49.99, 49.99, true},
		{"string", "1200.00", 1200.00, true},
		{"int", 500, 500.00, true},
		{"json number", json.Number("89.99"), 89.99, true},
		{"rounded to two decimals", 19.999, 20.00, true},
		{"zero rejected", 0.0, 0, false},
		{"negative rejected", -1.5, 0, false},
		{"negative string rejected", "-10", 0, false},
		{"garbage rejected", "ten dollars", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrice(tt.input)
			if !tt.ok {
				assert.EqualError(t, err, "Price must be a valid number (float).")
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  int
		ok    bool
	}{
		{"int", 10, 10, true},
		{"zero allowed", 0, 0, true},
		{"whole float", 5.0, 5, true},
		{"numeric string", "7", 7, true},
		{"json number", json.Number("3"), 3, true},
		{"negative rejected", -1, 0, false},
		{"fractional rejected", 2.5, 0, false},
		{"garbage rejected", "many", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuantity(tt.input)
			if !tt.ok {
				assert.EqualError(t, err, "Quantity must be a valid integer.")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
