package domain

import (
	"github.com/shopspring/decimal"
)

// FoodItem represents a purchasable menu entry
type FoodItem struct {
	ID              int
	Name            string
	Description     string
	Category        string
	Price           decimal.Decimal
	Available       bool
	PreparationTime int
	Ingredients     []string
	Calories        int
	IsVegetarian    bool
	IsSpicy         bool
}

// Validate applies business validation rules
func (f *FoodItem) Validate() error {
	if len(f.Name) < 1 || len(f.Name) > 100 {
		return ValidationError{Field: "name", Message: "name must be 1-100 characters"}
	}

	if len(f.Description) > 500 {
		return ValidationError{Field: "description", Message: "description must not exceed 500 characters"}
	}

	if len(f.Category) < 1 || len(f.Category) > 50 {
		return ValidationError{Field: "category", Message: "category must be 1-50 characters"}
	}

	if !f.Price.IsPositive() {
		return ValidationError{Field: "price", Message: "price must be greater than zero"}
	}

	// Prices carry at most two decimal places.
	if !f.Price.Equal(f.Price.Round(2)) {
		return ValidationError{Field: "price", Message: "price must have at most two decimal places"}
	}

	if f.PreparationTime < 0 {
		return ValidationError{Field: "preparation_time", Message: "preparation time must not be negative"}
	}

	if f.Calories < 0 {
		return ValidationError{Field: "calories", Message: "calories must not be negative"}
	}

	return nil
}
