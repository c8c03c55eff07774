package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFoodItemValidate(t *testing.T) {
	valid := FoodItem{
		Name:     "Margherita Pizza",
		Category: "main_course",
		Price:    decimal.RequireFromString("15.99"),
	}

	tests := []struct {
		name    string
		mutate  func(*FoodItem)
		wantErr string
	}{
		{
			name:   "valid item",
			mutate: func(f *FoodItem) {},
		},
		{
			name:    "empty name",
			mutate:  func(f *FoodItem) { f.Name = "" },
			wantErr: "name",
		},
		{
			name:    "name too long",
			mutate:  func(f *FoodItem) { f.Name = strings.Repeat("x", 101) },
			wantErr: "name",
		},
		{
			name:    "description too long",
			mutate:  func(f *FoodItem) { f.Description = strings.Repeat("x", 501) },
			wantErr: "description",
		},
		{
			name:    "empty category",
			mutate:  func(f *FoodItem) { f.Category = "" },
			wantErr: "category",
		},
		{
			name:    "zero price",
			mutate:  func(f *FoodItem) { f.Price = decimal.Zero },
			wantErr: "price",
		},
		{
			name:    "negative price",
			mutate:  func(f *FoodItem) { f.Price = decimal.RequireFromString("-5.00") },
			wantErr: "price",
		},
		{
			name:    "price with three decimal places",
			mutate:  func(f *FoodItem) { f.Price = decimal.RequireFromString("9.999") },
			wantErr: "price",
		},
		{
			name:    "negative preparation time",
			mutate:  func(f *FoodItem) { f.PreparationTime = -1 },
			wantErr: "preparation_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)

			err := item.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var vErr ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantErr, vErr.Field)
		})
	}
}
