package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validItem() Item {
	phone := "+6281234567890"
	return Item{
		ID:                   "1",
		Name:                 "Tepung Terigu",
		Unit:                 "kg",
		CurrentStock:         50,
		RequirementPerRecipe: 0.5,
		RecipesToday:         20,
		LeadTime:             3,
		SupplierWhatsapp:     &phone,
	}
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Item)
		wantField string
	}{
		{name: "valid", mutate: func(*Item) {}},
		{name: "zero values are allowed", mutate: func(i *Item) {
			i.CurrentStock, i.RequirementPerRecipe, i.RecipesToday, i.LeadTime = 0, 0, 0, 0
		}},
		{name: "blank name", mutate: func(i *Item) { i.Name = "   " }, wantField: "name"},
		{name: "missing unit", mutate: func(i *Item) { i.Unit = "" }, wantField: "unit"},
		{name: "negative stock", mutate: func(i *Item) { i.CurrentStock = -1 }, wantField: "currentStock"},
		{name: "NaN stock", mutate: func(i *Item) { i.CurrentStock = math.NaN() }, wantField: "currentStock"},
		{name: "infinite requirement", mutate: func(i *Item) { i.RequirementPerRecipe = math.Inf(1) }, wantField: "requirementPerRecipe"},
		{name: "negative recipes", mutate: func(i *Item) { i.RecipesToday = -2 }, wantField: "recipesToday"},
		{name: "negative lead time", mutate: func(i *Item) { i.LeadTime = -1 }, wantField: "leadTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := validItem()
			tt.mutate(&it)

			err := it.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tt.wantField, verr.Field)
			}
		})
	}
}

func TestItem_HasSupplierContact(t *testing.T) {
	it := validItem()
	assert.True(t, it.HasSupplierContact())

	blank := "  "
	it.SupplierWhatsapp = &blank
	assert.False(t, it.HasSupplierContact())

	it.SupplierWhatsapp = nil
	assert.False(t, it.HasSupplierContact())
}
