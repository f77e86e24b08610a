package repository

import (
	"context"
	"fmt"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/pkg/logger"
)

func strPtr(s string) *string { return &s }

// SampleItems is the starter inventory of a small bakery
func SampleItems() []domain.Item {
	return []domain.Item{
		{ID: "1", Name: "Tepung Terigu", Unit: "kg", CurrentStock: 50, RequirementPerRecipe: 0.5, RecipesToday: 20, LeadTime: 3, SupplierWhatsapp: strPtr("+6281234567890")},
		{ID: "2", Name: "Gula Pasir", Unit: "kg", CurrentStock: 20, RequirementPerRecipe: 0.2, RecipesToday: 20, LeadTime: 2, SupplierWhatsapp: strPtr("+6281234567891")},
		{ID: "3", Name: "Kotak Kemasan", Unit: "pcs", CurrentStock: 200, RequirementPerRecipe: 1, RecipesToday: 80, LeadTime: 5, SupplierWhatsapp: strPtr("+6281234567892")},
		{ID: "4", Name: "Mentega", Unit: "kg", CurrentStock: 5, RequirementPerRecipe: 0.1, RecipesToday: 20, LeadTime: 1},
	}
}

// SeedIfEmpty inserts SampleItems when the store holds no items.
// It reports how many items were inserted.
func SeedIfEmpty(ctx context.Context, repo domain.ItemRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	items := SampleItems()
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			return i, fmt.Errorf("failed to seed item %s: %w", items[i].Name, err)
		}
	}

	logger.Logger.Info().Int("count", len(items)).Msg("Seeded sample inventory")
	return len(items), nil
}
