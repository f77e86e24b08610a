package query

import (
	"context"
	"fmt"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/stock"
)

// Stats summarizes the inventory by status
type Stats struct {
	Total        int
	ByStatus     map[stock.Status]int
	NeedsReorder int
}

// GetStatsHandler handles the inventory statistics query
type GetStatsHandler struct {
	repo   domain.ItemRepository
	policy stock.Policy
	clock  stock.Clock
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ItemRepository, policy stock.Policy, clock stock.Clock) *GetStatsHandler {
	return &GetStatsHandler{repo: repo, policy: policy, clock: orSystem(clock)}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(ctx context.Context) (*Stats, error) {
	items, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	result := stock.Apply(items, stock.Query{Status: stock.FilterAll, Sort: stock.SortDefault}, h.policy, h.clock())
	counts := stock.CountByStatus(result.Items)

	return &Stats{
		Total:        result.TotalCount,
		ByStatus:     counts,
		NeedsReorder: counts[stock.StatusWarning] + counts[stock.StatusUrgent],
	}, nil
}
