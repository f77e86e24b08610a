package query

import (
	"context"
	"fmt"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/stock"
)

// GetItemQuery represents the query to get one evaluated item
type GetItemQuery struct {
	ID string
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo   domain.ItemRepository
	policy stock.Policy
	clock  stock.Clock
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository, policy stock.Policy, clock stock.Clock) *GetItemHandler {
	return &GetItemHandler{repo: repo, policy: policy, clock: orSystem(clock)}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, query GetItemQuery) (*stock.Assessed, error) {
	if query.ID == "" {
		return nil, &domain.ValidationError{Field: "id", Message: "is required"}
	}

	item, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	assessed := stock.Assess(*item, h.policy, h.clock())
	return &assessed, nil
}

func orSystem(clock stock.Clock) stock.Clock {
	if clock == nil {
		return stock.SystemClock
	}
	return clock
}
