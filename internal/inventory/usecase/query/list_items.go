package query

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/stock"
)

// ListItemsQuery carries the raw presentation parameters of a list request.
// Today pins the evaluation date; zero means read the clock.
type ListItemsQuery struct {
	Search string
	Status string
	Sort   string
	Today  time.Time
}

// Parse validates the status filter and sort option
func (q ListItemsQuery) Parse() (stock.Query, error) {
	status, err := stock.ParseStatusFilter(q.Status)
	if err != nil {
		return stock.Query{}, err
	}
	sortOpt, err := stock.ParseSortOption(q.Sort)
	if err != nil {
		return stock.Query{}, err
	}
	return stock.Query{Search: q.Search, Status: status, Sort: sortOpt}, nil
}

// ListItemsResult is one evaluated list together with the date it was evaluated on
type ListItemsResult struct {
	stock.Result
	Query stock.Query
	Today time.Time
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo   domain.ItemRepository
	policy stock.Policy
	clock  stock.Clock
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository, policy stock.Policy, clock stock.Clock) *ListItemsHandler {
	return &ListItemsHandler{repo: repo, policy: policy, clock: orSystem(clock)}
}

// Today reads the handler's clock once
func (h *ListItemsHandler) Today() time.Time {
	return h.clock()
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error) {
	q, err := query.Parse()
	if err != nil {
		return nil, err
	}

	items, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	today := query.Today
	if today.IsZero() {
		today = h.clock()
	}

	return &ListItemsResult{
		Result: stock.Apply(items, q, h.policy, today),
		Query:  q,
		Today:  today,
	}, nil
}
