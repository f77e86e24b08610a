package query

import (
	"context"
	"fmt"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/internal/inventory/reorder"
)

// GetReorderLinkQuery asks for the supplier reorder link of an item
type GetReorderLinkQuery struct {
	ID string
}

// GetReorderLinkHandler handles reorder link query
type GetReorderLinkHandler struct {
	repo     domain.ItemRepository
	template string
}

// NewGetReorderLinkHandler creates a new reorder link handler
func NewGetReorderLinkHandler(repo domain.ItemRepository, template string) *GetReorderLinkHandler {
	return &GetReorderLinkHandler{repo: repo, template: template}
}

// Handle executes the reorder link query
func (h *GetReorderLinkHandler) Handle(ctx context.Context, query GetReorderLinkQuery) (*reorder.Link, error) {
	item, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	return reorder.BuildWhatsAppLink(*item, h.template)
}
