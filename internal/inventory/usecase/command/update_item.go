package command

import (
	"context"
	"fmt"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/pkg/logger"
)

// UpdateItemCommand replaces the editable fields of an existing item
type UpdateItemCommand struct {
	ID string
	ItemFields
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo    domain.ItemRepository
	effects *WriteEffects
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository, effects *WriteEffects) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo, effects: effects}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.ID == "" {
		return nil, &domain.ValidationError{Field: "id", Message: "is required"}
	}

	item, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	cmd.apply(item)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	item.UpdatedAt = h.effects.now().UTC()
	if err := h.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	logger.Info(ctx).Str("item_id", item.ID).Float64("current_stock", item.CurrentStock).Msg("Item updated")

	h.effects.afterWrite(ctx, *item)
	return item, nil
}
