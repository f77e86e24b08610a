package command

import (
	"context"
	"fmt"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/pkg/logger"
)

// DeleteItemCommand represents the command to delete an item
type DeleteItemCommand struct {
	ID string
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo    domain.ItemRepository
	effects *WriteEffects
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository, effects *WriteEffects) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo, effects: effects}
}

// Handle executes the delete item command
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ID == "" {
		return &domain.ValidationError{Field: "id", Message: "is required"}
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	logger.Info(ctx).Str("item_id", cmd.ID).Msg("Item deleted")

	h.effects.invalidate(ctx)
	return nil
}
