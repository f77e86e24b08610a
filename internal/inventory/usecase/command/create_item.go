package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tair/stockwatch/internal/inventory/domain"
	"github.com/tair/stockwatch/pkg/logger"
)

// ItemFields are the user-editable attributes of an item
type ItemFields struct {
	Name                 string
	Unit                 string
	CurrentStock         float64
	RequirementPerRecipe float64
	RecipesToday         int
	LeadTime             int
	SupplierWhatsapp     *string
}

func (f ItemFields) apply(item *domain.Item) {
	item.Name = strings.TrimSpace(f.Name)
	item.Unit = strings.TrimSpace(f.Unit)
	item.CurrentStock = f.CurrentStock
	item.RequirementPerRecipe = f.RequirementPerRecipe
	item.RecipesToday = f.RecipesToday
	item.LeadTime = f.LeadTime
	item.SupplierWhatsapp = nil
	if f.SupplierWhatsapp != nil {
		if phone := strings.TrimSpace(*f.SupplierWhatsapp); phone != "" {
			item.SupplierWhatsapp = &phone
		}
	}
}

// CreateItemCommand represents the command to create an item
type CreateItemCommand struct {
	ID string
	ItemFields
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo    domain.ItemRepository
	effects *WriteEffects
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository, effects *WriteEffects) *CreateItemHandler {
	return &CreateItemHandler{repo: repo, effects: effects}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.Item, error) {
	item := &domain.Item{ID: strings.TrimSpace(cmd.ID)}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	cmd.apply(item)

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	logger.Info(ctx).Str("item_id", item.ID).Str("name", item.Name).Msg("Item created")

	h.effects.afterWrite(ctx, *item)
	return item, nil
}
