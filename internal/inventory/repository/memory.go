package repository

import (
	"context"
	"sync"
	"time"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

// MemoryItemRepository keeps items in process memory, in insertion order
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Item
	order []string
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items: make(map[string]domain.Item),
	}
}

func (r *MemoryItemRepository) Create(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return domain.ErrItemExists
	}

	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	r.items[item.ID] = cloneItem(*item)
	r.order = append(r.order, item.ID)
	return nil
}

func (r *MemoryItemRepository) FindByID(_ context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	out := cloneItem(item)
	return &out, nil
}

func (r *MemoryItemRepository) FindAll(_ context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, cloneItem(r.items[id]))
	}
	return items, nil
}

func (r *MemoryItemRepository) Update(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}

	item.CreatedAt = existing.CreatedAt
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}
	r.items[item.ID] = cloneItem(*item)
	return nil
}

func (r *MemoryItemRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}

	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryItemRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// cloneItem copies the supplier pointer so callers cannot mutate stored state
func cloneItem(item domain.Item) domain.Item {
	if item.SupplierWhatsapp != nil {
		phone := *item.SupplierWhatsapp
		item.SupplierWhatsapp = &phone
	}
	return item
}
