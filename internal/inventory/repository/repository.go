package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

// GormItemRepository stores items in PostgreSQL through GORM
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key
const uniqueViolation = "23505"

func (r *GormItemRepository) Create(ctx context.Context, item *domain.Item) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if isPostgresDuplicate(err) {
		return domain.ErrItemExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// isPostgresDuplicate recognizes duplicate keys whether or not GORM translated the driver error
func isPostgresDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *GormItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.WithContext(ctx).Order("created_at, id").Find(&items).Error
	return items, err
}

func (r *GormItemRepository) Update(ctx context.Context, item *domain.Item) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("id = ?", item.ID).
		Select("name", "unit", "current_stock", "requirement_per_recipe",
			"recipes_today", "lead_time", "supplier_whatsapp", "updated_at").
		Updates(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *GormItemRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *GormItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Item{}).Count(&count).Error
	return count, err
}
