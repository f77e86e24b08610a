package domain

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
)

// ErrItemNotFound is returned by repositories when no item has the given id
var ErrItemNotFound = errors.New("item not found")

// ErrItemExists is returned by repositories when an item with the same id is already stored
var ErrItemExists = errors.New("item already exists")

// Item is a raw material tracked in stock
type Item struct {
	ID                   string    `json:"id" gorm:"primaryKey;type:text"`
	Name                 string    `json:"name" gorm:"not null"`
	Unit                 string    `json:"unit" gorm:"not null"`
	CurrentStock         float64   `json:"currentStock" gorm:"not null"`
	RequirementPerRecipe float64   `json:"requirementPerRecipe" gorm:"not null"`
	RecipesToday         int       `json:"recipesToday" gorm:"not null"`
	LeadTime             int       `json:"leadTime" gorm:"not null"`
	SupplierWhatsapp     *string   `json:"supplierWhatsapp,omitempty"`
	CreatedAt            time.Time `json:"-"`
	UpdatedAt            time.Time `json:"lastUpdated"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// HasSupplierContact reports whether a supplier WhatsApp number is set
func (i Item) HasSupplierContact() bool {
	return i.SupplierWhatsapp != nil && strings.TrimSpace(*i.SupplierWhatsapp) != ""
}

// ValidationError describes an item field that failed ingestion checks
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks the invariants the stock evaluator relies on
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if strings.TrimSpace(i.Unit) == "" {
		return &ValidationError{Field: "unit", Message: "is required"}
	}
	if err := nonNegative("currentStock", i.CurrentStock); err != nil {
		return err
	}
	if err := nonNegative("requirementPerRecipe", i.RequirementPerRecipe); err != nil {
		return err
	}
	if i.RecipesToday < 0 {
		return &ValidationError{Field: "recipesToday", Message: "cannot be negative"}
	}
	if i.LeadTime < 0 {
		return &ValidationError{Field: "leadTime", Message: "cannot be negative"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Message: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Message: "cannot be negative"}
	}
	return nil
}

// ItemRepository defines the contract for item storage
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id string) (*Item, error)
	FindAll(ctx context.Context) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
