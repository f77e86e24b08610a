package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	unit TEXT NOT NULL,
	current_stock REAL NOT NULL,
	requirement_per_recipe REAL NOT NULL,
	recipes_today INTEGER NOT NULL,
	lead_time INTEGER NOT NULL,
	supplier_whatsapp TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

const itemColumns = `id, name, unit, current_stock, requirement_per_recipe, recipes_today,
	lead_time, supplier_whatsapp, created_at, updated_at`

// SQLiteItemRepository stores items in a local SQLite file
type SQLiteItemRepository struct {
	db *sql.DB
}

func NewSQLiteItemRepository(db *sql.DB) *SQLiteItemRepository {
	return &SQLiteItemRepository{db: db}
}

// Migrate creates the items table when missing
func (r *SQLiteItemRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to create items table: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepository) Create(ctx context.Context, item *domain.Item) error {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Unit, item.CurrentStock, item.RequirementPerRecipe,
		item.RecipesToday, item.LeadTime, nullString(item.SupplierWhatsapp),
		item.CreatedAt, item.UpdatedAt,
	)
	if isSQLiteDuplicate(err) {
		return domain.ErrItemExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func isSQLiteDuplicate(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func (r *SQLiteItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *SQLiteItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

func (r *SQLiteItemRepository) Update(ctx context.Context, item *domain.Item) error {
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `UPDATE items SET name = ?, unit = ?, current_stock = ?,
		requirement_per_recipe = ?, recipes_today = ?, lead_time = ?, supplier_whatsapp = ?,
		updated_at = ? WHERE id = ?`,
		item.Name, item.Unit, item.CurrentStock, item.RequirementPerRecipe, item.RecipesToday,
		item.LeadTime, nullString(item.SupplierWhatsapp), item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*domain.Item, error) {
	var (
		item     domain.Item
		supplier sql.NullString
	)
	err := s.Scan(
		&item.ID, &item.Name, &item.Unit, &item.CurrentStock, &item.RequirementPerRecipe,
		&item.RecipesToday, &item.LeadTime, &supplier, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplier.Valid {
		item.SupplierWhatsapp = &supplier.String
	}
	return &item, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
