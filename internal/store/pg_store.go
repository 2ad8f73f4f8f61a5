package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	perrors "github.com/shopfabrik/product-api/internal/errors"
	"github.com/shopfabrik/product-api/pkg/config"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
// The collection name is injected at construction.
type PgStore struct {
	db    *pgxpool.Pool
	table string
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool, cfg config.StoreConfig) *PgStore {
	return &PgStore{
		db:    dbp,
		table: pgx.Identifier{cfg.Table}.Sanitize(),
	}
}

const productColumns = "id, name, description, price, category, sku, inventory"

// Put persists the product, overwriting any existing item with the same ID.
func (p *PgStore) Put(ctx context.Context, product Product) error {
	sql := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			sku = EXCLUDED.sku,
			inventory = EXCLUDED.inventory`, p.table, productColumns)
	_, err := p.db.Exec(ctx, sql,
		product.ID, product.Name, product.Description, product.Price,
		product.Category, product.SKU, product.Inventory)
	if err != nil {
		return perrors.NewStoreError("put", err)
	}
	return nil
}

// GetByKey retrieves a product by its primary key.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) GetByKey(ctx context.Context, id string) (*Product, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", productColumns, p.table)
	rows, err := p.db.Query(ctx, sql, id)
	if err != nil {
		return nil, perrors.NewStoreError("get", err)
	}
	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, perrors.NewStoreError("get", err)
	}
	return &product, nil
}

// ScanAll retrieves every product in the collection.
func (p *PgStore) ScanAll(ctx context.Context) ([]Product, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s", productColumns, p.table)
	rows, err := p.db.Query(ctx, sql)
	if err != nil {
		return nil, perrors.NewStoreError("scan", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[Product])
	if err != nil {
		return nil, perrors.NewStoreError("scan", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// QueryByCategory retrieves every product with the given category.
// The query is served by the secondary index on the category column.
func (p *PgStore) QueryByCategory(ctx context.Context, category string) ([]Product, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE category = $1", productColumns, p.table)
	rows, err := p.db.Query(ctx, sql, category)
	if err != nil {
		return nil, perrors.NewStoreError("query", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[Product])
	if err != nil {
		return nil, perrors.NewStoreError("query", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Update applies the merge-patch to the product with the given ID. Only the
// fields set on the patch appear in the SET list; the ID itself is never updated.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Update(ctx context.Context, id string, patch ProductPatch) error {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.SKU != nil {
		add("sku", *patch.SKU)
	}
	if patch.Inventory != nil {
		add("inventory", *patch.Inventory)
	}

	// An empty patch degenerates to a no-op update: nothing to set, but the
	// product must still exist.
	if len(set) == 0 {
		var exists bool
		sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", p.table)
		if err := p.db.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
			return perrors.NewStoreError("update", err)
		}
		if !exists {
			return perrors.ErrProductNotFound
		}
		return nil
	}

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", p.table, strings.Join(set, ", "), len(args))
	tag, err := p.db.Exec(ctx, sql, args...)
	if err != nil {
		return perrors.NewStoreError("update", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// DeleteByKey removes the product with the given primary key.
// Deleting an absent product is not an error.
func (p *PgStore) DeleteByKey(ctx context.Context, id string) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1", p.table)
	if _, err := p.db.Exec(ctx, sql, id); err != nil {
		return perrors.NewStoreError("delete", err)
	}
	return nil
}
