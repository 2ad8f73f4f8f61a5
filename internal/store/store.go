// Package store provides an interface for product storage operations.
package store

import (
	"context"
)

// Product represents a product record in the collection. ID is the primary
// key; Category is the partition key of the secondary access path. SKU and
// Inventory are optional attributes.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"    validate:"required"`
	SKU         string  `json:"sku,omitempty"`
	Inventory   int64   `json:"inventory,omitempty"`
}

// ProductPatch is a merge-patch over a product: only fields that are set
// change, nil fields are left untouched. The product ID is not patchable.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	Inventory   *int64   `json:"inventory,omitempty"`
}

// IsZero reports whether the patch carries no fields at all.
func (p ProductPatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.SKU == nil && p.Inventory == nil
}

// Apply merges the set fields of the patch into dst.
func (p ProductPatch) Apply(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.SKU != nil {
		dst.SKU = *p.SKU
	}
	if p.Inventory != nil {
		dst.Inventory = *p.Inventory
	}
}

// ProductUpdate is a patch addressed to a single product.
type ProductUpdate struct {
	ID string `json:"id"`
	ProductPatch
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations
// (e.g., in-memory, database). Every method maps onto a single store call;
// failures carry the native cause wrapped in a StoreError.
type ProductStore interface {
	// Put persists the product as a new item, overwriting any existing item
	// with the same ID.
	Put(ctx context.Context, product Product) error

	// GetByKey retrieves a single product by its primary key.
	// Returns ErrProductNotFound if no product exists with the given ID.
	GetByKey(ctx context.Context, id string) (*Product, error)

	// ScanAll returns every product in the collection. Order is store-defined.
	ScanAll(ctx context.Context) ([]Product, error)

	// QueryByCategory returns every product with the given category, via the
	// secondary access path. Order is store-defined.
	QueryByCategory(ctx context.Context, category string) ([]Product, error)

	// Update applies the merge-patch to the product with the given ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id string, patch ProductPatch) error

	// DeleteByKey removes the product with the given primary key.
	// Deleting an absent product is not an error.
	DeleteByKey(ctx context.Context, id string) error
}
