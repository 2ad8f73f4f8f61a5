// Package resolver implements the six product operations on top of the store.
package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopfabrik/product-api/internal/store"
)

// Resolver translates resolved operations into single store calls.
//
// Store failures are deliberately not surfaced: every method downgrades them
// to an absent result (nil or empty slice) after logging. Callers distinguish
// success from failure only by the presence of a populated result. This is
// observable caller-facing behavior and must stay this way.
type Resolver struct {
	store  store.ProductStore
	logger *slog.Logger
}

// New creates a Resolver over the given store.
func New(productStore store.ProductStore, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:  productStore,
		logger: logger.With("component", "resolver"),
	}
}

// CreateProduct persists the product as a new item. When the input carries no
// ID, a fresh UUID is generated and assigned first. An existing item with the
// same ID is overwritten, since the store call is an unconditional put.
// Returns the persisted product, or nil if the store call failed.
func (r *Resolver) CreateProduct(ctx context.Context, input store.Product) *store.Product {
	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	if err := r.store.Put(ctx, input); err != nil {
		r.logger.WarnContext(ctx, "create failed", "id", input.ID, "error", err)
		return nil
	}
	return &input
}

// ProductByID fetches one product by primary key.
// Returns nil when the product is absent or the store call failed.
func (r *Resolver) ProductByID(ctx context.Context, id string) *store.Product {
	product, err := r.store.GetByKey(ctx, id)
	if err != nil {
		r.logger.WarnContext(ctx, "get failed", "id", id, "error", err)
		return nil
	}
	return product
}

// ListProducts returns every product in the collection, unbounded.
// Returns an empty slice when the store call failed.
func (r *Resolver) ListProducts(ctx context.Context) []store.Product {
	products, err := r.store.ScanAll(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "scan failed", "error", err)
		return []store.Product{}
	}
	return products
}

// ProductsByCategory returns every product sharing the given category, via the
// secondary access path. Returns an empty slice when the store call failed.
func (r *Resolver) ProductsByCategory(ctx context.Context, category string) []store.Product {
	products, err := r.store.QueryByCategory(ctx, category)
	if err != nil {
		r.logger.WarnContext(ctx, "query by category failed", "category", category, "error", err)
		return []store.Product{}
	}
	return products
}

// UpdateProduct applies the merge-patch to the addressed product: only fields
// present on the patch change, the ID is immutable. On success the
// caller-supplied update is echoed back, not the post-merge record.
// Returns nil when the product is absent or the store call failed.
func (r *Resolver) UpdateProduct(ctx context.Context, update store.ProductUpdate) *store.ProductUpdate {
	if err := r.store.Update(ctx, update.ID, update.ProductPatch); err != nil {
		r.logger.WarnContext(ctx, "update failed", "id", update.ID, "error", err)
		return nil
	}
	return &update
}

// DeleteProduct removes the product with the given ID. Absence of the product
// is not an error. Returns the ID on success, nil if the store call failed.
func (r *Resolver) DeleteProduct(ctx context.Context, id string) *string {
	if err := r.store.DeleteByKey(ctx, id); err != nil {
		r.logger.WarnContext(ctx, "delete failed", "id", id, "error", err)
		return nil
	}
	return &id
}
