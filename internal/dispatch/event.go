// Package dispatch routes operation events to the product resolver, gating
// mutating operations on the caller's group claims.
package dispatch

import (
	"encoding/json"
	"fmt"

	perrors "github.com/shopfabrik/product-api/internal/errors"
	"github.com/shopfabrik/product-api/internal/store"
)

// Operation names accepted by the dispatcher.
const (
	OpGetProductByID     = "getProductById"
	OpListProducts       = "listProducts"
	OpProductsByCategory = "productsByCategory"
	OpCreateProduct      = "createProduct"
	OpUpdateProduct      = "updateProduct"
	OpDeleteProduct      = "deleteProduct"
)

// Event is the inbound operation event: an operation name plus a bag of
// arguments scoped to that operation.
type Event struct {
	OperationName string    `json:"operationName"`
	Arguments     Arguments `json:"arguments"`
}

// Arguments carries the raw operation arguments. Which field is meaningful
// depends on the operation name; the product payload stays raw until the
// operation shape is known.
type Arguments struct {
	ProductID string          `json:"productId,omitempty"`
	Category  string          `json:"category,omitempty"`
	Product   json.RawMessage `json:"product,omitempty"`
}

// operation is the decoded, typed form of an event: one variant per known
// operation. mutating reports whether the operation writes to the store.
type operation interface {
	mutating() bool
}

type getProductByID struct{ id string }
type listProducts struct{}
type productsByCategory struct{ category string }
type createProduct struct{ input store.Product }
type updateProduct struct{ update store.ProductUpdate }
type deleteProduct struct{ id string }

func (getProductByID) mutating() bool     { return false }
func (listProducts) mutating() bool       { return false }
func (productsByCategory) mutating() bool { return false }
func (createProduct) mutating() bool      { return true }
func (updateProduct) mutating() bool      { return true }
func (deleteProduct) mutating() bool      { return true }

// decode turns an event into its typed operation. An unrecognized operation
// name yields (nil, nil): unknown operations are not an error, they resolve to
// a null result. Structurally malformed arguments yield ErrBadRequest.
func decode(event Event) (operation, error) {
	switch event.OperationName {
	case OpGetProductByID:
		if event.Arguments.ProductID == "" {
			return nil, fmt.Errorf("%w: %s requires productId", perrors.ErrBadRequest, event.OperationName)
		}
		return getProductByID{id: event.Arguments.ProductID}, nil

	case OpListProducts:
		return listProducts{}, nil

	case OpProductsByCategory:
		if event.Arguments.Category == "" {
			return nil, fmt.Errorf("%w: %s requires category", perrors.ErrBadRequest, event.OperationName)
		}
		return productsByCategory{category: event.Arguments.Category}, nil

	case OpCreateProduct:
		if len(event.Arguments.Product) == 0 {
			return nil, fmt.Errorf("%w: %s requires a product payload", perrors.ErrBadRequest, event.OperationName)
		}
		var input store.Product
		if err := json.Unmarshal(event.Arguments.Product, &input); err != nil {
			return nil, fmt.Errorf("%w: malformed product payload: %v", perrors.ErrBadRequest, err)
		}
		return createProduct{input: input}, nil

	case OpUpdateProduct:
		if len(event.Arguments.Product) == 0 {
			return nil, fmt.Errorf("%w: %s requires a product payload", perrors.ErrBadRequest, event.OperationName)
		}
		var update store.ProductUpdate
		if err := json.Unmarshal(event.Arguments.Product, &update); err != nil {
			return nil, fmt.Errorf("%w: malformed product payload: %v", perrors.ErrBadRequest, err)
		}
		if update.ID == "" {
			return nil, fmt.Errorf("%w: %s requires product.id", perrors.ErrBadRequest, event.OperationName)
		}
		return updateProduct{update: update}, nil

	case OpDeleteProduct:
		if event.Arguments.ProductID == "" {
			return nil, fmt.Errorf("%w: %s requires productId", perrors.ErrBadRequest, event.OperationName)
		}
		return deleteProduct{id: event.Arguments.ProductID}, nil
	}
	return nil, nil
}
