package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/shopfabrik/product-api/internal/auth"
	perrors "github.com/shopfabrik/product-api/internal/errors"
	"github.com/shopfabrik/product-api/internal/resolver"
)

// AdminGroup is the group claim required for mutating operations.
const AdminGroup = "Admin"

// Dispatcher resolves operation events to resolver calls. Each call is an
// independent unit of work; the dispatcher holds no per-call state.
type Dispatcher struct {
	resolver *resolver.Resolver
	validate *validator.Validate
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given resolver.
func NewDispatcher(r *resolver.Resolver, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		resolver: r,
		validate: validator.New(),
		logger:   logger.With("component", "dispatch"),
	}
}

// Dispatch decodes the event, enforces the Admin gate for mutating operations
// and invokes the matching resolver method, at most once.
//
// An unrecognized operation name resolves to a nil result without an error.
// A mutating operation without the Admin group claim fails with
// ErrUnauthorized before the resolver runs. A malformed event fails with
// ErrBadRequest. Resolver results come back as-is, including the absent
// results that stand in for swallowed store failures.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event, caller *auth.Identity) (any, error) {
	op, err := decode(event)
	if err != nil {
		return nil, err
	}
	if op == nil {
		d.logger.InfoContext(ctx, "unknown operation", "operation", event.OperationName)
		return nil, nil
	}

	if op.mutating() && !auth.IsMember(caller, AdminGroup) {
		return nil, perrors.ErrUnauthorized
	}

	switch o := op.(type) {
	case getProductByID:
		return d.resolver.ProductByID(ctx, o.id), nil
	case listProducts:
		return d.resolver.ListProducts(ctx), nil
	case productsByCategory:
		return d.resolver.ProductsByCategory(ctx, o.category), nil
	case createProduct:
		if err := d.validate.Struct(o.input); err != nil {
			return nil, fmt.Errorf("%w: invalid product payload: %v", perrors.ErrBadRequest, err)
		}
		return d.resolver.CreateProduct(ctx, o.input), nil
	case updateProduct:
		return d.resolver.UpdateProduct(ctx, o.update), nil
	case deleteProduct:
		return d.resolver.DeleteProduct(ctx, o.id), nil
	}
	// Unreachable: decode only returns the variants above.
	return nil, nil
}
