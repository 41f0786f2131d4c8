// Package cart holds per-actor shopping cart line items. Every cart belongs
// to exactly one owner key: an account id for authenticated customers or an
// anonymous cart-session id. The two stores are disjoint and are only bridged
// by Merge on login.
package cart

import (
	"context"
	"errors"

	"backend/internal/models"
)

// ErrUnavailable wraps durable-store failures so callers can fall back to the
// session store instead of losing an add request.
var ErrUnavailable = errors.New("cart store unavailable")

type Store interface {
	// Add inserts the line item or, when a line with the same
	// (productId, flavor) already exists for the owner, increments its
	// quantity by item.Quantity.
	Add(ctx context.Context, owner string, item models.CartItem) error
	// Remove deletes the matching line. Removing an absent line is a no-op.
	Remove(ctx context.Context, owner, productID, flavor string) error
	// SetQuantity updates the line's quantity in place. Quantity zero is
	// equivalent to Remove.
	SetQuantity(ctx context.Context, owner, productID, flavor string, quantity int) error
	Clear(ctx context.Context, owner string) error
	List(ctx context.Context, owner string) ([]models.CartItem, error)
}

// Stores bundles the two cart backends selected per actor at request time.
type Stores struct {
	Durable Store
	Session Store
}

// Merge moves every line from the source cart into the destination cart,
// summing quantities on matching (productId, flavor) keys. Each source line is
// removed as soon as it lands, so a merge that fails partway leaves only the
// unmoved lines behind and a retry never double-counts. Called once on login
// so items picked while anonymous survive.
func Merge(ctx context.Context, from Store, fromOwner string, to Store, toOwner string) error {
	items, err := from.List(ctx, fromOwner)
	if err != nil {
		return err
	}

	for _, item := range items {
		item.Owner = toOwner
		if err := to.Add(ctx, toOwner, item); err != nil {
			return err
		}
		if err := from.Remove(ctx, fromOwner, item.ProductID, item.Flavor); err != nil {
			return err
		}
	}

	return nil
}

// normalizeItem enforces the line-item invariants shared by both stores:
// quantity defaults to one and the unit price is never negative.
func normalizeItem(item models.CartItem) models.CartItem {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.Price < 0 {
		item.Price = 0
	}
	return item
}
