package commands

import (
	"context"

	"vinyl-storefront/internal/domain/cart"
	"vinyl-storefront/internal/pkg/cache"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/usecase/queries"
)

var ErrCartLineNotFound = errs.New("cart line not found")

// CartWriter is the cart write surface of the commerce backend.
type CartWriter interface {
	FindByUser(ctx context.Context, userID int64) ([]*queries.CartView, error)
	Create(ctx context.Context, userID int64) (*queries.CartView, error)
	CreateItem(ctx context.Context, cartID, vinylID int64, quantity int) (*queries.CartLineView, error)
	UpdateItemQuantity(ctx context.Context, itemID, cartID, vinylID int64, quantity int) (*queries.CartLineView, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

// CartCommands mutates carts on the backend while keeping the local
// caches consistent. Every quantity change is planned against the current
// line set and the catalog's stock ceiling before any request is issued,
// so at most one backend write happens per change.
type CartCommands struct {
	gw     CartWriter
	reads  *queries.CartQueries
	vinyls *queries.VinylQueries
	carts  *cache.Cache[*queries.CartView]
}

func NewCartCommands(gw CartWriter, reads *queries.CartQueries, vinyls *queries.VinylQueries, carts *cache.Cache[*queries.CartView]) *CartCommands {
	return &CartCommands{gw: gw, reads: reads, vinyls: vinyls, carts: carts}
}

// EnsureCart returns the identity's cart, creating it on the backend the
// first time. The resolved cart is cached per identity so repeated
// operations skip the lookup.
func (c *CartCommands) EnsureCart(ctx context.Context, id cart.Identity) (*queries.CartView, error) {
	return c.carts.GetOrLoad(ctx, id.CacheKey(), func(ctx context.Context) (*queries.CartView, error) {
		existing, err := c.gw.FindByUser(ctx, id.UserID())
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return existing[0], nil
		}
		return c.gw.Create(ctx, id.UserID())
	})
}

// AddOrUpdate applies a signed quantity delta for a vinyl. The resulting
// line is returned; a removal returns the line flagged Removed, and a
// no-op (negative delta on an absent line) returns nil.
func (c *CartCommands) AddOrUpdate(ctx context.Context, id cart.Identity, vinylID int64, delta int) (*queries.CartLineView, error) {
	cartView, err := c.EnsureCart(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := c.reads.ListLines(ctx, cartView.ID, false)
	if err != nil {
		return nil, err
	}
	var existing *queries.CartLineView
	for _, line := range lines {
		if line.VinylID == vinylID {
			existing = line
			break
		}
	}
	current := 0
	if existing != nil {
		current = existing.Quantity
	}

	vinyl, err := c.vinyls.FindByID(ctx, vinylID)
	if err != nil {
		return nil, err
	}

	change, err := cart.PlanChange(current, delta, vinyl.Stock)
	if err != nil {
		return nil, err
	}

	var result *queries.CartLineView
	switch change.Action() {
	case cart.ActionNone:
		return nil, nil
	case cart.ActionCreate:
		result, err = c.gw.CreateItem(ctx, cartView.ID, vinylID, change.Quantity())
	case cart.ActionUpdate:
		result, err = c.gw.UpdateItemQuantity(ctx, existing.ID, cartView.ID, vinylID, change.Quantity())
	case cart.ActionRemove:
		if err = c.gw.DeleteItem(ctx, existing.ID); err == nil {
			removed := *existing
			removed.Removed = true
			result = &removed
		}
	}
	if err != nil {
		return nil, err
	}

	c.reads.InvalidateLines(cartView.ID)
	return result, nil
}

// Remove deletes the line holding a vinyl regardless of its quantity.
func (c *CartCommands) Remove(ctx context.Context, id cart.Identity, vinylID int64) error {
	cartView, err := c.EnsureCart(ctx, id)
	if err != nil {
		return err
	}

	lines, err := c.reads.ListLines(ctx, cartView.ID, false)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.VinylID == vinylID {
			if err := c.gw.DeleteItem(ctx, line.ID); err != nil {
				return err
			}
			c.reads.InvalidateLines(cartView.ID)
			return nil
		}
	}
	return errs.Mark(errs.Newf("vinyl %d not in cart %d", vinylID, cartView.ID), ErrCartLineNotFound)
}

// Clear deletes every line of the identity's cart. Deletions continue
// past individual failures; the error reports how many lines survived.
func (c *CartCommands) Clear(ctx context.Context, id cart.Identity) error {
	cartView, err := c.EnsureCart(ctx, id)
	if err != nil {
		return err
	}

	lines, err := c.reads.ListLines(ctx, cartView.ID, true)
	if err != nil {
		return err
	}

	failed := 0
	for _, line := range lines {
		if err := c.gw.DeleteItem(ctx, line.ID); err != nil {
			failed++
		}
	}
	c.reads.InvalidateLines(cartView.ID)
	if failed > 0 {
		return errs.Newf("failed to clear cart %d: %d of %d lines remain", cartView.ID, failed, len(lines))
	}
	return nil
}
