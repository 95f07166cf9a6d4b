package queries

import (
	"context"
	"fmt"

	"vinyl-storefront/internal/pkg/cache"
)

func cartLinesKey(cartID int64) string {
	return fmt.Sprintf("cart_lines:%d", cartID)
}

// CartLineReader lists the lines of a cart from the commerce backend.
type CartLineReader interface {
	ListItems(ctx context.Context, cartID int64) ([]*CartLineView, error)
}

// CartQueries serves cart reads. Line listings are cached per cart with a
// short TTL because the cart is the most mutation-prone resource; every
// cart write invalidates the listing so a stale view never survives a
// local mutation.
type CartQueries struct {
	gw     CartLineReader
	vinyls *VinylQueries
	lines  *cache.Cache[[]*CartLineView]
}

func NewCartQueries(gw CartLineReader, vinyls *VinylQueries, lines *cache.Cache[[]*CartLineView]) *CartQueries {
	return &CartQueries{gw: gw, vinyls: vinyls, lines: lines}
}

// ListLines returns the cart's lines, from cache when fresh. forceRefresh
// bypasses and repopulates the cache; checkout uses it to price against
// the backend's current view rather than a cached one.
func (q *CartQueries) ListLines(ctx context.Context, cartID int64, forceRefresh bool) ([]*CartLineView, error) {
	key := cartLinesKey(cartID)
	if forceRefresh {
		q.lines.Invalidate(key)
	}
	return q.lines.GetOrLoad(ctx, key, func(ctx context.Context) ([]*CartLineView, error) {
		return q.gw.ListItems(ctx, cartID)
	})
}

// Summary joins the cart's lines against the catalog and totals them.
// A line whose vinyl cannot be resolved is surfaced without catalog data
// and contributes nothing to the total; the storefront renders it as
// unavailable instead of hiding it.
func (q *CartQueries) Summary(ctx context.Context, cart *CartView) (*CartSummaryView, error) {
	lines, err := q.ListLines(ctx, cart.ID, false)
	if err != nil {
		return nil, err
	}

	summary := &CartSummaryView{Cart: cart, Lines: make([]*CartLineDetailView, 0, len(lines))}
	for _, line := range lines {
		detail := &CartLineDetailView{CartLineView: *line}
		if vinyl, err := q.vinyls.FindByID(ctx, line.VinylID); err == nil {
			detail.Vinyl = vinyl
			detail.Subtotal = vinyl.Price * int64(line.Quantity)
			summary.Total += detail.Subtotal
		}
		summary.Lines = append(summary.Lines, detail)
	}
	return summary, nil
}

// InvalidateLines drops the cached listing for one cart.
func (q *CartQueries) InvalidateLines(cartID int64) {
	q.lines.Invalidate(cartLinesKey(cartID))
}
