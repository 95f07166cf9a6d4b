package commands

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"vinyl-storefront/internal/domain/cart"
	"vinyl-storefront/internal/domain/order"
	"vinyl-storefront/internal/infra/gateway"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/usecase/queries"
)

var (
	ErrAuthenticationRequired = errs.New("checkout requires an authenticated user")
	ErrEmptyCart              = errs.New("cart has no lines")
	ErrCheckoutInFlight       = errs.New("checkout already in progress for this key")
	// ErrOrderIncomplete marks an order left neither paid nor cancelled on
	// the backend; the message carries the order id for manual repair.
	ErrOrderIncomplete = errs.New("order left in incomplete state")
)

// OrderWriter is the order write surface of the commerce backend.
type OrderWriter interface {
	Create(ctx context.Context, userID int64, status string, total int64) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (*queries.OrderView, error)
	CreateItems(ctx context.Context, lines []gateway.OrderLineCreate) ([]*queries.OrderLineView, error)
}

// idempotencyGuard deduplicates checkout requests by client-supplied key.
// A completed checkout replays its result; one still in flight is
// rejected rather than run twice.
type idempotencyGuard struct {
	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
	done     map[uuid.UUID]*queries.OrderView
}

func newIdempotencyGuard() *idempotencyGuard {
	return &idempotencyGuard{
		inflight: make(map[uuid.UUID]struct{}),
		done:     make(map[uuid.UUID]*queries.OrderView),
	}
}

func (g *idempotencyGuard) begin(key uuid.UUID) (*queries.OrderView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if view, ok := g.done[key]; ok {
		return view, nil
	}
	if _, ok := g.inflight[key]; ok {
		return nil, errs.Mark(errs.Newf("idempotency key %s in flight", key), ErrCheckoutInFlight)
	}
	g.inflight[key] = struct{}{}
	return nil, nil
}

func (g *idempotencyGuard) finish(key uuid.UUID, view *queries.OrderView) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
	g.done[key] = view
}

func (g *idempotencyGuard) abort(key uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}

// CheckoutCommands materializes a cart into a paid order. The backend has
// no transactions, so the order is written in stages: a pending header,
// then every line in one batch, then the paid status. Any stage failure
// cancels the header; if even the cancel fails the order id is surfaced
// through ErrOrderIncomplete.
type CheckoutCommands struct {
	orders OrderWriter
	carts  *CartCommands
	reads  *queries.CartQueries
	vinyls *queries.VinylQueries
	guard  *idempotencyGuard
}

func NewCheckoutCommands(orders OrderWriter, carts *CartCommands, reads *queries.CartQueries, vinyls *queries.VinylQueries) *CheckoutCommands {
	return &CheckoutCommands{
		orders: orders,
		carts:  carts,
		reads:  reads,
		vinyls: vinyls,
		guard:  newIdempotencyGuard(),
	}
}

// CheckoutOptions tunes materialization. ClearCart drains the cart after
// the order is paid; leaving lines behind is for callers that re-order
// from a kept cart.
type CheckoutOptions struct {
	ClearCart bool
}

func (c *CheckoutCommands) CreateFromCartPaid(ctx context.Context, id cart.Identity, key uuid.UUID, opts CheckoutOptions) (*queries.OrderView, error) {
	if id.IsGuest() {
		return nil, errs.Mark(errs.New("guest identity cannot check out"), ErrAuthenticationRequired)
	}

	if replay, err := c.guard.begin(key); replay != nil || err != nil {
		return replay, err
	}

	view, err := c.checkout(ctx, id, opts)
	if err != nil {
		c.guard.abort(key)
		return nil, err
	}
	c.guard.finish(key, view)
	return view, nil
}

func (c *CheckoutCommands) checkout(ctx context.Context, id cart.Identity, opts CheckoutOptions) (*queries.OrderView, error) {
	cartView, err := c.carts.EnsureCart(ctx, id)
	if err != nil {
		return nil, err
	}

	// Pricing reads the backend's current cart, not the cached one.
	lines, err := c.reads.ListLines(ctx, cartView.ID, true)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.Mark(errs.Newf("cart %d is empty", cartView.ID), ErrEmptyCart)
	}

	orderLines := make([]order.Line, 0, len(lines))
	for _, line := range lines {
		vinyl, err := c.vinyls.FindByID(ctx, line.VinylID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to price cart line")
		}
		ol, err := order.NewLine(line.VinylID, line.Quantity, vinyl.Price)
		if err != nil {
			return nil, err
		}
		orderLines = append(orderLines, ol)
	}

	pending, err := order.NewPendingOrder(id.UserID(), orderLines)
	if err != nil {
		return nil, err
	}

	header, err := c.orders.Create(ctx, pending.UserID(), pending.Status().String(), pending.Total())
	if err != nil {
		return nil, err
	}

	creates := make([]gateway.OrderLineCreate, len(orderLines))
	for i, ol := range orderLines {
		creates[i] = gateway.OrderLineCreate{
			OrderID:         header.ID,
			VinylID:         ol.VinylID(),
			Quantity:        ol.Quantity(),
			PriceAtPurchase: ol.PriceAtPurchase(),
		}
	}
	if _, err := c.orders.CreateItems(ctx, creates); err != nil {
		return nil, c.cancel(ctx, header.ID, err)
	}

	paid, err := c.orders.UpdateStatus(ctx, header.ID, order.StatusPaid.String())
	if err != nil {
		return nil, c.cancel(ctx, header.ID, err)
	}

	// The order stands regardless of whether the cart empties cleanly.
	if opts.ClearCart {
		if err := c.carts.Clear(ctx, id); err != nil {
			slog.Warn("failed to clear cart after checkout", "cart_id", cartView.ID, "error", err)
		}
	}
	return paid, nil
}

// cancel compensates a failed checkout stage by cancelling the pending
// order, preserving the original cause.
func (c *CheckoutCommands) cancel(ctx context.Context, orderID int64, cause error) error {
	if _, err := c.orders.UpdateStatus(ctx, orderID, order.StatusCancelled.String()); err != nil {
		return errs.Mark(errs.Wrapf(cause, "order %d could not be cancelled after failure", orderID), ErrOrderIncomplete)
	}
	return errs.Wrapf(cause, "checkout failed, order %d cancelled", orderID)
}
