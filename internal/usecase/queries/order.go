package queries

import (
	"context"

	"vinyl-storefront/internal/pkg/errs"
)

var ErrOrderForbidden = errs.New("order does not belong to the requesting user")

// OrderReader is the order read surface of the commerce backend.
type OrderReader interface {
	FindByID(ctx context.Context, orderID int64) (*OrderView, error)
	List(ctx context.Context) ([]*OrderView, error)
	ListByUser(ctx context.Context, userID int64) ([]*OrderView, error)
	ListItems(ctx context.Context, orderID int64) ([]*OrderLineView, error)
}

// OrderQueries serves order reads. Orders are never cached; their status
// moves server-side and a stale status is worse than a round trip.
type OrderQueries struct {
	gw OrderReader
}

func NewOrderQueries(gw OrderReader) *OrderQueries {
	return &OrderQueries{gw: gw}
}

func (q *OrderQueries) List(ctx context.Context) ([]*OrderView, error) {
	return q.gw.List(ctx)
}

func (q *OrderQueries) ListByUser(ctx context.Context, userID int64) ([]*OrderView, error) {
	return q.gw.ListByUser(ctx, userID)
}

// Detail returns the order with its lines. When requesterID is non-zero
// the order must belong to that user; admins pass zero to skip the check.
func (q *OrderQueries) Detail(ctx context.Context, orderID, requesterID int64) (*OrderDetailView, error) {
	order, err := q.gw.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if requesterID != 0 && order.UserID != requesterID {
		return nil, errs.Mark(errs.New("requester does not own order"), ErrOrderForbidden)
	}

	lines, err := q.gw.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetailView{Order: order, Lines: lines}, nil
}
