package commands

import (
	"context"

	"vinyl-storefront/internal/domain/order"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/usecase/queries"
)

// OrderStatusWriter is the slice of the order gateway admin transitions
// need.
type OrderStatusWriter interface {
	FindByID(ctx context.Context, orderID int64) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (*queries.OrderView, error)
}

// OrderCommands is the admin write path for orders. The only mutation is
// the status, and it must follow the lifecycle.
type OrderCommands struct {
	gw OrderStatusWriter
}

func NewOrderCommands(gw OrderStatusWriter) *OrderCommands {
	return &OrderCommands{gw: gw}
}

func (c *OrderCommands) UpdateStatus(ctx context.Context, orderID int64, next string) (*queries.OrderView, error) {
	target, err := order.NewStatus(next)
	if err != nil {
		return nil, err
	}

	current, err := c.gw.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	from, err := order.NewStatus(current.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %d carries unknown status %q", orderID, current.Status)
	}
	if !from.CanTransitionTo(target) {
		return nil, errs.Mark(
			errs.Newf("order %d cannot move from %s to %s", orderID, from, target),
			order.ErrInvalidTransition,
		)
	}

	return c.gw.UpdateStatus(ctx, orderID, target.String())
}
