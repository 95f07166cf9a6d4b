//go:build unit

package order_test

import (
	"testing"

	"vinyl-storefront/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		price    int64
		errIs    error
	}{
		{name: "valid line", quantity: 3, price: 8000},
		{name: "zero quantity rejected", quantity: 0, price: 8000, errIs: order.ErrInvalidQuantity},
		{name: "negative quantity rejected", quantity: -1, price: 8000, errIs: order.ErrInvalidQuantity},
		{name: "free item allowed", quantity: 1, price: 0},
		{name: "negative price rejected", quantity: 1, price: -100, errIs: order.ErrNegativePrice},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			line, err := order.NewLine(1, c.quantity, c.price)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.price*int64(c.quantity), line.Subtotal())
		})
	}
}

func TestNewPendingOrder(t *testing.T) {
	t.Run("total sums line subtotals", func(t *testing.T) {
		l1, err := order.NewLine(1, 3, 8000)
		require.NoError(t, err)
		l2, err := order.NewLine(2, 2, 12500)
		require.NoError(t, err)

		o, err := order.NewPendingOrder(7, []order.Line{l1, l2})
		require.NoError(t, err)

		assert.Equal(t, int64(7), o.UserID())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, int64(3*8000+2*12500), o.Total())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("empty order rejected", func(t *testing.T) {
		_, err := order.NewPendingOrder(7, nil)
		require.ErrorIs(t, err, order.ErrNoLines)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to order.Status
		allowed  bool
	}{
		{order.StatusPending, order.StatusPaid, true},
		{order.StatusPending, order.StatusProcessing, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusProcessing, order.StatusPaid, true},
		{order.StatusProcessing, order.StatusCancelled, true},
		{order.StatusPaid, order.StatusCancelled, true},
		{order.StatusPaid, order.StatusPending, false},
		{order.StatusCancelled, order.StatusPaid, false},
		{order.StatusCancelled, order.StatusPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "paid", "cancelled"} {
		s, err := order.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := order.NewStatus("shipped")
	require.ErrorIs(t, err, order.ErrInvalidStatus)
}
