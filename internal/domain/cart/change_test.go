//go:build unit

package cart_test

import (
	"testing"

	"vinyl-storefront/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stock(n int64) *int64 { return &n }

type testCase struct {
	name       string
	current    int
	delta      int
	stock      *int64
	wantAction cart.Action
	wantQty    int
	errIs      error
}

func TestPlanChange(t *testing.T) {
	runCases(t, []testCase{
		{
			name:       "first add creates line",
			current:    0,
			delta:      2,
			stock:      stock(3),
			wantAction: cart.ActionCreate,
			wantQty:    2,
		},
		{
			name:       "increment updates existing line",
			current:    2,
			delta:      1,
			stock:      stock(3),
			wantAction: cart.ActionUpdate,
			wantQty:    3,
		},
		{
			name:       "increment at stock ceiling rejected",
			current:    3,
			delta:      1,
			stock:      stock(3),
			errIs:      cart.ErrStockExceeded,
		},
		{
			name:       "add exceeding stock rejected",
			current:    0,
			delta:      4,
			stock:      stock(3),
			errIs:      cart.ErrStockExceeded,
		},
		{
			name:       "nil stock is unconstrained",
			current:    100,
			delta:      100,
			wantAction: cart.ActionUpdate,
			wantQty:    200,
		},
		{
			name:       "decrement to zero removes line",
			current:    1,
			delta:      -1,
			stock:      stock(3),
			wantAction: cart.ActionRemove,
		},
		{
			name:       "decrement below zero removes line",
			current:    2,
			delta:      -5,
			stock:      stock(3),
			wantAction: cart.ActionRemove,
		},
		{
			name:       "decrement on absent line is a no-op",
			current:    0,
			delta:      -1,
			stock:      stock(3),
			wantAction: cart.ActionNone,
		},
		{
			name:       "decrement keeps positive quantity",
			current:    3,
			delta:      -1,
			stock:      stock(3),
			wantAction: cart.ActionUpdate,
			wantQty:    2,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			change, err := cart.PlanChange(c.current, c.delta, c.stock)

			if c.errIs != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantAction, change.Action())
			assert.Equal(t, c.wantQty, change.Quantity())
		})
	}
}

func TestIdentity(t *testing.T) {
	auth := cart.Authenticated(7)
	assert.False(t, auth.IsGuest())
	assert.Equal(t, int64(7), auth.UserID())
	assert.Equal(t, "cart:user:7", auth.CacheKey())

	guest := cart.Guest(2)
	assert.True(t, guest.IsGuest())
	assert.Equal(t, int64(2), guest.UserID())
}
