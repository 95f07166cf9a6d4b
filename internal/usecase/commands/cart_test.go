//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vinyl-storefront/internal/domain/cart"
	"vinyl-storefront/internal/pkg/cache"
	"vinyl-storefront/internal/pkg/clock"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/usecase/commands"
	"vinyl-storefront/internal/usecase/queries"
	"vinyl-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend stands in for the commerce backend behind the gateways. It
// keeps carts, cart lines, and vinyls in memory and counts every call so
// tests can assert how many requests a command issued.
type fakeBackend struct {
	carts      []*queries.CartView
	lines      map[int64][]*queries.CartLineView
	vinyls     map[int64]*queries.VinylView
	calls      map[string]int
	failDelete map[int64]error
	nextID     int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		lines:      make(map[int64][]*queries.CartLineView),
		vinyls:     make(map[int64]*queries.VinylView),
		calls:      make(map[string]int),
		failDelete: make(map[int64]error),
		nextID:     1000,
	}
}

func (f *fakeBackend) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) FindByUser(_ context.Context, userID int64) ([]*queries.CartView, error) {
	f.calls["FindByUser"]++
	var out []*queries.CartView
	for _, c := range f.carts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeBackend) Create(_ context.Context, userID int64) (*queries.CartView, error) {
	f.calls["Create"]++
	c := &queries.CartView{ID: f.id(), UserID: userID}
	f.carts = append(f.carts, c)
	return c, nil
}

func (f *fakeBackend) ListItems(_ context.Context, cartID int64) ([]*queries.CartLineView, error) {
	f.calls["ListItems"]++
	out := make([]*queries.CartLineView, len(f.lines[cartID]))
	copy(out, f.lines[cartID])
	return out, nil
}

func (f *fakeBackend) CreateItem(_ context.Context, cartID, vinylID int64, quantity int) (*queries.CartLineView, error) {
	f.calls["CreateItem"]++
	line := &queries.CartLineView{ID: f.id(), CartID: cartID, VinylID: vinylID, Quantity: quantity}
	f.lines[cartID] = append(f.lines[cartID], line)
	return line, nil
}

func (f *fakeBackend) UpdateItemQuantity(_ context.Context, itemID, cartID, vinylID int64, quantity int) (*queries.CartLineView, error) {
	f.calls["UpdateItemQuantity"]++
	for _, line := range f.lines[cartID] {
		if line.ID == itemID {
			line.Quantity = quantity
			return line, nil
		}
	}
	return nil, errs.Newf("item %d not found", itemID)
}

func (f *fakeBackend) DeleteItem(_ context.Context, itemID int64) error {
	f.calls["DeleteItem"]++
	if err := f.failDelete[itemID]; err != nil {
		return err
	}
	for cartID, lines := range f.lines {
		for i, line := range lines {
			if line.ID == itemID {
				f.lines[cartID] = append(lines[:i], lines[i+1:]...)
				return nil
			}
		}
	}
	return errs.Newf("item %d not found", itemID)
}

func (f *fakeBackend) List(_ context.Context) ([]*queries.VinylView, error) {
	f.calls["VinylList"]++
	out := make([]*queries.VinylView, 0, len(f.vinyls))
	for _, v := range f.vinyls {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeBackend) FindByID(_ context.Context, id int64) (*queries.VinylView, error) {
	f.calls["VinylFindByID"]++
	v, ok := f.vinyls[id]
	if !ok {
		return nil, errs.Newf("vinyl %d not found", id)
	}
	return v, nil
}

func (f *fakeBackend) writes() int {
	return f.calls["CreateItem"] + f.calls["UpdateItemQuantity"] + f.calls["DeleteItem"]
}

type cartFixture struct {
	backend *fakeBackend
	clk     *clock.MockClock
	vinyls  *queries.VinylQueries
	reads   *queries.CartQueries
	cmds    *commands.CartCommands
}

func newCartFixture() *cartFixture {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	backend := newFakeBackend()

	vinyls := queries.NewVinylQueries(
		backend,
		cache.New[[]*queries.VinylView](3*time.Minute, clk),
		cache.New[*queries.VinylView](3*time.Minute, clk),
	)
	reads := queries.NewCartQueries(backend, vinyls, cache.New[[]*queries.CartLineView](2*time.Minute, clk))
	cmds := commands.NewCartCommands(backend, reads, vinyls, cache.New[*queries.CartView](2*time.Minute, clk))

	return &cartFixture{backend: backend, clk: clk, vinyls: vinyls, reads: reads, cmds: cmds}
}

func (f *cartFixture) addVinyl(v *queries.VinylView) {
	f.backend.vinyls[v.ID] = v
}

func TestCartCommands_EnsureCart(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	id := cart.Authenticated(7)

	created, err := f.cmds.EnsureCart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, 1, f.backend.calls["Create"])

	// Cached: no further backend traffic for the same identity.
	again, err := f.cmds.EnsureCart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, 1, f.backend.calls["FindByUser"])
	assert.Equal(t, 1, f.backend.calls["Create"])
}

func TestCartCommands_EnsureCart_ExistingCart(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	f.backend.carts = append(f.backend.carts, &queries.CartView{ID: 42, UserID: 7})

	got, err := f.cmds.EnsureCart(ctx, cart.Authenticated(7))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Zero(t, f.backend.calls["Create"])
}

func TestCartCommands_AddOrUpdate(t *testing.T) {
	ctx := context.Background()
	id := cart.Authenticated(7)

	t.Run("absent line with positive delta creates", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())

		line, err := f.cmds.AddOrUpdate(ctx, id, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, line.Quantity)
		assert.False(t, line.Removed)
		assert.Equal(t, 1, f.backend.writes())
	})

	t.Run("existing line sums the delta", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())

		_, err := f.cmds.AddOrUpdate(ctx, id, 1, 2)
		require.NoError(t, err)
		line, err := f.cmds.AddOrUpdate(ctx, id, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, line.Quantity)
		assert.Equal(t, 1, f.backend.calls["CreateItem"])
		assert.Equal(t, 1, f.backend.calls["UpdateItemQuantity"])
	})

	t.Run("delta driving quantity to zero removes the line", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())

		_, err := f.cmds.AddOrUpdate(ctx, id, 1, 2)
		require.NoError(t, err)
		line, err := f.cmds.AddOrUpdate(ctx, id, 1, -2)
		require.NoError(t, err)
		assert.True(t, line.Removed)
		assert.Equal(t, 1, f.backend.calls["DeleteItem"])

		lines, err := f.reads.ListLines(ctx, line.CartID, false)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("negative delta on absent line is a no-op", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())

		line, err := f.cmds.AddOrUpdate(ctx, id, 1, -3)
		require.NoError(t, err)
		assert.Nil(t, line)
		assert.Zero(t, f.backend.writes())
	})

	t.Run("stock ceiling rejects before any write", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(3).Build())

		_, err := f.cmds.AddOrUpdate(ctx, id, 1, 4)
		require.ErrorIs(t, err, cart.ErrStockExceeded)
		assert.Zero(t, f.backend.writes())
	})

	t.Run("nil stock means unconstrained", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithoutStockLimit().Build())

		line, err := f.cmds.AddOrUpdate(ctx, id, 1, 500)
		require.NoError(t, err)
		assert.Equal(t, 500, line.Quantity)
	})

	t.Run("each change issues exactly one write", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())

		_, err := f.cmds.AddOrUpdate(ctx, id, 1, 1)
		require.NoError(t, err)
		_, err = f.cmds.AddOrUpdate(ctx, id, 1, 1)
		require.NoError(t, err)
		_, err = f.cmds.AddOrUpdate(ctx, id, 1, -2)
		require.NoError(t, err)
		assert.Equal(t, 3, f.backend.writes())
	})
}

func TestCartCommands_AddOrUpdate_InvalidatesLineCache(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture()
	id := cart.Authenticated(7)
	f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())

	line, err := f.cmds.AddOrUpdate(ctx, id, 1, 1)
	require.NoError(t, err)

	// The next read reflects the mutation immediately, not after TTL.
	lines, err := f.reads.ListLines(ctx, line.CartID, false)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	_, err = f.cmds.AddOrUpdate(ctx, id, 1, 2)
	require.NoError(t, err)
	lines, err = f.reads.ListLines(ctx, line.CartID, false)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCartCommands_Remove(t *testing.T) {
	ctx := context.Background()
	id := cart.Authenticated(7)

	t.Run("deletes the line regardless of quantity", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())

		line, err := f.cmds.AddOrUpdate(ctx, id, 1, 5)
		require.NoError(t, err)
		require.NoError(t, f.cmds.Remove(ctx, id, 1))

		lines, err := f.reads.ListLines(ctx, line.CartID, false)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("absent vinyl reports not found", func(t *testing.T) {
		f := newCartFixture()
		err := f.cmds.Remove(ctx, id, 99)
		require.ErrorIs(t, err, commands.ErrCartLineNotFound)
	})
}

func TestCartCommands_Clear(t *testing.T) {
	ctx := context.Background()
	id := cart.Authenticated(7)

	t.Run("removes every line", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())
		f.addVinyl(builder.NewVinylBuilder().WithID(2).WithStock(10).Build())

		_, err := f.cmds.AddOrUpdate(ctx, id, 1, 1)
		require.NoError(t, err)
		line, err := f.cmds.AddOrUpdate(ctx, id, 2, 1)
		require.NoError(t, err)

		require.NoError(t, f.cmds.Clear(ctx, id))
		lines, err := f.reads.ListLines(ctx, line.CartID, false)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("continues past a failed deletion and reports it", func(t *testing.T) {
		f := newCartFixture()
		f.addVinyl(builder.NewVinylBuilder().WithID(1).WithStock(10).Build())
		f.addVinyl(builder.NewVinylBuilder().WithID(2).WithStock(10).Build())

		first, err := f.cmds.AddOrUpdate(ctx, id, 1, 1)
		require.NoError(t, err)
		_, err = f.cmds.AddOrUpdate(ctx, id, 2, 1)
		require.NoError(t, err)
		f.backend.failDelete[first.ID] = errs.New("backend unavailable")

		err = f.cmds.Clear(ctx, id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2")
		assert.Equal(t, 2, f.backend.calls["DeleteItem"])
	})
}
