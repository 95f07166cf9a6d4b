//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vinyl-storefront/internal/pkg/cache"
	"vinyl-storefront/internal/pkg/clock"
	"vinyl-storefront/internal/pkg/errs"
	"vinyl-storefront/internal/usecase/queries"
	"vinyl-storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVinylReader struct {
	vinyls    map[int64]*queries.VinylView
	listCalls int
	findCalls int
}

func (f *fakeVinylReader) List(_ context.Context) ([]*queries.VinylView, error) {
	f.listCalls++
	out := make([]*queries.VinylView, 0, len(f.vinyls))
	for _, v := range f.vinyls {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVinylReader) FindByID(_ context.Context, id int64) (*queries.VinylView, error) {
	f.findCalls++
	v, ok := f.vinyls[id]
	if !ok {
		return nil, errs.Newf("vinyl %d not found", id)
	}
	return v, nil
}

func newVinylQueries(reader *fakeVinylReader) (*queries.VinylQueries, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	q := queries.NewVinylQueries(
		reader,
		cache.New[[]*queries.VinylView](3*time.Minute, clk),
		cache.New[*queries.VinylView](3*time.Minute, clk),
	)
	return q, clk
}

func TestVinylQueries_List(t *testing.T) {
	ctx := context.Background()
	reader := &fakeVinylReader{vinyls: map[int64]*queries.VinylView{
		1: builder.NewVinylBuilder().WithID(1).Build(),
		2: builder.NewVinylBuilder().WithID(2).Build(),
	}}
	q, clk := newVinylQueries(reader)

	first, err := q.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, reader.listCalls)

	// Within the TTL the listing is served locally.
	second, err := q.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, 1, reader.listCalls)

	clk.Add(3*time.Minute + time.Second)
	_, err = q.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reader.listCalls)
}

func TestVinylQueries_ListWarmsItemCache(t *testing.T) {
	ctx := context.Background()
	reader := &fakeVinylReader{vinyls: map[int64]*queries.VinylView{
		1: builder.NewVinylBuilder().WithID(1).Build(),
	}}
	q, _ := newVinylQueries(reader)

	_, err := q.List(ctx)
	require.NoError(t, err)

	v, err := q.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.ID)
	assert.Zero(t, reader.findCalls)
}

func TestVinylQueries_InvalidateCatalog(t *testing.T) {
	ctx := context.Background()
	reader := &fakeVinylReader{vinyls: map[int64]*queries.VinylView{
		1: builder.NewVinylBuilder().WithID(1).Build(),
	}}
	q, _ := newVinylQueries(reader)

	_, err := q.List(ctx)
	require.NoError(t, err)
	_, err = q.FindByID(ctx, 1)
	require.NoError(t, err)

	q.InvalidateCatalog()

	_, err = q.List(ctx)
	require.NoError(t, err)
	_, err = q.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, reader.listCalls)
}

func TestCartQueries_Summary(t *testing.T) {
	ctx := context.Background()
	reader := &fakeVinylReader{vinyls: map[int64]*queries.VinylView{
		1: builder.NewVinylBuilder().WithID(1).WithPrice(8000).Build(),
	}}
	vinyls, clk := newVinylQueries(reader)

	lines := []*queries.CartLineView{
		builder.NewCartLineBuilder().WithID(100).WithVinylID(1).WithQuantity(3).Build(),
		builder.NewCartLineBuilder().WithID(101).WithVinylID(9).WithQuantity(1).Build(),
	}
	cartReads := queries.NewCartQueries(
		fakeCartLineReader{lines: lines},
		vinyls,
		cache.New[[]*queries.CartLineView](2*time.Minute, clk),
	)

	summary, err := cartReads.Summary(ctx, &queries.CartView{ID: 1, UserID: 7})
	require.NoError(t, err)
	require.Len(t, summary.Lines, 2)

	// The resolvable line is priced; the unresolvable one is kept but
	// contributes nothing.
	assert.Equal(t, int64(24000), summary.Lines[0].Subtotal)
	assert.Nil(t, summary.Lines[1].Vinyl)
	assert.Zero(t, summary.Lines[1].Subtotal)
	assert.Equal(t, int64(24000), summary.Total)
}

type fakeCartLineReader struct {
	lines []*queries.CartLineView
}

func (f fakeCartLineReader) ListItems(_ context.Context, _ int64) ([]*queries.CartLineView, error) {
	return f.lines, nil
}
