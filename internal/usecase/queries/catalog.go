package queries

import (
	"context"
	"fmt"
	"regexp"

	"vinyl-storefront/internal/pkg/cache"
)

const vinylListKey = "vinyl:list"

var vinylKeyPattern = regexp.MustCompile(`^vinyl:`)

func vinylKey(id int64) string {
	return fmt.Sprintf("vinyl:%d", id)
}

// VinylReader is the catalog read surface of the commerce backend.
type VinylReader interface {
	List(ctx context.Context) ([]*VinylView, error)
	FindByID(ctx context.Context, id int64) (*VinylView, error)
}

// VinylQueries serves catalog reads through the vinyl caches. The full
// listing and individual entries are cached under separate keys with the
// same TTL; a hit on either skips the backend entirely.
type VinylQueries struct {
	gw        VinylReader
	listCache *cache.Cache[[]*VinylView]
	itemCache *cache.Cache[*VinylView]
}

func NewVinylQueries(gw VinylReader, listCache *cache.Cache[[]*VinylView], itemCache *cache.Cache[*VinylView]) *VinylQueries {
	return &VinylQueries{gw: gw, listCache: listCache, itemCache: itemCache}
}

func (q *VinylQueries) List(ctx context.Context) ([]*VinylView, error) {
	return q.listCache.GetOrLoad(ctx, vinylListKey, func(ctx context.Context) ([]*VinylView, error) {
		vinyls, err := q.gw.List(ctx)
		if err != nil {
			return nil, err
		}
		// Warm the per-item cache so detail reads after a listing stay
		// local.
		for _, v := range vinyls {
			q.itemCache.Set(vinylKey(v.ID), v)
		}
		return vinyls, nil
	})
}

func (q *VinylQueries) FindByID(ctx context.Context, id int64) (*VinylView, error) {
	return q.itemCache.GetOrLoad(ctx, vinylKey(id), func(ctx context.Context) (*VinylView, error) {
		return q.gw.FindByID(ctx, id)
	})
}

// InvalidateCatalog drops every cached catalog read. Called after any
// catalog write so the next read observes the backend.
func (q *VinylQueries) InvalidateCatalog() {
	q.listCache.Invalidate(vinylListKey)
	q.itemCache.InvalidatePattern(vinylKeyPattern)
}
