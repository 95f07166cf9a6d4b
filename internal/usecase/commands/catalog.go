package commands

import (
	"context"
	"io"

	"vinyl-storefront/internal/domain/catalog"
	"vinyl-storefront/internal/infra/gateway"
	"vinyl-storefront/internal/pkg/patch"
	"vinyl-storefront/internal/usecase/queries"
)

// CatalogWriter is the catalog write surface of the commerce backend.
type CatalogWriter interface {
	Create(ctx context.Context, create gateway.VinylCreate) (*queries.VinylView, error)
	Update(ctx context.Context, id int64, patch gateway.VinylPatch) (*queries.VinylView, error)
	UpdateWithImage(ctx context.Context, id int64, fields map[string]string, filename string, image io.Reader) (*queries.VinylView, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogCommands is the admin write path for the catalog. Every write
// invalidates the catalog caches so shoppers observe the change on their
// next read instead of after a TTL lapse.
type CatalogCommands struct {
	gw    CatalogWriter
	reads *queries.VinylQueries
}

func NewCatalogCommands(gw CatalogWriter, reads *queries.VinylQueries) *CatalogCommands {
	return &CatalogCommands{gw: gw, reads: reads}
}

type CreateVinylInput struct {
	Name     string
	Category string
	Price    int64
	Stock    *int64
	Images   []string
}

func (c *CatalogCommands) Create(ctx context.Context, in CreateVinylInput) (*queries.VinylView, error) {
	if _, err := catalog.NewVinyl(in.Name, in.Category, in.Price, in.Stock, in.Images); err != nil {
		return nil, err
	}

	view, err := c.gw.Create(ctx, gateway.VinylCreate{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		Images:   in.Images,
	})
	if err != nil {
		return nil, err
	}
	c.reads.InvalidateCatalog()
	return view, nil
}

type UpdateVinylInput struct {
	Name     *string
	Category *string
	Price    *int64
	Stock    *int64
}

func (c *CatalogCommands) Update(ctx context.Context, id int64, in UpdateVinylInput) (*queries.VinylView, error) {
	if patch.Coalesce(in.Price, 0) < 0 {
		return nil, catalog.ErrNegativePrice
	}
	if patch.Coalesce(in.Stock, 0) < 0 {
		return nil, catalog.ErrNegativeStock
	}

	view, err := c.gw.Update(ctx, id, gateway.VinylPatch{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
	})
	if err != nil {
		return nil, err
	}
	c.reads.InvalidateCatalog()
	return view, nil
}

// UpdateWithImage replaces the entry and its cover image in one multipart
// request.
func (c *CatalogCommands) UpdateWithImage(ctx context.Context, id int64, fields map[string]string, filename string, image io.Reader) (*queries.VinylView, error) {
	view, err := c.gw.UpdateWithImage(ctx, id, fields, filename, image)
	if err != nil {
		return nil, err
	}
	c.reads.InvalidateCatalog()
	return view, nil
}

func (c *CatalogCommands) Delete(ctx context.Context, id int64) error {
	if err := c.gw.Delete(ctx, id); err != nil {
		return err
	}
	c.reads.InvalidateCatalog()
	return nil
}
