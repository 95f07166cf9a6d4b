package builder

import (
	"vinyl-storefront/internal/pkg/patch"
	"vinyl-storefront/internal/usecase/queries"
)

// VinylBuilder assembles catalog read models for tests.
type VinylBuilder struct {
	view queries.VinylView
}

func NewVinylBuilder() *VinylBuilder {
	return &VinylBuilder{view: queries.VinylView{
		ID:       1,
		Name:     "Kind of Blue",
		Category: "jazz",
		Price:    15990,
		Stock:    patch.Of(int64(10)),
	}}
}

func (b *VinylBuilder) WithID(id int64) *VinylBuilder {
	b.view.ID = id
	return b
}

func (b *VinylBuilder) WithPrice(price int64) *VinylBuilder {
	b.view.Price = price
	return b
}

func (b *VinylBuilder) WithStock(stock int64) *VinylBuilder {
	b.view.Stock = patch.Of(stock)
	return b
}

func (b *VinylBuilder) WithoutStockLimit() *VinylBuilder {
	b.view.Stock = nil
	return b
}

func (b *VinylBuilder) Build() *queries.VinylView {
	view := b.view
	return &view
}
