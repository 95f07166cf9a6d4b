package builder

import "vinyl-storefront/internal/usecase/queries"

type CartLineBuilder struct {
	view queries.CartLineView
}

func NewCartLineBuilder() *CartLineBuilder {
	return &CartLineBuilder{view: queries.CartLineView{
		ID:       100,
		CartID:   1,
		VinylID:  1,
		Quantity: 1,
	}}
}

func (b *CartLineBuilder) WithID(id int64) *CartLineBuilder {
	b.view.ID = id
	return b
}

func (b *CartLineBuilder) WithCartID(cartID int64) *CartLineBuilder {
	b.view.CartID = cartID
	return b
}

func (b *CartLineBuilder) WithVinylID(vinylID int64) *CartLineBuilder {
	b.view.VinylID = vinylID
	return b
}

func (b *CartLineBuilder) WithQuantity(qty int) *CartLineBuilder {
	b.view.Quantity = qty
	return b
}

func (b *CartLineBuilder) Build() *queries.CartLineView {
	view := b.view
	return &view
}
