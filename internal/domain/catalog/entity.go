package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("vinyl name is required")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// Vinyl is the catalog entity. The backend owns it; the cart and checkout
// paths only read it, so the entity carries no mutators beyond what the
// admin back-office needs to validate before a write.
type Vinyl struct {
	name     string
	category string
	price    int64
	stock    *int64
	images   []string
}

// NewVinyl validates admin input for a catalog write. Price is in whole
// pesos (CLP has no minor unit). A nil stock means unconstrained.
func NewVinyl(name, category string, price int64, stock *int64, images []string) (*Vinyl, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if stock != nil && *stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Vinyl{
		name:     name,
		category: strings.TrimSpace(category),
		price:    price,
		stock:    stock,
		images:   images,
	}, nil
}

func (v *Vinyl) Name() string     { return v.name }
func (v *Vinyl) Category() string { return v.category }
func (v *Vinyl) Price() int64     { return v.price }
func (v *Vinyl) Stock() *int64    { return v.stock }
func (v *Vinyl) Images() []string { return v.images }
