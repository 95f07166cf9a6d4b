package queries

import "time"

// Read models (DTO for read side)
type VinylView struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Price    int64            `json:"price"`
	Stock    *int64           `json:"stock,omitempty"`
	Images   []VinylImageView `json:"images"`
}

type VinylImageView struct {
	URL string `json:"url"`
}

// InStockFor reports whether qty items can be fulfilled. A nil stock means
// the backend does not constrain this vinyl.
func (v *VinylView) InStockFor(qty int) bool {
	return v.Stock == nil || int64(qty) <= *v.Stock
}

type CartView struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

type CartLineView struct {
	ID       int64 `json:"id"`
	CartID   int64 `json:"cart_id"`
	VinylID  int64 `json:"vinyl_id"`
	Quantity int   `json:"quantity"`
	// Removed marks the sentinel returned when a delta deleted the line.
	Removed bool `json:"removed,omitempty"`
}

// CartSummaryView is the cart with its lines joined against the catalog,
// as the storefront renders it.
type CartSummaryView struct {
	Cart  *CartView             `json:"cart"`
	Lines []*CartLineDetailView `json:"lines"`
	Total int64                 `json:"total"`
}

type CartLineDetailView struct {
	CartLineView
	Vinyl    *VinylView `json:"vinyl,omitempty"`
	Subtotal int64      `json:"subtotal"`
}

type OrderView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Status    string    `json:"status"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderLineView struct {
	ID              int64 `json:"id"`
	OrderID         int64 `json:"order_id"`
	VinylID         int64 `json:"vinyl_id"`
	Quantity        int   `json:"quantity"`
	PriceAtPurchase int64 `json:"price_at_purchase"`
}

type OrderDetailView struct {
	Order *OrderView       `json:"order"`
	Lines []*OrderLineView `json:"lines"`
}

type UserView struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	Phone           string `json:"phone,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
}

func (u *UserView) IsActive() bool {
	return u.Status == "active"
}
