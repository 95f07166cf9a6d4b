package order

import "errors"

var (
	ErrNoLines         = errors.New("order needs at least one line")
	ErrInvalidQuantity = errors.New("line quantity must be at least 1")
	ErrNegativePrice   = errors.New("price at purchase cannot be negative")
)

// Line is an immutable order line snapshot. PriceAtPurchase is captured at
// checkout time and never re-priced when the catalog changes.
type Line struct {
	vinylID         int64
	quantity        int
	priceAtPurchase int64
}

func NewLine(vinylID int64, quantity int, priceAtPurchase int64) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if priceAtPurchase < 0 {
		return Line{}, ErrNegativePrice
	}
	return Line{
		vinylID:         vinylID,
		quantity:        quantity,
		priceAtPurchase: priceAtPurchase,
	}, nil
}

func (l Line) VinylID() int64         { return l.vinylID }
func (l Line) Quantity() int          { return l.quantity }
func (l Line) PriceAtPurchase() int64 { return l.priceAtPurchase }

func (l Line) Subtotal() int64 {
	return l.priceAtPurchase * int64(l.quantity)
}

// Order is the checkout aggregate before persistence. It is created in
// pending status; the checkout flow moves it to paid once every line is
// accepted by the backend.
type Order struct {
	userID int64
	status Status
	lines  []Line
	total  int64
}

func NewPendingOrder(userID int64, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}

	return &Order{
		userID: userID,
		status: StatusPending,
		lines:  lines,
		total:  total,
	}, nil
}

func (o *Order) UserID() int64  { return o.userID }
func (o *Order) Status() Status { return o.status }
func (o *Order) Lines() []Line  { return o.lines }
func (o *Order) Total() int64   { return o.total }
