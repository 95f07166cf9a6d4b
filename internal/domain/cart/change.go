package cart

import "errors"

var (
	ErrStockExceeded = errors.New("quantity exceeds available stock")
)

type Action int

const (
	// ActionNone: the line is absent and the delta would not create a
	// positive quantity. Nothing to do, no network call.
	ActionNone Action = iota
	ActionCreate
	ActionUpdate
	ActionRemove
)

// Change is the single backend mutation a quantity delta resolves to.
type Change struct {
	action   Action
	quantity int
}

func (c Change) Action() Action { return c.action }

// Quantity is the resulting line quantity. Zero for ActionNone and
// ActionRemove; a line is never persisted at quantity zero.
func (c Change) Quantity() int { return c.quantity }

// PlanChange resolves the current quantity plus a delta into exactly one of
// {none, create, update, remove}. A nil stock means unconstrained. The
// stock ceiling is enforced here, before any network call: a rejected
// change leaves the cart untouched.
func PlanChange(current, delta int, stock *int64) (Change, error) {
	next := current + delta

	if next <= 0 {
		if current == 0 {
			return Change{action: ActionNone}, nil
		}
		return Change{action: ActionRemove}, nil
	}

	if stock != nil && int64(next) > *stock {
		return Change{}, ErrStockExceeded
	}

	if current == 0 {
		return Change{action: ActionCreate, quantity: next}, nil
	}
	return Change{action: ActionUpdate, quantity: next}, nil
}
