package cart

import "strconv"

// Identity is the cart owner threaded through every cart and checkout
// operation. A guest identity maps to the shared backend guest user row;
// checkout requires an authenticated identity.
type Identity struct {
	userID int64
	guest  bool
}

func Authenticated(userID int64) Identity {
	return Identity{userID: userID}
}

func Guest(guestUserID int64) Identity {
	return Identity{userID: guestUserID, guest: true}
}

func (i Identity) UserID() int64 { return i.userID }
func (i Identity) IsGuest() bool { return i.guest }

func (i Identity) CacheKey() string {
	return "cart:user:" + strconv.FormatInt(i.userID, 10)
}
