package queries

import (
	"context"
	"fmt"

	"vinyl-storefront/internal/pkg/cache"
)

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// UserReader is the user read surface of the backend.
type UserReader interface {
	List(ctx context.Context) ([]*UserView, error)
	FindByID(ctx context.Context, id int64) (*UserView, error)
}

// UserQueries serves user reads. Individual profiles are cached; the
// admin listing is not, it is rare and always wants fresh data.
type UserQueries struct {
	gw    UserReader
	users *cache.Cache[*UserView]
}

func NewUserQueries(gw UserReader, users *cache.Cache[*UserView]) *UserQueries {
	return &UserQueries{gw: gw, users: users}
}

func (q *UserQueries) List(ctx context.Context) ([]*UserView, error) {
	return q.gw.List(ctx)
}

func (q *UserQueries) FindByID(ctx context.Context, id int64) (*UserView, error) {
	return q.users.GetOrLoad(ctx, userKey(id), func(ctx context.Context) (*UserView, error) {
		return q.gw.FindByID(ctx, id)
	})
}

// InvalidateUser drops one cached profile after a write.
func (q *UserQueries) InvalidateUser(id int64) {
	q.users.Invalidate(userKey(id))
}
