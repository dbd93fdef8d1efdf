package plants

import "context"

// Repository is the ownership-scoped plant store. Every operation takes the
// verified caller identity; update and delete succeed only on records that
// exist AND belong to that caller, so a foreign record is indistinguishable
// from a missing one.
type Repository interface {
	List(ctx context.Context, userID string) ([]*Plant, error)
	Create(ctx context.Context, userID string, in *Input) (*Plant, error)
	Update(ctx context.Context, userID, id string, in *Input) (*Plant, error)
	Delete(ctx context.Context, userID, id string) error
}
