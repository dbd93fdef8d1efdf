package observations

import "context"

// Repository is the ownership-scoped observation store. Update and delete
// succeed only on records that exist AND belong to the caller, so foreign
// records are indistinguishable from missing ones.
type Repository interface {
	List(ctx context.Context, userID string) ([]*Observation, error)
	Create(ctx context.Context, userID string, in *Input) (*Observation, error)
	Update(ctx context.Context, userID, id string, in *Input) (*Observation, error)
	Delete(ctx context.Context, userID, id string) error
}
