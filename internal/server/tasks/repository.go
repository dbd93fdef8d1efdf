package tasks

import "context"

// Repository is the ownership-scoped task store. Update and delete succeed
// only on records that exist AND belong to the caller, so foreign records are
// indistinguishable from missing ones.
type Repository interface {
	List(ctx context.Context, userID string) ([]*Task, error)
	Create(ctx context.Context, userID string, in *Input) (*Task, error)
	Update(ctx context.Context, userID, id string, in *Input) (*Task, error)
	Delete(ctx context.Context, userID, id string) error
}
