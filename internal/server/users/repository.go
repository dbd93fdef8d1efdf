package users

import (
	"context"
)

// Patch carries the already-hashed field changes for a profile update.
// Nil fields keep their stored value; in particular a nil PasswordHash
// leaves the stored hash byte-identical.
type Patch struct {
	FirstName    *string
	LastName     *string
	UserName     *string
	Email        *string
	PasswordHash *string
	Role         *string
	Location     *string
	Climate      *string
	SoilType     *string
	Experience   *string
}

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, patch *Patch) (*User, error)
}
