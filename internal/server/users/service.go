package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/server/auth"
	"github.com/umar-hyatt/gardenkeeper/internal/server/config"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

func deref(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

// Register validates the input, hashes the credential and creates the user.
// Returns the created user together with a freshly issued token.
func (s *Service) Register(ctx context.Context, in *Input) (*User, string, error) {

	if err := in.ValidateCreate(); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(*in.Password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &User{
		FirstName:    *in.FirstName,
		LastName:     *in.LastName,
		UserName:     *in.UserName,
		Email:        *in.Email,
		PasswordHash: hash,
		Role:         deref(in.Role, RoleGardener),
		Location:     deref(in.Location, ""),
		Climate:      deref(in.Climate, ""),
		SoilType:     deref(in.SoilType, ""),
		Experience:   deref(in.Experience, "beginner"),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login checks the candidate credential against the stored hash. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*User, string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's own record. The
// credential is re-hashed only when the request carries a new password;
// otherwise the stored hash is left untouched.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in *Input) (*User, error) {

	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	patch := &Patch{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		UserName:   in.UserName,
		Email:      in.Email,
		Role:       in.Role,
		Location:   in.Location,
		Climate:    in.Climate,
		SoilType:   in.SoilType,
		Experience: in.Experience,
	}

	if in.Password != nil && *in.Password != "" {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, common.ErrorInternal
		}
		patch.PasswordHash = &hash
	}

	return s.repo.Update(ctx, userID, patch)
}
