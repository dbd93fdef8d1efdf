package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umar-hyatt/gardenkeeper/internal/common"
	"github.com/umar-hyatt/gardenkeeper/internal/server/auth"
	"github.com/umar-hyatt/gardenkeeper/internal/server/config"
)

type fakeRepo struct {
	created   *User
	createErr error

	byUsername map[string]*User
	byID       map[string]*User

	lastPatch *Patch
	updateErr error
}

func (f *fakeRepo) Create(ctx context.Context, u *User) (*User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "generated-id"
	u.RegisteredDate = time.Now().UTC()
	f.created = u
	return u, nil
}

func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRepo) Update(ctx context.Context, id string, patch *Patch) (*User, error) {
	f.lastPatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	applyPatch(u, patch)
	return u, nil
}

func newTestService(repo Repository) *Service {
	cfg := &config.Config{SecretKey: "k", TokenValidityDuration: time.Hour}
	return NewService(repo, cfg)
}

func strptr(s string) *string { return &s }

func registerInput() *Input {
	return &Input{
		FirstName: strptr("Alice"),
		LastName:  strptr("Green"),
		UserName:  strptr("alice"),
		Email:     strptr("alice@example.com"),
		Password:  strptr("pw1"),
	}
}

func TestRegister_HashesCredentialAndIssuesToken(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	user, token, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NotEqual(t, "pw1", user.PasswordHash, "plaintext must never be persisted")
	assert.True(t, auth.CheckPassword(user.PasswordHash, "pw1"))
	assert.Equal(t, RoleGardener, user.Role, "role defaults to gardener")
	assert.Equal(t, "beginner", user.Experience, "experience defaults to beginner")

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegister_MissingRequiredField(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	in := registerInput()
	in.Email = nil

	_, _, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRegister_InvalidEnum(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	in := registerInput()
	in.Climate = strptr("lunar")

	_, _, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRegister_DuplicateSurfacesAsAlreadyExists(t *testing.T) {
	repo := &fakeRepo{createErr: common.ErrorAlreadyExists}
	svc := newTestService(repo)

	_, _, err := svc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)

	repo := &fakeRepo{byUsername: map[string]*User{
		"alice": {ID: "u-1", UserName: "alice", PasswordHash: hash},
	}}
	svc := newTestService(repo)

	user, token, err := svc.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)

	repo := &fakeRepo{byUsername: map[string]*User{
		"alice": {ID: "u-1", UserName: "alice", PasswordHash: hash},
	}}
	svc := newTestService(repo)

	_, _, err = svc.Login(context.Background(), "alice", "pw2")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownUserIndistinguishable(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, _, err := svc.Login(context.Background(), "ghost", "pw")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUpdateProfile_NoPasswordKeepsHash(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)

	repo := &fakeRepo{byID: map[string]*User{
		"u-1": {ID: "u-1", UserName: "alice", PasswordHash: hash},
	}}
	svc := newTestService(repo)

	got, err := svc.UpdateProfile(context.Background(), "u-1", &Input{Location: strptr("Lahore")})
	require.NoError(t, err)

	assert.Nil(t, repo.lastPatch.PasswordHash, "hash must not be rewritten when password is absent")
	assert.Equal(t, hash, got.PasswordHash, "stored hash must be byte-identical")
	assert.Equal(t, "Lahore", got.Location)
}

func TestUpdateProfile_NewPasswordRehashes(t *testing.T) {
	oldHash, err := auth.HashPassword("pw1")
	require.NoError(t, err)

	repo := &fakeRepo{byID: map[string]*User{
		"u-1": {ID: "u-1", UserName: "alice", PasswordHash: oldHash},
	}}
	svc := newTestService(repo)

	got, err := svc.UpdateProfile(context.Background(), "u-1", &Input{Password: strptr("pw2")})
	require.NoError(t, err)

	assert.NotEqual(t, oldHash, got.PasswordHash)
	assert.True(t, auth.CheckPassword(got.PasswordHash, "pw2"))
	assert.False(t, auth.CheckPassword(got.PasswordHash, "pw1"))
}

func TestUpdateProfile_EnumViolation(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.UpdateProfile(context.Background(), "u-1", &Input{SoilType: strptr("volcanic")})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUpdateProfile_RepoErrorPassesThrough(t *testing.T) {
	repo := &fakeRepo{updateErr: errors.New("db down")}
	svc := newTestService(repo)

	_, err := svc.UpdateProfile(context.Background(), "u-1", &Input{})
	assert.Error(t, err)
}
