package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
	repo "github.com/ardiansyahrp/orderflow/internal/domain/repository"
)

type fakeUserRepo struct {
	users     map[string]entity.User
	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func TestCreateUser(t *testing.T) {
	r := newFakeUserRepo()
	svc := NewUserService(r, quietLogger())

	u, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "Ann", Email: "ann@x.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "ann@x.com", u.Email)
}

func TestGetUser(t *testing.T) {
	r := newFakeUserRepo()
	svc := NewUserService(r, quietLogger())

	created, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ann", got.Name)
}

func TestGetUser_InvalidID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), quietLogger())

	_, err := svc.GetUser(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrInvalidUserID)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), quietLogger())

	_, err := svc.GetUser(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUser_RepositoryFailurePropagates(t *testing.T) {
	bang := errors.New("connection reset")
	svc := NewUserService(&fakeUserRepo{getErr: bang}, quietLogger())

	_, err := svc.GetUser(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, bang)
}
