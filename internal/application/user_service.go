package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
	repo "github.com/ardiansyahrp/orderflow/internal/domain/repository"
)

// UserService is the user directory's application layer: it owns user
// records and is the single writer of the users table.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type CreateUserInput struct {
	Name  string
	Email string
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u := &entity.User{Name: in.Name, Email: in.Email}
	if err := s.Repo.Create(ctx, u); err != nil {
		s.Logger.WithError(err).Error("create user failed")
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user created")
	return u, nil
}

// GetUser resolves a user by id. Identifiers that are not UUIDs cannot match
// any row, so they are rejected before touching the database.
func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidUserID
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
