package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type UserService interface {
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	PromoteUser(ctx context.Context, id string) (*User, error)
}

type UserServiceImpl struct {
	Repo   UserRepository
	Logger *zap.Logger
}

func NewUserService(repo UserRepository, logger *zap.Logger) UserService {
	return &UserServiceImpl{Repo: repo, Logger: logger}
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]User, error) {
	return s.Repo.List(ctx)
}

// PromoteUser grants the admin role. Promoting an admin again is a no-op
// error so the UI can tell the difference.
func (s *UserServiceImpl) PromoteUser(ctx context.Context, id string) (*User, error) {
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role == RoleAdmin {
		return nil, fmt.Errorf("user '%s' is already an admin", id)
	}

	if err := s.Repo.UpdateRole(ctx, id, RoleAdmin); err != nil {
		return nil, err
	}

	s.Logger.Info("user promoted to admin", zap.String("user_id", id))
	u.Role = RoleAdmin
	return u, nil
}
