package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates the user on first sign-in with the default role. Repeat
// sign-ins report created=false without touching the stored role.
func (s *UserService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, bool, error) {
	if input.Email == "" {
		return nil, false, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	user := &domain.User{
		Email:     input.Email,
		Name:      input.Name,
		PhotoURL:  input.PhotoURL,
		Role:      domain.RoleMember,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	return user, created, nil
}

// UpdateRole changes a user's stored role. Admin-only by routing; this is the
// sole path that can mint managers and admins.
func (s *UserService) UpdateRole(ctx context.Context, email string, role domain.Role) error {
	switch role {
	case domain.RoleAdmin, domain.RoleManager, domain.RoleMember:
	default:
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	if err := s.repo.SetRole(ctx, email, role); err != nil {
		return fmt.Errorf("set user role: %w", err)
	}
	return nil
}

// RoleOf is the role-directory lookup used by the authorization predicate.
func (s *UserService) RoleOf(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	return user.Role, nil
}
