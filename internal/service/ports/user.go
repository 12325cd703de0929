package ports

import (
	"context"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type UserRepo interface {
	CreateIfAbsent(ctx context.Context, user *domain.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRole(ctx context.Context, email string, role domain.Role) error
}
