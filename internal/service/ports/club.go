package ports

import (
	"context"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type ClubRepo interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	List(ctx context.Context, filter domain.ClubFilter) ([]*domain.Club, error)
	UpdateStatus(ctx context.Context, id string, status domain.ClubStatus) error
	IncrementMembers(ctx context.Context, id string) error
}
