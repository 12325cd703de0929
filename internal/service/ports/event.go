package ports

import (
	"context"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, clubID string) ([]*domain.Event, error)
	IncrementRegistrations(ctx context.Context, id string) error
}
