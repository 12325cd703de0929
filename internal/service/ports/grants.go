package ports

import (
	"context"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type MembershipRepo interface {
	GrantIfAbsent(ctx context.Context, grant *domain.MembershipGrant) (bool, error)
	ListByBuyer(ctx context.Context, email string) ([]*domain.MembershipGrant, error)
}

type RegistrationRepo interface {
	GrantIfAbsent(ctx context.Context, grant *domain.RegistrationGrant) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.RegistrationGrant, error)
}
