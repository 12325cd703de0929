package ports

import (
	"context"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type CheckoutProvider interface {
	CreateSession(ctx context.Context, intent domain.PurchaseIntent) (string, error)
	GetSessionResult(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
}
