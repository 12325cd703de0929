package ports

import (
	"context"
	"time"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type LedgerRepo interface {
	RecordIfAbsent(ctx context.Context, entry *domain.LedgerEntry) (bool, error)
	ListByBuyer(ctx context.Context, email string) ([]*domain.LedgerEntry, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.LedgerEntry, error)
}
