package ports

import (
	"context"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type PaymentNotifier interface {
	NotifyPaymentRecorded(ctx context.Context, entry *domain.LedgerEntry)
}
