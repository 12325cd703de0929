package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/service/ports"
)

// PaymentService owns the payment-confirmation reconciliation pipeline: it
// turns a completed checkout session into a ledger entry plus a membership or
// registration grant, exactly once per transaction id.
type PaymentService struct {
	checkout      ports.CheckoutProvider
	ledger        ports.LedgerRepo
	memberships   ports.MembershipRepo
	registrations ports.RegistrationRepo
	clubs         ports.ClubRepo
	events        ports.EventRepo
	notifier      ports.PaymentNotifier
	logger        logger.Logger
}

func NewPaymentService(
	checkout ports.CheckoutProvider,
	ledger ports.LedgerRepo,
	memberships ports.MembershipRepo,
	registrations ports.RegistrationRepo,
	clubs ports.ClubRepo,
	events ports.EventRepo,
	notifier ports.PaymentNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		checkout:      checkout,
		ledger:        ledger,
		memberships:   memberships,
		registrations: registrations,
		clubs:         clubs,
		events:        events,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *PaymentService) CreateCheckout(ctx context.Context, intent domain.PurchaseIntent) (string, error) {
	url, err := s.checkout.CreateSession(ctx, intent)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("checkout session created",
		logger.String("kind", string(intent.Kind)),
		logger.String("club_id", intent.ClubID),
		logger.String("buyer", intent.BuyerEmail),
	)

	return url, nil
}

// Confirm reconciles the session the client reports after redirect. Every
// write behind it is idempotent on the transaction id, so the whole call is
// safe to retry: duplicate confirmations, double-clicked success pages and
// racing requests all converge on one ledger entry, one grant, one counter
// increment.
func (s *PaymentService) Confirm(ctx context.Context, sessionID, callerEmail string) (domain.ReconcileOutcome, error) {
	session, err := s.checkout.GetSessionResult(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.OutcomeSessionMissing, nil
		}
		return "", fmt.Errorf("get session: %w", err)
	}

	// Abandoned and cancelled flows land here; not an error.
	if session.Status != domain.SessionComplete {
		return domain.OutcomeNotComplete, nil
	}

	intent, err := domain.DecodeIntent(session.Metadata)
	if err != nil {
		return "", fmt.Errorf("decode intent: %w", err)
	}

	if callerEmail != "" && callerEmail != intent.BuyerEmail {
		return "", domain.ErrBuyerMismatch
	}

	entry := &domain.LedgerEntry{
		TransactionID: session.TransactionID,
		Kind:          intent.Kind,
		Amount:        session.AmountTotal,
		MemberEmail:   intent.BuyerEmail,
		MemberName:    intent.BuyerName,
		ManagerEmail:  intent.ManagerEmail,
		ClubID:        intent.ClubID,
		ClubName:      intent.ClubName,
		EventID:       intent.EventID,
		Status:        domain.LedgerStatusSuccess,
		PaidAt:        time.Now().UTC(),
	}

	// Always attempted: the ledger is the single source of truth for "was
	// this payment ever seen". The insert itself is idempotent.
	recorded, err := s.ledger.RecordIfAbsent(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("record payment: %w", err)
	}
	if recorded {
		s.logger.Info("payment recorded",
			logger.String("transaction_id", entry.TransactionID),
			logger.String("kind", string(entry.Kind)),
			logger.Int64("amount", entry.Amount),
		)
		go s.notifier.NotifyPaymentRecorded(context.WithoutCancel(ctx), entry)
	}

	// The ledger entry is not rolled back if this fails: a retry of the same
	// sessionId (or the repair sweep) finishes the grant.
	if _, err := s.applyGrant(ctx, entry, intent.EventTitle); err != nil {
		return "", err
	}

	return domain.OutcomeCompleted, nil
}

// applyGrant inserts the kind-specific grant and, only on a fresh insert,
// moves the aggregate counter. The skipped increment on inserted=false is the
// sole defense against double-counting.
func (s *PaymentService) applyGrant(ctx context.Context, entry *domain.LedgerEntry, eventTitle string) (bool, error) {
	switch entry.Kind {
	case domain.KindMembership:
		granted, err := s.memberships.GrantIfAbsent(ctx, &domain.MembershipGrant{
			TransactionID: entry.TransactionID,
			ClubID:        entry.ClubID,
			ClubName:      entry.ClubName,
			MemberEmail:   entry.MemberEmail,
			MemberName:    entry.MemberName,
			ManagerEmail:  entry.ManagerEmail,
			Status:        domain.MembershipStatusActive,
			JoinedAt:      time.Now().UTC(),
		})
		if err != nil {
			return false, fmt.Errorf("grant membership: %w", err)
		}
		if !granted {
			return false, nil
		}
		if err := s.clubs.IncrementMembers(ctx, entry.ClubID); err != nil {
			// Counter drift is accepted; never fail the confirmation on it.
			s.logger.Error("failed to increment club members",
				logger.String("club_id", entry.ClubID),
				logger.String("transaction_id", entry.TransactionID),
				logger.String("error", err.Error()),
			)
		}
		return true, nil

	case domain.KindEventFee:
		granted, err := s.registrations.GrantIfAbsent(ctx, &domain.RegistrationGrant{
			TransactionID: entry.TransactionID,
			EventID:       entry.EventID,
			EventTitle:    eventTitle,
			ClubID:        entry.ClubID,
			ClubName:      entry.ClubName,
			MemberEmail:   entry.MemberEmail,
			MemberName:    entry.MemberName,
			ManagerEmail:  entry.ManagerEmail,
			Status:        domain.RegistrationStatusRegistered,
			RegisteredAt:  time.Now().UTC(),
		})
		if err != nil {
			return false, fmt.Errorf("grant registration: %w", err)
		}
		if !granted {
			return false, nil
		}
		if err := s.events.IncrementRegistrations(ctx, entry.EventID); err != nil {
			s.logger.Error("failed to increment event registrations",
				logger.String("event_id", entry.EventID),
				logger.String("transaction_id", entry.TransactionID),
				logger.String("error", err.Error()),
			)
		}
		return true, nil

	default:
		return false, fmt.Errorf("%w: unknown payment type %q", domain.ErrInvalidPurchaseIntent, entry.Kind)
	}
}

// RepairRecent re-applies grant writes for ledger entries of the last window.
// Grant inserts are idempotent, so entries already reconciled are no-ops; a
// ledger entry whose grant write failed mid-flight gets finished here without
// waiting for the client to retry.
func (s *PaymentService) RepairRecent(ctx context.Context, window time.Duration) (int, error) {
	entries, err := s.ledger.ListSince(ctx, time.Now().UTC().Add(-window))
	if err != nil {
		return 0, fmt.Errorf("list recent payments: %w", err)
	}

	repaired := 0
	for _, entry := range entries {
		// The ledger doesn't carry the event title; recover it for the grant.
		title := ""
		if entry.Kind == domain.KindEventFee {
			if event, err := s.events.GetByID(ctx, entry.EventID); err == nil {
				title = event.Title
			}
		}

		granted, err := s.applyGrant(ctx, entry, title)
		if err != nil {
			s.logger.Error("repair sweep: grant failed",
				logger.String("transaction_id", entry.TransactionID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if granted {
			repaired++
		}
	}

	return repaired, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, buyerEmail string) ([]*domain.LedgerEntry, error) {
	return s.ledger.ListByBuyer(ctx, buyerEmail)
}
