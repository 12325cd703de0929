package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PurchaseKind string

const (
	KindMembership PurchaseKind = "membership"
	KindEventFee   PurchaseKind = "eventFee"
)

type SessionStatus string

const (
	SessionOpen     SessionStatus = "open"
	SessionComplete SessionStatus = "complete"
	SessionExpired  SessionStatus = "expired"
)

// PurchaseIntent describes a purchase before checkout. It is never persisted:
// it travels to the checkout provider as session metadata and is decoded back
// on confirmation (see intent.go).
type PurchaseIntent struct {
	Kind         PurchaseKind
	ClubID       string
	EventID      string
	ClubName     string
	EventTitle   string
	Description  string
	BannerImage  string
	Amount       int64 // major units (whole USD)
	BuyerEmail   string
	BuyerName    string
	ManagerEmail string
}

// CheckoutSession is the provider's view of a checkout flow. The backend only
// ever reads it; TransactionID is the provider's payment-intent id and serves
// as the idempotency key for all reconciliation writes.
type CheckoutSession struct {
	ID            string
	Status        SessionStatus
	AmountTotal   int64 // major units
	TransactionID string
	Metadata      map[string]string
}

const LedgerStatusSuccess = "success"

// LedgerEntry is the append-only payment record. Exactly one per
// TransactionID; never mutated or deleted.
type LedgerEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TransactionID string             `bson:"transactionId"`
	Kind          PurchaseKind       `bson:"paymentType"`
	Amount        int64              `bson:"amount"`
	MemberEmail   string             `bson:"memberEmail"`
	MemberName    string             `bson:"memberName"`
	ManagerEmail  string             `bson:"managerEmail"`
	ClubID        string             `bson:"clubId"`
	ClubName      string             `bson:"clubName"`
	EventID       string             `bson:"eventId,omitempty"`
	Status        string             `bson:"status"`
	PaidAt        time.Time          `bson:"paidAt"`
}

type ReconcileOutcome string

const (
	OutcomeCompleted      ReconcileOutcome = "completed"
	OutcomeNotComplete    ReconcileOutcome = "not_complete"
	OutcomeSessionMissing ReconcileOutcome = "session_missing"
)

// Success reports whether the outcome acknowledges a reconciled payment.
// Duplicate confirmations are deliberately indistinguishable from first ones.
func (o ReconcileOutcome) Success() bool {
	return o == OutcomeCompleted
}
