package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type paymentMocks struct {
	checkout      *mocks.MockCheckoutProvider
	ledger        *mocks.MockLedgerRepo
	memberships   *mocks.MockMembershipRepo
	registrations *mocks.MockRegistrationRepo
	clubs         *mocks.MockClubRepo
	events        *mocks.MockEventRepo
	notifier      *mocks.MockPaymentNotifier
}

func newPaymentService(t *testing.T) (*PaymentService, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		checkout:      mocks.NewMockCheckoutProvider(t),
		ledger:        mocks.NewMockLedgerRepo(t),
		memberships:   mocks.NewMockMembershipRepo(t),
		registrations: mocks.NewMockRegistrationRepo(t),
		clubs:         mocks.NewMockClubRepo(t),
		events:        mocks.NewMockEventRepo(t),
		notifier:      mocks.NewMockPaymentNotifier(t),
	}
	svc := NewPaymentService(
		m.checkout, m.ledger, m.memberships, m.registrations,
		m.clubs, m.events, m.notifier, newTestLogger(t),
	)
	return svc, m
}

// expectNotify arms the notifier expectation and returns a channel closed when
// the notify goroutine actually runs, so tests can wait instead of sleeping.
func expectNotify(m paymentMocks) chan struct{} {
	notified := make(chan struct{})
	m.notifier.EXPECT().NotifyPaymentRecorded(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *domain.LedgerEntry) { close(notified) }).
		Return()
	return notified
}

func waitNotified(t *testing.T, notified chan struct{}) {
	t.Helper()
	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("payment notification never fired")
	}
}

func membershipIntent() domain.PurchaseIntent {
	return domain.PurchaseIntent{
		Kind:         domain.KindMembership,
		ClubID:       "club1",
		ClubName:     "Chess Club",
		Amount:       25,
		BuyerEmail:   "member@sphere.com",
		BuyerName:    "Member",
		ManagerEmail: "manager@sphere.com",
	}
}

func eventFeeIntent() domain.PurchaseIntent {
	return domain.PurchaseIntent{
		Kind:         domain.KindEventFee,
		ClubID:       "club1",
		EventID:      "event1",
		ClubName:     "Chess Club",
		EventTitle:   "Blitz Night",
		Amount:       10,
		BuyerEmail:   "member@sphere.com",
		BuyerName:    "Member",
		ManagerEmail: "manager@sphere.com",
	}
}

func completeSession(intent domain.PurchaseIntent) *domain.CheckoutSession {
	return &domain.CheckoutSession{
		ID:            "cs_123",
		Status:        domain.SessionComplete,
		AmountTotal:   intent.Amount,
		TransactionID: "pi_123",
		Metadata:      intent.EncodeMetadata(),
	}
}

func TestPaymentService_CreateCheckout_Success(t *testing.T) {
	svc, m := newPaymentService(t)

	intent := membershipIntent()
	m.checkout.EXPECT().CreateSession(mock.Anything, intent).Return("https://checkout.test/cs_123", nil)

	url, err := svc.CreateCheckout(context.Background(), intent)

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.test/cs_123", url)
}

func TestPaymentService_CreateCheckout_ProviderError(t *testing.T) {
	svc, m := newPaymentService(t)

	m.checkout.EXPECT().CreateSession(mock.Anything, mock.Anything).
		Return("", domain.ErrInvalidPurchaseIntent)

	_, err := svc.CreateCheckout(context.Background(), membershipIntent())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseIntent)
}

func TestPaymentService_Confirm_Membership(t *testing.T) {
	svc, m := newPaymentService(t)

	intent := membershipIntent()
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(completeSession(intent), nil)
	m.ledger.EXPECT().RecordIfAbsent(mock.Anything, mock.Anything).Return(true, nil)
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.Anything).Return(true, nil)
	m.clubs.EXPECT().IncrementMembers(mock.Anything, "club1").Return(nil)
	notified := expectNotify(m)

	outcome, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome)
	assert.True(t, outcome.Success())

	waitNotified(t, notified)
}

func TestPaymentService_Confirm_EventFee(t *testing.T) {
	svc, m := newPaymentService(t)

	intent := eventFeeIntent()
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(completeSession(intent), nil)
	m.ledger.EXPECT().RecordIfAbsent(mock.Anything, mock.Anything).Return(true, nil)
	m.registrations.EXPECT().GrantIfAbsent(mock.Anything, mock.MatchedBy(func(g *domain.RegistrationGrant) bool {
		return g.EventID == "event1" && g.EventTitle == "Blitz Night" && g.TransactionID == "pi_123"
	})).Return(true, nil)
	m.events.EXPECT().IncrementRegistrations(mock.Anything, "event1").Return(nil)
	notified := expectNotify(m)

	outcome, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome)

	waitNotified(t, notified)
}

func TestPaymentService_Confirm_DuplicateSkipsCounter(t *testing.T) {
	svc, m := newPaymentService(t)

	intent := membershipIntent()
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(completeSession(intent), nil)
	m.ledger.EXPECT().RecordIfAbsent(mock.Anything, mock.Anything).Return(false, nil)
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.Anything).Return(false, nil)
	// No IncrementMembers and no notification expected on the duplicate path.

	outcome, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome)
	assert.True(t, outcome.Success())
}

func TestPaymentService_Confirm_SessionMissing(t *testing.T) {
	svc, m := newPaymentService(t)

	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_gone").
		Return(nil, domain.ErrSessionNotFound)

	outcome, err := svc.Confirm(context.Background(), "cs_gone", "member@sphere.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSessionMissing, outcome)
	assert.False(t, outcome.Success())
}

func TestPaymentService_Confirm_NotComplete(t *testing.T) {
	svc, m := newPaymentService(t)

	session := completeSession(membershipIntent())
	session.Status = domain.SessionOpen
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(session, nil)

	outcome, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotComplete, outcome)
	assert.False(t, outcome.Success())
}

func TestPaymentService_Confirm_BuyerMismatch(t *testing.T) {
	svc, m := newPaymentService(t)

	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").
		Return(completeSession(membershipIntent()), nil)

	_, err := svc.Confirm(context.Background(), "cs_123", "intruder@sphere.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuyerMismatch)
}

func TestPaymentService_Confirm_BadMetadata(t *testing.T) {
	svc, m := newPaymentService(t)

	session := completeSession(membershipIntent())
	session.Metadata["amount"] = "not-a-number"
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(session, nil)

	_, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseIntent)
}

func TestPaymentService_Confirm_LedgerError(t *testing.T) {
	svc, m := newPaymentService(t)

	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").
		Return(completeSession(membershipIntent()), nil)
	m.ledger.EXPECT().RecordIfAbsent(mock.Anything, mock.Anything).
		Return(false, domain.ErrDependencyTimeout)

	_, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyTimeout)
}

func TestPaymentService_Confirm_CounterFailureSwallowed(t *testing.T) {
	svc, m := newPaymentService(t)

	intent := membershipIntent()
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(completeSession(intent), nil)
	m.ledger.EXPECT().RecordIfAbsent(mock.Anything, mock.Anything).Return(true, nil)
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.Anything).Return(true, nil)
	m.clubs.EXPECT().IncrementMembers(mock.Anything, "club1").Return(errors.New("db down"))
	notified := expectNotify(m)

	outcome, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome)

	waitNotified(t, notified)
}

func TestPaymentService_Confirm_GrantErrorKeepsLedger(t *testing.T) {
	svc, m := newPaymentService(t)

	intent := membershipIntent()
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(completeSession(intent), nil)
	m.ledger.EXPECT().RecordIfAbsent(mock.Anything, mock.Anything).Return(true, nil)
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.Anything).
		Return(false, domain.ErrDependencyUnavailable)
	notified := expectNotify(m)

	_, err := svc.Confirm(context.Background(), "cs_123", "member@sphere.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyUnavailable)

	waitNotified(t, notified)
}

func TestPaymentService_Confirm_AnonymousCallerAllowed(t *testing.T) {
	svc, m := newPaymentService(t)

	intent := membershipIntent()
	m.checkout.EXPECT().GetSessionResult(mock.Anything, "cs_123").Return(completeSession(intent), nil)
	m.ledger.EXPECT().RecordIfAbsent(mock.Anything, mock.Anything).Return(false, nil)
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.Anything).Return(false, nil)

	outcome, err := svc.Confirm(context.Background(), "cs_123", "")

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompleted, outcome)
}

func TestPaymentService_RepairRecent_FinishesMissingGrants(t *testing.T) {
	svc, m := newPaymentService(t)

	entries := []*domain.LedgerEntry{
		{TransactionID: "pi_1", Kind: domain.KindMembership, ClubID: "club1", MemberEmail: "a@x.com"},
		{TransactionID: "pi_2", Kind: domain.KindEventFee, ClubID: "club1", EventID: "event1", MemberEmail: "b@x.com"},
	}
	m.ledger.EXPECT().ListSince(mock.Anything, mock.Anything).Return(entries, nil)

	// pi_1 already has its grant; pi_2 is the crashed one.
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.Anything).Return(false, nil)
	m.events.EXPECT().GetByID(mock.Anything, "event1").
		Return(&domain.Event{ClubID: "club1", Title: "Blitz Night"}, nil)
	m.registrations.EXPECT().GrantIfAbsent(mock.Anything, mock.MatchedBy(func(g *domain.RegistrationGrant) bool {
		return g.TransactionID == "pi_2" && g.EventTitle == "Blitz Night"
	})).Return(true, nil)
	m.events.EXPECT().IncrementRegistrations(mock.Anything, "event1").Return(nil)

	repaired, err := svc.RepairRecent(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
}

func TestPaymentService_RepairRecent_ListError(t *testing.T) {
	svc, m := newPaymentService(t)

	m.ledger.EXPECT().ListSince(mock.Anything, mock.Anything).
		Return(nil, domain.ErrDependencyUnavailable)

	_, err := svc.RepairRecent(context.Background(), time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyUnavailable)
}

func TestPaymentService_RepairRecent_GrantFailureSkipsEntry(t *testing.T) {
	svc, m := newPaymentService(t)

	entries := []*domain.LedgerEntry{
		{TransactionID: "pi_1", Kind: domain.KindMembership, ClubID: "club1"},
		{TransactionID: "pi_2", Kind: domain.KindMembership, ClubID: "club2"},
	}
	m.ledger.EXPECT().ListSince(mock.Anything, mock.Anything).Return(entries, nil)
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.MatchedBy(func(g *domain.MembershipGrant) bool {
		return g.TransactionID == "pi_1"
	})).Return(false, errors.New("db down"))
	m.memberships.EXPECT().GrantIfAbsent(mock.Anything, mock.MatchedBy(func(g *domain.MembershipGrant) bool {
		return g.TransactionID == "pi_2"
	})).Return(true, nil)
	m.clubs.EXPECT().IncrementMembers(mock.Anything, "club2").Return(nil)

	repaired, err := svc.RepairRecent(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, repaired)
}

func TestPaymentService_ListPayments(t *testing.T) {
	svc, m := newPaymentService(t)

	entries := []*domain.LedgerEntry{{TransactionID: "pi_1"}}
	m.ledger.EXPECT().ListByBuyer(mock.Anything, "member@sphere.com").Return(entries, nil)

	result, err := svc.ListPayments(context.Background(), "member@sphere.com")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
