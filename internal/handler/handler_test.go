package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/handler/dto"
	hmocks "github.com/rakibhassannayem/clubSphere-server/internal/handler/mocks"
	"github.com/rakibhassannayem/clubSphere-server/internal/middleware"
)

type handlerMocks struct {
	payments *hmocks.MockPaymentSvc
	clubs    *hmocks.MockClubSvc
	events   *hmocks.MockEventSvc
	users    *hmocks.MockUserSvc
	tokens   *hmocks.MockTokenIssuer
}

// setupRouter wires the handlers behind a fake authenticated identity so the
// EmailKey-dependent paths are exercised without real tokens.
func setupRouter(t *testing.T, email string) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		payments: hmocks.NewMockPaymentSvc(t),
		clubs:    hmocks.NewMockClubSvc(t),
		events:   hmocks.NewMockEventSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		tokens:   hmocks.NewMockTokenIssuer(t),
	}

	h := NewHandler(m.payments, m.clubs, m.events, m.users, m.tokens)

	r := ginext.New("test")
	if email != "" {
		r.Use(func(c *ginext.Context) {
			c.Set(middleware.EmailKey, email)
			c.Next()
		})
	}

	r.POST("/getJwtToken", h.IssueToken)
	r.POST("/user", h.RegisterUser)
	r.GET("/user/role", h.GetUserRole)
	r.PATCH("/update-role", h.UpdateUserRole)
	r.GET("/clubs", h.ListClubs)
	r.GET("/clubs/:id", h.GetClub)
	r.POST("/clubs", h.CreateClub)
	r.PATCH("/clubs/:id/status", h.UpdateClubStatus)
	r.GET("/events", h.ListEvents)
	r.GET("/events/:id", h.GetEvent)
	r.POST("/events", h.CreateEvent)
	r.GET("/events/:id/registrations", h.ListEventRegistrations)
	r.GET("/memberships", h.ListMemberships)
	r.GET("/payments", h.ListPayments)
	r.POST("/create-checkout-session", h.CreateCheckoutSession)
	r.POST("/payment-success", h.PaymentSuccess)

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth & users ---

func TestHandler_IssueToken_Success(t *testing.T) {
	m, r := setupRouter(t, "")

	m.tokens.EXPECT().Issue("member@sphere.com", "Member").Return("signed-token", nil)

	w := doJSON(t, r, http.MethodPost, "/getJwtToken", dto.TokenRequest{
		Email: "member@sphere.com",
		Name:  "Member",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestHandler_IssueToken_BadEmail(t *testing.T) {
	_, r := setupRouter(t, "")

	w := doJSON(t, r, http.MethodPost, "/getJwtToken", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterUser_Created(t *testing.T) {
	m, r := setupRouter(t, "")

	user := &domain.User{Email: "member@sphere.com", Name: "Member", Role: domain.RoleMember, CreatedAt: time.Now()}
	m.users.EXPECT().Register(mock.Anything, mock.Anything).Return(user, true, nil)

	w := doJSON(t, r, http.MethodPost, "/user", dto.CreateUserRequest{
		Email: "member@sphere.com",
		Name:  "Member",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_RegisterUser_AlreadyExists(t *testing.T) {
	m, r := setupRouter(t, "")

	user := &domain.User{Email: "member@sphere.com", Role: domain.RoleMember}
	m.users.EXPECT().Register(mock.Anything, mock.Anything).Return(user, false, nil)

	w := doJSON(t, r, http.MethodPost, "/user", dto.CreateUserRequest{
		Email: "member@sphere.com",
		Name:  "Member",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User Already Exists")
}

func TestHandler_GetUserRole_Success(t *testing.T) {
	m, r := setupRouter(t, "admin@sphere.com")

	m.users.EXPECT().RoleOf(mock.Anything, "admin@sphere.com").Return(domain.RoleAdmin, nil)

	w := doJSON(t, r, http.MethodGet, "/user/role", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RoleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Role)
}

func TestHandler_UpdateUserRole_Success(t *testing.T) {
	m, r := setupRouter(t, "admin@sphere.com")

	m.users.EXPECT().UpdateRole(mock.Anything, "promoted@sphere.com", domain.RoleManager).Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/update-role", dto.UpdateRoleRequest{
		Email: "promoted@sphere.com",
		Role:  "manager",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RoleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "manager", resp.Role)
}

func TestHandler_UpdateUserRole_InvalidRole(t *testing.T) {
	_, r := setupRouter(t, "admin@sphere.com")

	w := doJSON(t, r, http.MethodPatch, "/update-role", map[string]string{
		"email": "promoted@sphere.com",
		"role":  "superuser",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateUserRole_UserNotFound(t *testing.T) {
	m, r := setupRouter(t, "admin@sphere.com")

	m.users.EXPECT().UpdateRole(mock.Anything, "ghost@sphere.com", domain.RoleAdmin).
		Return(domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodPatch, "/update-role", dto.UpdateRoleRequest{
		Email: "ghost@sphere.com",
		Role:  "admin",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Clubs ---

func TestHandler_ListClubs_Success(t *testing.T) {
	m, r := setupRouter(t, "")

	clubs := []*domain.Club{{ID: primitive.NewObjectID(), ClubName: "Chess Club", Status: domain.ClubStatusApproved}}
	m.clubs.EXPECT().List(mock.Anything, domain.ClubFilter{Category: "games"}).Return(clubs, nil)

	w := doJSON(t, r, http.MethodGet, "/clubs?category=games", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ClubResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Chess Club", resp[0].ClubName)
}

func TestHandler_GetClub_NotFound(t *testing.T) {
	m, r := setupRouter(t, "")

	m.clubs.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClubNotFound)

	w := doJSON(t, r, http.MethodGet, "/clubs/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateClub_Success(t *testing.T) {
	m, r := setupRouter(t, "manager@sphere.com")

	club := &domain.Club{ID: primitive.NewObjectID(), ClubName: "Chess Club", Status: domain.ClubStatusPending}
	m.clubs.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateClubInput) bool {
		return in.ManagerEmail == "manager@sphere.com"
	})).Return(club, nil)

	w := doJSON(t, r, http.MethodPost, "/clubs", dto.CreateClubRequest{
		ClubName:      "Chess Club",
		MembershipFee: 25,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_UpdateClubStatus_InvalidStatus(t *testing.T) {
	_, r := setupRouter(t, "admin@sphere.com")

	w := doJSON(t, r, http.MethodPatch, "/clubs/club1/status", map[string]string{"status": "bogus"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateClubStatus_Success(t *testing.T) {
	m, r := setupRouter(t, "admin@sphere.com")

	m.clubs.EXPECT().SetStatus(mock.Anything, "club1", domain.ClubStatusApproved).Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/clubs/club1/status", dto.UpdateClubStatusRequest{Status: "approved"})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t, "manager@sphere.com")

	event := &domain.Event{ID: primitive.NewObjectID(), Title: "Blitz Night", ClubID: "club1"}
	m.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/events", dto.CreateEventRequest{
		ClubID:    "club1",
		Title:     "Blitz Night",
		EventDate: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		EventFee:  10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, "manager@sphere.com")

	w := doJSON(t, r, http.MethodPost, "/events", dto.CreateEventRequest{
		ClubID:    "club1",
		Title:     "Blitz Night",
		EventDate: "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEventRegistrations_Success(t *testing.T) {
	m, r := setupRouter(t, "manager@sphere.com")

	grants := []*domain.RegistrationGrant{{TransactionID: "pi_1", EventID: "event1", MemberEmail: "member@sphere.com"}}
	m.events.EXPECT().ListRegistrations(mock.Anything, "event1").Return(grants, nil)

	w := doJSON(t, r, http.MethodGet, "/events/event1/registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
}

// --- Checkout ---

func checkoutRequest() dto.CreateCheckoutRequest {
	return dto.CreateCheckoutRequest{
		PaymentType: "membership",
		ClubID:      "club1",
		ClubName:    "Chess Club",
		Amount:      25,
		Member: dto.CheckoutMember{
			Email: "member@sphere.com",
			Name:  "Member",
		},
		ManagerEmail: "manager@sphere.com",
	}
}

func TestHandler_CreateCheckoutSession_Success(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	m.payments.EXPECT().CreateCheckout(mock.Anything, mock.MatchedBy(func(i domain.PurchaseIntent) bool {
		return i.Kind == domain.KindMembership && i.BuyerEmail == "member@sphere.com"
	})).Return("https://checkout.test/cs_123", nil)

	w := doJSON(t, r, http.MethodPost, "/create-checkout-session", checkoutRequest())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.test/cs_123", resp.URL)
}

func TestHandler_CreateCheckoutSession_BadPayload(t *testing.T) {
	_, r := setupRouter(t, "member@sphere.com")

	w := doJSON(t, r, http.MethodPost, "/create-checkout-session", map[string]any{
		"paymentType": "membership",
		// amount and member missing
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid payment data")
}

func TestHandler_CreateCheckoutSession_InvalidIntent(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	m.payments.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
		Return("", domain.ErrInvalidPurchaseIntent)

	w := doJSON(t, r, http.MethodPost, "/create-checkout-session", checkoutRequest())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateCheckoutSession_ProviderDown(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	m.payments.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
		Return("", domain.ErrDependencyUnavailable)

	w := doJSON(t, r, http.MethodPost, "/create-checkout-session", checkoutRequest())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to create checkout session")
}

// --- Payment success ---

func TestHandler_PaymentSuccess_Completed(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	m.payments.EXPECT().Confirm(mock.Anything, "cs_123", "member@sphere.com").
		Return(domain.OutcomeCompleted, nil)

	w := doJSON(t, r, http.MethodPost, "/payment-success", dto.PaymentSuccessRequest{SessionID: "cs_123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentSuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestHandler_PaymentSuccess_SessionMissing(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	m.payments.EXPECT().Confirm(mock.Anything, "cs_gone", "member@sphere.com").
		Return(domain.OutcomeSessionMissing, nil)

	w := doJSON(t, r, http.MethodPost, "/payment-success", dto.PaymentSuccessRequest{SessionID: "cs_gone"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentSuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestHandler_PaymentSuccess_BuyerMismatch(t *testing.T) {
	m, r := setupRouter(t, "intruder@sphere.com")

	m.payments.EXPECT().Confirm(mock.Anything, "cs_123", "intruder@sphere.com").
		Return(domain.ReconcileOutcome(""), domain.ErrBuyerMismatch)

	w := doJSON(t, r, http.MethodPost, "/payment-success", dto.PaymentSuccessRequest{SessionID: "cs_123"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_PaymentSuccess_MissingSessionID(t *testing.T) {
	_, r := setupRouter(t, "member@sphere.com")

	w := doJSON(t, r, http.MethodPost, "/payment-success", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentSuccess_DependencyFailure(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	m.payments.EXPECT().Confirm(mock.Anything, "cs_123", "member@sphere.com").
		Return(domain.ReconcileOutcome(""), domain.ErrDependencyTimeout)

	w := doJSON(t, r, http.MethodPost, "/payment-success", dto.PaymentSuccessRequest{SessionID: "cs_123"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

// --- Lists behind auth ---

func TestHandler_ListMemberships_Success(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	grants := []*domain.MembershipGrant{{TransactionID: "pi_1", ClubID: "club1"}}
	m.clubs.EXPECT().ListMemberships(mock.Anything, "member@sphere.com").Return(grants, nil)

	w := doJSON(t, r, http.MethodGet, "/memberships", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListPayments_Success(t *testing.T) {
	m, r := setupRouter(t, "member@sphere.com")

	entries := []*domain.LedgerEntry{{TransactionID: "pi_1", Kind: domain.KindMembership, Amount: 25}}
	m.payments.EXPECT().ListPayments(mock.Anything, "member@sphere.com").Return(entries, nil)

	w := doJSON(t, r, http.MethodGet, "/payments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "pi_1", resp[0].TransactionID)
}
