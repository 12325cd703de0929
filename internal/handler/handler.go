package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/handler/dto"
	"github.com/rakibhassannayem/clubSphere-server/internal/middleware"
)

type PaymentSvc interface {
	CreateCheckout(ctx context.Context, intent domain.PurchaseIntent) (string, error)
	Confirm(ctx context.Context, sessionID, callerEmail string) (domain.ReconcileOutcome, error)
	ListPayments(ctx context.Context, buyerEmail string) ([]*domain.LedgerEntry, error)
}

type ClubSvc interface {
	Create(ctx context.Context, input domain.CreateClubInput) (*domain.Club, error)
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	List(ctx context.Context, filter domain.ClubFilter) ([]*domain.Club, error)
	SetStatus(ctx context.Context, id string, status domain.ClubStatus) error
	ListMemberships(ctx context.Context, buyerEmail string) ([]*domain.MembershipGrant, error)
}

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, clubID string) ([]*domain.Event, error)
	ListRegistrations(ctx context.Context, eventID string) ([]*domain.RegistrationGrant, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, bool, error)
	RoleOf(ctx context.Context, email string) (domain.Role, error)
	UpdateRole(ctx context.Context, email string, role domain.Role) error
}

type TokenIssuer interface {
	Issue(email, name string) (string, error)
}

type Handler struct {
	paymentService PaymentSvc
	clubService    ClubSvc
	eventService   EventSvc
	userService    UserSvc
	tokens         TokenIssuer
}

func NewHandler(
	paymentService PaymentSvc,
	clubService ClubSvc,
	eventService EventSvc,
	userService UserSvc,
	tokens TokenIssuer,
) *Handler {
	return &Handler{
		paymentService: paymentService,
		clubService:    clubService,
		eventService:   eventService,
		userService:    userService,
		tokens:         tokens,
	}
}

// Auth

func (h *Handler) IssueToken(c *ginext.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Users

func (h *Handler) RegisterUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, created, err := h.userService.Register(c.Request.Context(), domain.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, ginext.H{"message": "User Already Exists"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUserRole(c *ginext.Context) {
	role, err := h.userService.RoleOf(c.Request.Context(), c.GetString(middleware.EmailKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{Role: string(role)})
}

func (h *Handler) UpdateUserRole(c *ginext.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.userService.UpdateRole(c.Request.Context(), req.Email, domain.Role(req.Role)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoleResponse{Role: req.Role})
}

// Clubs

func (h *Handler) ListClubs(c *ginext.Context) {
	clubs, err := h.clubService.List(c.Request.Context(), domain.ClubFilter{
		Category: c.Query("category"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClubResponse, 0, len(clubs))
	for _, club := range clubs {
		resp = append(resp, dto.ToClubResponse(club))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetClub(c *ginext.Context) {
	club, err := h.clubService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClubResponse(club))
}

func (h *Handler) CreateClub(c *ginext.Context) {
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	club, err := h.clubService.Create(c.Request.Context(), domain.CreateClubInput{
		ClubName:      req.ClubName,
		Category:      req.Category,
		Description:   req.Description,
		BannerImage:   req.BannerImage,
		MembershipFee: req.MembershipFee,
		ManagerEmail:  c.GetString(middleware.EmailKey),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClubResponse(club))
}

func (h *Handler) UpdateClubStatus(c *ginext.Context) {
	var req dto.UpdateClubStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.clubService.SetStatus(c.Request.Context(), c.Param("id"), domain.ClubStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context(), c.Query("clubId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, dto.ToEventResponse(event))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.eventService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid eventDate format, expected RFC3339",
		})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		ClubID:       req.ClubID,
		Title:        req.Title,
		Description:  req.Description,
		BannerImage:  req.BannerImage,
		Location:     req.Location,
		EventDate:    eventDate,
		EventFee:     req.EventFee,
		ManagerEmail: c.GetString(middleware.EmailKey),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEventRegistrations(c *ginext.Context) {
	grants, err := h.eventService.ListRegistrations(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(grants))
	for _, g := range grants {
		resp = append(resp, dto.ToRegistrationResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

// Memberships and payments

func (h *Handler) ListMemberships(c *ginext.Context) {
	grants, err := h.clubService.ListMemberships(c.Request.Context(), c.GetString(middleware.EmailKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MembershipResponse, 0, len(grants))
	for _, g := range grants {
		resp = append(resp, dto.ToMembershipResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListPayments(c *ginext.Context) {
	entries, err := h.paymentService.ListPayments(c.Request.Context(), c.GetString(middleware.EmailKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToPaymentResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Checkout

func (h *Handler) CreateCheckoutSession(c *ginext.Context) {
	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment data"})
		return
	}

	url, err := h.paymentService.CreateCheckout(c.Request.Context(), domain.PurchaseIntent{
		Kind:         domain.PurchaseKind(req.PaymentType),
		ClubID:       req.ClubID,
		EventID:      req.EventID,
		ClubName:     req.ClubName,
		EventTitle:   req.EventTitle,
		Description:  req.Description,
		BannerImage:  req.BannerImage,
		Amount:       req.Amount,
		BuyerEmail:   req.Member.Email,
		BuyerName:    req.Member.Name,
		ManagerEmail: req.ManagerEmail,
	})
	if err != nil {
		c.Set("error", err.Error())
		if errors.Is(err, domain.ErrInvalidPurchaseIntent) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment data"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{URL: url})
}

// PaymentSuccess runs the reconciliation flow. A session that is missing or
// not complete is acknowledged with success=false, not an HTTP error; the
// caller may safely retry the same sessionId any number of times.
func (h *Handler) PaymentSuccess(c *ginext.Context) {
	var req dto.PaymentSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := h.paymentService.Confirm(c.Request.Context(), req.SessionID, c.GetString(middleware.EmailKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentSuccessResponse{Success: outcome.Success()})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrClubNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPurchaseIntent):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBuyerMismatch):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "caller does not match session buyer"})

	default:
		// Includes dependency timeouts/outages: retrying the confirmation is
		// safe, and internal detail never leaks to the client.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
