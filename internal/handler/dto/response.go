package dto

import (
	"time"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	PhotoURL  string `json:"photoURL,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type ClubResponse struct {
	ID            string `json:"id"`
	ClubName      string `json:"clubName"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	BannerImage   string `json:"bannerImage,omitempty"`
	MembershipFee int64  `json:"membershipFee"`
	ManagerEmail  string `json:"managerEmail"`
	Status        string `json:"status"`
	MemberCount   int64  `json:"memberCount"`
	CreatedAt     string `json:"createdAt"`
}

type EventResponse struct {
	ID                string `json:"id"`
	ClubID            string `json:"clubId"`
	ClubName          string `json:"clubName"`
	Title             string `json:"eventTitle"`
	Description       string `json:"description"`
	BannerImage       string `json:"bannerImage,omitempty"`
	Location          string `json:"location"`
	EventDate         string `json:"eventDate"`
	EventFee          int64  `json:"eventFee"`
	ManagerEmail      string `json:"managerEmail"`
	RegistrationCount int64  `json:"registrationCount"`
	CreatedAt         string `json:"createdAt"`
}

type PaymentResponse struct {
	TransactionID string `json:"transactionId"`
	PaymentType   string `json:"paymentType"`
	Amount        int64  `json:"amount"`
	ClubID        string `json:"clubId"`
	ClubName      string `json:"clubName"`
	EventID       string `json:"eventId,omitempty"`
	Status        string `json:"status"`
	PaidAt        string `json:"paidAt"`
}

type MembershipResponse struct {
	TransactionID string `json:"transactionId"`
	ClubID        string `json:"clubId"`
	ClubName      string `json:"clubName"`
	MemberEmail   string `json:"memberEmail"`
	MemberName    string `json:"memberName"`
	Status        string `json:"status"`
	JoinedAt      string `json:"joinedAt"`
}

type RegistrationResponse struct {
	TransactionID string `json:"transactionId"`
	EventID       string `json:"eventId"`
	EventTitle    string `json:"eventTitle"`
	ClubID        string `json:"clubId"`
	ClubName      string `json:"clubName"`
	MemberEmail   string `json:"memberEmail"`
	MemberName    string `json:"memberName"`
	Status        string `json:"status"`
	RegisteredAt  string `json:"registeredAt"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type PaymentSuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToClubResponse(c *domain.Club) ClubResponse {
	return ClubResponse{
		ID:            c.ID.Hex(),
		ClubName:      c.ClubName,
		Category:      c.Category,
		Description:   c.Description,
		BannerImage:   c.BannerImage,
		MembershipFee: c.MembershipFee,
		ManagerEmail:  c.ManagerEmail,
		Status:        string(c.Status),
		MemberCount:   c.MemberCount,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                e.ID.Hex(),
		ClubID:            e.ClubID,
		ClubName:          e.ClubName,
		Title:             e.Title,
		Description:       e.Description,
		BannerImage:       e.BannerImage,
		Location:          e.Location,
		EventDate:         e.EventDate.Format(time.RFC3339),
		EventFee:          e.EventFee,
		ManagerEmail:      e.ManagerEmail,
		RegistrationCount: e.RegistrationCount,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.LedgerEntry) PaymentResponse {
	return PaymentResponse{
		TransactionID: p.TransactionID,
		PaymentType:   string(p.Kind),
		Amount:        p.Amount,
		ClubID:        p.ClubID,
		ClubName:      p.ClubName,
		EventID:       p.EventID,
		Status:        p.Status,
		PaidAt:        p.PaidAt.Format(time.RFC3339),
	}
}

func ToMembershipResponse(m *domain.MembershipGrant) MembershipResponse {
	return MembershipResponse{
		TransactionID: m.TransactionID,
		ClubID:        m.ClubID,
		ClubName:      m.ClubName,
		MemberEmail:   m.MemberEmail,
		MemberName:    m.MemberName,
		Status:        m.Status,
		JoinedAt:      m.JoinedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponse(r *domain.RegistrationGrant) RegistrationResponse {
	return RegistrationResponse{
		TransactionID: r.TransactionID,
		EventID:       r.EventID,
		EventTitle:    r.EventTitle,
		ClubID:        r.ClubID,
		ClubName:      r.ClubName,
		MemberEmail:   r.MemberEmail,
		MemberName:    r.MemberName,
		Status:        r.Status,
		RegisteredAt:  r.RegisteredAt.Format(time.RFC3339),
	}
}
