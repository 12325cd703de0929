package dto

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	PhotoURL string `json:"photoURL"`
}

type UpdateRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin manager member"`
}

type CreateClubRequest struct {
	ClubName      string `json:"clubName" binding:"required"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	BannerImage   string `json:"bannerImage"`
	MembershipFee int64  `json:"membershipFee" binding:"gte=0"`
}

type UpdateClubStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type CreateEventRequest struct {
	ClubID      string `json:"clubId" binding:"required"`
	Title       string `json:"eventTitle" binding:"required"`
	Description string `json:"description"`
	BannerImage string `json:"bannerImage"`
	Location    string `json:"location"`
	EventDate   string `json:"eventDate" binding:"required"`
	EventFee    int64  `json:"eventFee" binding:"gte=0"`
}

type CheckoutMember struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// CreateCheckoutRequest mirrors the client's purchase payload; field names
// match the session metadata contract.
type CreateCheckoutRequest struct {
	PaymentType  string         `json:"paymentType" binding:"required,oneof=membership eventFee"`
	ClubID       string         `json:"clubId" binding:"required"`
	EventID      string         `json:"eventId"`
	ClubName     string         `json:"clubName"`
	EventTitle   string         `json:"eventTitle"`
	Description  string         `json:"description"`
	BannerImage  string         `json:"bannerImage"`
	Amount       int64          `json:"amount" binding:"required,gt=0"`
	Member       CheckoutMember `json:"member" binding:"required"`
	ManagerEmail string         `json:"managerEmail"`
}

type PaymentSuccessRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
