package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	IssueToken(c *ginext.Context)
	RegisterUser(c *ginext.Context)
	GetUserRole(c *ginext.Context)
	UpdateUserRole(c *ginext.Context)
	ListClubs(c *ginext.Context)
	GetClub(c *ginext.Context)
	CreateClub(c *ginext.Context)
	UpdateClubStatus(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	ListEventRegistrations(c *ginext.Context)
	ListMemberships(c *ginext.Context)
	ListPayments(c *ginext.Context)
	CreateCheckoutSession(c *ginext.Context)
	PaymentSuccess(c *ginext.Context)
}

// Guards are the per-route access-control chain links, in the order they
// must run: authenticate, demo write block, role predicate.
type Guards struct {
	Authenticate ginext.HandlerFunc
	Demo         ginext.HandlerFunc
	AdminOnly    ginext.HandlerFunc
	ManagerOnly  ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Auth & users
	router.POST("/getJwtToken", h.IssueToken)
	router.POST("/user", h.RegisterUser)
	router.GET("/user/role", g.Authenticate, h.GetUserRole)
	router.PATCH("/update-role", g.Authenticate, g.Demo, g.AdminOnly, h.UpdateUserRole)

	// Clubs
	router.GET("/clubs", h.ListClubs)
	router.GET("/clubs/:id", h.GetClub)
	router.POST("/clubs", g.Authenticate, g.Demo, g.ManagerOnly, h.CreateClub)
	router.PATCH("/clubs/:id/status", g.Authenticate, g.Demo, g.AdminOnly, h.UpdateClubStatus)

	// Events
	router.GET("/events", h.ListEvents)
	router.GET("/events/:id", h.GetEvent)
	router.POST("/events", g.Authenticate, g.Demo, g.ManagerOnly, h.CreateEvent)
	router.GET("/events/:id/registrations", g.Authenticate, g.ManagerOnly, h.ListEventRegistrations)

	// Memberships & payments
	router.GET("/memberships", g.Authenticate, h.ListMemberships)
	router.GET("/payments", g.Authenticate, h.ListPayments)
	router.POST("/create-checkout-session", g.Authenticate, g.Demo, h.CreateCheckoutSession)
	router.POST("/payment-success", g.Authenticate, h.PaymentSuccess)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
