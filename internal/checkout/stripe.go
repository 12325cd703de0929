package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

// Stripe adapts the Stripe-hosted checkout flow: it turns a purchase intent
// into a session and reads a session's terminal result back.
type Stripe struct {
	api          *client.API
	clientOrigin string
}

func NewStripe(secretKey, clientOrigin string) *Stripe {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Stripe{
		api:          api,
		clientOrigin: clientOrigin,
	}
}

// CreateSession opens a provider-hosted checkout for the intent and returns
// the hosted URL. The whole intent rides along as session metadata because
// the confirmation path reads it back authoritatively.
func (s *Stripe) CreateSession(ctx context.Context, intent domain.PurchaseIntent) (string, error) {
	if err := intent.Validate(); err != nil {
		return "", err
	}

	name := intent.ClubName
	cancelURL := fmt.Sprintf("%s/dashboard/club-details/%s", s.clientOrigin, intent.ClubID)
	if intent.Kind == domain.KindEventFee {
		name = intent.EventTitle
		cancelURL = fmt.Sprintf("%s/dashboard/event-details/%s", s.clientOrigin, intent.EventID)
	}

	product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(name),
	}
	if intent.Description != "" {
		product.Description = stripe.String(intent.Description)
	}
	if intent.BannerImage != "" {
		product.Images = stripe.StringSlice([]string{intent.BannerImage})
	}

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				ProductData: product,
				UnitAmount:  stripe.Int64(intent.Amount * 100),
			},
			Quantity: stripe.Int64(1),
		}},
		CustomerEmail: stripe.String(intent.BuyerEmail),
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(s.clientOrigin + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(cancelURL),
	}
	for k, v := range intent.EncodeMetadata() {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return sess.URL, nil
}

func (s *Stripe) GetSessionResult(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	sess, err := s.api.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	return sessionResult(sess)
}

func sessionResult(sess *stripe.CheckoutSession) (*domain.CheckoutSession, error) {
	result := &domain.CheckoutSession{
		ID:          sess.ID,
		Status:      domain.SessionStatus(sess.Status),
		AmountTotal: sess.AmountTotal / 100,
		Metadata:    sess.Metadata,
	}
	if sess.PaymentIntent != nil {
		result.TransactionID = sess.PaymentIntent.ID
	}
	// A complete session must carry a payment intent id: it is the idempotency
	// key for every reconciliation write, and an empty one would make all such
	// payments collide on the unique index.
	if result.Status == domain.SessionComplete && result.TransactionID == "" {
		return nil, fmt.Errorf("checkout session %s is complete but has no payment intent", sess.ID)
	}

	return result, nil
}
