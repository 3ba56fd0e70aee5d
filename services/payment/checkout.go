package payment

import (
	"errors"
	"fmt"
	"time"

	"wayplan/config"
	"wayplan/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// CheckoutService creates payment sessions for finished itineraries.
type CheckoutService interface {
	CreateCheckoutSession(req models.CheckoutRequest) (*models.CheckoutSession, error)
}

// StripeCheckoutService implements CheckoutService on Stripe Checkout.
type StripeCheckoutService struct {
	Logger *zap.Logger
}

func NewStripeCheckoutService(logger *zap.Logger) *StripeCheckoutService {
	return &StripeCheckoutService{Logger: logger}
}

// ValidateCheckoutRequest checks the request before any Stripe call.
func ValidateCheckoutRequest(req models.CheckoutRequest) error {
	if req.ItineraryID == "" {
		return errors.New("missing itinerary ID")
	}
	if req.Amount <= 0 {
		return errors.New("invalid checkout amount")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	return nil
}

// CreateCheckoutSession opens a single-payment Stripe Checkout Session
// priced at the plan's total.
func (s *StripeCheckoutService) CreateCheckoutSession(req models.CheckoutRequest) (*models.CheckoutSession, error) {
	if err := ValidateCheckoutRequest(req); err != nil {
		return nil, fmt.Errorf("invalid checkout request: %w", err)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:  stripe.String(config.AppConfig.CheckoutCancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Day plan %s", req.ItineraryID)),
					},
					UnitAmount: stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	params.AddMetadata("itinerary_id", req.ItineraryID)

	sess, err := session.New(params)
	if err != nil {
		s.Logger.Error("stripe checkout session failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.Logger.Info("checkout session created",
		zap.String("session", sess.ID), zap.String("itinerary", req.ItineraryID))
	return &models.CheckoutSession{
		SessionID:   sess.ID,
		URL:         sess.URL,
		ItineraryID: req.ItineraryID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		CreatedAt:   time.Now(),
	}, nil
}
