package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/metrics"
	"github.com/groupmart/groupmart/internal/payments"
	"github.com/groupmart/groupmart/internal/service/orderservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

// Orders is the slice of order operations the payment flow drives.
type Orders interface {
	GetOrder(ctx context.Context, id string) (*domain.GroupOrder, error)
	GetParticipant(ctx context.Context, orderID, userID string) (*domain.OrderParticipant, error)
	Join(ctx context.Context, orderID, userID, paymentMethod string, paymentAmount float64) (*domain.OrderParticipant, error)
	SubmitProof(ctx context.Context, participantID, proofURL string) (*domain.OrderParticipant, error)
	Verify(ctx context.Context, participantID, verifierID string) (*domain.OrderParticipant, error)
	Reject(ctx context.Context, participantID, verifierID string) (*domain.OrderParticipant, error)
}

type StripeGateway interface {
	Configured() bool
	CreateCheckoutSession(data payments.CheckoutSessionData) (*payments.CheckoutSession, error)
	CreatePaymentIntent(amount float64, currency string) (*payments.PaymentIntent, error)
	VerifyPayment(id string) (bool, error)
}

type ProofStore interface {
	Save(orderID, userID, filename string, r io.Reader) (string, error)
}

var (
	ErrPaymentNotVerified = errors.New("payment verification failed")
	ErrReviewForbidden    = errors.New("only the order manager can review payments")
)

type Service struct {
	orders Orders
	stripe StripeGateway
	proofs ProofStore
}

func New(orders Orders, stripe StripeGateway, proofs ProofStore) *Service {
	return &Service{
		orders: orders,
		stripe: stripe,
		proofs: proofs,
	}
}

// Checkout opens a hosted card checkout session for the order's group price.
func (s *Service) Checkout(ctx context.Context, orderID string) (*payments.CheckoutSession, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	session, err := s.stripe.CreateCheckoutSession(payments.CheckoutSessionData{
		OrderID:     order.ID,
		Amount:      order.GroupPrice,
		Currency:    order.Currency,
		Title:       order.Title,
		Description: order.Description,
	})
	if err != nil {
		zap.L().Error("can't create checkout session", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}
	metrics.CheckoutSessionsTotal.Inc()
	return session, nil
}

// CreateIntent opens a payment intent for embedded card elements, priced at
// the order's group price in the order's currency.
func (s *Service) CreateIntent(ctx context.Context, orderID string) (*payments.PaymentIntent, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	intent, err := s.stripe.CreatePaymentIntent(order.GroupPrice, order.Currency)
	if err != nil {
		zap.L().Error("can't create payment intent", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}
	return intent, nil
}

// UploadProof stores the proof file and attaches its URL to the caller's
// participant record.
func (s *Service) UploadProof(ctx context.Context, orderID, userID, filename string, file io.Reader) (*domain.OrderParticipant, error) {
	participant, err := s.orders.GetParticipant(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, orderservice.ErrParticipantNotFound
	}

	proofURL, err := s.proofs.Save(orderID, userID, filename, file)
	if err != nil {
		return nil, err
	}

	return s.orders.SubmitProof(ctx, participant.ID, proofURL)
}

// ConfirmCheckout completes the card path after the buyer returns from the
// hosted checkout page. The gateway is the source of truth: the join and the
// verification only happen once the payment is confirmed. Re-confirming an
// already joined user reuses the existing participant, so the flow is safe to
// retry.
func (s *Service) ConfirmCheckout(ctx context.Context, sessionID, orderID, userID string) (*domain.OrderParticipant, error) {
	paid, err := s.stripe.VerifyPayment(sessionID)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, ErrPaymentNotVerified
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	participant, err := s.orders.Join(ctx, orderID, userID, orderservice.CardPaymentMethod, order.GroupPrice)
	if errors.Is(err, orderservice.ErrAlreadyJoined) {
		participant, err = s.orders.GetParticipant(ctx, orderID, userID)
		if err == nil && participant == nil {
			err = orderservice.ErrParticipantNotFound
		}
	}
	if err != nil {
		return nil, err
	}

	verified, err := s.orders.Verify(ctx, participant.ID, userID)
	if err != nil {
		return nil, err
	}

	zap.L().Info("checkout confirmed", zap.String("orderID", orderID), zap.String("userID", userID), zap.String("sessionID", sessionID))
	return verified, nil
}

// Review lets the order manager settle a manual payment proof one way or the
// other.
func (s *Service) Review(ctx context.Context, orderID, participantID, verifierID, status string) (*domain.OrderParticipant, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ManagerID != verifierID {
		return nil, ErrReviewForbidden
	}

	switch status {
	case orderservice.VerifiedPaymentStatus:
		return s.orders.Verify(ctx, participantID, verifierID)
	case orderservice.RejectedPaymentStatus:
		return s.orders.Reject(ctx, participantID, verifierID)
	default:
		return nil, fmt.Errorf("%w: %q", orderservice.ErrInvalidPaymentStatus, status)
	}
}
