package orderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/groupmart/groupmart/internal/countries"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/metrics"
	"github.com/groupmart/groupmart/internal/pg"
	orderrepo "github.com/groupmart/groupmart/internal/repo/order-repo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type OrderRepo interface {
	Save(ctx context.Context, order *domain.GroupOrder) error
	FindByID(ctx context.Context, id string) (*domain.GroupOrder, error)
	List(ctx context.Context, filters orderrepo.ListFilters) ([]domain.GroupOrder, error)
	ExistsSlug(ctx context.Context, slug, country string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.GroupOrder, error)
	IncrementCurrentOrders(ctx context.Context, id string) (bool, error)
}

type ParticipantRepo interface {
	Save(ctx context.Context, p *domain.OrderParticipant) error
	FindByID(ctx context.Context, id string) (*domain.OrderParticipant, error)
	FindByOrderAndUser(ctx context.Context, orderID, userID string) (*domain.OrderParticipant, error)
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderParticipant, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.OrderParticipant, error)
	UpdateProof(ctx context.Context, id, proofURL string, paidAt time.Time) (*domain.OrderParticipant, error)
	UpdateStatus(ctx context.Context, id, status, verifiedBy string, verifiedAt *time.Time) (*domain.OrderParticipant, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Notifier records user-visible events. All calls are best-effort: a failed
// notification never fails the operation that triggered it.
type Notifier interface {
	NotifyOrderCreated(ctx context.Context, orderID, orderTitle, managerID string) error
	NotifyOrderJoined(ctx context.Context, orderID, orderTitle, participantUserID, managerID string) error
	NotifyPaymentVerified(ctx context.Context, orderID, orderTitle, participantUserID string) error
	NotifyOrderCompleted(ctx context.Context, orderID, orderTitle string, userIDs []string) error
}

const (
	// group order statuses
	ActiveOrderStatus    = "active"
	ClosedOrderStatus    = "closed"
	CompletedOrderStatus = "completed"
	CancelledOrderStatus = "cancelled"

	// participant payment statuses
	PendingPaymentStatus  = "pending"
	UploadedPaymentStatus = "uploaded"
	VerifiedPaymentStatus = "verified"
	RejectedPaymentStatus = "rejected"

	// CardPaymentMethod marks participants whose payment went through the
	// hosted checkout instead of a manual proof upload.
	CardPaymentMethod = "card"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotActive       = errors.New("order is not active")
	ErrOrderFull            = errors.New("order is at capacity")
	ErrAlreadyJoined        = errors.New("already joined this order")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

var orderStatuses = map[string]struct{}{
	ActiveOrderStatus:    {},
	ClosedOrderStatus:    {},
	CompletedOrderStatus: {},
	CancelledOrderStatus: {},
}

type Service struct {
	orderRepo       OrderRepo
	participantRepo ParticipantRepo
	userRepo        UserRepo
	notifier        Notifier
	txManager       pg.TXManager
}

func New(orderRepo OrderRepo, participantRepo ParticipantRepo, userRepo UserRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:       orderRepo,
		participantRepo: participantRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		txManager:       txManager,
	}
}

// CreateOrderData is everything a manager supplies when opening a campaign.
type CreateOrderData struct {
	Title           string
	Description     string
	Images          []string
	Category        string
	Country         string
	IndividualPrice float64
	GroupPrice      float64
	MinOrders       int
	MaxOrders       int
	PaymentMethods  map[string]string
	PaymentDeadline *time.Time
	Deadline        time.Time
}

func (d CreateOrderData) validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case len(d.Title) > countries.MaxTitleLength:
		return fmt.Errorf("%w: title exceeds %d characters", ErrValidation, countries.MaxTitleLength)
	case len(d.Description) > countries.MaxDescriptionLength:
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, countries.MaxDescriptionLength)
	case len(d.Images) > countries.MaxImages:
		return fmt.Errorf("%w: at most %d images", ErrValidation, countries.MaxImages)
	case !countries.IsSupported(d.Country):
		return fmt.Errorf("%w: unsupported country %q", ErrValidation, d.Country)
	case d.GroupPrice <= 0:
		return fmt.Errorf("%w: group price must be positive", ErrValidation)
	case d.MinOrders < 1:
		return fmt.Errorf("%w: min orders must be at least 1", ErrValidation)
	case d.MinOrders > d.MaxOrders:
		return fmt.Errorf("%w: min orders exceeds max orders", ErrValidation)
	case d.Deadline.IsZero():
		return fmt.Errorf("%w: deadline is required", ErrValidation)
	}
	return nil
}

func (s *Service) CreateOrder(ctx context.Context, data CreateOrderData, managerID string) (*domain.GroupOrder, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, data.Title, data.Country)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &domain.GroupOrder{
		ID:              uuid.NewString(),
		Slug:            slug,
		ManagerID:       managerID,
		Country:         data.Country,
		Title:           data.Title,
		Description:     data.Description,
		Images:          data.Images,
		Category:        data.Category,
		IndividualPrice: data.IndividualPrice,
		GroupPrice:      data.GroupPrice,
		Currency:        countries.Currency(data.Country),
		MinOrders:       data.MinOrders,
		MaxOrders:       data.MaxOrders,
		CurrentOrders:   0,
		PaymentMethods:  data.PaymentMethods,
		PaymentDeadline: data.PaymentDeadline,
		Deadline:        data.Deadline,
		Status:          ActiveOrderStatus,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.Images == nil {
		order.Images = []string{}
	}
	if order.PaymentMethods == nil {
		order.PaymentMethods = map[string]string{}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	metrics.OrdersCreatedTotal.Inc()

	if err := s.notifier.NotifyOrderCreated(ctx, order.ID, order.Title, managerID); err != nil {
		zap.L().Warn("order created notification failed", zap.String("orderID", order.ID), zap.Error(err))
	}

	zap.L().Info("order created", zap.String("orderID", order.ID), zap.String("slug", order.Slug))
	return order, nil
}

func (s *Service) uniqueSlug(ctx context.Context, title, country string) (string, error) {
	base := slugify(title)
	slug := base
	for i := 2; ; i++ {
		exists, err := s.orderRepo.ExistsSlug(ctx, slug, country)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func (s *Service) ListOrders(ctx context.Context, filters orderrepo.ListFilters) ([]domain.GroupOrder, error) {
	orders, err := s.orderRepo.List(ctx, filters)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// GetOrder returns the order joined with its manager profile and participant
// list.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.GroupOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	manager, err := s.userRepo.FindByID(ctx, order.ManagerID)
	if err != nil {
		return nil, err
	}
	order.Manager = manager

	participants, err := s.participantRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Participants = participants

	return order, nil
}

// UpdateStatus moves an order between lifecycle states. Transitions are
// manager-initiated and deliberately unguarded: closing an order that never
// reached min_orders is allowed.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*domain.GroupOrder, error) {
	if _, ok := orderStatuses[status]; !ok {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if status == CompletedOrderStatus {
		s.notifyCompleted(ctx, order)
	}

	zap.L().Info("order status updated", zap.String("orderID", id), zap.String("status", status))
	return order, nil
}

func (s *Service) notifyCompleted(ctx context.Context, order *domain.GroupOrder) {
	participants, err := s.participantRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		zap.L().Warn("can't load participants for completion notification", zap.String("orderID", order.ID), zap.Error(err))
		return
	}
	userIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}
	if err := s.notifier.NotifyOrderCompleted(ctx, order.ID, order.Title, userIDs); err != nil {
		zap.L().Warn("order completed notification failed", zap.String("orderID", order.ID), zap.Error(err))
	}
}

// Join adds a user to an order. The participant starts in the uploaded state:
// joining is a declaration of intent to pay. The capacity increment and its
// guard run as one conditional update inside the join transaction, and the
// unique (order, user) index backs up the duplicate pre-check under races.
func (s *Service) Join(ctx context.Context, orderID, userID, paymentMethod string, paymentAmount float64) (*domain.OrderParticipant, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		metrics.JoinsFailedTotal.WithLabelValues("not_found").Inc()
		return nil, ErrOrderNotFound
	}
	if order.Status != ActiveOrderStatus {
		metrics.JoinsFailedTotal.WithLabelValues("not_active").Inc()
		return nil, ErrOrderNotActive
	}

	existing, err := s.participantRepo.FindByOrderAndUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		metrics.JoinsFailedTotal.WithLabelValues("duplicate").Inc()
		return nil, ErrAlreadyJoined
	}

	if order.CurrentOrders >= order.MaxOrders {
		metrics.JoinsFailedTotal.WithLabelValues("full").Inc()
		return nil, ErrOrderFull
	}

	participant := &domain.OrderParticipant{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		UserID:        userID,
		PaymentMethod: paymentMethod,
		PaymentStatus: UploadedPaymentStatus,
		PaymentAmount: paymentAmount,
		JoinedAt:      time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.orderRepo.IncrementCurrentOrders(ctx, orderID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderFull
		}
		return s.participantRepo.Save(ctx, participant)
	})
	if err != nil {
		if errors.Is(err, ErrOrderFull) {
			metrics.JoinsFailedTotal.WithLabelValues("full").Inc()
			return nil, ErrOrderFull
		}
		zap.L().Error("can't join order", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}
	metrics.JoinsTotal.Inc()

	if err := s.notifier.NotifyOrderJoined(ctx, order.ID, order.Title, userID, order.ManagerID); err != nil {
		zap.L().Warn("order joined notification failed", zap.String("orderID", order.ID), zap.Error(err))
	}

	zap.L().Info("user joined order", zap.String("orderID", orderID), zap.String("userID", userID))
	return participant, nil
}

// SubmitProof attaches an uploaded payment proof and stamps paid_at. The
// participant is already in the uploaded state, so no transition happens.
func (s *Service) SubmitProof(ctx context.Context, participantID, proofURL string) (*domain.OrderParticipant, error) {
	existing, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrParticipantNotFound
	}

	participant, err := s.participantRepo.UpdateProof(ctx, participantID, proofURL, time.Now())
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	return participant, nil
}

// Verify marks a participant's payment as verified. Verifying an already
// verified participant is a no-op returning the stored record; verified_at is
// never re-stamped, so a retried card-path poll cannot move the timestamp.
func (s *Service) Verify(ctx context.Context, participantID, verifierID string) (*domain.OrderParticipant, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	if participant.PaymentStatus == VerifiedPaymentStatus {
		return participant, nil
	}

	now := time.Now()
	updated, err := s.participantRepo.UpdateStatus(ctx, participantID, VerifiedPaymentStatus, verifierID, &now)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrParticipantNotFound
	}
	metrics.PaymentsVerifiedTotal.Inc()

	if order, err := s.orderRepo.FindByID(ctx, updated.OrderID); err == nil && order != nil {
		if err := s.notifier.NotifyPaymentVerified(ctx, order.ID, order.Title, updated.UserID); err != nil {
			zap.L().Warn("payment verified notification failed", zap.String("participantID", participantID), zap.Error(err))
		}
	}

	zap.L().Info("payment verified", zap.String("participantID", participantID), zap.String("verifierID", verifierID))
	return updated, nil
}

// Reject marks a participant's payment as rejected. The order's
// current_orders is intentionally not decremented: rejected participants keep
// counting toward capacity until the manager closes the order.
func (s *Service) Reject(ctx context.Context, participantID, verifierID string) (*domain.OrderParticipant, error) {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	updated, err := s.participantRepo.UpdateStatus(ctx, participantID, RejectedPaymentStatus, verifierID, nil)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrParticipantNotFound
	}
	metrics.PaymentsRejectedTotal.Inc()

	zap.L().Info("payment rejected", zap.String("participantID", participantID), zap.String("verifierID", verifierID))
	return updated, nil
}

func (s *Service) GetParticipations(ctx context.Context, userID string) ([]domain.OrderParticipant, error) {
	return s.participantRepo.FindByUserID(ctx, userID)
}

// GetParticipant looks up a user's membership in an order, nil when absent.
func (s *Service) GetParticipant(ctx context.Context, orderID, userID string) (*domain.OrderParticipant, error) {
	return s.participantRepo.FindByOrderAndUser(ctx, orderID, userID)
}
