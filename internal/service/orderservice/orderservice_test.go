package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	orderRepo       *MockOrderRepo
	participantRepo *MockParticipantRepo
	userRepo        *MockUserRepo
	notifier        *MockNotifier
	txManager       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orderRepo:       NewMockOrderRepo(ctrl),
		participantRepo: NewMockParticipantRepo(ctrl),
		userRepo:        NewMockUserRepo(ctrl),
		notifier:        NewMockNotifier(ctrl),
		txManager:       pg.NewMockTXManager(ctrl),
	}
	service := New(m.orderRepo, m.participantRepo, m.userRepo, m.notifier, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func validCreateData() CreateOrderData {
	return CreateOrderData{
		Title:           "Organic Coffee Beans",
		Description:     "Premium single origin",
		Country:         "US",
		Category:        "Food & Beverages",
		IndividualPrice: 34.99,
		GroupPrice:      24.99,
		MinOrders:       10,
		MaxOrders:       50,
		Deadline:        time.Now().Add(72 * time.Hour),
	}
}

func TestCreateOrder(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		data          CreateOrderData
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Order is created with a slug and country currency",
			data: validCreateData(),
			prepareMock: func() {
				m.orderRepo.EXPECT().ExistsSlug(gomock.Any(), "organic-coffee-beans", "US").Return(false, nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any(), "Organic Coffee Beans", "manager-1").Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Slug collision gets a numeric suffix",
			data: validCreateData(),
			prepareMock: func() {
				m.orderRepo.EXPECT().ExistsSlug(gomock.Any(), "organic-coffee-beans", "US").Return(true, nil)
				m.orderRepo.EXPECT().ExistsSlug(gomock.Any(), "organic-coffee-beans-2", "US").Return(false, nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Missing title fails validation",
			data: func() CreateOrderData {
				d := validCreateData()
				d.Title = "  "
				return d
			}(),
			expectedError: ErrValidation,
		},
		{
			name: "Unsupported country fails validation",
			data: func() CreateOrderData {
				d := validCreateData()
				d.Country = "ZZ"
				return d
			}(),
			expectedError: ErrValidation,
		},
		{
			name: "Min orders above max fails validation",
			data: func() CreateOrderData {
				d := validCreateData()
				d.MinOrders = 60
				return d
			}(),
			expectedError: ErrValidation,
		},
		{
			name: "Notification failure does not fail the creation",
			data: validCreateData(),
			prepareMock: func() {
				m.orderRepo.EXPECT().ExistsSlug(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("sink down"))
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.CreateOrder(context.Background(), tt.data, "manager-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, "manager-1", order.ManagerID)
				assert.Equal(t, "USD", order.Currency)
				assert.Equal(t, ActiveOrderStatus, order.Status)
				assert.Equal(t, 0, order.CurrentOrders)
				assert.NotEmpty(t, order.ID)
				assert.NotEmpty(t, order.Slug)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	service, m := NewMock(t)

	activeOrder := func() *domain.GroupOrder {
		return &domain.GroupOrder{
			ID:            "order-1",
			Title:         "Organic Coffee Beans",
			ManagerID:     "manager-1",
			Status:        ActiveOrderStatus,
			CurrentOrders: 5,
			MaxOrders:     10,
		}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "User joins with uploaded payment status",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").Return(activeOrder(), nil)
				m.participantRepo.EXPECT().FindByOrderAndUser(gomock.Any(), "order-1", "user-1").Return(nil, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				m.orderRepo.EXPECT().IncrementCurrentOrders(gomock.Any(), "order-1").Return(true, nil)
				m.participantRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().NotifyOrderJoined(gomock.Any(), "order-1", "Organic Coffee Beans", "user-1", "manager-1").Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Order not found",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "Order not active",
			prepareMock: func() {
				order := activeOrder()
				order.Status = ClosedOrderStatus
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").Return(order, nil)
			},
			expectedError: ErrOrderNotActive,
		},
		{
			name: "Duplicate join is rejected",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").Return(activeOrder(), nil)
				m.participantRepo.EXPECT().FindByOrderAndUser(gomock.Any(), "order-1", "user-1").
					Return(&domain.OrderParticipant{ID: "p-1"}, nil)
			},
			expectedError: ErrAlreadyJoined,
		},
		{
			name: "Order at capacity",
			prepareMock: func() {
				order := activeOrder()
				order.CurrentOrders = 10
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").Return(order, nil)
				m.participantRepo.EXPECT().FindByOrderAndUser(gomock.Any(), "order-1", "user-1").Return(nil, nil)
			},
			expectedError: ErrOrderFull,
		},
		{
			name: "Conditional increment loses the race",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").Return(activeOrder(), nil)
				m.participantRepo.EXPECT().FindByOrderAndUser(gomock.Any(), "order-1", "user-1").Return(nil, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				m.orderRepo.EXPECT().IncrementCurrentOrders(gomock.Any(), "order-1").Return(false, nil)
			},
			expectedError: ErrOrderFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			participant, err := service.Join(context.Background(), "order-1", "user-1", "bank_transfer", 24.99)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, participant)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, participant)
				assert.Equal(t, UploadedPaymentStatus, participant.PaymentStatus)
				assert.Equal(t, "bank_transfer", participant.PaymentMethod)
				assert.Equal(t, 24.99, participant.PaymentAmount)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	service, m := NewMock(t)
	verifiedAt := time.Now().Add(-time.Hour)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		check         func(t *testing.T, p *domain.OrderParticipant)
	}{
		{
			name: "Uploaded payment gets verified and notified",
			prepareMock: func() {
				m.participantRepo.EXPECT().FindByID(gomock.Any(), "p-1").
					Return(&domain.OrderParticipant{ID: "p-1", OrderID: "order-1", UserID: "user-1", PaymentStatus: UploadedPaymentStatus}, nil)
				m.participantRepo.EXPECT().UpdateStatus(gomock.Any(), "p-1", VerifiedPaymentStatus, "manager-1", gomock.Any()).
					Return(&domain.OrderParticipant{ID: "p-1", OrderID: "order-1", UserID: "user-1", PaymentStatus: VerifiedPaymentStatus, VerifiedBy: "manager-1"}, nil)
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.GroupOrder{ID: "order-1", Title: "Organic Coffee Beans"}, nil)
				m.notifier.EXPECT().NotifyPaymentVerified(gomock.Any(), "order-1", "Organic Coffee Beans", "user-1").Return(nil)
			},
			check: func(t *testing.T, p *domain.OrderParticipant) {
				assert.Equal(t, VerifiedPaymentStatus, p.PaymentStatus)
			},
		},
		{
			name: "Verifying an already verified payment is a no-op",
			prepareMock: func() {
				m.participantRepo.EXPECT().FindByID(gomock.Any(), "p-1").
					Return(&domain.OrderParticipant{ID: "p-1", PaymentStatus: VerifiedPaymentStatus, VerifiedAt: &verifiedAt}, nil)
			},
			check: func(t *testing.T, p *domain.OrderParticipant) {
				assert.Equal(t, VerifiedPaymentStatus, p.PaymentStatus)
				assert.Equal(t, &verifiedAt, p.VerifiedAt)
			},
		},
		{
			name: "Participant not found",
			prepareMock: func() {
				m.participantRepo.EXPECT().FindByID(gomock.Any(), "p-1").Return(nil, nil)
			},
			expectedError: ErrParticipantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			participant, err := service.Verify(context.Background(), "p-1", "manager-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, participant)
			} else {
				assert.NoError(t, err)
				tt.check(t, participant)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, m := NewMock(t)

	m.participantRepo.EXPECT().FindByID(gomock.Any(), "p-1").
		Return(&domain.OrderParticipant{ID: "p-1", PaymentStatus: UploadedPaymentStatus}, nil)
	m.participantRepo.EXPECT().UpdateStatus(gomock.Any(), "p-1", RejectedPaymentStatus, "manager-1", nil).
		Return(&domain.OrderParticipant{ID: "p-1", PaymentStatus: RejectedPaymentStatus, VerifiedBy: "manager-1"}, nil)

	participant, err := service.Reject(context.Background(), "p-1", "manager-1")
	assert.NoError(t, err)
	assert.Equal(t, RejectedPaymentStatus, participant.PaymentStatus)
	assert.Nil(t, participant.VerifiedAt)
}

func TestUpdateStatus(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Completed order notifies every participant",
			status: CompletedOrderStatus,
			prepareMock: func() {
				m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), "order-1", CompletedOrderStatus).
					Return(&domain.GroupOrder{ID: "order-1", Title: "Organic Coffee Beans", Status: CompletedOrderStatus}, nil)
				m.participantRepo.EXPECT().FindByOrderID(gomock.Any(), "order-1").
					Return([]domain.OrderParticipant{{UserID: "user-1"}, {UserID: "user-2"}}, nil)
				m.notifier.EXPECT().NotifyOrderCompleted(gomock.Any(), "order-1", "Organic Coffee Beans", []string{"user-1", "user-2"}).Return(nil)
			},
		},
		{
			name:   "Closing never-filled order is allowed",
			status: ClosedOrderStatus,
			prepareMock: func() {
				m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), "order-1", ClosedOrderStatus).
					Return(&domain.GroupOrder{ID: "order-1", Status: ClosedOrderStatus}, nil)
			},
		},
		{
			name:          "Unknown status is rejected",
			status:        "shipped",
			expectedError: ErrInvalidOrderStatus,
		},
		{
			name:   "Order not found",
			status: CancelledOrderStatus,
			prepareMock: func() {
				m.orderRepo.EXPECT().UpdateStatus(gomock.Any(), "order-1", CancelledOrderStatus).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.UpdateStatus(context.Background(), "order-1", tt.status)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, order.Status)
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Order is joined with manager and participants",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.GroupOrder{ID: "order-1", ManagerID: "manager-1"}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), "manager-1").
					Return(&domain.User{ID: "manager-1", Name: "Alex"}, nil)
				m.participantRepo.EXPECT().FindByOrderID(gomock.Any(), "order-1").
					Return([]domain.OrderParticipant{{ID: "p-1"}}, nil)
			},
		},
		{
			name: "Order not found",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), "order-1").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.GetOrder(context.Background(), "order-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Alex", order.Manager.Name)
				assert.Len(t, order.Participants, 1)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Organic Coffee Beans", "organic-coffee-beans"},
		{"  Bulk --- Order!! ", "bulk-order"},
		{"Príma Kávé", "príma-kávé"},
		{"42 things", "42-things"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, slugify(tt.title))
	}
}
