package deadline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/groupmart/groupmart/internal/config"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockParticipantRepo, *MockNotifier, *MockWorkerPoolI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := NewMockOrderRepo(ctrl)
	participantRepo := NewMockParticipantRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	cfg := &config.Config{SweepInterval: time.Minute}
	service := New(cfg, orderRepo, participantRepo, notifier)
	service.workerPool = workerPool
	return service, orderRepo, participantRepo, notifier, workerPool
}

func TestService_Start(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_sweep(t *testing.T) {
	order := domain.GroupOrder{ID: "order-1", ManagerID: "manager-1", Title: "Organic Coffee Beans"}

	tests := []struct {
		name           string
		mockFindOrders func(ctx context.Context, within time.Duration, limit uint32) ([]domain.GroupOrder, error)
		mockAddTask    func(ctx context.Context, task Task) error
		orderCount     int
	}{
		{
			name: "runs one task per approaching order",
			mockFindOrders: func(ctx context.Context, within time.Duration, limit uint32) ([]domain.GroupOrder, error) {
				return []domain.GroupOrder{order}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return task()
			},
			orderCount: 1,
		},
		{
			name: "fetch failure skips the cycle",
			mockFindOrders: func(ctx context.Context, within time.Duration, limit uint32) ([]domain.GroupOrder, error) {
				return nil, fmt.Errorf("failed to fetch orders")
			},
		},
		{
			name: "worker pool rejection releases the order",
			mockFindOrders: func(ctx context.Context, within time.Duration, limit uint32) ([]domain.GroupOrder, error) {
				return []domain.GroupOrder{order}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			orderCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, orderRepo, participantRepo, notifier, workerPool := NewMock(t)

			orderRepo.EXPECT().
				FindDeadlineApproaching(gomock.Any(), notifyWindow, gomock.Any()).
				DoAndReturn(tt.mockFindOrders).
				Times(1)
			if tt.orderCount > 0 {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					Times(tt.orderCount)
			}
			if tt.name == "runs one task per approaching order" {
				participantRepo.EXPECT().FindByOrderID(gomock.Any(), "order-1").
					Return([]domain.OrderParticipant{{UserID: "user-1"}}, nil)
				notifier.EXPECT().
					NotifyOrderDeadline(gomock.Any(), "order-1", "Organic Coffee Beans", []string{"manager-1", "user-1"}).
					Return(nil)
				orderRepo.EXPECT().MarkDeadlineNotified(gomock.Any(), "order-1").Return(nil)
			}

			service.sweep(context.Background())

			// sweep must always release its claim so the next cycle can retry
			_, loaded := inFlight.Load("order-1")
			assert.False(t, loaded)
		})
	}
}

func TestService_notifyOrder(t *testing.T) {
	order := domain.GroupOrder{ID: "order-1", ManagerID: "manager-1", Title: "Organic Coffee Beans"}

	t.Run("notifier failure leaves the order unstamped", func(t *testing.T) {
		service, _, participantRepo, notifier, _ := NewMock(t)

		participantRepo.EXPECT().FindByOrderID(gomock.Any(), "order-1").
			Return(nil, nil)
		notifier.EXPECT().
			NotifyOrderDeadline(gomock.Any(), "order-1", "Organic Coffee Beans", []string{"manager-1"}).
			Return(fmt.Errorf("notify failed"))

		err := service.notifyOrder(context.Background(), order)
		assert.Error(t, err)
	})

	t.Run("participant lookup failure aborts", func(t *testing.T) {
		service, _, participantRepo, _, _ := NewMock(t)

		participantRepo.EXPECT().FindByOrderID(gomock.Any(), "order-1").
			Return(nil, fmt.Errorf("database error"))

		err := service.notifyOrder(context.Background(), order)
		assert.Error(t, err)
	})
}
