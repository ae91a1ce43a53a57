// Package deadline sweeps active orders whose deadlines are approaching and
// fans out reminder notifications through a bounded worker pool.
package deadline

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/groupmart/groupmart/internal/config"
	"github.com/groupmart/groupmart/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=deadline.go -destination=mock_deadline.go -package=deadline

const notifyWindow = 24 * time.Hour

// inFlight guards against re-queuing an order while a previous sweep is still
// notifying it.
var inFlight sync.Map

type OrderRepo interface {
	FindDeadlineApproaching(ctx context.Context, within time.Duration, limit uint32) ([]domain.GroupOrder, error)
	MarkDeadlineNotified(ctx context.Context, id string) error
}

type ParticipantRepo interface {
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderParticipant, error)
}

type Notifier interface {
	NotifyOrderDeadline(ctx context.Context, orderID, orderTitle string, userIDs []string) error
}

type Service struct {
	orderRepo       OrderRepo
	participantRepo ParticipantRepo
	notifier        Notifier
	limit           uint32
	workerPool      WorkerPoolI
	sweepInterval   time.Duration
}

func New(cfg *config.Config, orderRepo OrderRepo, participantRepo ParticipantRepo, notifier Notifier) *Service {
	return &Service{
		orderRepo:       orderRepo,
		participantRepo: participantRepo,
		notifier:        notifier,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		sweepInterval:   cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deadline service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	orders, err := s.orderRepo.FindDeadlineApproaching(ctx, notifyWindow, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch orders for deadline sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := inFlight.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(order.ID)
				return s.notifyOrder(ctx, order)
			})
			if err != nil {
				inFlight.Delete(order.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing deadline sweep", zap.Error(err))
	}
}

// notifyOrder reminds the manager and every participant, then stamps the order
// so later sweeps skip it.
func (s *Service) notifyOrder(ctx context.Context, order domain.GroupOrder) error {
	participants, err := s.participantRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return err
	}

	userIDs := make([]string, 0, len(participants)+1)
	userIDs = append(userIDs, order.ManagerID)
	for _, p := range participants {
		userIDs = append(userIDs, p.UserID)
	}

	if err := s.notifier.NotifyOrderDeadline(ctx, order.ID, order.Title, userIDs); err != nil {
		return err
	}
	if err := s.orderRepo.MarkDeadlineNotified(ctx, order.ID); err != nil {
		return err
	}

	zap.L().Info("Deadline reminder sent", zap.String("orderID", order.ID), zap.Int("recipients", len(userIDs)))
	return nil
}
