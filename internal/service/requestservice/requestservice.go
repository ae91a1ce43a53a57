package requestservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/groupmart/groupmart/internal/countries"
	"github.com/groupmart/groupmart/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=requestservice.go -destination=mock_requestservice.go -package=requestservice

type Repo interface {
	Save(ctx context.Context, req *domain.ProductRequest) error
	FindByID(ctx context.Context, id string) (*domain.ProductRequest, error)
	List(ctx context.Context, country, status string) ([]domain.ProductRequest, error)
	AddVote(ctx context.Context, requestID, userID string) (bool, error)
}

const (
	OpenRequestStatus      = "open"
	PickedUpRequestStatus  = "picked_up"
	FulfilledRequestStatus = "fulfilled"
)

var ErrValidation = errors.New("validation failed")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, requesterID, productName, productURL, description string, images []string, country string) (*domain.ProductRequest, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if !countries.IsSupported(country) {
		return nil, fmt.Errorf("%w: unsupported country %q", ErrValidation, country)
	}
	if images == nil {
		images = []string{}
	}

	req := &domain.ProductRequest{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		Country:     country,
		ProductName: productName,
		ProductURL:  productURL,
		Description: description,
		Images:      images,
		MeTooCount:  0,
		Status:      OpenRequestStatus,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Save(ctx, req); err != nil {
		zap.L().Error("can't create product request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (s *Service) List(ctx context.Context, country, status string) ([]domain.ProductRequest, error) {
	return s.repo.List(ctx, country, status)
}

// Vote records a me-too vote. Best-effort by contract: duplicates are silent
// no-ops and upstream failures are logged, never surfaced, so a retried vote
// can't turn into a user-visible error.
func (s *Service) Vote(ctx context.Context, requestID, userID string) {
	voted, err := s.repo.AddVote(ctx, requestID, userID)
	if err != nil {
		zap.L().Warn("vote failed", zap.String("requestID", requestID), zap.String("userID", userID), zap.Error(err))
		return
	}
	if !voted {
		zap.L().Debug("duplicate vote ignored", zap.String("requestID", requestID), zap.String("userID", userID))
	}
}
