package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/groupmart/groupmart/internal/countries"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/pkg/auth"
	"github.com/groupmart/groupmart/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	Save(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Promote(ctx context.Context, id string) (*domain.User, error)
}

const (
	BuyerAccountType   = "buyer"
	ManagerAccountType = "manager"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidReferral    = errors.New("invalid referral code")
	ErrUnknownCountry     = errors.New("unsupported country")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, email, password, name, country string) (*domain.User, error) {
	if !countries.IsSupported(country) {
		return nil, ErrUnknownCountry
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		Country:      country,
		AccountType:  BuyerAccountType,
		ReferralCode: validate.NewReferralCode(),
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Promote upgrades a buyer to manager. Managers stay managers; promoting one
// is a no-op at the database level.
func (s *Service) Promote(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.Promote(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("user promoted to manager", zap.String("userID", userID))
	return user, nil
}

// LookupReferral resolves a referral code to its owner. The Luhn format check
// runs first so garbage codes never reach the database.
func (s *Service) LookupReferral(ctx context.Context, code string) (*domain.User, error) {
	if !validate.IsReferralCode(code) {
		return nil, ErrInvalidReferral
	}
	user, err := s.userRepo.FindByReferralCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidReferral
	}
	return user, nil
}
