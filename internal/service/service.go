package service

import (
	"github.com/groupmart/groupmart/internal/config"
	"github.com/groupmart/groupmart/internal/handlers/advisor"
	"github.com/groupmart/groupmart/internal/handlers/auth"
	"github.com/groupmart/groupmart/internal/handlers/notifications"
	"github.com/groupmart/groupmart/internal/handlers/orders"
	paymenthandlers "github.com/groupmart/groupmart/internal/handlers/payments"
	"github.com/groupmart/groupmart/internal/handlers/requests"
	"github.com/groupmart/groupmart/internal/handlers/scrapehandler"
	"github.com/groupmart/groupmart/internal/payments"
	"github.com/groupmart/groupmart/internal/pg"
	"github.com/groupmart/groupmart/internal/repo"
	"github.com/groupmart/groupmart/internal/scrape"
	"github.com/groupmart/groupmart/internal/service/advisorservice"
	"github.com/groupmart/groupmart/internal/service/authservice"
	"github.com/groupmart/groupmart/internal/service/notificationservice"
	"github.com/groupmart/groupmart/internal/service/orderservice"
	"github.com/groupmart/groupmart/internal/service/paymentservice"
	"github.com/groupmart/groupmart/internal/service/requestservice"
	pkgauth "github.com/groupmart/groupmart/pkg/auth"
)

type Services struct {
	AuthService         auth.Service
	OrderService        orders.Service
	PaymentService      paymenthandlers.Service
	NotificationService notifications.Service
	RequestService      requests.Service
	AdvisorService      advisor.Service
	ScrapeService       scrapehandler.Service

	Notifications *notificationservice.Service
	JWT           pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	notificationService := notificationservice.New(repo.NotificationRepo)
	orderService := orderservice.New(repo.OrderRepo, repo.ParticipantRepo, repo.UserRepo, notificationService, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	requestService := requestservice.New(repo.RequestRepo)

	stripeClient := payments.NewStripeClient(cfg.StripeSecretKey, cfg.AppURL)
	proofStore := payments.NewProofStore(cfg.UploadDir, cfg.AppURL)
	paymentService := paymentservice.New(orderService, stripeClient, proofStore)

	return &Services{
		AuthService:         authService,
		OrderService:        orderService,
		PaymentService:      paymentService,
		NotificationService: notificationService,
		RequestService:      requestService,
		AdvisorService:      advisorservice.New(),
		ScrapeService:       scrape.New(),
		Notifications:       notificationService,
		JWT:                 jwtService,
	}
}
