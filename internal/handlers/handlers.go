package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/groupmart/groupmart/docs"
	advisorhandlers "github.com/groupmart/groupmart/internal/handlers/advisor"
	authhandlers "github.com/groupmart/groupmart/internal/handlers/auth"
	notificationhandlers "github.com/groupmart/groupmart/internal/handlers/notifications"
	ordershandlers "github.com/groupmart/groupmart/internal/handlers/orders"
	paymenthandlers "github.com/groupmart/groupmart/internal/handlers/payments"
	requesthandlers "github.com/groupmart/groupmart/internal/handlers/requests"
	"github.com/groupmart/groupmart/internal/handlers/scrapehandler"
	"github.com/groupmart/groupmart/internal/service"
	"github.com/groupmart/groupmart/pkg/auth"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Promote(w http.ResponseWriter, r *http.Request)
	Referral(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	GetParticipations(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	CreateIntent(w http.ResponseWriter, r *http.Request)
	UploadProof(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Vote(w http.ResponseWriter, r *http.Request)
}

type AdvisorHandler interface {
	Pricing(w http.ResponseWriter, r *http.Request)
	Shipping(w http.ResponseWriter, r *http.Request)
}

type ScrapeHandler interface {
	Scrape(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	OrderHandler        OrderHandler
	PaymentHandler      PaymentHandler
	NotificationHandler NotificationHandler
	RequestHandler      RequestHandler
	AdvisorHandler      AdvisorHandler
	ScrapeHandler       ScrapeHandler

	jwtService auth.JWTServiceInterface
	uploadDir  string
}

func New(s *service.Services, uploadDir string) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		OrderHandler:        ordershandlers.New(s.OrderService),
		PaymentHandler:      paymenthandlers.New(s.PaymentService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		RequestHandler:      requesthandlers.New(s.RequestService),
		AdvisorHandler:      advisorhandlers.New(s.AdvisorService),
		ScrapeHandler:       scrapehandler.New(s.ScrapeService),
		jwtService:          s.JWT,
		uploadDir:           uploadDir,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))

	authMiddleware := auth.Middleware(h.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Get("/referrals/{code}", h.AuthHandler.Referral)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.OrderHandler.ListOrders)
			r.Get("/{id}", h.OrderHandler.GetOrder)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Patch("/{id}/status", h.OrderHandler.UpdateStatus)
				r.Post("/{id}/join", h.OrderHandler.Join)
				r.Post("/{id}/checkout", h.PaymentHandler.Checkout)
				r.Post("/{id}/payment-intent", h.PaymentHandler.CreateIntent)
				r.Post("/{id}/proof", h.PaymentHandler.UploadProof)
				r.Patch("/{id}/participants/{participantId}/review", h.PaymentHandler.Review)
			})
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.RequestHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/", h.RequestHandler.Create)
				r.Post("/{id}/vote", h.RequestHandler.Vote)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/auth/promote", h.AuthHandler.Promote)
			r.Get("/participations", h.OrderHandler.GetParticipations)
			r.Post("/payments/verify", h.PaymentHandler.Verify)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Post("/", h.NotificationHandler.Create)
				r.Patch("/read-all", h.NotificationHandler.MarkAllRead)
				r.Patch("/{id}/read", h.NotificationHandler.MarkRead)
				r.Delete("/{id}", h.NotificationHandler.Delete)
			})

			r.Post("/advisor/pricing", h.AdvisorHandler.Pricing)
			r.Post("/advisor/shipping", h.AdvisorHandler.Shipping)
			r.Post("/scrape", h.ScrapeHandler.Scrape)
		})
	})

	return r
}
