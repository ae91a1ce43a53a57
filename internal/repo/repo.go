package repo

import (
	"github.com/groupmart/groupmart/internal/deadline"
	"github.com/groupmart/groupmart/internal/pg"
	notificationrepo "github.com/groupmart/groupmart/internal/repo/notification-repo"
	orderrepo "github.com/groupmart/groupmart/internal/repo/order-repo"
	participantrepo "github.com/groupmart/groupmart/internal/repo/participant-repo"
	requestrepo "github.com/groupmart/groupmart/internal/repo/request-repo"
	userrepo "github.com/groupmart/groupmart/internal/repo/user-repo"
	"github.com/groupmart/groupmart/internal/service/authservice"
	"github.com/groupmart/groupmart/internal/service/notificationservice"
	"github.com/groupmart/groupmart/internal/service/orderservice"
	"github.com/groupmart/groupmart/internal/service/requestservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	OrderRepo        orderservice.OrderRepo
	ParticipantRepo  orderservice.ParticipantRepo
	NotificationRepo notificationservice.Repo
	RequestRepo      requestservice.Repo
	DeadlineRepo     deadline.OrderRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	orders := orderrepo.New(conn, txManager)
	participantRepo := participantrepo.New(conn)
	notificationRepo := notificationrepo.New(conn)
	requestRepo := requestrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:         userRepo,
		OrderRepo:        orders,
		ParticipantRepo:  participantRepo,
		NotificationRepo: notificationRepo,
		RequestRepo:      requestRepo,
		DeadlineRepo:     orders,
	}
}
