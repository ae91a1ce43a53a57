package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/dto"
	orderrepo "github.com/groupmart/groupmart/internal/repo/order-repo"
	"github.com/groupmart/groupmart/internal/service/orderservice"
	"github.com/groupmart/groupmart/pkg/auth"
	"github.com/groupmart/groupmart/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, data orderservice.CreateOrderData, managerID string) (*domain.GroupOrder, error)
	ListOrders(ctx context.Context, filters orderrepo.ListFilters) ([]domain.GroupOrder, error)
	GetOrder(ctx context.Context, id string) (*domain.GroupOrder, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.GroupOrder, error)
	Join(ctx context.Context, orderID, userID, paymentMethod string, paymentAmount float64) (*domain.OrderParticipant, error)
	GetParticipations(ctx context.Context, userID string) ([]domain.OrderParticipant, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a group order
//	@Description	Open a new group buying campaign in the manager's country
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), orderservice.CreateOrderData{
		Title:           req.Title,
		Description:     req.Description,
		Images:          req.Images,
		Category:        req.Category,
		Country:         req.Country,
		IndividualPrice: req.IndividualPrice,
		GroupPrice:      req.GroupPrice,
		MinOrders:       req.MinOrders,
		MaxOrders:       req.MaxOrders,
		PaymentMethods:  req.PaymentMethods,
		PaymentDeadline: req.PaymentDeadline,
		Deadline:        req.Deadline,
	}, userID)
	if err != nil {
		if errors.Is(err, orderservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(order))
}

// ListOrders godoc
//
//	@Summary		List group orders
//	@Description	Browse group orders filtered by country, category, status or manager
//	@Tags			Orders
//	@Produce		json
//	@Param			country		query	string	false	"Country code"
//	@Param			category	query	string	false	"Category"
//	@Param			status		query	string	false	"Order status"
//	@Param			manager_id	query	string	false	"Manager id"
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := h.orderService.ListOrders(r.Context(), orderrepo.ListFilters{
		Country:   q.Get("country"),
		Category:  q.Get("category"),
		Status:    q.Get("status"),
		ManagerID: q.Get("manager_id"),
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get one group order
//	@Description	Retrieve an order with its manager profile and participant list
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// UpdateStatus godoc
//
//	@Summary		Update order status
//	@Description	Move an order between active, closed, completed and cancelled
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Order id"
//	@Param			request	body	dto.UpdateOrderStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrderStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Join godoc
//
//	@Summary		Join a group order
//	@Description	Add the authenticated user to an active order that still has capacity
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Order id"
//	@Param			request	body	dto.JoinOrderRequestDTO	true	"Payment method and amount"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ParticipantDTO
//	@Failure		400	{object}	utils.Response	"Order is not active"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Already joined or order full"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/join [post]
func (h *OrderHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	orderID := chi.URLParam(r, "id")

	var req dto.JoinOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	participant, err := h.orderService.Join(r.Context(), orderID, userID, req.PaymentMethod, req.PaymentAmount)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotActive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrAlreadyJoined), errors.Is(err, orderservice.ErrOrderFull):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toParticipantDTO(participant))
}

// GetParticipations godoc
//
//	@Summary		List own participations
//	@Description	Retrieve every order membership of the authenticated user
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ParticipantDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/participations [get]
func (h *OrderHandler) GetParticipations(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	participations, err := h.orderService.GetParticipations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ParticipantDTO, 0, len(participations))
	for i := range participations {
		response = append(response, toParticipantDTO(&participations[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toOrderDTO(order *domain.GroupOrder) dto.OrderResponseDTO {
	resp := dto.OrderResponseDTO{
		ID:              order.ID,
		Slug:            order.Slug,
		ManagerID:       order.ManagerID,
		Country:         order.Country,
		Title:           order.Title,
		Description:     order.Description,
		Images:          order.Images,
		Category:        order.Category,
		IndividualPrice: order.IndividualPrice,
		GroupPrice:      order.GroupPrice,
		Currency:        order.Currency,
		MinOrders:       order.MinOrders,
		MaxOrders:       order.MaxOrders,
		CurrentOrders:   order.CurrentOrders,
		PaymentMethods:  order.PaymentMethods,
		PaymentDeadline: order.PaymentDeadline,
		Deadline:        order.Deadline,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	}
	if order.Manager != nil {
		resp.Manager = &dto.UserDTO{
			ID:          order.Manager.ID,
			Name:        order.Manager.Name,
			Country:     order.Manager.Country,
			AccountType: order.Manager.AccountType,
			Rating:      order.Manager.Rating,
			TotalOrders: order.Manager.TotalOrders,
		}
	}
	for i := range order.Participants {
		resp.Participants = append(resp.Participants, toParticipantDTO(&order.Participants[i]))
	}
	return resp
}

func toParticipantDTO(p *domain.OrderParticipant) dto.ParticipantDTO {
	return dto.ParticipantDTO{
		ID:              p.ID,
		OrderID:         p.OrderID,
		UserID:          p.UserID,
		PaymentMethod:   p.PaymentMethod,
		PaymentProofURL: p.PaymentProofURL,
		PaymentStatus:   p.PaymentStatus,
		PaymentAmount:   p.PaymentAmount,
		JoinedAt:        p.JoinedAt,
		PaidAt:          p.PaidAt,
		VerifiedAt:      p.VerifiedAt,
		VerifiedBy:      p.VerifiedBy,
	}
}
