package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/dto"
	"github.com/groupmart/groupmart/internal/service/notificationservice"
	"github.com/groupmart/groupmart/pkg/auth"
	"github.com/groupmart/groupmart/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID, title, message, ntype, actionURL string) (*domain.Notification, error)
	List(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// Create godoc
//
//	@Summary		Create a notification
//	@Description	Record a notification for the authenticated user
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			notification	body	dto.CreateNotificationDTO	true	"Notification"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.NotificationResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [post]
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.CreateNotificationDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and message are required")
		return
	}
	if req.Type == "" {
		req.Type = notificationservice.TypeInfo
	}

	notification, err := h.notificationService.Create(r.Context(), userID, req.Title, req.Message, req.Type, req.ActionURL)
	if err != nil {
		if errors.Is(err, notificationservice.ErrInvalidType) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NotificationResponseDTO{
		ID:        notification.ID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		Read:      notification.Read,
		ActionURL: notification.ActionURL,
		CreatedAt: notification.CreatedAt,
	})
}

// List godoc
//
//	@Summary		List notifications
//	@Description	Retrieve the newest notifications for the authenticated user with the unread count
//	@Tags			Notifications
//	@Produce		json
//	@Param			limit	query	int	false	"Max notifications to return"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.NotificationListResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	notifications, err := h.notificationService.List(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	unread, err := h.notificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.NotificationListResponseDTO{
		Notifications: make([]dto.NotificationResponseDTO, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, n := range notifications {
		response.Notifications = append(response.Notifications, dto.NotificationResponseDTO{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Read:      n.Read,
			ActionURL: n.ActionURL,
			CreatedAt: n.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark one notification read
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path	string	true	"Notification id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.NotificationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	notification, err := h.notificationService.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, notificationservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NotificationResponseDTO{
		ID:        notification.ID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		Read:      notification.Read,
		ActionURL: notification.ActionURL,
		CreatedAt: notification.CreatedAt,
	})
}

// MarkAllRead godoc
//
//	@Summary		Mark all notifications read
//	@Tags			Notifications
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	if err := h.notificationService.MarkAllRead(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true})
}

// Delete godoc
//
//	@Summary		Delete a notification
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path	string	true	"Notification id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.notificationService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, notificationservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true})
}
