package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/dto"
	"github.com/groupmart/groupmart/internal/service/requestservice"
	"github.com/groupmart/groupmart/pkg/auth"
	"github.com/groupmart/groupmart/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, requesterID, productName, productURL, description string, images []string, country string) (*domain.ProductRequest, error)
	List(ctx context.Context, country, status string) ([]domain.ProductRequest, error)
	Vote(ctx context.Context, requestID, userID string)
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// Create godoc
//
//	@Summary		Post a product request
//	@Description	Ask managers to organize a group order for a product
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateRequestDTO	true	"Product request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [post]
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.requestService.Create(r.Context(), userID, req.ProductName, req.ProductURL, req.Description, req.Images, req.Country)
	if err != nil {
		if errors.Is(err, requestservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRequestDTO(request))
}

// List godoc
//
//	@Summary		List product requests
//	@Description	Browse the request wall filtered by country and status
//	@Tags			Requests
//	@Produce		json
//	@Param			country	query	string	false	"Country code"
//	@Param			status	query	string	false	"Request status"
//	@Success		200	{array}		dto.RequestResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	requests, err := h.requestService.List(r.Context(), q.Get("country"), q.Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RequestResponseDTO, 0, len(requests))
	for i := range requests {
		response = append(response, toRequestDTO(&requests[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Vote godoc
//
//	@Summary		Vote me-too on a request
//	@Description	Record interest in a product request. Voting twice is a silent no-op.
//	@Tags			Requests
//	@Produce		json
//	@Param			id	path	string	true	"Request id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/requests/{id}/vote [post]
func (h *RequestHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	requestID := chi.URLParam(r, "id")

	h.requestService.Vote(r.Context(), requestID, userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Success: true})
}

func toRequestDTO(req *domain.ProductRequest) dto.RequestResponseDTO {
	return dto.RequestResponseDTO{
		ID:          req.ID,
		RequesterID: req.RequesterID,
		Country:     req.Country,
		ProductName: req.ProductName,
		ProductURL:  req.ProductURL,
		Description: req.Description,
		Images:      req.Images,
		MeTooCount:  req.MeTooCount,
		Status:      req.Status,
		CreatedAt:   req.CreatedAt,
	}
}
