package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/dto"
	gateway "github.com/groupmart/groupmart/internal/payments"
	"github.com/groupmart/groupmart/internal/service/orderservice"
	"github.com/groupmart/groupmart/internal/service/paymentservice"
	"github.com/groupmart/groupmart/pkg/auth"
	"github.com/groupmart/groupmart/pkg/utils"
)

type Service interface {
	Checkout(ctx context.Context, orderID string) (*gateway.CheckoutSession, error)
	CreateIntent(ctx context.Context, orderID string) (*gateway.PaymentIntent, error)
	UploadProof(ctx context.Context, orderID, userID, filename string, file io.Reader) (*domain.OrderParticipant, error)
	ConfirmCheckout(ctx context.Context, sessionID, orderID, userID string) (*domain.OrderParticipant, error)
	Review(ctx context.Context, orderID, participantID, verifierID, status string) (*domain.OrderParticipant, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Checkout godoc
//
//	@Summary		Open a hosted card checkout
//	@Description	Create a checkout session priced at the order's group price
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CheckoutResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		503	{object}	utils.Response	"Card payments not configured"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/checkout [post]
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	session, err := h.paymentService.Checkout(r.Context(), orderID)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	})
}

// CreateIntent godoc
//
//	@Summary		Create a payment intent
//	@Description	Open an intent for embedded card elements, priced at the order's group price
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	string	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentIntentResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		503	{object}	utils.Response	"Card payments not configured"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/payment-intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	intent, err := h.paymentService.CreateIntent(r.Context(), orderID)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentIntentResponseDTO{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	})
}

// UploadProof godoc
//
//	@Summary		Upload a payment proof
//	@Description	Attach a proof file (jpeg, png, webp or pdf, up to 5 MiB) to the caller's participation
//	@Tags			Payments
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Order id"
//	@Param			proof	formData	file	true	"Proof file"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UploadProofResponseDTO
//	@Failure		400	{object}	utils.Response	"File missing, too large or unsupported"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Participant not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/proof [post]
func (h *PaymentHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	orderID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(gateway.MaxProofSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("proof")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Proof file is required")
		return
	}
	defer file.Close()

	participant, err := h.paymentService.UploadProof(r.Context(), orderID, userID, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrProofTooLarge), errors.Is(err, gateway.ErrProofUnsupported):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrParticipantNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UploadProofResponseDTO{
		Participant: toParticipantDTO(participant),
	})
}

// Verify godoc
//
//	@Summary		Confirm a card payment
//	@Description	Verify the checkout session with the gateway, join the order on the card path and mark the payment verified
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.VerifyPaymentRequestDTO	true	"Session and order ids"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ParticipantDTO
//	@Failure		400	{object}	utils.Response	"Payment verification failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		503	{object}	utils.Response	"Card payments not configured"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SessionID == "" || req.OrderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	participant, err := h.paymentService.ConfirmCheckout(r.Context(), req.SessionID, req.OrderID, userID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotVerified) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toParticipantDTO(participant))
}

// Review godoc
//
//	@Summary		Review a payment proof
//	@Description	Let the order manager verify or reject a participant's payment
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id				path	string						true	"Order id"
//	@Param			participantId	path	string						true	"Participant id"
//	@Param			request			body	dto.ReviewPaymentRequestDTO	true	"verified or rejected"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ParticipantDTO
//	@Failure		400	{object}	utils.Response	"Invalid payment status"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the order manager"
//	@Failure		404	{object}	utils.Response	"Participant not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/participants/{participantId}/review [patch]
func (h *PaymentHandler) Review(w http.ResponseWriter, r *http.Request) {
	verifierID := auth.UserID(r.Context())
	orderID := chi.URLParam(r, "id")
	participantID := chi.URLParam(r, "participantId")

	var req dto.ReviewPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	participant, err := h.paymentService.Review(r.Context(), orderID, participantID, verifierID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidPaymentStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrReviewForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, orderservice.ErrParticipantNotFound), errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toParticipantDTO(participant))
}

func respondPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gateway.ErrNotConfigured):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, orderservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrOrderNotActive):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
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
