package advisor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/groupmart/groupmart/internal/service/advisorservice"
	"github.com/groupmart/groupmart/pkg/utils"
)

type Service interface {
	RecommendPricing(req advisorservice.PricingRequest) (*advisorservice.PricingResponse, error)
	RecommendShipping(req advisorservice.ShippingRequest) (*advisorservice.ShippingResponse, error)
}

type AdvisorHandler struct {
	advisorService Service
}

func New(advisorService Service) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
	}
}

// Pricing godoc
//
//	@Summary		Recommend a group price
//	@Description	Compute conservative, balanced and aggressive price points over the unit cost
//	@Tags			Advisor
//	@Accept			json
//	@Produce		json
//	@Param			request	body	advisorservice.PricingRequest	true	"Costs and market"
//	@Security		BearerAuth
//	@Success		200	{object}	advisorservice.PricingResponse
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/advisor/pricing [post]
func (h *AdvisorHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	var req advisorservice.PricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.advisorService.RecommendPricing(req)
	if err != nil {
		if errors.Is(err, advisorservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Shipping godoc
//
//	@Summary		Recommend a shipping provider
//	@Description	Scale the country's provider table by package weight and pick the cheapest option
//	@Tags			Advisor
//	@Accept			json
//	@Produce		json
//	@Param			request	body	advisorservice.ShippingRequest	true	"Shipment to price"
//	@Security		BearerAuth
//	@Success		200	{object}	advisorservice.ShippingResponse
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/advisor/shipping [post]
func (h *AdvisorHandler) Shipping(w http.ResponseWriter, r *http.Request) {
	var req advisorservice.ShippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.advisorService.RecommendShipping(req)
	if err != nil {
		if errors.Is(err, advisorservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
