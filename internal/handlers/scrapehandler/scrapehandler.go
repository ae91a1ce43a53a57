package scrapehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/dto"
	"github.com/groupmart/groupmart/internal/scrape"
	"github.com/groupmart/groupmart/pkg/utils"
)

type Service interface {
	Lookup(rawURL string) (*domain.Product, error)
}

type ScrapeHandler struct {
	scraper Service
}

func New(scraper Service) *ScrapeHandler {
	return &ScrapeHandler{
		scraper: scraper,
	}
}

// Scrape godoc
//
//	@Summary		Resolve a retailer product URL
//	@Description	Return a listing draft for a supported retailer's product page
//	@Tags			Scrape
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ScrapeRequestDTO	true	"Product URL"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Product
//	@Failure		400	{object}	utils.Response	"Invalid URL or unsupported retailer"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/scrape [post]
func (h *ScrapeHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req dto.ScrapeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.scraper.Lookup(req.URL)
	if err != nil {
		if errors.Is(err, scrape.ErrInvalidURL) || errors.Is(err, scrape.ErrUnsupportedRetailer) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to scrape product information")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}
