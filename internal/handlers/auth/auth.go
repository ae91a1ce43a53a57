package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/dto"
	"github.com/groupmart/groupmart/internal/service/authservice"
	pkgauth "github.com/groupmart/groupmart/pkg/auth"
	"github.com/groupmart/groupmart/pkg/utils"
)

const referrerCookieMaxAge = 30 * 24 * time.Hour

type Service interface {
	Register(ctx context.Context, email, password, name, country string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID string) (string, error)
	Promote(ctx context.Context, userID string) (*domain.User, error)
	LookupReferral(ctx context.Context, code string) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new buyer account with email, password, name and country
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name, req.Country)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrUnknownCountry):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: "User successfully registered",
		User:    toUserDTO(user),
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: "User successfully authenticated",
		User:    toUserDTO(user),
	})
}

// Promote godoc
//
//	@Summary		Become a manager
//	@Description	Upgrade the authenticated buyer account to a manager account
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/promote [post]
func (h *AuthHandler) Promote(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserID(r.Context())

	user, err := h.authService.Promote(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// Referral godoc
//
//	@Summary		Resolve a referral code
//	@Description	Look up the referrer behind a code and remember them in a cookie for 30 days
//	@Tags			Auth
//	@Produce		json
//	@Param			code	path		string	true	"Referral code"
//	@Success		200		{object}	dto.ReferralResponseDTO
//	@Failure		404		{object}	utils.Response	"Invalid referral code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/{code} [get]
func (h *AuthHandler) Referral(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	referrer, err := h.authService.LookupReferral(r.Context(), code)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidReferral) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "referrer_id",
		Value:    referrer.ID,
		Path:     "/",
		MaxAge:   int(referrerCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralResponseDTO{
		ReferrerID:   referrer.ID,
		ReferrerName: referrer.Name,
	})
}

func toUserDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Country:      user.Country,
		AccountType:  user.AccountType,
		Rating:       user.Rating,
		TotalOrders:  user.TotalOrders,
		ReferralCode: user.ReferralCode,
	}
}
