package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/groupmart/groupmart/internal/domain"
	"github.com/groupmart/groupmart/internal/service/authservice"
	pkgauth "github.com/groupmart/groupmart/pkg/auth"
	"github.com/groupmart/groupmart/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func testUser() *domain.User {
	return &domain.User{
		ID:           "user-1",
		Email:        "new@example.com",
		Name:         "Alex",
		Country:      "US",
		AccountType:  "buyer",
		ReferralCode: "0000000000",
	}
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"new@example.com","password":"password123","name":"Alex","country":"US"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "new@example.com", "password123", "Alex", "US").
					Return(testUser(), nil)
				service.EXPECT().GenerateToken("user-1").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User already exists",
			body: `{"email":"new@example.com","password":"password123","name":"Alex","country":"US"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "new@example.com", "password123", "Alex", "US").
					Return(nil, authservice.ErrUserExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrUserExists.Error(),
		},
		{
			name: "Unsupported country",
			body: `{"email":"new@example.com","password":"password123","name":"Alex","country":"ZZ"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "new@example.com", "password123", "Alex", "ZZ").
					Return(nil, authservice.ErrUnknownCountry)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrUnknownCountry.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"new@example.com","password":"password123","name":"Alex","country":"US"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "new@example.com", "password123", "Alex", "US").
					Return(testUser(), nil)
				service.EXPECT().GenerateToken("user-1").Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			assert.Equal(t, "Bearer some-jwt-token", w.Header().Get("Authorization"))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"new@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "new@example.com", "password123").
					Return(testUser(), nil)
				service.EXPECT().GenerateToken("user-1").Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"new@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "new@example.com", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(w.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestPromoteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Buyer becomes a manager",
			prepareMock: func() {
				manager := testUser()
				manager.AccountType = "manager"
				service.EXPECT().Promote(gomock.Any(), "user-1").Return(manager, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().Promote(gomock.Any(), "user-1").Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/promote", nil)
			req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, "user-1"))
			w := httptest.NewRecorder()

			handler.Promote(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestReferralHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		code         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Referrer resolved and remembered",
			code: "0000000000",
			prepareMock: func() {
				service.EXPECT().LookupReferral(gomock.Any(), "0000000000").
					Return(testUser(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown code",
			code: "9999999999",
			prepareMock: func() {
				service.EXPECT().LookupReferral(gomock.Any(), "9999999999").
					Return(nil, authservice.ErrInvalidReferral)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/referrals/"+tt.code, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("code", tt.code)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.Referral(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				cookies := w.Result().Cookies()
				assert.Len(t, cookies, 1)
				assert.Equal(t, "referrer_id", cookies[0].Name)
				assert.Equal(t, "user-1", cookies[0].Value)
			}
		})
	}
}
