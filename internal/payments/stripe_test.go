package payments

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/groupmart/groupmart/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func newTestClient(t *testing.T) (*StripeClient, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := NewStripeClient("sk_test_123", "http://localhost:8080")
	client.SetClient(httpClient)
	defer ctrl.Finish()
	return client, httpClient
}

func TestCreateCheckoutSession(t *testing.T) {
	client, httpClient := newTestClient(t)

	httpClient.EXPECT().
		PostForm("https://api.stripe.com/v1/checkout/sessions", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, headers http.Header, form url.Values) (int, []byte, error) {
			assert.Equal(t, "Bearer sk_test_123", headers.Get("Authorization"))
			assert.Equal(t, "payment", form.Get("mode"))
			assert.Equal(t, "card", form.Get("payment_method_types[0]"))
			assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
			assert.Equal(t, "Organic Coffee Beans", form.Get("line_items[0][price_data][product_data][name]"))
			assert.Equal(t, "2499", form.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
			assert.Equal(t, "http://localhost:8080/orders/order-1/success?session_id={CHECKOUT_SESSION_ID}", form.Get("success_url"))
			assert.Equal(t, "http://localhost:8080/orders/order-1/cancel", form.Get("cancel_url"))
			assert.Equal(t, "order-1", form.Get("metadata[orderId]"))
			return http.StatusOK, []byte(`{"id":"cs_test_1","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`), nil
		})

	session, err := client.CreateCheckoutSession(CheckoutSessionData{
		OrderID:  "order-1",
		Amount:   24.99,
		Currency: "USD",
		Title:    "Organic Coffee Beans",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
}

func TestCreatePaymentIntent(t *testing.T) {
	client, httpClient := newTestClient(t)

	httpClient.EXPECT().
		PostForm("https://api.stripe.com/v1/payment_intents", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, _ http.Header, form url.Values) (int, []byte, error) {
			assert.Equal(t, "1050", form.Get("amount"))
			assert.Equal(t, "eur", form.Get("currency"))
			assert.Equal(t, "true", form.Get("automatic_payment_methods[enabled]"))
			return http.StatusOK, []byte(`{"id":"pi_test_1","client_secret":"pi_test_1_secret","status":"requires_payment_method"}`), nil
		})

	intent, err := client.CreatePaymentIntent(10.50, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "pi_test_1_secret", intent.ClientSecret)
}

func TestVerifyPayment(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		body         string
		expectedPaid bool
	}{
		{
			name:         "Paid checkout session",
			id:           "cs_test_1",
			body:         `{"id":"cs_test_1","payment_status":"paid"}`,
			expectedPaid: true,
		},
		{
			name:         "Unpaid checkout session",
			id:           "cs_test_1",
			body:         `{"id":"cs_test_1","payment_status":"unpaid"}`,
			expectedPaid: false,
		},
		{
			name:         "Succeeded payment intent",
			id:           "pi_test_1",
			body:         `{"id":"pi_test_1","status":"succeeded"}`,
			expectedPaid: true,
		},
		{
			name:         "Pending payment intent",
			id:           "pi_test_1",
			body:         `{"id":"pi_test_1","status":"processing"}`,
			expectedPaid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := newTestClient(t)

			path := "/v1/payment_intents/" + tt.id
			if tt.id == "cs_test_1" {
				path = "/v1/checkout/sessions/" + tt.id
			}
			httpClient.EXPECT().
				Get("https://api.stripe.com"+path, gomock.Any()).
				Return(http.StatusOK, []byte(tt.body), nil, nil)

			paid, err := client.VerifyPayment(tt.id)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedPaid, paid)
		})
	}
}

func TestStripeErrorResponse(t *testing.T) {
	client, httpClient := newTestClient(t)

	httpClient.EXPECT().
		PostForm(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusPaymentRequired, []byte(`{"error":{"message":"Your card was declined."}}`), nil)

	session, err := client.CreateCheckoutSession(CheckoutSessionData{OrderID: "order-1", Amount: 10, Currency: "USD", Title: "Item"})
	assert.ErrorIs(t, err, ErrStripeRequest)
	assert.ErrorContains(t, err, "Your card was declined.")
	assert.Nil(t, session)
}

func TestNotConfigured(t *testing.T) {
	client := NewStripeClient("", "http://localhost:8080")

	assert.False(t, client.Configured())

	_, err := client.CreateCheckoutSession(CheckoutSessionData{OrderID: "order-1"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.CreatePaymentIntent(10, "USD")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.VerifyPayment("cs_test_1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
