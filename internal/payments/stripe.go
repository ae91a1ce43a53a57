package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/groupmart/groupmart/pkg/clients"
	"go.uber.org/zap"
)

const stripeAPIBase = "https://api.stripe.com"

var (
	// ErrNotConfigured is returned when no secret key was supplied at startup.
	// Card payments are optional; manual proof upload still works without them.
	ErrNotConfigured = errors.New("stripe is not configured")

	ErrStripeRequest = errors.New("stripe request failed")
)

// CheckoutSessionData describes the hosted checkout page for one order join.
type CheckoutSessionData struct {
	OrderID     string
	Amount      float64
	Currency    string
	Title       string
	Description string
}

type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// StripeClient talks to the Stripe REST API with form-encoded requests.
type StripeClient struct {
	secretKey string
	baseURL   string
	client    clients.HTTPClientI
	appURL    string
}

func NewStripeClient(secretKey, appURL string) *StripeClient {
	return &StripeClient{
		secretKey: secretKey,
		baseURL:   stripeAPIBase,
		client:    clients.NewHTTPClient(),
		appURL:    strings.TrimRight(appURL, "/"),
	}
}

// SetClient swaps the underlying HTTP client, for tests.
func (c *StripeClient) SetClient(client clients.HTTPClientI) {
	c.client = client
}

func (c *StripeClient) Configured() bool {
	return c.secretKey != ""
}

// CreateCheckoutSession opens a hosted checkout page for a single line item
// priced at the order's group price.
func (c *StripeClient) CreateCheckoutSession(data CheckoutSessionData) (*CheckoutSession, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(data.Currency))
	form.Set("line_items[0][price_data][product_data][name]", data.Title)
	if data.Description != "" {
		form.Set("line_items[0][price_data][product_data][description]", data.Description)
	}
	form.Set("line_items[0][price_data][unit_amount]", strconv.Itoa(toCents(data.Amount)))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", fmt.Sprintf("%s/orders/%s/success?session_id={CHECKOUT_SESSION_ID}", c.appURL, data.OrderID))
	form.Set("cancel_url", fmt.Sprintf("%s/orders/%s/cancel", c.appURL, data.OrderID))
	form.Set("metadata[orderId]", data.OrderID)

	var session CheckoutSession
	if err := c.post("/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreatePaymentIntent opens an intent for embedded card elements.
func (c *StripeClient) CreatePaymentIntent(amount float64, currency string) (*PaymentIntent, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("amount", strconv.Itoa(toCents(amount)))
	form.Set("currency", strings.ToLower(currency))
	form.Set("automatic_payment_methods[enabled]", "true")

	var intent PaymentIntent
	if err := c.post("/v1/payment_intents", form, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// VerifyPayment reports whether the referenced payment went through. Accepts
// both checkout session and payment intent identifiers.
func (c *StripeClient) VerifyPayment(id string) (bool, error) {
	if !c.Configured() {
		return false, ErrNotConfigured
	}

	if strings.HasPrefix(id, "cs_") {
		var session CheckoutSession
		if err := c.get("/v1/checkout/sessions/"+url.PathEscape(id), &session); err != nil {
			return false, err
		}
		return session.PaymentStatus == "paid", nil
	}

	var intent PaymentIntent
	if err := c.get("/v1/payment_intents/"+url.PathEscape(id), &intent); err != nil {
		return false, err
	}
	return intent.Status == "succeeded", nil
}

func (c *StripeClient) post(path string, form url.Values, out any) error {
	status, body, err := c.client.PostForm(c.baseURL+path, c.authHeader(), form)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStripeRequest, err)
	}
	return c.decode(path, status, body, out)
}

func (c *StripeClient) get(path string, out any) error {
	status, body, _, err := c.client.Get(c.baseURL+path, c.authHeader())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStripeRequest, err)
	}
	return c.decode(path, status, body, out)
}

func (c *StripeClient) decode(path string, status int, body []byte, out any) error {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		var apiErr stripeError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			zap.L().Warn("stripe rejected request", zap.String("path", path), zap.Int("status", status), zap.String("message", apiErr.Error.Message))
			return fmt.Errorf("%w: %s", ErrStripeRequest, apiErr.Error.Message)
		}
		return fmt.Errorf("%w: unexpected status %d", ErrStripeRequest, status)
	}
	return json.Unmarshal(body, out)
}

func (c *StripeClient) authHeader() http.Header {
	return http.Header{"Authorization": []string{"Bearer " + c.secretKey}}
}

func toCents(amount float64) int {
	return int(math.Round(amount * 100))
}
