package advisorservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendPricing(t *testing.T) {
	service := New()

	tests := []struct {
		name          string
		req           PricingRequest
		expectedError error
	}{
		{
			name: "Balanced tier is recommended",
			req:  PricingRequest{ProductCost: 90, ShippingCost: 10, Country: "US", Category: "food", MinOrders: 10},
		},
		{
			name:          "Unsupported country",
			req:           PricingRequest{ProductCost: 90, ShippingCost: 10, Country: "ZZ", MinOrders: 10},
			expectedError: ErrValidation,
		},
		{
			name:          "Zero product cost",
			req:           PricingRequest{ProductCost: 0, ShippingCost: 10, Country: "US", MinOrders: 10},
			expectedError: ErrValidation,
		},
		{
			name:          "Negative shipping cost",
			req:           PricingRequest{ProductCost: 90, ShippingCost: -1, Country: "US", MinOrders: 10},
			expectedError: ErrValidation,
		},
		{
			name:          "Minimum orders below 1",
			req:           PricingRequest{ProductCost: 90, ShippingCost: 10, Country: "US", MinOrders: 0},
			expectedError: ErrValidation,
		},
		{
			name:          "Minimum orders above the cap",
			req:           PricingRequest{ProductCost: 90, ShippingCost: 10, Country: "US", MinOrders: 1001},
			expectedError: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.RecommendPricing(tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, PricePoints{Conservative: 110.00, Balanced: 115.00, Aggressive: 120.00}, resp.PricePoints)
			assert.Equal(t, 115.00, resp.RecommendedPrice)
			assert.Equal(t, 100.00, resp.BreakEvenPrice)
			assert.Equal(t, 0.15, resp.ProfitMargin)
			assert.Contains(t, resp.Reasoning, "Based on your United States market analysis:")
			assert.Contains(t, resp.Reasoning, "• Total cost per unit: USD 100.00")
			assert.Contains(t, resp.Reasoning, "• Balanced (15% margin): USD 115.00")
		})
	}
}

func TestPricePointsRounding(t *testing.T) {
	service := New()

	resp, err := service.RecommendPricing(PricingRequest{ProductCost: 9.99, ShippingCost: 0.01, Country: "DE", MinOrders: 5})
	assert.NoError(t, err)
	assert.Equal(t, 11.00, resp.PricePoints.Conservative)
	assert.Equal(t, 11.50, resp.PricePoints.Balanced)
	assert.Equal(t, 12.00, resp.PricePoints.Aggressive)
	assert.Contains(t, resp.Reasoning, "Based on your Germany market analysis:")
}
