package advisorservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendShipping(t *testing.T) {
	service := New()

	t.Run("Costs scale with package weight", func(t *testing.T) {
		resp, err := service.RecommendShipping(ShippingRequest{
			Orders:  []ShippingOrder{{Address: "123 Main St", Items: 2}},
			Country: "US",
			Weight:  1000,
		})
		assert.NoError(t, err)
		assert.Len(t, resp.Providers, 4)
		assert.Equal(t, Provider{Name: "USPS Priority", Cost: 8.50, Duration: "2-3 days", Reliability: 0.94}, resp.Providers[0])
		assert.Contains(t, resp.Recommendations, "⭐ Best Option: USPS Priority")
		assert.Empty(t, resp.BulkDiscounts)
	})

	t.Run("Bulk threshold cuts costs by ten percent", func(t *testing.T) {
		resp, err := service.RecommendShipping(ShippingRequest{
			Orders: []ShippingOrder{
				{Address: "123 Main St", Items: 7},
				{Address: "456 Oak Ave", Items: 5},
			},
			Country: "US",
			Weight:  1000,
		})
		assert.NoError(t, err)
		assert.Equal(t, 7.65, resp.Providers[0].Cost)
		assert.Equal(t, 8.28, resp.Providers[1].Cost)
		assert.Contains(t, resp.Recommendations, "📦 Bulk Shipping Benefits:")
		assert.Equal(t, []BulkDiscount{{Quantity: 10, Discount: 0.10}}, resp.BulkDiscounts)
	})

	t.Run("Thirty items unlock the middle tier only", func(t *testing.T) {
		resp, err := service.RecommendShipping(ShippingRequest{
			Orders: []ShippingOrder{
				{Address: "123 Main St", Items: 18},
				{Address: "456 Oak Ave", Items: 12},
			},
			Country: "US",
			Weight:  1000,
		})
		assert.NoError(t, err)
		assert.Equal(t, []BulkDiscount{
			{Quantity: 25, Discount: 0.15},
			{Quantity: 10, Discount: 0.10},
		}, resp.BulkDiscounts)
	})

	t.Run("Discount tiers accumulate from the largest down", func(t *testing.T) {
		resp, err := service.RecommendShipping(ShippingRequest{
			Orders:  []ShippingOrder{{Address: "123 Main St", Items: 60}},
			Country: "US",
			Weight:  500,
		})
		assert.NoError(t, err)
		assert.Equal(t, []BulkDiscount{
			{Quantity: 50, Discount: 0.25},
			{Quantity: 25, Discount: 0.15},
			{Quantity: 10, Discount: 0.10},
		}, resp.BulkDiscounts)
	})

	t.Run("Heavy packages get weight considerations", func(t *testing.T) {
		resp, err := service.RecommendShipping(ShippingRequest{
			Orders:  []ShippingOrder{{Address: "123 Main St", Items: 1}},
			Country: "US",
			Weight:  2500,
		})
		assert.NoError(t, err)
		assert.Contains(t, resp.Recommendations, "⚖️ Weight Considerations:")
	})
}

func TestRecommendShippingValidation(t *testing.T) {
	service := New()

	tests := []struct {
		name string
		req  ShippingRequest
	}{
		{
			name: "No orders",
			req:  ShippingRequest{Country: "US", Weight: 1000},
		},
		{
			name: "Unsupported country",
			req:  ShippingRequest{Orders: []ShippingOrder{{Address: "123 Main St", Items: 1}}, Country: "ZZ", Weight: 1000},
		},
		{
			name: "Zero weight",
			req:  ShippingRequest{Orders: []ShippingOrder{{Address: "123 Main St", Items: 1}}, Country: "US", Weight: 0},
		},
		{
			name: "Over fifty kilograms",
			req:  ShippingRequest{Orders: []ShippingOrder{{Address: "123 Main St", Items: 1}}, Country: "US", Weight: 50001},
		},
		{
			name: "Order with no items",
			req:  ShippingRequest{Orders: []ShippingOrder{{Address: "123 Main St", Items: 0}}, Country: "US", Weight: 1000},
		},
		{
			name: "Blank address",
			req:  ShippingRequest{Orders: []ShippingOrder{{Address: "  ", Items: 1}}, Country: "US", Weight: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.RecommendShipping(tt.req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, resp)
		})
	}
}
