package advisorservice

import (
	"fmt"
	"strings"

	"github.com/groupmart/groupmart/internal/countries"
)

const (
	maxWeightGrams    = 50000
	bulkThreshold     = 10
	bulkCostReduction = 0.9
)

// ShippingOrder is one destination in a consolidated shipment.
type ShippingOrder struct {
	Address string `json:"address"`
	Items   int    `json:"items"`
}

type ShippingRequest struct {
	Orders  []ShippingOrder `json:"orders"`
	Country string          `json:"country"`
	Weight  float64         `json:"weight"` // grams per package
}

// BulkDiscount is a volume tier the shipment qualifies for.
type BulkDiscount struct {
	Quantity int     `json:"quantity"`
	Discount float64 `json:"discount"`
}

type ShippingResponse struct {
	Providers       []Provider     `json:"providers"`
	Recommendations string         `json:"recommendations"`
	BulkDiscounts   []BulkDiscount `json:"bulkDiscounts"`
}

// RecommendShipping scales the per-country provider table by package weight,
// applies the bulk reduction past the item threshold, and picks the cheapest
// provider as the headline option.
func (s *Service) RecommendShipping(req ShippingRequest) (*ShippingResponse, error) {
	if err := validateShipping(req); err != nil {
		return nil, err
	}

	totalItems := 0
	for _, order := range req.Orders {
		totalItems += order.Items
	}

	base, ok := shippingProviders[req.Country]
	if !ok {
		base = shippingProviders["US"]
	}

	factor := req.Weight / 1000
	if totalItems > bulkThreshold {
		factor *= bulkCostReduction
	}
	providers := make([]Provider, len(base))
	for i, p := range base {
		p.Cost = roundCents(p.Cost * factor)
		providers[i] = p
	}

	best := providers[0]
	for _, p := range providers[1:] {
		if p.Cost < best.Cost {
			best = p
		}
	}

	return &ShippingResponse{
		Providers:       providers,
		Recommendations: shippingRecommendations(req.Country, totalItems, req.Weight, best),
		BulkDiscounts:   bulkDiscounts(totalItems),
	}, nil
}

func validateShipping(req ShippingRequest) error {
	if len(req.Orders) == 0 {
		return fmt.Errorf("%w: at least one order is required", ErrValidation)
	}
	if !countries.IsSupported(req.Country) {
		return fmt.Errorf("%w: unsupported country %q", ErrValidation, req.Country)
	}
	if req.Weight <= 0 {
		return fmt.Errorf("%w: weight must be greater than 0", ErrValidation)
	}
	if req.Weight > maxWeightGrams {
		return fmt.Errorf("%w: weight cannot exceed 50kg", ErrValidation)
	}
	for _, order := range req.Orders {
		if order.Items <= 0 {
			return fmt.Errorf("%w: each order must have at least 1 item", ErrValidation)
		}
		if strings.TrimSpace(order.Address) == "" {
			return fmt.Errorf("%w: all orders must have valid addresses", ErrValidation)
		}
	}
	return nil
}

func bulkDiscounts(totalItems int) []BulkDiscount {
	discounts := []BulkDiscount{}
	if totalItems >= 50 {
		discounts = append(discounts, BulkDiscount{Quantity: 50, Discount: 0.25})
	}
	if totalItems >= 25 {
		discounts = append(discounts, BulkDiscount{Quantity: 25, Discount: 0.15})
	}
	if totalItems >= 10 {
		discounts = append(discounts, BulkDiscount{Quantity: 10, Discount: 0.10})
	}
	return discounts
}

func shippingRecommendations(country string, totalItems int, weight float64, best Provider) string {
	cfg, _ := countries.Get(country)
	currency := cfg.Currency

	var b strings.Builder
	fmt.Fprintf(&b, "🚚 Shipping Recommendations for %s:\n\n", cfg.Name)
	fmt.Fprintf(&b, "⭐ Best Option: %s\n", best.Name)
	fmt.Fprintf(&b, "• Cost: %s %.2f per package\n", currency, best.Cost)
	fmt.Fprintf(&b, "• Delivery: %s\n", best.Duration)
	fmt.Fprintf(&b, "• Reliability: %.0f%%\n\n", best.Reliability*100)

	if totalItems >= 10 {
		b.WriteString("📦 Bulk Shipping Benefits:\n")
		b.WriteString("• Volume discounts available\n")
		fmt.Fprintf(&b, "• Consolidated shipping saves %s %.2f per package\n", currency, best.Cost*0.1)
		b.WriteString("• Faster processing with bulk orders\n\n")
	}

	advice, ok := shippingAdvice[country]
	if !ok {
		advice = defaultShippingAdvice
	}
	b.WriteString(advice)

	if weight > 2000 {
		b.WriteString("⚖️ Weight Considerations:\n")
		b.WriteString("• Heavy packages may require special handling\n")
		b.WriteString("• Consider splitting large orders\n")
		b.WriteString("• Insurance recommended for high-value items\n\n")
	}

	b.WriteString("💰 Cost Optimization Tips:\n")
	b.WriteString("• Consolidate orders when possible\n")
	b.WriteString("• Use local pickup for nearby participants\n")
	b.WriteString("• Consider slower shipping for non-urgent items\n")
	return b.String()
}
