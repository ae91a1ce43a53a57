package advisorservice

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/groupmart/groupmart/internal/countries"
)

var ErrValidation = errors.New("validation failed")

const (
	conservativeMargin = 0.10
	balancedMargin     = 0.15
	aggressiveMargin   = 0.20

	maxMinOrders = 1000
)

// PricingRequest describes the order being priced.
type PricingRequest struct {
	ProductCost  float64 `json:"productCost"`
	ShippingCost float64 `json:"shippingCost"`
	Country      string  `json:"country"`
	Category     string  `json:"category"`
	MinOrders    int     `json:"minOrders"`
}

// PricePoints are the three margin tiers, rounded to cents.
type PricePoints struct {
	Conservative float64 `json:"conservative"`
	Balanced     float64 `json:"balanced"`
	Aggressive   float64 `json:"aggressive"`
}

type PricingResponse struct {
	RecommendedPrice float64     `json:"recommendedPrice"`
	BreakEvenPrice   float64     `json:"breakEvenPrice"`
	ProfitMargin     float64     `json:"profitMargin"`
	PricePoints      PricePoints `json:"pricePoints"`
	Reasoning        string      `json:"reasoning"`
}

type Service struct{}

func New() *Service {
	return &Service{}
}

// RecommendPricing computes margin tiers over total unit cost and picks the
// balanced tier as the recommendation.
func (s *Service) RecommendPricing(req PricingRequest) (*PricingResponse, error) {
	if err := validatePricing(req); err != nil {
		return nil, err
	}

	totalCost := req.ProductCost + req.ShippingCost
	points := PricePoints{
		Conservative: roundCents(totalCost * (1 + conservativeMargin)),
		Balanced:     roundCents(totalCost * (1 + balancedMargin)),
		Aggressive:   roundCents(totalCost * (1 + aggressiveMargin)),
	}

	return &PricingResponse{
		RecommendedPrice: points.Balanced,
		BreakEvenPrice:   totalCost,
		ProfitMargin:     balancedMargin,
		PricePoints:      points,
		Reasoning:        pricingReasoning(req),
	}, nil
}

func validatePricing(req PricingRequest) error {
	switch {
	case !countries.IsSupported(req.Country):
		return fmt.Errorf("%w: unsupported country %q", ErrValidation, req.Country)
	case req.ProductCost <= 0:
		return fmt.Errorf("%w: product cost must be greater than 0", ErrValidation)
	case req.ShippingCost < 0:
		return fmt.Errorf("%w: shipping cost cannot be negative", ErrValidation)
	case req.MinOrders < 1:
		return fmt.Errorf("%w: minimum orders must be at least 1", ErrValidation)
	case req.MinOrders > maxMinOrders:
		return fmt.Errorf("%w: minimum orders cannot exceed %d", ErrValidation, maxMinOrders)
	}
	return nil
}

func pricingReasoning(req PricingRequest) string {
	cfg, _ := countries.Get(req.Country)
	currency := cfg.Currency
	totalCost := req.ProductCost + req.ShippingCost

	insight, ok := marketInsights[req.Country]
	if !ok {
		insight = defaultMarketInsight
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your %s market analysis:\n\n", cfg.Name)
	b.WriteString(insight)
	b.WriteString("\n📊 Cost Breakdown:\n")
	fmt.Fprintf(&b, "• Product cost: %s %.2f\n", currency, req.ProductCost)
	fmt.Fprintf(&b, "• Shipping cost: %s %.2f\n", currency, req.ShippingCost)
	fmt.Fprintf(&b, "• Total cost per unit: %s %.2f\n", currency, totalCost)
	fmt.Fprintf(&b, "• Minimum orders: %d\n\n", req.MinOrders)
	b.WriteString("💡 Pricing Strategy:\n")
	fmt.Fprintf(&b, "• Conservative (10%% margin): %s %.2f\n", currency, totalCost*(1+conservativeMargin))
	fmt.Fprintf(&b, "• Balanced (15%% margin): %s %.2f\n", currency, totalCost*(1+balancedMargin))
	fmt.Fprintf(&b, "• Aggressive (20%% margin): %s %.2f\n\n", currency, totalCost*(1+aggressiveMargin))
	b.WriteString("🎯 Recommendations:\n")
	b.WriteString("• Start with the balanced price for maximum appeal\n")
	b.WriteString("• Consider volume discounts for larger orders\n")
	b.WriteString("• Monitor competitor pricing in your region\n")
	return b.String()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
