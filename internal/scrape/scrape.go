// Package scrape resolves retailer product pages into listing drafts. The
// catalog is a development stand-in keyed by retailer host; a real fetcher can
// slot in behind the same Lookup signature later.
package scrape

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/groupmart/groupmart/internal/domain"
)

var (
	ErrInvalidURL          = errors.New("invalid URL format")
	ErrUnsupportedRetailer = errors.New("unsupported retailer. We currently support Amazon, Walmart, Target, Costco, and Best Buy")
)

var catalog = map[string]domain.Product{
	"amazon.com": {
		Title:         "Organic Coffee Beans - Premium Single Origin",
		Price:         24.99,
		OriginalPrice: 34.99,
		ShippingCost:  8.99,
		Images:        []string{"https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400"},
		Retailer:      "Amazon",
	},
	"walmart.com": {
		Title:         "Bulk Coffee Beans - Colombian Medium Roast",
		Price:         19.99,
		OriginalPrice: 29.99,
		ShippingCost:  5.99,
		Images:        []string{"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400"},
		Retailer:      "Walmart",
	},
	"target.com": {
		Title:         "Premium Coffee Subscription - Monthly Delivery",
		Price:         39.99,
		OriginalPrice: 49.99,
		ShippingCost:  0,
		Images:        []string{"https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400"},
		Retailer:      "Target",
	},
	"costco.com": {
		Title:         "Kirkland Signature Coffee - 3lb Bag",
		Price:         14.99,
		OriginalPrice: 24.99,
		ShippingCost:  12.99,
		Images:        []string{"https://images.unsplash.com/photo-1514432324607-a09d9b4aefdd?w=400"},
		Retailer:      "Costco",
	},
	"bestbuy.com": {
		Title:         "Breville Coffee Maker - Barista Express",
		Price:         599.99,
		OriginalPrice: 699.99,
		ShippingCost:  0,
		Images:        []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400"},
		Retailer:      "Best Buy",
	},
}

type Scraper struct{}

func New() *Scraper {
	return &Scraper{}
}

// Lookup matches the URL's host against the supported retailers and returns
// the product draft with the original URL echoed back.
func (s *Scraper) Lookup(rawURL string) (*domain.Product, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for domainKey, product := range catalog {
		if strings.Contains(host, domainKey) {
			product.URL = rawURL
			return &product, nil
		}
	}
	return nil, ErrUnsupportedRetailer
}
