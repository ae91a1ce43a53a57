package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	scraper := New()

	tests := []struct {
		name             string
		url              string
		expectedRetailer string
		expectedError    error
	}{
		{
			name:             "Amazon product page",
			url:              "https://www.amazon.com/dp/B01N5IB20Q",
			expectedRetailer: "Amazon",
		},
		{
			name:             "Subdomain still matches the retailer",
			url:              "https://smile.amazon.com/dp/B01N5IB20Q",
			expectedRetailer: "Amazon",
		},
		{
			name:             "Walmart over plain http",
			url:              "http://walmart.com/ip/12345",
			expectedRetailer: "Walmart",
		},
		{
			name:             "Best Buy product page",
			url:              "https://www.bestbuy.com/site/6288701.p",
			expectedRetailer: "Best Buy",
		},
		{
			name:          "Unknown retailer",
			url:           "https://www.ebay.com/itm/12345",
			expectedError: ErrUnsupportedRetailer,
		},
		{
			name:          "Empty URL",
			url:           "   ",
			expectedError: ErrInvalidURL,
		},
		{
			name:          "Missing scheme",
			url:           "amazon.com/dp/B01N5IB20Q",
			expectedError: ErrInvalidURL,
		},
		{
			name:          "Unsupported scheme",
			url:           "ftp://amazon.com/dp/B01N5IB20Q",
			expectedError: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := scraper.Lookup(tt.url)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, product)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRetailer, product.Retailer)
			assert.Equal(t, tt.url, product.URL)
			assert.NotEmpty(t, product.Title)
			assert.Greater(t, product.Price, 0.0)
		})
	}
}
