// Package countries holds the static per-country reference data: currency,
// locale, flag and the local payment methods a manager can accept.
package countries

type Config struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Currency       string   `json:"currency"`
	Locale         string   `json:"locale"`
	Flag           string   `json:"flag"`
	PaymentMethods []string `json:"paymentMethods"`
}

var configs = map[string]Config{
	"ID": {Code: "ID", Name: "Indonesia", Currency: "IDR", Locale: "id-ID", Flag: "🇮🇩",
		PaymentMethods: []string{"GoPay", "OVO", "Bank Transfer", "DANA"}},
	"MY": {Code: "MY", Name: "Malaysia", Currency: "MYR", Locale: "ms-MY", Flag: "🇲🇾",
		PaymentMethods: []string{"Maybank", "Touch n Go", "GrabPay", "Bank Transfer"}},
	"SG": {Code: "SG", Name: "Singapore", Currency: "SGD", Locale: "en-SG", Flag: "🇸🇬",
		PaymentMethods: []string{"PayNow", "GrabPay", "Bank Transfer", "Paylah"}},
	"HK": {Code: "HK", Name: "Hong Kong", Currency: "HKD", Locale: "zh-HK", Flag: "🇭🇰",
		PaymentMethods: []string{"FPS", "PayMe", "Bank Transfer", "Octopus"}},
	"TW": {Code: "TW", Name: "Taiwan", Currency: "TWD", Locale: "zh-TW", Flag: "🇹🇼",
		PaymentMethods: []string{"Line Pay", "Bank Transfer", "JKOPay", "FamiPay"}},
	"US": {Code: "US", Name: "United States", Currency: "USD", Locale: "en-US", Flag: "🇺🇸",
		PaymentMethods: []string{"Venmo", "Zelle", "CashApp", "PayPal"}},
	"CA": {Code: "CA", Name: "Canada", Currency: "CAD", Locale: "en-CA", Flag: "🇨🇦",
		PaymentMethods: []string{"Interac", "PayPal", "Bank Transfer", "Paymi"}},
	"BR": {Code: "BR", Name: "Brazil", Currency: "BRL", Locale: "pt-BR", Flag: "🇧🇷",
		PaymentMethods: []string{"PIX", "Boleto", "Bank Transfer", "PicPay"}},
	"AR": {Code: "AR", Name: "Argentina", Currency: "ARS", Locale: "es-AR", Flag: "🇦🇷",
		PaymentMethods: []string{"MercadoPago", "Bank Transfer", "Ualá", "MODO"}},
	"MX": {Code: "MX", Name: "Mexico", Currency: "MXN", Locale: "es-MX", Flag: "🇲🇽",
		PaymentMethods: []string{"OXXO", "MercadoPago", "Bank Transfer", "CoDi"}},
	"GB": {Code: "GB", Name: "United Kingdom", Currency: "GBP", Locale: "en-GB", Flag: "🇬🇧",
		PaymentMethods: []string{"Bank Transfer", "PayPal", "Revolut", "Monzo"}},
	"FR": {Code: "FR", Name: "France", Currency: "EUR", Locale: "fr-FR", Flag: "🇫🇷",
		PaymentMethods: []string{"Bank Transfer", "PayPal", "Lydia", "PayLib"}},
	"DE": {Code: "DE", Name: "Germany", Currency: "EUR", Locale: "de-DE", Flag: "🇩🇪",
		PaymentMethods: []string{"SEPA", "PayPal", "Giropay", "Sofort"}},
	"AU": {Code: "AU", Name: "Australia", Currency: "AUD", Locale: "en-AU", Flag: "🇦🇺",
		PaymentMethods: []string{"PayID", "Bank Transfer", "PayPal", "Beem It"}},
}

var Categories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Beauty & Health",
	"Sports & Outdoors",
	"Books & Media",
	"Food & Beverages",
	"Automotive",
	"Toys & Games",
	"Office & Business",
	"Other",
}

const (
	MaxImages            = 5
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// Get returns the config for a country code and whether the code is known.
func Get(code string) (Config, bool) {
	cfg, ok := configs[code]
	return cfg, ok
}

func IsSupported(code string) bool {
	_, ok := configs[code]
	return ok
}

func Currency(code string) string {
	cfg, ok := configs[code]
	if !ok {
		return ""
	}
	return cfg.Currency
}

func PaymentMethods(code string) []string {
	cfg, ok := configs[code]
	if !ok {
		return nil
	}
	return cfg.PaymentMethods
}

func All() []Config {
	all := make([]Config, 0, len(configs))
	for _, cfg := range configs {
		all = append(all, cfg)
	}
	return all
}
