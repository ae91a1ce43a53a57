package advisorservice

// Static per-country market data backing the advisors. Values mirror the
// marketing team's regional research snapshot; they are reference data, not
// configuration.

var marketInsights = map[string]string{
	"ID": "🇮🇩 Indonesia: High demand for electronics and fashion. Competitive pricing is key.",
	"MY": "🇲🇾 Malaysia: Strong e-commerce adoption. Focus on convenience and trust.",
	"SG": "🇸🇬 Singapore: Premium market. Quality and reliability matter more than price.",
	"HK": "🇭🇰 Hong Kong: Fast-paced market. Quick delivery and good deals are valued.",
	"TW": "🇹🇼 Taiwan: Tech-savvy consumers. Digital payment methods preferred.",
	"US": "🇺🇸 United States: Large market with diverse preferences. Convenience is key.",
	"CA": "🇨🇦 Canada: Similar to US but with different shipping considerations.",
	"BR": "🇧🇷 Brazil: Growing e-commerce market. Local payment methods important.",
	"AR": "🇦🇷 Argentina: Economic volatility. Price stability is valued.",
	"MX": "🇲🇽 Mexico: Growing middle class. Trust and local partnerships matter.",
	"GB": "🇬🇧 United Kingdom: Mature market. Quality and customer service important.",
	"FR": "🇫🇷 France: Quality-focused market. Sustainability considerations matter.",
	"DE": "🇩🇪 Germany: Price-conscious but quality-focused. Transparent pricing works.",
	"AU": "🇦🇺 Australia: Isolated market. Shipping costs are significant factor.",
}

const defaultMarketInsight = "Market analysis based on regional trends and consumer behavior."

// Provider is one shipping option before weight/volume scaling.
type Provider struct {
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	Duration    string  `json:"duration"`
	Reliability float64 `json:"reliability"`
}

var shippingProviders = map[string][]Provider{
	"ID": {
		{Name: "JNE Express", Cost: 5.50, Duration: "2-3 days", Reliability: 0.95},
		{Name: "SiCepat", Cost: 4.80, Duration: "3-4 days", Reliability: 0.90},
		{Name: "J&T Express", Cost: 4.20, Duration: "3-5 days", Reliability: 0.88},
		{Name: "Lion Parcel", Cost: 6.00, Duration: "2-3 days", Reliability: 0.92},
	},
	"MY": {
		{Name: "Pos Malaysia", Cost: 6.20, Duration: "2-3 days", Reliability: 0.94},
		{Name: "GD Express", Cost: 5.80, Duration: "2-4 days", Reliability: 0.91},
		{Name: "Ninja Van", Cost: 5.50, Duration: "1-2 days", Reliability: 0.89},
		{Name: "Lazada Express", Cost: 6.50, Duration: "2-3 days", Reliability: 0.93},
	},
	"SG": {
		{Name: "SingPost", Cost: 8.50, Duration: "1-2 days", Reliability: 0.96},
		{Name: "Ninja Van", Cost: 7.80, Duration: "1 day", Reliability: 0.94},
		{Name: "Qxpress", Cost: 7.20, Duration: "2-3 days", Reliability: 0.92},
		{Name: "DHL Express", Cost: 12.00, Duration: "1 day", Reliability: 0.98},
	},
	"HK": {
		{Name: "Hong Kong Post", Cost: 9.20, Duration: "1-2 days", Reliability: 0.95},
		{Name: "SF Express", Cost: 8.80, Duration: "1 day", Reliability: 0.94},
		{Name: "DHL Express", Cost: 15.00, Duration: "1 day", Reliability: 0.99},
		{Name: "FedEx", Cost: 14.50, Duration: "1 day", Reliability: 0.98},
	},
	"TW": {
		{Name: "Taiwan Post", Cost: 7.80, Duration: "2-3 days", Reliability: 0.93},
		{Name: "Black Cat", Cost: 8.20, Duration: "1-2 days", Reliability: 0.94},
		{Name: "SF Express", Cost: 7.50, Duration: "2-3 days", Reliability: 0.92},
		{Name: "DHL Express", Cost: 13.00, Duration: "1 day", Reliability: 0.97},
	},
	"US": {
		{Name: "USPS Priority", Cost: 8.50, Duration: "2-3 days", Reliability: 0.94},
		{Name: "FedEx Ground", Cost: 9.20, Duration: "3-5 days", Reliability: 0.96},
		{Name: "UPS Ground", Cost: 9.80, Duration: "3-5 days", Reliability: 0.95},
		{Name: "DHL Express", Cost: 18.00, Duration: "1-2 days", Reliability: 0.98},
	},
	"CA": {
		{Name: "Canada Post", Cost: 12.50, Duration: "3-5 days", Reliability: 0.93},
		{Name: "FedEx Ground", Cost: 14.20, Duration: "3-5 days", Reliability: 0.95},
		{Name: "UPS Standard", Cost: 15.80, Duration: "3-5 days", Reliability: 0.94},
		{Name: "DHL Express", Cost: 22.00, Duration: "1-2 days", Reliability: 0.97},
	},
	"BR": {
		{Name: "Correios", Cost: 6.80, Duration: "5-8 days", Reliability: 0.85},
		{Name: "Total Express", Cost: 8.50, Duration: "3-5 days", Reliability: 0.90},
		{Name: "Jadlog", Cost: 7.20, Duration: "4-6 days", Reliability: 0.88},
		{Name: "DHL Express", Cost: 25.00, Duration: "2-3 days", Reliability: 0.95},
	},
	"AR": {
		{Name: "Correo Argentino", Cost: 5.20, Duration: "5-10 days", Reliability: 0.80},
		{Name: "OCA", Cost: 7.80, Duration: "3-5 days", Reliability: 0.88},
		{Name: "Andreani", Cost: 8.50, Duration: "3-5 days", Reliability: 0.90},
		{Name: "DHL Express", Cost: 28.00, Duration: "2-3 days", Reliability: 0.95},
	},
	"MX": {
		{Name: "Correos de México", Cost: 4.50, Duration: "5-8 days", Reliability: 0.82},
		{Name: "Estafeta", Cost: 6.80, Duration: "3-5 days", Reliability: 0.88},
		{Name: "Redpack", Cost: 7.20, Duration: "3-5 days", Reliability: 0.90},
		{Name: "DHL Express", Cost: 20.00, Duration: "2-3 days", Reliability: 0.94},
	},
	"GB": {
		{Name: "Royal Mail", Cost: 6.50, Duration: "2-3 days", Reliability: 0.94},
		{Name: "DPD", Cost: 7.80, Duration: "1-2 days", Reliability: 0.95},
		{Name: "Hermes", Cost: 6.20, Duration: "2-3 days", Reliability: 0.92},
		{Name: "DHL Express", Cost: 12.00, Duration: "1 day", Reliability: 0.97},
	},
	"FR": {
		{Name: "La Poste", Cost: 7.20, Duration: "2-3 days", Reliability: 0.93},
		{Name: "Colissimo", Cost: 8.50, Duration: "1-2 days", Reliability: 0.94},
		{Name: "Chronopost", Cost: 9.80, Duration: "1 day", Reliability: 0.95},
		{Name: "DHL Express", Cost: 15.00, Duration: "1 day", Reliability: 0.98},
	},
	"DE": {
		{Name: "Deutsche Post", Cost: 6.80, Duration: "2-3 days", Reliability: 0.94},
		{Name: "DHL", Cost: 8.20, Duration: "1-2 days", Reliability: 0.95},
		{Name: "Hermes", Cost: 6.50, Duration: "2-3 days", Reliability: 0.92},
		{Name: "DHL Express", Cost: 14.00, Duration: "1 day", Reliability: 0.97},
	},
	"AU": {
		{Name: "Australia Post", Cost: 9.50, Duration: "3-5 days", Reliability: 0.94},
		{Name: "Toll", Cost: 11.20, Duration: "2-3 days", Reliability: 0.95},
		{Name: "StarTrack", Cost: 10.80, Duration: "2-3 days", Reliability: 0.93},
		{Name: "DHL Express", Cost: 18.00, Duration: "1-2 days", Reliability: 0.97},
	},
}

var shippingAdvice = map[string]string{
	"ID": "🇮🇩 Indonesia: Use local couriers for better reliability. Consider cash on delivery for rural areas.",
	"MY": "🇲🇾 Malaysia: E-commerce friendly. Most providers offer tracking and insurance.",
	"SG": "🇸🇬 Singapore: Premium market. Fast delivery expected. Consider express options for urgent orders.",
	"HK": "🇭🇰 Hong Kong: Dense urban area. Same-day delivery available. Consider local pickup points.",
	"TW": "🇹🇼 Taiwan: Tech-savvy logistics. Most providers offer real-time tracking.",
	"US": "🇺🇸 United States: Large country with varied delivery times. Consider regional distribution centers.",
	"CA": "🇨🇦 Canada: Similar to US but with different customs considerations. Use tracked shipping.",
	"BR": "🇧🇷 Brazil: Complex logistics. Use established providers. Consider import taxes.",
	"AR": "🇦🇷 Argentina: Economic considerations important. Use local providers for better rates.",
	"MX": "🇲🇽 Mexico: Growing logistics network. Consider border shipping for northern regions.",
	"GB": "🇬🇧 United Kingdom: Mature logistics market. Most providers offer next-day delivery.",
	"FR": "🇫🇷 France: Good logistics infrastructure. Consider environmental shipping options.",
	"DE": "🇩🇪 Germany: Efficient logistics. Most providers offer same-day delivery in major cities.",
	"AU": "🇦🇺 Australia: Isolated market. Shipping costs are significant. Consider local distribution.",
}

const defaultShippingAdvice = "Use established providers with good tracking and insurance options.\n\n"
