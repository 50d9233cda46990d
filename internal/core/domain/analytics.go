package domain

// AnalyticsPoint is one day of performance figures. Real analytics
// computation is out of scope; the dashboard serves the fixed sample set.
type AnalyticsPoint struct {
	Date        string `json:"date"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
	Revenue     int64  `json:"revenue"`
}

// SampleAnalytics returns the built-in seven-day dataset.
func SampleAnalytics() []AnalyticsPoint {
	return []AnalyticsPoint{
		{Date: "Mon", Clicks: 400, Conversions: 24, Revenue: 480000},
		{Date: "Tue", Clicks: 300, Conversions: 13, Revenue: 260000},
		{Date: "Wed", Clicks: 200, Conversions: 98, Revenue: 1960000},
		{Date: "Thu", Clicks: 278, Conversions: 39, Revenue: 780000},
		{Date: "Fri", Clicks: 189, Conversions: 48, Revenue: 960000},
		{Date: "Sat", Clicks: 239, Conversions: 38, Revenue: 760000},
		{Date: "Sun", Clicks: 349, Conversions: 43, Revenue: 860000},
	}
}

// DefaultStatsSummary seeds the AI strategy view's performance prompt.
const DefaultStatsSummary = "Niche: Fashion, Current Sales: 120/mo, Top Category: Linen Shirts, Main Platforms: Instagram & TikTok"
