package domain

// SentimentDetail holds review sentiment counts for a single aspect
type SentimentDetail struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// CustomersSay is the provider's customer-sentiment block: a free-text
// summary plus per-aspect sentiment counts
type CustomersSay struct {
	Summary string                     `json:"summary"`
	Aspects map[string]SentimentDetail `json:"aspects,omitempty"`
}

// ItemDetail is the enriched record for one search match, keyed 1:1 by ASIN.
// Only Name is guaranteed present; the detail schema has changed across
// provider versions so everything else is optional.
type ItemDetail struct {
	ASIN          string        `json:"asin"`
	Name          string        `json:"name"`
	Brand         string        `json:"brand,omitempty"`
	Pricing       string        `json:"pricing,omitempty"`
	Availability  string        `json:"availability,omitempty"`
	AverageRating *float64      `json:"averageRating,omitempty"`
	TotalReviews  *int          `json:"totalReviews,omitempty"`
	Images        []string      `json:"images,omitempty"`
	CustomersSay  *CustomersSay `json:"customersSay,omitempty"`
	URL           string        `json:"url,omitempty"`
}

// ProductView is the compact, caller-facing reduction of an ItemDetail.
// This is the only shape that crosses the service boundary.
type ProductView struct {
	Name             string                    `json:"name"`
	Brand            string                    `json:"brand,omitempty"`
	Price            string                    `json:"price,omitempty"`
	Availability     string                    `json:"availability,omitempty"`
	AverageRating    *float64                  `json:"averageRating,omitempty"`
	TotalReviews     *int                      `json:"totalReviews,omitempty"`
	CustomersSummary string                    `json:"customersSummary,omitempty"`
	SentimentDetails map[string]map[string]int `json:"sentimentDetails,omitempty"`
	Images           []string                  `json:"images"`
}
