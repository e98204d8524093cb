package domain

// SearchInput represents a product search request from the caller
type SearchInput struct {
	Query           string   `json:"query" binding:"required"`
	TopN            int      `json:"topN,omitempty"`
	MinRating       *float64 `json:"minRating,omitempty"`
	MinPrice        *float64 `json:"minPrice,omitempty"`
	MaxPrice        *float64 `json:"maxPrice,omitempty"`
	PrimeOnly       bool     `json:"primeOnly,omitempty"`
	BestSellersOnly bool     `json:"bestSellersOnly,omitempty"`
	Region          string   `json:"region,omitempty"`
}

// Search result statuses. A search that matched nothing is still a success;
// only validation failures and total provider failures are errors.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SearchOutput is the structured result of an orchestrated search
type SearchOutput struct {
	Status  string        `json:"status"`
	Items   []ProductView `json:"items,omitempty"`
	Count   int           `json:"count"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}
