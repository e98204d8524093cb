package domain

import (
	"math"
	"sort"
)

// PriceInfo holds a provider price with its display representation
type PriceInfo struct {
	PriceString string  `json:"price_string"`
	PriceSymbol string  `json:"price_symbol"`
	Price       float64 `json:"price"`
}

// SearchMatch represents one item returned by the product search provider,
// before detail enrichment
type SearchMatch struct {
	ASIN           string     `json:"asin"`
	Name           string     `json:"name"`
	Image          string     `json:"image"`
	URL            string     `json:"url"`
	Position       int        `json:"position"`
	HasPrime       bool       `json:"hasPrime"`
	IsBestSeller   bool       `json:"isBestSeller"`
	IsAmazonChoice bool       `json:"isAmazonChoice"`
	IsLimitedDeal  bool       `json:"isLimitedDeal"`
	Stars          *float64   `json:"stars,omitempty"`   // always in [0,5] when present
	Price          *float64   `json:"price,omitempty"`   // non-negative when present
	PriceString    string     `json:"priceString,omitempty"`
	OriginalPrice  *PriceInfo `json:"originalPrice,omitempty"`
}

// IsOnSale reports whether the current price is strictly below the list price
func (m *SearchMatch) IsOnSale() bool {
	return m.OriginalPrice != nil && m.Price != nil && *m.Price < m.OriginalPrice.Price
}

// DiscountPercentage returns the discount relative to the list price,
// rounded to two decimals, or nil when no list price is known
func (m *SearchMatch) DiscountPercentage() *float64 {
	if m.OriginalPrice == nil || m.OriginalPrice.Price <= 0 || m.Price == nil {
		return nil
	}
	discount := (m.OriginalPrice.Price - *m.Price) / m.OriginalPrice.Price * 100
	discount = math.Round(discount*100) / 100
	return &discount
}

// SearchResultSet is an ordered set of search matches in provider rank order,
// plus pagination metadata
type SearchResultSet struct {
	Results   []SearchMatch `json:"results"`
	NextPages []string      `json:"nextPages,omitempty"`
}

// TotalResults returns the number of matches in the set
func (s *SearchResultSet) TotalResults() int {
	return len(s.Results)
}

// TopN returns the first n matches in provider rank order.
// Requesting more than available returns all matches.
func (s *SearchResultSet) TopN(n int) []SearchMatch {
	if n > len(s.Results) {
		n = len(s.Results)
	}
	if n < 0 {
		n = 0
	}
	return s.Results[:n]
}

// OnSale returns the matches currently discounted, preserving rank order
func (s *SearchResultSet) OnSale() []SearchMatch {
	return s.keep(func(m SearchMatch) bool { return m.IsOnSale() })
}

// WithPrime returns the prime-eligible matches, preserving rank order
func (s *SearchResultSet) WithPrime() []SearchMatch {
	return s.keep(func(m SearchMatch) bool { return m.HasPrime })
}

// BestSellers returns the best-seller matches, preserving rank order
func (s *SearchResultSet) BestSellers() []SearchMatch {
	return s.keep(func(m SearchMatch) bool { return m.IsBestSeller })
}

// SortedByPrice returns a copy sorted by ascending price.
// Unpriced matches sort last, keeping their relative rank order.
func (s *SearchResultSet) SortedByPrice() []SearchMatch {
	sorted := make([]SearchMatch, len(s.Results))
	copy(sorted, s.Results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Price == nil {
			return false
		}
		if sorted[j].Price == nil {
			return true
		}
		return *sorted[i].Price < *sorted[j].Price
	})
	return sorted
}

// SortedByRating returns a copy sorted by descending star rating.
// Unrated matches sort last, keeping their relative rank order.
func (s *SearchResultSet) SortedByRating() []SearchMatch {
	sorted := make([]SearchMatch, len(s.Results))
	copy(sorted, s.Results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Stars == nil {
			return false
		}
		if sorted[j].Stars == nil {
			return true
		}
		return *sorted[i].Stars > *sorted[j].Stars
	})
	return sorted
}

func (s *SearchResultSet) keep(match func(SearchMatch) bool) []SearchMatch {
	kept := make([]SearchMatch, 0, len(s.Results))
	for _, m := range s.Results {
		if match(m) {
			kept = append(kept, m)
		}
	}
	return kept
}
