package usecase

import "github.com/shopsearch/backend/internal/domain"

// SearchFilters are the caller-supplied subtractive filters applied to a
// result set before detail enrichment
type SearchFilters struct {
	PrimeOnly       bool
	BestSellersOnly bool
	MinRating       *float64
	MinPrice        *float64
	MaxPrice        *float64
}

// ApplyFilters filters matches in a fixed order: prime-only, best-seller-only,
// minimum rating, price range. Each filter is purely subtractive and provider
// rank order is preserved, so the outcome does not depend on how the caller
// combined them.
func ApplyFilters(matches []domain.SearchMatch, filters SearchFilters) []domain.SearchMatch {
	if filters.PrimeOnly {
		matches = keepMatches(matches, func(m domain.SearchMatch) bool {
			return m.HasPrime
		})
	}

	if filters.BestSellersOnly {
		matches = keepMatches(matches, func(m domain.SearchMatch) bool {
			return m.IsBestSeller
		})
	}

	if filters.MinRating != nil {
		matches = keepMatches(matches, func(m domain.SearchMatch) bool {
			return m.Stars != nil && *m.Stars >= *filters.MinRating
		})
	}

	if filters.MinPrice != nil || filters.MaxPrice != nil {
		matches = keepMatches(matches, func(m domain.SearchMatch) bool {
			if m.Price == nil {
				return false
			}
			if filters.MinPrice != nil && *m.Price < *filters.MinPrice {
				return false
			}
			if filters.MaxPrice != nil && *m.Price > *filters.MaxPrice {
				return false
			}
			return true
		})
	}

	return matches
}

// keepMatches returns the matches satisfying the predicate, preserving order
func keepMatches(matches []domain.SearchMatch, keep func(domain.SearchMatch) bool) []domain.SearchMatch {
	filtered := make([]domain.SearchMatch, 0, len(matches))
	for _, match := range matches {
		if keep(match) {
			filtered = append(filtered, match)
		}
	}
	return filtered
}
