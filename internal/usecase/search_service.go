package usecase

import (
	"context"
	"log"

	"github.com/shopsearch/backend/internal/domain"
)

// genericSearchError is the only error text exposed for provider or internal
// failures; real causes are logged, never surfaced
const genericSearchError = "product search failed, please try again"

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	DefaultTopN   int
	DefaultRegion string
}

// SearchService orchestrates a product search:
// validate -> search -> filter/truncate -> fetch details -> reduce.
// Partial failures during detail fetching degrade the result set silently; a
// partially-filled product list is more useful than an aborted search.
type SearchService struct {
	provider      domain.ProductSearcher
	fetcher       *DetailFetcher
	defaultTopN   int
	defaultRegion string
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(provider domain.ProductSearcher, fetcher *DetailFetcher, config SearchServiceConfig) *SearchService {
	defaultTopN := config.DefaultTopN
	if defaultTopN <= 0 {
		defaultTopN = 5
	}

	return &SearchService{
		provider:      provider,
		fetcher:       fetcher,
		defaultTopN:   defaultTopN,
		defaultRegion: config.DefaultRegion,
	}
}

// Search runs one orchestrated product search. Validation failures carry
// their specific reason; everything else that fails surfaces only as a
// generic error. "Nothing matched" is a success outcome, not an error.
func (s *SearchService) Search(ctx context.Context, input domain.SearchInput) domain.SearchOutput {
	validation := ValidateQuery(input.Query)
	if !validation.IsValid {
		return domain.SearchOutput{
			Status: domain.StatusError,
			Error:  validation.Reason,
		}
	}

	region := input.Region
	if region == "" {
		region = s.defaultRegion
	}

	resultSet, err := s.provider.SearchProducts(ctx, validation.RefinedQuery, region)
	if err != nil {
		log.Printf("[SEARCH] provider search failed for %q: %v", validation.RefinedQuery, err)
		return domain.SearchOutput{
			Status: domain.StatusError,
			Error:  genericSearchError,
		}
	}

	filtered := ApplyFilters(resultSet.Results, SearchFilters{
		PrimeOnly:       input.PrimeOnly,
		BestSellersOnly: input.BestSellersOnly,
		MinRating:       input.MinRating,
		MinPrice:        input.MinPrice,
		MaxPrice:        input.MaxPrice,
	})

	topN := input.TopN
	if topN <= 0 {
		topN = s.defaultTopN
	}
	filteredSet := domain.SearchResultSet{Results: filtered}
	selected := filteredSet.TopN(topN)

	if len(selected) == 0 {
		log.Printf("[SEARCH] no products matched %q after filtering", validation.RefinedQuery)
		return domain.SearchOutput{
			Status:  domain.StatusSuccess,
			Message: "no products found",
		}
	}

	details := s.fetcher.FetchDetails(ctx, selected, region)
	if len(details) == 0 {
		log.Printf("[SEARCH] every detail fetch failed for %q", validation.RefinedQuery)
		return domain.SearchOutput{
			Status:  domain.StatusSuccess,
			Message: "no product details available",
		}
	}

	views := make([]domain.ProductView, 0, len(details))
	for _, detail := range details {
		views = append(views, ReduceToView(detail))
	}

	return domain.SearchOutput{
		Status: domain.StatusSuccess,
		Items:  views,
		Count:  len(views),
	}
}
