package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/shopsearch/backend/internal/domain"
	"golang.org/x/sync/semaphore"
)

// DetailFetcher enriches search matches with per-item detail records,
// fanning out one request per distinct item under a shared admission
// limiter. The limiter is injected and shared across all concurrent
// orchestrations so total provider load stays bounded no matter how many
// searches run at once.
type DetailFetcher struct {
	provider domain.ProductSearcher
	limiter  *semaphore.Weighted
}

// NewDetailFetcher creates a detail fetcher using the given provider and
// shared admission limiter
func NewDetailFetcher(provider domain.ProductSearcher, limiter *semaphore.Weighted) *DetailFetcher {
	return &DetailFetcher{
		provider: provider,
		limiter:  limiter,
	}
}

// FetchDetails fetches detail records for the given matches concurrently.
// Individual item failures are logged and excluded; the batch never fails.
// Results arrive in completion order, not input order.
func (f *DetailFetcher) FetchDetails(ctx context.Context, matches []domain.SearchMatch, region string) []domain.ItemDetail {
	unique := dedupeByASIN(matches)
	if len(unique) == 0 {
		return nil
	}

	results := make(chan domain.ItemDetail, len(unique))
	var wg sync.WaitGroup

	for _, match := range unique {
		wg.Add(1)
		go func(match domain.SearchMatch) {
			defer wg.Done()

			if err := f.limiter.Acquire(ctx, 1); err != nil {
				log.Printf("[DETAILS] %s: abandoned before fetch: %v", match.ASIN, err)
				return
			}
			defer f.limiter.Release(1)

			detail, err := f.provider.GetProductDetails(ctx, match.ASIN, region)
			if err != nil {
				log.Printf("[DETAILS] %s: fetch failed, excluding from batch: %v", match.ASIN, err)
				return
			}

			// The detail payload does not reliably carry the canonical URL;
			// attach it from the originating match
			detail.ASIN = match.ASIN
			detail.URL = match.URL
			results <- *detail
		}(match)
	}

	wg.Wait()
	close(results)

	details := make([]domain.ItemDetail, 0, len(unique))
	for detail := range results {
		details = append(details, detail)
	}
	return details
}

// dedupeByASIN keeps the first match per identifier, preserving order
func dedupeByASIN(matches []domain.SearchMatch) []domain.SearchMatch {
	seen := make(map[string]bool, len(matches))
	unique := make([]domain.SearchMatch, 0, len(matches))
	for _, match := range matches {
		if match.ASIN == "" || seen[match.ASIN] {
			continue
		}
		seen[match.ASIN] = true
		unique = append(unique, match)
	}
	return unique
}
