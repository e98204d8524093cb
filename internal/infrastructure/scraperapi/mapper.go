package scraperapi

import (
	"encoding/json"
	"fmt"

	"github.com/shopsearch/backend/internal/domain"
)

// Payload shapes as the provider sends them. The detail schema has changed
// across provider versions, so parsing is defensive: unknown fields are
// ignored and optional fields stay nil when absent.

type priceInfoPayload struct {
	PriceString string  `json:"price_string"`
	PriceSymbol string  `json:"price_symbol"`
	Price       float64 `json:"price"`
}

type searchEntryPayload struct {
	Type           string            `json:"type"`
	Position       int               `json:"position"`
	ASIN           string            `json:"asin"`
	Name           string            `json:"name"`
	Image          string            `json:"image"`
	HasPrime       bool              `json:"has_prime"`
	IsBestSeller   bool              `json:"is_best_seller"`
	IsAmazonChoice bool              `json:"is_amazon_choice"`
	IsLimitedDeal  bool              `json:"is_limited_deal"`
	Stars          *float64          `json:"stars"`
	URL            string            `json:"url"`
	Price          *float64          `json:"price"`
	PriceString    string            `json:"price_string"`
	OriginalPrice  *priceInfoPayload `json:"original_price"`
}

type searchResponsePayload struct {
	Results   []searchEntryPayload `json:"results"`
	NextPages []string             `json:"next_pages"`
}

type sentimentDetailPayload struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

type customersSayPayload struct {
	Summary           string                            `json:"summary"`
	SelectToLearnMore map[string]sentimentDetailPayload `json:"select_to_learn_more"`
}

type productResponsePayload struct {
	Name               string               `json:"name"`
	Brand              string               `json:"brand"`
	Pricing            string               `json:"pricing"`
	AvailabilityStatus string               `json:"availability_status"`
	AverageRating      *float64             `json:"average_rating"`
	TotalReviews       *int                 `json:"total_reviews"`
	Images             []string             `json:"images"`
	CustomersSay       *customersSayPayload `json:"customers_say"`
}

// mapSearchResponse parses a search response body into the domain result
// set. Entries missing the identifier are dropped silently; dirty provider
// payloads are expected. Ratings outside [0,5] and negative prices are
// discarded rather than failing the entry.
func mapSearchResponse(body []byte) (*domain.SearchResultSet, error) {
	var payload searchResponsePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	results := make([]domain.SearchMatch, 0, len(payload.Results))
	for _, entry := range payload.Results {
		if entry.ASIN == "" {
			continue
		}
		results = append(results, mapSearchEntry(entry))
	}

	return &domain.SearchResultSet{
		Results:   results,
		NextPages: payload.NextPages,
	}, nil
}

func mapSearchEntry(entry searchEntryPayload) domain.SearchMatch {
	match := domain.SearchMatch{
		ASIN:           entry.ASIN,
		Name:           entry.Name,
		Image:          entry.Image,
		URL:            entry.URL,
		Position:       entry.Position,
		HasPrime:       entry.HasPrime,
		IsBestSeller:   entry.IsBestSeller,
		IsAmazonChoice: entry.IsAmazonChoice,
		IsLimitedDeal:  entry.IsLimitedDeal,
		PriceString:    entry.PriceString,
	}

	if entry.Stars != nil && *entry.Stars >= 0 && *entry.Stars <= 5 {
		match.Stars = entry.Stars
	}
	if entry.Price != nil && *entry.Price >= 0 {
		match.Price = entry.Price
	}
	if entry.OriginalPrice != nil && entry.OriginalPrice.Price >= 0 {
		match.OriginalPrice = &domain.PriceInfo{
			PriceString: entry.OriginalPrice.PriceString,
			PriceSymbol: entry.OriginalPrice.PriceSymbol,
			Price:       entry.OriginalPrice.Price,
		}
	}

	return match
}

// mapProductResponse parses a product detail body into the domain record.
// Only the name is required; everything else in the detail schema is
// optional.
func mapProductResponse(body []byte) (*domain.ItemDetail, error) {
	var payload productResponsePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	if payload.Name == "" {
		return nil, fmt.Errorf("%w: missing product name", domain.ErrMalformedPayload)
	}

	detail := &domain.ItemDetail{
		Name:          payload.Name,
		Brand:         payload.Brand,
		Pricing:       payload.Pricing,
		Availability:  payload.AvailabilityStatus,
		AverageRating: payload.AverageRating,
		TotalReviews:  payload.TotalReviews,
		Images:        payload.Images,
	}

	if payload.CustomersSay != nil {
		say := &domain.CustomersSay{Summary: payload.CustomersSay.Summary}
		if len(payload.CustomersSay.SelectToLearnMore) > 0 {
			say.Aspects = make(map[string]domain.SentimentDetail, len(payload.CustomersSay.SelectToLearnMore))
			for aspect, counts := range payload.CustomersSay.SelectToLearnMore {
				say.Aspects[aspect] = domain.SentimentDetail{
					Total:    counts.Total,
					Positive: counts.Positive,
					Negative: counts.Negative,
				}
			}
		}
		detail.CustomersSay = say
	}

	return detail, nil
}
