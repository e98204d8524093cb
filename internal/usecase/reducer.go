package usecase

import "github.com/shopsearch/backend/internal/domain"

// maxViewImages caps the image list in a ProductView
const maxViewImages = 3

// ReduceToView converts a detailed item record into its compact, caller-facing
// presentation view. It is pure and total: any ItemDetail reduces.
func ReduceToView(detail domain.ItemDetail) domain.ProductView {
	view := domain.ProductView{
		Name:          detail.Name,
		Brand:         detail.Brand,
		Price:         detail.Pricing,
		Availability:  detail.Availability,
		AverageRating: detail.AverageRating,
		TotalReviews:  detail.TotalReviews,
		Images:        truncateImages(detail.Images),
	}

	if detail.CustomersSay != nil {
		view.CustomersSummary = detail.CustomersSay.Summary
		view.SentimentDetails = flattenSentiments(detail.CustomersSay.Aspects)
	}

	return view
}

// truncateImages keeps the first maxViewImages entries in original order
func truncateImages(images []string) []string {
	if len(images) <= maxViewImages {
		return images
	}
	return images[:maxViewImages]
}

// flattenSentiments converts per-aspect sentiment records into primitive
// counts. Aspects with no data are simply absent, never nil placeholders.
func flattenSentiments(aspects map[string]domain.SentimentDetail) map[string]map[string]int {
	if len(aspects) == 0 {
		return nil
	}

	flattened := make(map[string]map[string]int, len(aspects))
	for aspect, detail := range aspects {
		flattened[aspect] = map[string]int{
			"total":    detail.Total,
			"positive": detail.Positive,
			"negative": detail.Negative,
		}
	}
	return flattened
}
