// Package scorer computes completeness and opportunity scores for records.
package scorer

import (
	"strings"

	"github.com/aswinr92/lead-generator/internal/model"
)

// Completeness weights. They sum to 100; the cap in Quality is a safety
// invariant, not an adjustment.
const (
	weightName     = 20
	weightPhone    = 25
	weightAddress  = 15
	weightWebsite  = 10
	weightRating   = 15
	weightReviews  = 10
	weightCategory = 5

	minAddressLen = 10
)

// Quality returns the 0-100 completeness score for a normalized record.
// It is a pure additive function of field presence and validity.
func Quality(rec model.NormalizedRecord) int {
	score := 0

	if rec.Name != "" {
		score += weightName
	}
	// Phone is either empty or valid E.164; the leading '+' is the marker.
	if strings.HasPrefix(rec.Phone, "+") {
		score += weightPhone
	}
	if len(rec.Address) > minAddressLen {
		score += weightAddress
	}
	if strings.HasPrefix(rec.Website, "http://") || strings.HasPrefix(rec.Website, "https://") {
		score += weightWebsite
	}
	if rec.Rating > 0 {
		score += weightRating
	}
	if rec.ReviewsCount > 0 {
		score += weightReviews
	}
	if rec.Category != "" {
		score += weightCategory
	}

	if score > 100 {
		score = 100
	}
	return score
}
