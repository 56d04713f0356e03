package scorer

import (
	"strings"

	"github.com/aswinr92/lead-generator/internal/model"
)

// Tier labels for sales segmentation.
const (
	TierPremium = "Tier 1 - Premium"
	TierGrowth  = "Tier 2 - Growth"
	TierEntry   = "Tier 3 - Entry"
)

// basicHosts are placeholder/link-in-bio sites that count as a digital
// presence gap even though the listing technically has a website URL.
var basicHosts = []string{"linktr.ee", "linkin.bio", "welcomeyou.in"}

// OpportunityOptions configures opportunity scoring.
type OpportunityOptions struct {
	// Tier1Cities are the metros where a listing earns the full geography
	// bonus; anywhere else earns a reduced one.
	Tier1Cities []string
}

// DefaultOpportunityOptions returns the stock tier-1 city list.
func DefaultOpportunityOptions() OpportunityOptions {
	return OpportunityOptions{
		Tier1Cities: []string{"Kochi", "Thiruvananthapuram", "Kozhikode", "Thrissur"},
	}
}

// Opportunity scores how attractive a listing is as a sales lead (0-100).
// High-rated, well-reviewed businesses with a weak web presence score
// highest: they are established but under-served online.
func Opportunity(rec model.NormalizedRecord, opts OpportunityOptions) int {
	score := 0

	// Digital presence gap (max 40).
	switch rec.Presence {
	case model.PresenceNone:
		score += 40
	case model.PresenceSocialOnly:
		score += 30
	default:
		if isBasicWebsite(rec.Website) {
			score += 20
		}
	}

	// Quality indicator (max 25).
	switch {
	case rec.Rating >= 4.5:
		score += 25
	case rec.Rating >= 4.0:
		score += 15
	case rec.Rating >= 3.5:
		score += 5
	}

	// Market demand (max 20).
	switch {
	case rec.ReviewsCount >= 200:
		score += 20
	case rec.ReviewsCount >= 100:
		score += 15
	case rec.ReviewsCount >= 50:
		score += 10
	case rec.ReviewsCount >= 20:
		score += 5
	}

	// Contactability (max 10).
	if rec.Phone != "" {
		score += 10
	}

	// Geography (max 5).
	if containsFold(opts.Tier1Cities, rec.City) {
		score += 5
	} else {
		score += 3
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Tier segments a listing into a sales tier from its normalized fields.
func Tier(rec model.NormalizedRecord) string {
	switch {
	case rec.Rating >= 4.5 && rec.ReviewsCount >= 100 && rec.Website == "" && rec.Phone != "":
		return TierPremium
	case rec.Rating >= 4.0 && rec.Rating < 4.5 && rec.ReviewsCount >= 20 && rec.ReviewsCount < 100:
		return TierGrowth
	default:
		return TierEntry
	}
}

func isBasicWebsite(website string) bool {
	lower := strings.ToLower(website)
	for _, host := range basicHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
