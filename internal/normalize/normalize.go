// Package normalize canonicalizes raw listing fields into comparable forms.
package normalize

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aswinr92/lead-generator/internal/model"
)

// Options configures field normalization.
type Options struct {
	// DefaultCountry is the ISO region used to interpret phone numbers
	// without an explicit country prefix, e.g. "IN".
	DefaultCountry string

	// CityAliases maps lowercase aliases to canonical city names. Aliases
	// found in addresses are rewritten to their canonical form.
	CityAliases map[string]string

	// TrackingParams are URL query parameter patterns to strip. A trailing
	// '*' makes the entry a prefix pattern ("utm_*" matches utm_source).
	TrackingParams []string

	// SocialHosts are domains whose URLs count as social-media presence
	// rather than a real website.
	SocialHosts []string
}

// DefaultOptions returns the stock normalization tables.
func DefaultOptions() Options {
	return Options{
		DefaultCountry: "IN",
		CityAliases: map[string]string{
			"trivandrum": "Thiruvananthapuram",
			"tvm":        "Thiruvananthapuram",
			"cochin":     "Kochi",
			"calicut":    "Kozhikode",
			"trichur":    "Thrissur",
			"alleppey":   "Alappuzha",
			"palghat":    "Palakkad",
		},
		TrackingParams: []string{
			"utm_*", "fbclid", "gclid", "msclkid", "ref", "source",
		},
		SocialHosts: []string{
			"instagram.com", "facebook.com", "fb.com",
		},
	}
}

var multiSpaceRe = regexp.MustCompile(`\s+`)

// Normalizer converts RawRecords into NormalizedRecords. It is immutable
// after construction and safe for concurrent use.
type Normalizer struct {
	opts    Options
	caser   cases.Caser
	aliases []cityAlias // deterministic order: longest alias first
	cities  []string    // canonical names, deterministic order
}

type cityAlias struct {
	re        *regexp.Regexp
	canonical string
}

// New builds a Normalizer from opts. Zero-value options fall back to
// DefaultOptions tables field by field.
func New(opts Options) *Normalizer {
	def := DefaultOptions()
	if opts.DefaultCountry == "" {
		opts.DefaultCountry = def.DefaultCountry
	}
	if opts.CityAliases == nil {
		opts.CityAliases = def.CityAliases
	}
	if opts.TrackingParams == nil {
		opts.TrackingParams = def.TrackingParams
	}
	if opts.SocialHosts == nil {
		opts.SocialHosts = def.SocialHosts
	}

	n := &Normalizer{
		opts:  opts,
		caser: cases.Title(language.English),
	}

	// Longest alias first so "greater cochin" style entries would win over
	// plain "cochin"; ties broken lexicographically for determinism.
	keys := make([]string, 0, len(opts.CityAliases))
	for alias := range opts.CityAliases {
		keys = append(keys, alias)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	seen := make(map[string]bool)
	for _, alias := range keys {
		canonical := opts.CityAliases[alias]
		n.aliases = append(n.aliases, cityAlias{
			re:        regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(alias) + `\b`),
			canonical: canonical,
		})
		if !seen[canonical] {
			seen[canonical] = true
			n.cities = append(n.cities, canonical)
		}
	}
	sort.Strings(n.cities)

	return n
}

// Normalize canonicalizes every field of raw. It never fails; unparseable
// input degrades to the field's zero value.
func (n *Normalizer) Normalize(raw model.RawRecord) model.NormalizedRecord {
	rec := model.NormalizedRecord{
		Name:         n.normalizeName(raw.Name),
		Phone:        n.normalizePhone(raw.Phone),
		Category:     n.normalizeName(raw.Category),
		Rating:       normalizeRating(raw.Rating),
		ReviewsCount: normalizeReviews(raw.ReviewsCount),
		SourceURL:    strings.TrimSpace(raw.SourceURL),
		SearchQuery:  strings.TrimSpace(raw.SearchQuery),
		CapturedAt:   strings.TrimSpace(raw.CapturedAt),
	}
	rec.Address, rec.City, rec.Pincode = n.normalizeAddress(raw.Address)
	rec.Website, rec.Presence = n.normalizeWebsite(raw.Website)
	return rec
}

// normalizeRating parses a rating into [0.0, 5.0], rounded to one decimal.
// Out-of-range or unparseable values degrade to 0.
func normalizeRating(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 5 {
		return 0
	}
	return math.Round(f*10) / 10
}

// normalizeReviews parses a review count, tolerating thousands separators.
func normalizeReviews(raw string) int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	count, err := strconv.Atoi(s)
	if err != nil || count < 0 {
		return 0
	}
	return count
}
