// Package model defines the record types flowing through the dedup pipeline.
package model

// RawRecord is one business listing exactly as captured by a scraper run.
// Any field may be empty or malformed; normalization decides what survives.
type RawRecord struct {
	Name         string `csv:"name" json:"name"`
	Category     string `csv:"category" json:"category"`
	Rating       string `csv:"rating" json:"rating"`
	ReviewsCount string `csv:"reviews_count" json:"reviews_count"`
	Address      string `csv:"address" json:"address"`
	Phone        string `csv:"phone" json:"phone"`
	Website      string `csv:"website" json:"website"`
	SourceURL    string `csv:"source_url" json:"source_url"`
	SearchQuery  string `csv:"search_query" json:"search_query"`
	CapturedAt   string `csv:"captured_at" json:"captured_at"`

	// SourceFile records which input file the row came from when multiple
	// scraper exports are merged before processing.
	SourceFile string `csv:"source_file,omitempty" json:"source_file,omitempty"`
}

// PresenceKind classifies a listing's web presence.
type PresenceKind string

const (
	PresenceNone       PresenceKind = "none"
	PresenceSocialOnly PresenceKind = "social_only"
	PresenceWebsite    PresenceKind = "has_website"
)

// NormalizedRecord is a RawRecord after field normalization. It is never
// mutated or re-normalized; every downstream stage produces new values.
//
// Empty string / zero means the field was absent or unparseable.
type NormalizedRecord struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"` // E.164 or empty
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`

	Website  string       `json:"website"`
	Presence PresenceKind `json:"digital_presence"`

	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`

	Category    string `json:"category"`
	SourceURL   string `json:"source_url"`
	SearchQuery string `json:"search_query"`
	CapturedAt  string `json:"captured_at"`

	// QualityScore is the 0-100 completeness score, computed once by the
	// pipeline right after normalization.
	QualityScore int `json:"quality_score"`
}

// CanonicalRecord is the merged representative of one duplicate group.
type CanonicalRecord struct {
	NormalizedRecord

	SourceCount   int   `json:"source_count"`
	SourceIndices []int `json:"source_indices"`
}
