// Package pipeline composes normalization, scoring, resolution, and merge
// into the batch dedup run.
package pipeline

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/aswinr92/lead-generator/internal/merge"
	"github.com/aswinr92/lead-generator/internal/model"
	"github.com/aswinr92/lead-generator/internal/normalize"
	"github.com/aswinr92/lead-generator/internal/resolver"
	"github.com/aswinr92/lead-generator/internal/scorer"
)

// ErrEmptyInput is returned when there is nothing to process: no new
// records and no prior canonical set.
var ErrEmptyInput = eris.New("pipeline: no records to process")

// Options configures a pipeline run.
type Options struct {
	// NameThreshold gates fuzzy name matching (default 85).
	NameThreshold int
	// AddressThreshold gates fuzzy address matching (default 80).
	AddressThreshold int
	// Workers bounds pairwise-scoring concurrency; zero means one per CPU.
	Workers int

	Normalize normalize.Options
}

// DefaultOptions returns the stock thresholds and normalization tables.
func DefaultOptions() Options {
	return Options{
		NameThreshold:    85,
		AddressThreshold: 80,
		Normalize:        normalize.DefaultOptions(),
	}
}

// Validate rejects thresholds outside [0,100]. It runs before any
// processing so an invalid configuration never produces a partial run.
func (o Options) Validate() error {
	if o.NameThreshold < 0 || o.NameThreshold > 100 {
		return eris.Errorf("pipeline: name threshold %d outside [0,100]", o.NameThreshold)
	}
	if o.AddressThreshold < 0 || o.AddressThreshold > 100 {
		return eris.Errorf("pipeline: address threshold %d outside [0,100]", o.AddressThreshold)
	}
	return nil
}

// Result bundles a pipeline run's outputs.
type Result struct {
	Canonical []model.CanonicalRecord
	Audit     []model.MergeAuditEntry
	Stats     model.Stats
}

// Run deduplicates raw against an optional prior canonical set. Prior
// records are normalized too (idempotently — an already-normalized field
// re-normalizes to itself) and placed before the new batch, so resolution
// runs over "existing + new" as one set and first-occurrence tie-breaks
// favor previously published records.
func Run(raw, prior []model.RawRecord, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(raw) == 0 && len(prior) == 0 {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))

	normalizer := normalize.New(opts.Normalize)
	records := make([]model.NormalizedRecord, 0, len(prior)+len(raw))
	for _, r := range prior {
		records = append(records, normalizeOne(normalizer, r))
	}
	for _, r := range raw {
		records = append(records, normalizeOne(normalizer, r))
	}
	log.Info("pipeline: normalized batch",
		zap.Int("new", len(raw)),
		zap.Int("prior", len(prior)),
	)

	groups := resolver.Resolve(records, resolver.Options{
		NameThreshold:    opts.NameThreshold,
		AddressThreshold: opts.AddressThreshold,
		Workers:          opts.Workers,
	})

	result := &Result{
		Canonical: make([]model.CanonicalRecord, 0, len(groups)),
	}
	for _, group := range groups {
		canonical, audit := merge.Merge(group, records)
		result.Canonical = append(result.Canonical, canonical)
		if audit != nil {
			result.Audit = append(result.Audit, *audit)
		}
	}

	result.Stats = model.Stats{
		RunID:             runID,
		InputCount:        len(raw),
		PriorCount:        len(prior),
		NormalizedCount:   len(records),
		GroupCount:        len(groups),
		DuplicatesRemoved: len(records) - len(result.Canonical),
		FinalCount:        len(result.Canonical),
		Elapsed:           time.Since(start),
	}

	log.Info("pipeline: dedup complete",
		zap.Int("groups", result.Stats.GroupCount),
		zap.Int("duplicates_removed", result.Stats.DuplicatesRemoved),
		zap.Int("final", result.Stats.FinalCount),
		zap.Duration("elapsed", result.Stats.Elapsed),
	)

	return result, nil
}

// normalizeOne normalizes a raw record and caches its completeness score.
func normalizeOne(n *normalize.Normalizer, raw model.RawRecord) model.NormalizedRecord {
	rec := n.Normalize(raw)
	rec.QualityScore = scorer.Quality(rec)
	return rec
}

// RawFromCanonical converts a canonical record back to the raw shape, for
// feeding a previous run's output in as the prior set.
func RawFromCanonical(c model.CanonicalRecord) model.RawRecord {
	return model.RawRecord{
		Name:         c.Name,
		Category:     c.Category,
		Rating:       formatRating(c.Rating),
		ReviewsCount: formatCount(c.ReviewsCount),
		Address:      c.Address,
		Phone:        c.Phone,
		Website:      c.Website,
		SourceURL:    c.SourceURL,
		SearchQuery:  c.SearchQuery,
		CapturedAt:   c.CapturedAt,
	}
}

func formatRating(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatCount(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
