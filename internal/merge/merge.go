// Package merge collapses duplicate groups into canonical records.
package merge

import (
	"go.uber.org/zap"

	"github.com/aswinr92/lead-generator/internal/model"
	"github.com/aswinr92/lead-generator/internal/scorer"
)

// Merge collapses one duplicate group into a canonical record. Singleton
// groups pass through unchanged with no audit entry.
//
// For larger groups the member with the highest quality score becomes the
// base (ties go to the earliest input position). Fields empty on the base
// are filled from the first member in group order carrying a value;
// reviews_count takes the group maximum, and rating follows the member with
// the most reviews among those rated, ties toward the higher rating.
func Merge(group model.DuplicateGroup, records []model.NormalizedRecord) (model.CanonicalRecord, *model.MergeAuditEntry) {
	if group.Size() == 1 {
		idx := group.Indices[0]
		return model.CanonicalRecord{
			NormalizedRecord: records[idx],
			SourceCount:      1,
			SourceIndices:    group.Indices,
		}, nil
	}

	base := pickBase(group.Indices, records)
	merged := records[base]

	var decisions []model.FieldDecision
	fill := func(field string, dst *string, src func(model.NormalizedRecord) string) {
		if *dst != "" {
			return
		}
		for _, idx := range group.Indices {
			if idx == base {
				continue
			}
			if v := src(records[idx]); v != "" {
				*dst = v
				decisions = append(decisions, model.FieldDecision{
					Field: field, FromIndex: idx, Value: v,
				})
				return
			}
		}
	}

	fill("name", &merged.Name, func(r model.NormalizedRecord) string { return r.Name })
	fill("phone", &merged.Phone, func(r model.NormalizedRecord) string { return r.Phone })
	fill("address", &merged.Address, func(r model.NormalizedRecord) string { return r.Address })
	fill("city", &merged.City, func(r model.NormalizedRecord) string { return r.City })
	fill("pincode", &merged.Pincode, func(r model.NormalizedRecord) string { return r.Pincode })
	fill("category", &merged.Category, func(r model.NormalizedRecord) string { return r.Category })
	fill("source_url", &merged.SourceURL, func(r model.NormalizedRecord) string { return r.SourceURL })
	fill("search_query", &merged.SearchQuery, func(r model.NormalizedRecord) string { return r.SearchQuery })
	fill("captured_at", &merged.CapturedAt, func(r model.NormalizedRecord) string { return r.CapturedAt })

	// Website carries its presence classification along.
	if merged.Website == "" {
		for _, idx := range group.Indices {
			if idx == base {
				continue
			}
			if r := records[idx]; r.Website != "" {
				merged.Website = r.Website
				merged.Presence = r.Presence
				decisions = append(decisions, model.FieldDecision{
					Field: "website", FromIndex: idx, Value: r.Website,
				})
				break
			}
		}
	}

	mergeReviews(&merged, group.Indices, records, base, &decisions)
	mergeRating(&merged, group.Indices, records, base, &decisions)

	// Filled fields change completeness; score the merged result fresh.
	merged.QualityScore = scorer.Quality(merged)

	audit := &model.MergeAuditEntry{
		Strategy:      group.Strategy,
		Score:         group.Score,
		Edges:         group.Edges,
		GroupSize:     group.Size(),
		BaseIndex:     base,
		Indices:       group.Indices,
		MergedName:    merged.Name,
		MergedPhone:   merged.Phone,
		MergedAddress: merged.Address,
		Decisions:     decisions,
	}
	for _, idx := range group.Indices {
		r := records[idx]
		audit.Sources = append(audit.Sources, model.AuditSource{
			Index:        idx,
			Name:         r.Name,
			Phone:        r.Phone,
			Address:      r.Address,
			QualityScore: r.QualityScore,
		})
	}

	zap.L().Debug("merge: collapsed duplicate group",
		zap.String("strategy", string(group.Strategy)),
		zap.Int("size", group.Size()),
		zap.String("name", merged.Name),
	)

	return model.CanonicalRecord{
		NormalizedRecord: merged,
		SourceCount:      group.Size(),
		SourceIndices:    group.Indices,
	}, audit
}

// pickBase returns the member with the highest quality score; equal scores
// resolve to the earliest input position.
func pickBase(indices []int, records []model.NormalizedRecord) int {
	base := indices[0]
	for _, idx := range indices[1:] {
		if records[idx].QualityScore > records[base].QualityScore {
			base = idx
		}
	}
	return base
}

// mergeReviews takes the maximum reviews_count across the group.
func mergeReviews(merged *model.NormalizedRecord, indices []int, records []model.NormalizedRecord, base int, decisions *[]model.FieldDecision) {
	maxIdx := base
	for _, idx := range indices {
		if records[idx].ReviewsCount > records[maxIdx].ReviewsCount {
			maxIdx = idx
		}
	}
	if maxIdx != base && records[maxIdx].ReviewsCount != merged.ReviewsCount {
		merged.ReviewsCount = records[maxIdx].ReviewsCount
		*decisions = append(*decisions, model.FieldDecision{
			Field: "reviews_count", FromIndex: maxIdx,
		})
	}
}

// mergeRating takes the rating of whichever rated member has the most
// reviews, ties broken toward the higher rating.
func mergeRating(merged *model.NormalizedRecord, indices []int, records []model.NormalizedRecord, base int, decisions *[]model.FieldDecision) {
	winner := -1
	for _, idx := range indices {
		r := records[idx]
		if r.Rating <= 0 {
			continue
		}
		if winner < 0 {
			winner = idx
			continue
		}
		w := records[winner]
		if r.ReviewsCount > w.ReviewsCount ||
			(r.ReviewsCount == w.ReviewsCount && r.Rating > w.Rating) {
			winner = idx
		}
	}
	if winner < 0 {
		return
	}
	if records[winner].Rating != merged.Rating {
		merged.Rating = records[winner].Rating
		*decisions = append(*decisions, model.FieldDecision{
			Field: "rating", FromIndex: winner,
		})
	}
}
