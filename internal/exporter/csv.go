// Package exporter writes pipeline outputs as plain report files.
// Presentation concerns (styling, colors) stay with downstream tooling.
package exporter

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/aswinr92/lead-generator/internal/model"
	"github.com/aswinr92/lead-generator/internal/scorer"
)

// canonicalColumns defines the ordered canonical CSV output columns.
var canonicalColumns = []string{
	"name",
	"category",
	"phone",
	"address",
	"city",
	"pincode",
	"website",
	"digital_presence",
	"rating",
	"reviews_count",
	"quality_score",
	"source_count",
	"source_url",
	"search_query",
	"captured_at",
}

// WriteCanonicalCSV writes the deduplicated canonical set.
func WriteCanonicalCSV(path string, records []model.CanonicalRecord) error {
	return writeCSV(path, canonicalColumns, len(records), func(i int) []string {
		r := records[i]
		row := normalizedRow(r.NormalizedRecord)
		row = append(row, strconv.Itoa(r.SourceCount))
		return append(row, r.SourceURL, r.SearchQuery, r.CapturedAt)
	})
}

// cleanedColumns defines the ordered cleaned-record CSV output columns.
var cleanedColumns = canonicalColumns[:11:11]

// WriteCleanedCSV writes normalized records without merge provenance, for
// clean-only runs.
func WriteCleanedCSV(path string, records []model.NormalizedRecord) error {
	return writeCSV(path, cleanedColumns, len(records), func(i int) []string {
		return normalizedRow(records[i])
	})
}

// opportunityColumns extend the cleaned columns with analysis fields.
var opportunityColumns = append(append([]string{}, cleanedColumns...), "opportunity_score", "tier")

// WriteOpportunityCSV writes records with opportunity scores and sales
// tiers appended.
func WriteOpportunityCSV(path string, records []model.NormalizedRecord, opts scorer.OpportunityOptions) error {
	return writeCSV(path, opportunityColumns, len(records), func(i int) []string {
		r := records[i]
		row := normalizedRow(r)
		row = append(row, strconv.Itoa(scorer.Opportunity(r, opts)))
		return append(row, scorer.Tier(r))
	})
}

// normalizedRow renders the shared leading columns of a normalized record.
func normalizedRow(r model.NormalizedRecord) []string {
	return []string{
		r.Name,
		r.Category,
		r.Phone,
		r.Address,
		r.City,
		r.Pincode,
		r.Website,
		string(r.Presence),
		formatRating(r.Rating),
		strconv.Itoa(r.ReviewsCount),
		strconv.Itoa(r.QualityScore),
	}
}

func writeCSV(path string, columns []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "exporter: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return eris.Wrap(err, "exporter: write header")
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return eris.Wrap(err, "exporter: write row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "exporter: flush csv")
}

func formatRating(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}
