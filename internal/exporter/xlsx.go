package exporter

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/aswinr92/lead-generator/internal/model"
)

// WriteWorkbook writes the canonical set and run summary as a two-sheet
// XLSX workbook: "Vendor Data" with one row per canonical record, and
// "Summary" with the run statistics.
func WriteWorkbook(path string, records []model.CanonicalRecord, stats model.Stats) error {
	f := xlsx.NewFile()

	data, err := f.AddSheet("Vendor Data")
	if err != nil {
		return eris.Wrap(err, "exporter: add data sheet")
	}

	header := data.AddRow()
	for _, col := range canonicalColumns {
		header.AddCell().SetString(col)
	}
	for _, r := range records {
		row := data.AddRow()
		row.AddCell().SetString(r.Name)
		row.AddCell().SetString(r.Category)
		row.AddCell().SetString(r.Phone)
		row.AddCell().SetString(r.Address)
		row.AddCell().SetString(r.City)
		row.AddCell().SetString(r.Pincode)
		row.AddCell().SetString(r.Website)
		row.AddCell().SetString(string(r.Presence))
		if r.Rating > 0 {
			row.AddCell().SetFloat(r.Rating)
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetInt(r.ReviewsCount)
		row.AddCell().SetInt(r.QualityScore)
		row.AddCell().SetInt(r.SourceCount)
		row.AddCell().SetString(r.SourceURL)
		row.AddCell().SetString(r.SearchQuery)
		row.AddCell().SetString(r.CapturedAt)
	}

	summary, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "exporter: add summary sheet")
	}
	addStat := func(label string, value int) {
		row := summary.AddRow()
		row.AddCell().SetString(label)
		row.AddCell().SetInt(value)
	}
	idRow := summary.AddRow()
	idRow.AddCell().SetString("Run ID")
	idRow.AddCell().SetString(stats.RunID)
	addStat("New records", stats.InputCount)
	addStat("Prior records", stats.PriorCount)
	addStat("Normalized", stats.NormalizedCount)
	addStat("Duplicate groups", stats.GroupCount)
	addStat("Duplicates removed", stats.DuplicatesRemoved)
	addStat("Final records", stats.FinalCount)

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "exporter: save workbook")
	}
	return nil
}
