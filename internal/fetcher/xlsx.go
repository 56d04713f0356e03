package fetcher

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/aswinr92/lead-generator/internal/model"
)

// XLSXOptions configures workbook reading.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ReadXLSX loads raw records from a previously exported workbook, typically
// the canonical sheet of an earlier run being used as the prior set. The
// first row must be a header; its cells map to RawRecord fields by the
// same names the CSV format uses.
func ReadXLSX(path string, opts XLSXOptions) ([]model.RawRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open xlsx")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, nil
	}

	header := rowToStrings(sheet.Rows[0])
	cols := make(map[string]int, len(header))
	for j, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = j
	}

	var records []model.RawRecord
	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		records = append(records, recordFromRow(cells, cols))
	}
	return records, nil
}

func recordFromRow(cells []string, cols map[string]int) model.RawRecord {
	at := func(name string) string {
		j, ok := cols[name]
		if !ok || j >= len(cells) {
			return ""
		}
		return cells[j]
	}

	return model.RawRecord{
		Name:         at("name"),
		Category:     at("category"),
		Rating:       at("rating"),
		ReviewsCount: at("reviews_count"),
		Address:      at("address"),
		Phone:        at("phone"),
		Website:      at("website"),
		SourceURL:    at("source_url"),
		SearchQuery:  at("search_query"),
		CapturedAt:   at("captured_at"),
	}
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("fetcher: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("fetcher: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
