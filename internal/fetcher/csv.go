// Package fetcher loads raw listing records from scraper export files.
package fetcher

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/aswinr92/lead-generator/internal/model"
)

// ReadCSV loads raw records from one CSV export. Column headers map to
// RawRecord fields by csv tag; unknown columns are ignored.
func ReadCSV(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open csv")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // scraper exports occasionally carry ragged rows

	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read csv header")
	}

	var records []model.RawRecord
	for {
		var rec model.RawRecord
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrapf(err, "fetcher: decode csv row %d", len(records)+2)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadCSVs merges multiple CSV exports in path order, stamping each record
// with its source file name for provenance.
func ReadCSVs(paths []string) ([]model.RawRecord, error) {
	var all []model.RawRecord
	for _, path := range paths {
		records, err := ReadCSV(path)
		if err != nil {
			return nil, err
		}
		name := filepath.Base(path)
		for i := range records {
			if records[i].SourceFile == "" {
				records[i].SourceFile = name
			}
		}
		zap.L().Info("fetcher: loaded csv",
			zap.String("file", name),
			zap.Int("records", len(records)),
		)
		all = append(all, records...)
	}
	return all, nil
}
