package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aswinr92/lead-generator/internal/exporter"
	"github.com/aswinr92/lead-generator/internal/fetcher"
	"github.com/aswinr92/lead-generator/internal/model"
	"github.com/aswinr92/lead-generator/internal/pipeline"
)

var (
	dedupCSVs       []string
	dedupExisting   string
	dedupOutput     string
	dedupXLSX       string
	dedupAudit      string
	dedupNameThresh int
	dedupAddrThresh int
)

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Deduplicate scraped listings into a canonical record set",
	Long: `Normalizes one or more scraper CSV exports, collapses near-duplicate
listings into canonical records, and writes the deduplicated set plus a
merge audit report. With --existing, a previously exported canonical set
(CSV or XLSX) is seeded in first so the run deduplicates "existing + new".`,
	Example: `  lead-generator dedup --csv vendors_20260830.csv
  lead-generator dedup --csv run1.csv --csv run2.csv --existing canonical.xlsx
  lead-generator dedup --csv vendors.csv --name-threshold 90 --xlsx vendors.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := fetcher.ReadCSVs(dedupCSVs)
		if err != nil {
			return err
		}

		var prior []model.RawRecord
		if dedupExisting != "" {
			prior, err = readExisting(dedupExisting)
			if err != nil {
				return err
			}
			zap.L().Info("dedup: loaded prior canonical set",
				zap.String("file", dedupExisting),
				zap.Int("records", len(prior)),
			)
		}

		opts := cfg.PipelineOptions()
		if cmd.Flags().Changed("name-threshold") {
			opts.NameThreshold = dedupNameThresh
		}
		if cmd.Flags().Changed("address-threshold") {
			opts.AddressThreshold = dedupAddrThresh
		}

		result, err := pipeline.Run(raw, prior, opts)
		if err != nil {
			return err
		}

		if err := exporter.WriteCanonicalCSV(dedupOutput, result.Canonical); err != nil {
			return err
		}
		if dedupXLSX != "" {
			if err := exporter.WriteWorkbook(dedupXLSX, result.Canonical, result.Stats); err != nil {
				return err
			}
		}
		if dedupAudit != "" {
			if err := exporter.WriteAuditJSON(dedupAudit, result.Stats, result.Audit); err != nil {
				return err
			}
		}

		zap.L().Info("dedup: wrote canonical set",
			zap.String("output", dedupOutput),
			zap.Int("final", result.Stats.FinalCount),
			zap.Int("duplicates_removed", result.Stats.DuplicatesRemoved),
		)
		return nil
	},
}

// readExisting loads a prior canonical set from CSV or XLSX by extension.
func readExisting(path string) ([]model.RawRecord, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return fetcher.ReadXLSX(path, fetcher.XLSXOptions{})
	}
	return fetcher.ReadCSV(path)
}

func init() {
	dedupCmd.Flags().StringArrayVar(&dedupCSVs, "csv", nil, "input CSV file (repeatable)")
	dedupCmd.Flags().StringVar(&dedupExisting, "existing", "", "previously exported canonical set (CSV or XLSX)")
	dedupCmd.Flags().StringVar(&dedupOutput, "output", "canonical.csv", "canonical CSV output path")
	dedupCmd.Flags().StringVar(&dedupXLSX, "xlsx", "", "optional XLSX workbook output path")
	dedupCmd.Flags().StringVar(&dedupAudit, "audit", "audit.json", "merge audit JSON output path")
	dedupCmd.Flags().IntVar(&dedupNameThresh, "name-threshold", 85, "name similarity threshold (0-100)")
	dedupCmd.Flags().IntVar(&dedupAddrThresh, "address-threshold", 80, "address similarity threshold (0-100)")
	_ = dedupCmd.MarkFlagRequired("csv")

	rootCmd.AddCommand(dedupCmd)
}
