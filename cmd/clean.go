package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aswinr92/lead-generator/internal/exporter"
	"github.com/aswinr92/lead-generator/internal/fetcher"
	"github.com/aswinr92/lead-generator/internal/model"
	"github.com/aswinr92/lead-generator/internal/normalize"
	"github.com/aswinr92/lead-generator/internal/scorer"
)

var (
	cleanCSVs   []string
	cleanOutput string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize and score scraped listings without deduplicating",
	Example: `  lead-generator clean --csv vendors_20260830.csv --output cleaned.csv
  lead-generator clean --csv run1.csv --csv run2.csv --output cleaned.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := fetcher.ReadCSVs(cleanCSVs)
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			return eris.New("clean: no records in input")
		}

		opts := cfg.PipelineOptions()
		n := normalize.New(opts.Normalize)

		records := make([]model.NormalizedRecord, len(raw))
		for i, r := range raw {
			rec := n.Normalize(r)
			rec.QualityScore = scorer.Quality(rec)
			records[i] = rec
		}

		if err := exporter.WriteCleanedCSV(cleanOutput, records); err != nil {
			return err
		}

		zap.L().Info("clean: wrote cleaned records",
			zap.Int("records", len(records)),
			zap.String("output", cleanOutput),
		)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringArrayVar(&cleanCSVs, "csv", nil, "input CSV file (repeatable)")
	cleanCmd.Flags().StringVar(&cleanOutput, "output", "cleaned.csv", "output CSV path")
	_ = cleanCmd.MarkFlagRequired("csv")

	rootCmd.AddCommand(cleanCmd)
}
