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
	analyzeCSV    string
	analyzeOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a canonical record set for sales opportunity",
	Long: `Reads a canonical (or cleaned) CSV and appends an opportunity score and
sales tier per record. Records are re-normalized on the way in, which is a
no-op for already-clean data.`,
	Example: `  lead-generator analyze --csv canonical.csv --output opportunities.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := fetcher.ReadCSV(analyzeCSV)
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			return eris.New("analyze: no records in input")
		}

		opts := cfg.PipelineOptions()
		n := normalize.New(opts.Normalize)

		records := make([]model.NormalizedRecord, len(raw))
		for i, r := range raw {
			rec := n.Normalize(r)
			rec.QualityScore = scorer.Quality(rec)
			records[i] = rec
		}

		if err := exporter.WriteOpportunityCSV(analyzeOutput, records, cfg.OpportunityOptions()); err != nil {
			return err
		}

		zap.L().Info("analyze: wrote opportunity report",
			zap.Int("records", len(records)),
			zap.String("output", analyzeOutput),
		)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "canonical or cleaned CSV input")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "opportunities.csv", "output CSV path")
	_ = analyzeCmd.MarkFlagRequired("csv")

	rootCmd.AddCommand(analyzeCmd)
}
