package exporter

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/aswinr92/lead-generator/internal/model"
)

// AuditReport is the serialized shape of a run's merge decisions.
type AuditReport struct {
	Stats   model.Stats             `json:"stats"`
	Entries []model.MergeAuditEntry `json:"entries"`
}

// WriteAuditJSON writes the run statistics and per-group merge decisions
// as an indented JSON report.
func WriteAuditJSON(path string, stats model.Stats, entries []model.MergeAuditEntry) error {
	report := AuditReport{Stats: stats, Entries: entries}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return eris.Wrap(err, "exporter: marshal audit report")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "exporter: write audit report")
	}
	return nil
}
