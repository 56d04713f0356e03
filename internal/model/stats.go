package model

import "time"

// Stats summarizes one pipeline run.
type Stats struct {
	RunID string `json:"run_id"`

	InputCount        int `json:"input_count"`
	PriorCount        int `json:"prior_count"`
	NormalizedCount   int `json:"normalized_count"`
	GroupCount        int `json:"group_count"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	FinalCount        int `json:"final_count"`

	Elapsed time.Duration `json:"elapsed_ns"`
}
