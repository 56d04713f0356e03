package model

// FieldDecision records which group member supplied a field value that the
// base record did not already carry.
type FieldDecision struct {
	Field     string `json:"field"`
	FromIndex int    `json:"from_index"`
	Value     string `json:"value"`
}

// AuditSource is a compact view of one merged group member.
type AuditSource struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	QualityScore int    `json:"quality_score"`
}

// MergeAuditEntry documents one non-singleton group merge: who was merged,
// why they matched, and where each overridden field came from.
type MergeAuditEntry struct {
	Strategy  Strategy    `json:"strategy"`
	Score     int         `json:"score"`
	Edges     []MatchEdge `json:"edges,omitempty"`
	GroupSize int         `json:"group_size"`
	BaseIndex int         `json:"base_index"`
	Indices   []int       `json:"indices"`

	MergedName    string `json:"merged_name"`
	MergedPhone   string `json:"merged_phone"`
	MergedAddress string `json:"merged_address"`

	Sources   []AuditSource   `json:"sources"`
	Decisions []FieldDecision `json:"decisions,omitempty"`
}
