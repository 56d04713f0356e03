package model

// Strategy identifies which matching strategy formed a duplicate group.
type Strategy string

const (
	// StrategyPhone groups records sharing an identical normalized phone.
	StrategyPhone Strategy = "phone_exact"
	// StrategyNameAddress groups records by fuzzy name + address similarity.
	StrategyNameAddress Strategy = "name_address"
	// StrategyNameCity groups phoneless records by city + near-exact name.
	StrategyNameCity Strategy = "name_city"
	// StrategyNone marks records no strategy touched; they pass through as
	// their own singleton group.
	StrategyNone Strategy = "singleton"
)

// MatchEdge is one pairwise comparison that connected two records during
// resolution. A and B are record indices with A < B.
type MatchEdge struct {
	A            int `json:"a"`
	B            int `json:"b"`
	NameScore    int `json:"name_score"`
	AddressScore int `json:"address_score,omitempty"`
}

// DuplicateGroup is a set of record indices believed to denote one
// real-world business.
type DuplicateGroup struct {
	// Indices are the member record indices, ascending.
	Indices []int `json:"indices"`

	Strategy Strategy `json:"strategy"`

	// Score is a representative similarity for the group: 100 for phone
	// groups, otherwise the weakest connecting edge's name similarity.
	Score int `json:"score"`

	// Edges are the comparisons that connected the members. Empty for
	// phone-exact and singleton groups.
	Edges []MatchEdge `json:"edges,omitempty"`
}

// Size returns the number of members in the group.
func (g DuplicateGroup) Size() int { return len(g.Indices) }
