// Package similarity computes bounded [0,100] closeness scores between
// normalized records.
package similarity

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/aswinr92/lead-generator/internal/model"
)

// Dimension selects which record fields a comparison reads.
type Dimension string

const (
	// Name compares business names, insensitive to word order.
	Name Dimension = "name"
	// Address compares addresses by best-aligned substring, so a short
	// address can match inside a longer, more detailed one.
	Address Dimension = "address"
	// Identifier compares normalized phones exactly. Phone is a hard key:
	// 100 when both are non-empty and equal, otherwise 0.
	Identifier Dimension = "identifier"
)

// params are the stock Levenshtein parameters: unit edit costs with a
// Winkler-style bonus for a shared prefix.
var params = levenshtein.NewParams()

// Score compares a and b along dim. It is symmetric, returns 100 for a
// record compared with itself on any non-empty field, and 0 when either
// side's field is empty.
func Score(a, b model.NormalizedRecord, dim Dimension) int {
	switch dim {
	case Name:
		return TokenSortRatio(a.Name, b.Name)
	case Address:
		return PartialRatio(a.Address, b.Address)
	case Identifier:
		if a.Phone != "" && a.Phone == b.Phone {
			return 100
		}
		return 0
	default:
		return 0
	}
}

// TokenSortRatio compares two strings ignoring word order: tokens are
// lowercased, sorted, rejoined, and scored by normalized edit distance.
func TokenSortRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return ratio(tokenSort(a), tokenSort(b))
}

// PartialRatio slides the shorter string across the longer one and returns
// the best window score, so "Main Rd, Kochi" matches inside
// "12 Main Rd, Kochi, Kerala 682001".
func PartialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	short := []rune(strings.ToLower(a))
	long := []rune(strings.ToLower(b))
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == len(long) {
		return ratio(string(short), string(long))
	}

	best := 0
	for k := 0; k+len(short) <= len(long); k++ {
		if r := ratio(string(short), string(long[k:k+len(short)])); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// ratio is the normalized edit-distance similarity, prefix-adjusted,
// scaled to an integer in [0,100].
func ratio(a, b string) int {
	return int(math.Round(levenshtein.Match(a, b, params) * 100))
}

func tokenSort(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
