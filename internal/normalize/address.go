package normalize

import (
	"regexp"
	"strings"
)

var pincodeRe = regexp.MustCompile(`\b\d{6}\b`)

// normalizeAddress collapses whitespace, rewrites known city aliases to
// their canonical names, and extracts the city and 6-digit pincode as side
// fields. City extraction runs after the rewrite, so both an alias
// ("tvm") and an already-canonical name match.
func (n *Normalizer) normalizeAddress(raw string) (addr, city, pincode string) {
	addr = strings.TrimSpace(multiSpaceRe.ReplaceAllString(raw, " "))
	if addr == "" {
		return "", "", ""
	}

	for _, alias := range n.aliases {
		addr = alias.re.ReplaceAllString(addr, alias.canonical)
	}

	city = n.extractCity(addr)
	pincode = pincodeRe.FindString(addr)
	return addr, city, pincode
}

// extractCity returns the canonical city whose name appears earliest in the
// address, or "" when none matches.
func (n *Normalizer) extractCity(addr string) string {
	lower := strings.ToLower(addr)

	best := ""
	bestIdx := len(lower) + 1
	for _, canonical := range n.cities {
		idx := indexWord(lower, strings.ToLower(canonical))
		if idx >= 0 && idx < bestIdx {
			best = canonical
			bestIdx = idx
		}
	}
	return best
}

// indexWord returns the byte offset of needle in text as a whole word
// (bounded by non-alphanumeric characters or string boundaries), or -1.
func indexWord(text, needle string) int {
	if needle == "" || text == "" {
		return -1
	}
	start := 0
	for {
		idx := strings.Index(text[start:], needle)
		if idx < 0 {
			return -1
		}
		absIdx := start + idx
		endIdx := absIdx + len(needle)

		leftOK := absIdx == 0 || !isAlphaNum(text[absIdx-1])
		rightOK := endIdx == len(text) || !isAlphaNum(text[endIdx])

		if leftOK && rightOK {
			return absIdx
		}
		start = absIdx + 1
	}
}

func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
