package normalize

import "strings"

// acronyms is the fixed allow-list of words kept verbatim instead of being
// title-cased. Matching is case-insensitive; the stored form wins.
var acronyms = map[string]string{
	"DJ":  "DJ",
	"LED": "LED",
	"HD":  "HD",
	"3D":  "3D",
	"VIP": "VIP",
	"AC":  "AC",
	"LLP": "LLP",
	"PVT": "PVT",
	"LTD": "LTD",
	"ISO": "ISO",
}

// normalizeName collapses whitespace and title-cases each word, preserving
// allow-listed acronyms.
func (n *Normalizer) normalizeName(raw string) string {
	s := strings.TrimSpace(multiSpaceRe.ReplaceAllString(raw, " "))
	if s == "" {
		return ""
	}

	words := strings.Split(s, " ")
	for i, word := range words {
		if canonical, ok := acronyms[strings.ToUpper(word)]; ok {
			words[i] = canonical
			continue
		}
		words[i] = n.caser.String(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}
