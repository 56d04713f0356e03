package normalize

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// normalizePhone converts a raw phone string into E.164 form ("+" followed
// by country code and subscriber digits). Degenerate digit sequences and
// numbers that fail the per-country validity check return "".
func (n *Normalizer) normalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	digits := digitsOnly(s)
	if degeneratePhone(digits) {
		return ""
	}

	if num, err := phonenumbers.Parse(s, n.opts.DefaultCountry); err == nil {
		if phonenumbers.IsValidNumber(num) {
			return phonenumbers.Format(num, phonenumbers.E164)
		}
	}

	// Last resort for strings the parser rejects outright: a bare national
	// number, or one already carrying the country calling code.
	cc := strconv.Itoa(phonenumbers.GetCountryCodeForRegion(n.opts.DefaultCountry))
	var candidate string
	switch {
	case len(digits) == 10:
		candidate = "+" + cc + digits
	case len(digits) == 10+len(cc) && strings.HasPrefix(digits, cc):
		candidate = "+" + digits
	default:
		return ""
	}

	num, err := phonenumbers.Parse(candidate, n.opts.DefaultCountry)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// degeneratePhone reports whether a digit string is a junk pattern a scraper
// picks up from placeholder listings: one digit repeated, or the sequential
// 1234567890.
func degeneratePhone(digits string) bool {
	if len(digits) >= 10 && allSameDigit(digits) {
		return true
	}
	return digits == "1234567890"
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return len(digits) > 0
}
