package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aswinr92/lead-generator/internal/model"
)

func rec(name, address, phone string) model.NormalizedRecord {
	return model.NormalizedRecord{Name: name, Address: address, Phone: phone}
}

func TestScore_SelfSimilarity(t *testing.T) {
	r := rec("Royal Events", "Kalippankulam Road, Manacaud", "+919995062979")

	for _, dim := range []Dimension{Name, Address, Identifier} {
		assert.Equal(t, 100, Score(r, r, dim), "dimension %s", dim)
	}
}

func TestScore_Symmetry(t *testing.T) {
	pairs := [][2]model.NormalizedRecord{
		{rec("Shamy Caterers", "Kalippankulam Rd, Manacaud", ""), rec("Shamy Catering", "Kalippankulam Road, Manacaud, Thiruvananthapuram", "")},
		{rec("Royal Events", "MG Road, Kochi", "+919995062979"), rec("Grand Palace", "Panampilly Nagar, Kochi", "")},
		{rec("", "", ""), rec("Anything", "Anywhere", "+911234567890")},
	}

	for _, p := range pairs {
		for _, dim := range []Dimension{Name, Address, Identifier} {
			assert.Equal(t, Score(p[0], p[1], dim), Score(p[1], p[0], dim), "dimension %s", dim)
		}
	}
}

func TestScore_Bounds(t *testing.T) {
	records := []model.NormalizedRecord{
		rec("Shamy Caterers", "Kalippankulam Rd, Manacaud", ""),
		rec("Shamy Catering", "Kalippankulam Road, Manacaud, Thiruvananthapuram", "+919995062979"),
		rec("Completely Different Name", "Elsewhere Entirely", "+911112223334"),
		rec("", "", ""),
	}

	for _, a := range records {
		for _, b := range records {
			for _, dim := range []Dimension{Name, Address, Identifier} {
				s := Score(a, b, dim)
				assert.GreaterOrEqual(t, s, 0)
				assert.LessOrEqual(t, s, 100)
			}
		}
	}
}

func TestScore_EmptyFieldsScoreZero(t *testing.T) {
	empty := rec("", "", "")
	full := rec("Royal Events", "MG Road, Kochi", "+919995062979")

	for _, dim := range []Dimension{Name, Address, Identifier} {
		assert.Equal(t, 0, Score(empty, full, dim), "dimension %s", dim)
		assert.Equal(t, 0, Score(empty, empty, dim), "dimension %s", dim)
	}
}

func TestTokenSortRatio_OrderIndependent(t *testing.T) {
	assert.Equal(t, 100, TokenSortRatio("Royal Events", "Events Royal"))
	assert.Equal(t, 100, TokenSortRatio("shamy caterers", "Caterers SHAMY"))
}

func TestTokenSortRatio_NearMatch(t *testing.T) {
	// "Shamy Caterers" vs "Shamy Catering" must clear the default name
	// threshold (85) but stay below a strict 95.
	score := TokenSortRatio("Shamy Caterers", "Shamy Catering")
	assert.GreaterOrEqual(t, score, 85)
	assert.Less(t, score, 95)
}

func TestTokenSortRatio_Unrelated(t *testing.T) {
	score := TokenSortRatio("Shamy Caterers", "Grand Palace Auditorium")
	assert.Less(t, score, 50)
}

func TestPartialRatio_SubstringAlignment(t *testing.T) {
	// The shorter address matches a window of the longer one; the extra
	// locality suffix must not drag the score below the default address
	// threshold (80).
	score := PartialRatio(
		"Kalippankulam Rd, Manacaud",
		"Kalippankulam Road, Manacaud, Thiruvananthapuram",
	)
	assert.GreaterOrEqual(t, score, 80)
}

func TestPartialRatio_Unrelated(t *testing.T) {
	score := PartialRatio("MG Road, Kochi", "Panampilly Nagar, Kochi")
	assert.Less(t, score, 80)
}

func TestScore_IdentifierExactOnly(t *testing.T) {
	a := rec("A", "", "+919995062979")
	b := rec("B", "", "+919995062979")
	c := rec("C", "", "+919995062978") // one digit off

	assert.Equal(t, 100, Score(a, b, Identifier))
	assert.Equal(t, 0, Score(a, c, Identifier))
}

func TestScore_UnknownDimension(t *testing.T) {
	a := rec("A", "B", "+911234567890")
	assert.Equal(t, 0, Score(a, a, Dimension("bogus")))
}
