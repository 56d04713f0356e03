package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aswinr92/lead-generator/internal/model"
)

func TestQuality_FullRecord(t *testing.T) {
	rec := model.NormalizedRecord{
		Name:         "Royal Events",
		Phone:        "+919995062979",
		Address:      "Kalippankulam Road, Manacaud, Thiruvananthapuram",
		Website:      "https://royalevents.in",
		Rating:       4.6,
		ReviewsCount: 120,
		Category:     "Event Planner",
	}

	// 20 + 25 + 15 + 10 + 15 + 10 + 5 = 100
	assert.Equal(t, 100, Quality(rec))
}

func TestQuality_EmptyRecord(t *testing.T) {
	assert.Equal(t, 0, Quality(model.NormalizedRecord{}))
}

func TestQuality_InvalidPhoneContributesNothing(t *testing.T) {
	// A degenerate raw phone normalizes to "", so the phone weight (25)
	// must not be earned.
	withPhone := model.NormalizedRecord{Name: "Royal Events", Phone: "+919995062979"}
	withoutPhone := model.NormalizedRecord{Name: "Royal Events", Phone: ""}

	assert.Equal(t, 45, Quality(withPhone))
	assert.Equal(t, 20, Quality(withoutPhone))
}

func TestQuality_PartialRecords(t *testing.T) {
	tests := []struct {
		name string
		rec  model.NormalizedRecord
		want int
	}{
		{
			"name only",
			model.NormalizedRecord{Name: "Shamy Caterers"},
			20,
		},
		{
			"short address earns nothing",
			model.NormalizedRecord{Address: "Kochi"},
			0,
		},
		{
			"address over ten chars",
			model.NormalizedRecord{Address: "MG Road, Kochi"},
			15,
		},
		{
			"unqualified website earns nothing",
			model.NormalizedRecord{Website: "royalevents.in"},
			0,
		},
		{
			"rating and reviews",
			model.NormalizedRecord{Rating: 4.0, ReviewsCount: 3},
			25,
		},
		{
			"category only",
			model.NormalizedRecord{Category: "Caterer"},
			5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quality(tt.rec))
		})
	}
}

func TestQuality_Bounds(t *testing.T) {
	recs := []model.NormalizedRecord{
		{},
		{Name: "A"},
		{Name: "A", Phone: "+911234567890", Address: "Somewhere long enough", Website: "https://a.in", Rating: 5, ReviewsCount: 1, Category: "X"},
	}
	for _, rec := range recs {
		score := Quality(rec)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
