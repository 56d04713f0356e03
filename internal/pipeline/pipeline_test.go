package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aswinr92/lead-generator/internal/model"
)

func TestRun_EmptyInput(t *testing.T) {
	_, err := Run(nil, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestRun_InvalidThresholds(t *testing.T) {
	opts := DefaultOptions()
	opts.NameThreshold = 101
	_, err := Run([]model.RawRecord{{Name: "x"}}, nil, opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.AddressThreshold = -1
	_, err = Run([]model.RawRecord{{Name: "x"}}, nil, opts)
	assert.Error(t, err)
}

func TestRun_PhoneDuplicates(t *testing.T) {
	// Two captures of the same business with differently formatted
	// numbers collapse through the shared E.164 phone.
	raw := []model.RawRecord{
		{
			Name:         "royal events",
			Phone:        "099950 62979",
			Address:      "mg road, cochin",
			Rating:       "4.6",
			ReviewsCount: "120",
		},
		{
			Name:    "ROYAL EVENTS",
			Phone:   "+91 99950 62979",
			Website: "https://royalevents.in/?utm_source=gmb",
		},
	}

	result, err := Run(raw, nil, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Canonical, 1)
	c := result.Canonical[0]
	assert.Equal(t, "Royal Events", c.Name)
	assert.Equal(t, "+919995062979", c.Phone)
	assert.Equal(t, "Kochi", c.City)
	assert.Equal(t, "https://royalevents.in/", c.Website)
	assert.Equal(t, 2, c.SourceCount)

	require.Len(t, result.Audit, 1)
	assert.Equal(t, model.StrategyPhone, result.Audit[0].Strategy)

	assert.Equal(t, 2, result.Stats.InputCount)
	assert.Equal(t, 0, result.Stats.PriorCount)
	assert.Equal(t, 1, result.Stats.DuplicatesRemoved)
	assert.Equal(t, 1, result.Stats.FinalCount)
	assert.NotEmpty(t, result.Stats.RunID)
}

func TestRun_FuzzyNameAddress(t *testing.T) {
	raw := []model.RawRecord{
		{Name: "Shamy Caterers", Address: "Kalippankulam Road, Manacaud, Trivandrum"},
		{Name: "Shamy Catering", Address: "Kalippankulam Road, Manacaud, Thiruvananthapuram, Kerala"},
		{Name: "Grand Palace Auditorium", Address: "NH Bypass, Kochi"},
	}

	result, err := Run(raw, nil, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Canonical, 2)
	assert.Equal(t, "Shamy Caterers", result.Canonical[0].Name)
	assert.Equal(t, 2, result.Canonical[0].SourceCount)
	assert.Equal(t, "Grand Palace Auditorium", result.Canonical[1].Name)
}

func TestRun_TightThresholdKeepsBoth(t *testing.T) {
	raw := []model.RawRecord{
		{Name: "Shamy Caterers", Address: "Kalippankulam Road, Manacaud"},
		{Name: "Shamy Catering", Address: "Kalippankulam Road, Manacaud"},
	}

	opts := DefaultOptions()
	opts.NameThreshold = 95

	result, err := Run(raw, nil, opts)
	require.NoError(t, err)
	assert.Len(t, result.Canonical, 2)
}

func TestRun_PriorSetDedup(t *testing.T) {
	// A record already in the prior canonical set absorbs a re-scraped
	// duplicate; the prior record anchors the group.
	prior := []model.RawRecord{
		{Name: "Royal Events", Phone: "+919995062979", Address: "MG Road, Kochi", Rating: "4.6", ReviewsCount: "120"},
	}
	raw := []model.RawRecord{
		{Name: "Royal Events Co", Phone: "9995062979"},
		{Name: "Dream Decorators", Phone: "9847012345"},
	}

	result, err := Run(raw, prior, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Canonical, 2)
	assert.Equal(t, "Royal Events", result.Canonical[0].Name)
	assert.Equal(t, 2, result.Canonical[0].SourceCount)
	assert.Equal(t, "Dream Decorators", result.Canonical[1].Name)

	assert.Equal(t, 2, result.Stats.InputCount)
	assert.Equal(t, 1, result.Stats.PriorCount)
	assert.Equal(t, 3, result.Stats.NormalizedCount)
}

func TestRun_IdempotentReprocess(t *testing.T) {
	// Feeding a run's output back as the prior set with no new records
	// must reproduce it unchanged.
	raw := []model.RawRecord{
		{Name: "royal events", Phone: "099950 62979", Address: "mg road, cochin 682016", Rating: "4.6", ReviewsCount: "120"},
		{Name: "ROYAL EVENTS", Phone: "9995062979"},
		{Name: "Dream Decorators", Address: "Panampilly Nagar, Kochi"},
	}

	first, err := Run(raw, nil, DefaultOptions())
	require.NoError(t, err)

	prior := make([]model.RawRecord, 0, len(first.Canonical))
	for _, c := range first.Canonical {
		prior = append(prior, RawFromCanonical(c))
	}

	second, err := Run(nil, prior, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, second.Canonical, len(first.Canonical))
	for i, c := range second.Canonical {
		assert.Equal(t, first.Canonical[i].Name, c.Name)
		assert.Equal(t, first.Canonical[i].Phone, c.Phone)
		assert.Equal(t, first.Canonical[i].Address, c.Address)
		assert.Equal(t, first.Canonical[i].Website, c.Website)
		assert.Equal(t, first.Canonical[i].Rating, c.Rating)
		assert.Equal(t, first.Canonical[i].ReviewsCount, c.ReviewsCount)
	}
	assert.Equal(t, 0, second.Stats.DuplicatesRemoved)
}

func TestRawFromCanonical_RoundTrip(t *testing.T) {
	c := model.CanonicalRecord{
		NormalizedRecord: model.NormalizedRecord{
			Name:         "Royal Events",
			Phone:        "+919995062979",
			Address:      "MG Road, Kochi",
			Rating:       4.6,
			ReviewsCount: 120,
		},
	}

	raw := RawFromCanonical(c)
	assert.Equal(t, "4.6", raw.Rating)
	assert.Equal(t, "120", raw.ReviewsCount)
	assert.Equal(t, "+919995062979", raw.Phone)

	zero := RawFromCanonical(model.CanonicalRecord{})
	assert.Empty(t, zero.Rating)
	assert.Empty(t, zero.ReviewsCount)
}
