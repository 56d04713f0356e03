package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 85, cfg.Dedupe.NameThreshold)
	assert.Equal(t, 80, cfg.Dedupe.AddressThreshold)
	assert.Equal(t, 0, cfg.Dedupe.Workers)
	assert.Equal(t, "IN", cfg.Normalize.DefaultCountry)
	assert.Equal(t, "Thiruvananthapuram", cfg.Normalize.CityAliases["trivandrum"])
	assert.Contains(t, cfg.Normalize.TrackingParams, "utm_*")
	assert.Contains(t, cfg.Analyze.Tier1Cities, "Kochi")
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LEADGEN_DEDUPE_NAME_THRESHOLD", "92")
	t.Setenv("LEADGEN_NORMALIZE_DEFAULT_COUNTRY", "US")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 92, cfg.Dedupe.NameThreshold)
	assert.Equal(t, "US", cfg.Normalize.DefaultCountry)
}

func TestPipelineOptions(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	opts := cfg.PipelineOptions()
	assert.Equal(t, 85, opts.NameThreshold)
	assert.Equal(t, 80, opts.AddressThreshold)
	assert.Equal(t, "IN", opts.Normalize.DefaultCountry)
	assert.NoError(t, opts.Validate())
}

func TestInitLogger_BadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "chatty", Format: "console"})
	assert.Error(t, err)
}
