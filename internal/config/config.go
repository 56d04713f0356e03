// Package config loads application configuration and initializes logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aswinr92/lead-generator/internal/normalize"
	"github.com/aswinr92/lead-generator/internal/pipeline"
	"github.com/aswinr92/lead-generator/internal/scorer"
)

// Config holds the full application configuration.
type Config struct {
	Dedupe    DedupeConfig    `yaml:"dedupe" mapstructure:"dedupe"`
	Normalize NormalizeConfig `yaml:"normalize" mapstructure:"normalize"`
	Analyze   AnalyzeConfig   `yaml:"analyze" mapstructure:"analyze"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DedupeConfig holds the matching thresholds.
type DedupeConfig struct {
	NameThreshold    int `yaml:"name_threshold" mapstructure:"name_threshold"`
	AddressThreshold int `yaml:"address_threshold" mapstructure:"address_threshold"`
	Workers          int `yaml:"workers" mapstructure:"workers"`
}

// NormalizeConfig holds the field-normalization tables.
type NormalizeConfig struct {
	DefaultCountry string            `yaml:"default_country" mapstructure:"default_country"`
	CityAliases    map[string]string `yaml:"city_aliases" mapstructure:"city_aliases"`
	TrackingParams []string          `yaml:"tracking_params" mapstructure:"tracking_params"`
	SocialHosts    []string          `yaml:"social_hosts" mapstructure:"social_hosts"`
}

// AnalyzeConfig configures opportunity analysis.
type AnalyzeConfig struct {
	Tier1Cities []string `yaml:"tier1_cities" mapstructure:"tier1_cities"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	defNorm := normalize.DefaultOptions()
	v.SetDefault("dedupe.name_threshold", 85)
	v.SetDefault("dedupe.address_threshold", 80)
	v.SetDefault("dedupe.workers", 0)
	v.SetDefault("normalize.default_country", defNorm.DefaultCountry)
	v.SetDefault("normalize.city_aliases", defNorm.CityAliases)
	v.SetDefault("normalize.tracking_params", defNorm.TrackingParams)
	v.SetDefault("normalize.social_hosts", defNorm.SocialHosts)
	v.SetDefault("analyze.tier1_cities", scorer.DefaultOpportunityOptions().Tier1Cities)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// PipelineOptions maps the configuration to pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		NameThreshold:    c.Dedupe.NameThreshold,
		AddressThreshold: c.Dedupe.AddressThreshold,
		Workers:          c.Dedupe.Workers,
		Normalize: normalize.Options{
			DefaultCountry: c.Normalize.DefaultCountry,
			CityAliases:    c.Normalize.CityAliases,
			TrackingParams: c.Normalize.TrackingParams,
			SocialHosts:    c.Normalize.SocialHosts,
		},
	}
}

// OpportunityOptions maps the configuration to analysis options.
func (c *Config) OpportunityOptions() scorer.OpportunityOptions {
	return scorer.OpportunityOptions{Tier1Cities: c.Analyze.Tier1Cities}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
