// Package config holds the settings of a pipeline run.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jamesainslie/go-latincorpus/pairs"
	"github.com/jamesainslie/go-latincorpus/split"
)

// Config is the complete run configuration.
type Config struct {
	DataDir   string       `yaml:"data_dir" mapstructure:"data_dir"`
	OutputDir string       `yaml:"output_dir" mapstructure:"output_dir"`
	Extension string       `yaml:"extension" mapstructure:"extension"`
	Pairs     PairsConfig  `yaml:"pairs" mapstructure:"pairs"`
	Split     SplitConfig  `yaml:"split" mapstructure:"split"`
	Export    ExportConfig `yaml:"export" mapstructure:"export"`
}

// PairsConfig configures the pair sampler.
type PairsConfig struct {
	Size   int    `yaml:"size" mapstructure:"size"`
	Seed   uint64 `yaml:"seed" mapstructure:"seed"`
	Format string `yaml:"format" mapstructure:"format"`
	// Output is the pair file path; empty means the format's default
	// name inside the output directory.
	Output string `yaml:"output" mapstructure:"output"`
}

// SplitConfig configures the train/test/dev split.
type SplitConfig struct {
	TestSize    float64 `yaml:"test_size" mapstructure:"test_size"`
	DevFraction float64 `yaml:"dev_fraction" mapstructure:"dev_fraction"`
}

// ExportConfig configures optional exports of the loaded corpus.
type ExportConfig struct {
	// Parquet is the path of the table export; empty disables it.
	Parquet string `yaml:"parquet" mapstructure:"parquet"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataDir:   "data",
		OutputDir: "combined_data",
		Extension: ".conllu",
		Pairs: PairsConfig{
			Size:   50000,
			Seed:   pairs.DefaultSeed,
			Format: string(pairs.FormatJSONL),
		},
		Split: SplitConfig{
			TestSize:    split.DefaultTestSize,
			DevFraction: split.DefaultDevFraction,
		},
	}
}

// SetDefaults registers Default() with v so unset keys fall back to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("extension", d.Extension)
	v.SetDefault("pairs.size", d.Pairs.Size)
	v.SetDefault("pairs.seed", d.Pairs.Seed)
	v.SetDefault("pairs.format", d.Pairs.Format)
	v.SetDefault("pairs.output", d.Pairs.Output)
	v.SetDefault("split.test_size", d.Split.TestSize)
	v.SetDefault("split.dev_fraction", d.Split.DevFraction)
	v.SetDefault("export.parquet", d.Export.Parquet)
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PairsPath returns the file the pair sampler writes to.
func (c Config) PairsPath() string {
	if c.Pairs.Output != "" {
		return c.Pairs.Output
	}
	return filepath.Join(c.OutputDir, pairs.Format(c.Pairs.Format).FileName())
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir must be set"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must be set"))
	}
	if c.Pairs.Size < 0 {
		errs = append(errs, fmt.Errorf("pairs.size must not be negative, got %d", c.Pairs.Size))
	}
	switch pairs.Format(c.Pairs.Format) {
	case pairs.FormatJSONL, pairs.FormatDelimited:
	default:
		errs = append(errs, fmt.Errorf("pairs.format must be %q or %q, got %q",
			pairs.FormatJSONL, pairs.FormatDelimited, c.Pairs.Format))
	}
	for name, f := range map[string]float64{
		"split.test_size":    c.Split.TestSize,
		"split.dev_fraction": c.Split.DevFraction,
	} {
		if !(f > 0 && f < 1) {
			errs = append(errs, fmt.Errorf("%s must be between 0 and 1, got %v", name, f))
		}
	}
	return errors.Join(errs...)
}
