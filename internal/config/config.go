package config

import (
	"errors"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/epitrack/spreader-detector/pkg/contagion"
	"github.com/epitrack/spreader-detector/pkg/report"
)

// DefaultFileName is looked up in the working directory when no config
// path is given.
const DefaultFileName = "spreader.toml"

// DefaultOutputFile is where the analysis report is written unless
// overridden by config or flag.
const DefaultOutputFile = "SpreaderDetectorAnalysis.out"

// DefaultRiskAge is the minimum age of the population considered at risk.
// It only feeds roster statistics, never the propagation model.
const DefaultRiskAge = 65.0

type Config struct {
	MinDistance              *float64  `toml:"min_distance"`
	MaxTime                  *float64  `toml:"max_time"`
	Clamp                    *bool     `toml:"clamp"`
	HospitalizationThreshold *float64  `toml:"hospitalization_threshold"`
	QuarantineThreshold      *float64  `toml:"quarantine_threshold"`
	RiskAge                  *float64  `toml:"risk_age"`
	OutputFile               *string   `toml:"output_file"`
	Messages                 *Messages `toml:"messages"`
}

type Messages struct {
	Hospitalization string `toml:"hospitalization"`
	Quarantine      string `toml:"quarantine"`
	NoRisk          string `toml:"no_risk"`
}

func defaultConfig() *Config {
	model := contagion.DefaultModel()
	thresholds := report.DefaultThresholds()
	messages := report.DefaultMessages()
	clamp := false
	riskAge := DefaultRiskAge
	outputFile := DefaultOutputFile
	return &Config{
		MinDistance:              &model.MinDistance,
		MaxTime:                  &model.MaxTime,
		Clamp:                    &clamp,
		HospitalizationThreshold: &thresholds.Hospitalization,
		QuarantineThreshold:      &thresholds.Quarantine,
		RiskAge:                  &riskAge,
		OutputFile:               &outputFile,
		Messages: &Messages{
			Hospitalization: messages.Hospitalization,
			Quarantine:      messages.Quarantine,
			NoRisk:          messages.NoRisk,
		},
	}
}

// ReadConfig loads path, or DefaultFileName in the working directory when
// path is empty. A missing default file yields the defaults with no error;
// a missing explicit path, an unreadable file, or a malformed file yields
// the defaults alongside the error.
func ReadConfig(path string) (*Config, error) {
	config := defaultConfig()

	fileName := path
	if fileName == "" {
		fileName = DefaultFileName
	}
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		if path == "" {
			return config, nil
		}
		return config, err
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return config, err
	}
	err = toml.Unmarshal(file, &config)
	if err != nil {
		return defaultConfig(), err
	}
	if config.Messages == nil {
		config.Messages = defaultConfig().Messages
	}
	return config, nil
}

// Model returns the transmission model the config describes.
func (c *Config) Model() contagion.Model {
	return contagion.Model{
		MinDistance: *c.MinDistance,
		MaxTime:     *c.MaxTime,
		Clamp:       *c.Clamp,
	}
}

// Thresholds returns the classification cutoffs the config describes.
func (c *Config) Thresholds() report.Thresholds {
	return report.Thresholds{
		Hospitalization: *c.HospitalizationThreshold,
		Quarantine:      *c.QuarantineThreshold,
	}
}

// ReportMessages returns the output templates the config describes.
func (c *Config) ReportMessages() report.Messages {
	return report.Messages{
		Hospitalization: c.Messages.Hospitalization,
		Quarantine:      c.Messages.Quarantine,
		NoRisk:          c.Messages.NoRisk,
	}
}
