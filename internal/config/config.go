package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/openparl/epscore/internal/ep"
	"github.com/openparl/epscore/internal/scoring"
)

// Config is the top-level epscore configuration.
type Config struct {
	DataDir string       `mapstructure:"data_dir"`
	Terms   []TermConfig `mapstructure:"terms"`
	Weights Weights      `mapstructure:"weights"`
	Output  Output       `mapstructure:"output"`
}

// Weights mirrors the axis weights in configuration. They are handed to
// the scoring engine exactly as configured, without renormalization.
type Weights struct {
	LegislativeProduction float64 `mapstructure:"legislative_production"`
	ControlTransparency   float64 `mapstructure:"control_transparency"`
	EngagementPresence    float64 `mapstructure:"engagement_presence"`
	InstitutionalRoles    float64 `mapstructure:"institutional_roles"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file
// is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("terms", DefaultTerms)
	v.SetDefault("weights.legislative_production", DefaultWeights.LegislativeProduction)
	v.SetDefault("weights.control_transparency", DefaultWeights.ControlTransparency)
	v.SetDefault("weights.engagement_presence", DefaultWeights.EngagementPresence)
	v.SetDefault("weights.institutional_roles", DefaultWeights.InstitutionalRoles)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	return &cfg, nil
}

// TermSet builds the term classifier from the configured windows. Windows
// with an unparseable start date are dropped.
func (c *Config) TermSet() ep.TermSet {
	var windows []ep.TermWindow
	for _, tc := range c.Terms {
		start := ep.ParseTimestamp(tc.Start)
		if start.IsZero() {
			continue
		}
		w := ep.TermWindow{Term: ep.Term(tc.Term), Start: start}
		if tc.End != "" {
			w.End = ep.ParseTimestamp(tc.End)
		}
		windows = append(windows, w)
	}
	if len(windows) == 0 {
		return ep.DefaultTermSet()
	}
	return ep.NewTermSet(windows)
}

// ScoringConfig builds the engine configuration: published defaults with
// the configured axis weights applied on top.
func (c *Config) ScoringConfig() scoring.Config {
	sc := scoring.DefaultConfig()
	sc.Weights = scoring.AxisWeights{
		LegislativeProduction: c.Weights.LegislativeProduction,
		ControlTransparency:   c.Weights.ControlTransparency,
		EngagementPresence:    c.Weights.EngagementPresence,
		InstitutionalRoles:    c.Weights.InstitutionalRoles,
	}
	return sc
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
