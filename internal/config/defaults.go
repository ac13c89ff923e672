// Package config provides configuration loading and defaults for epscore.
package config

// DefaultDataDir is the default location of the downloaded dump files.
const DefaultDataDir = "~/.local/share/epscore/data"

// DefaultConfigDir is the default location for epscore configuration.
const DefaultConfigDir = "~/.config/epscore"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "epscore.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// TermConfig defines one term window in configuration. An empty End marks
// the open term.
type TermConfig struct {
	Term  int    `mapstructure:"term"`
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// DefaultTerms are the scored term windows.
var DefaultTerms = []TermConfig{
	{Term: 8, Start: "2014-07-01", End: "2019-07-02"},
	{Term: 9, Start: "2019-07-02", End: "2024-07-16"},
	{Term: 10, Start: "2024-07-16"},
}

// DefaultWeights holds the published axis weights.
var DefaultWeights = Weights{
	LegislativeProduction: 0.40,
	ControlTransparency:   0.15,
	EngagementPresence:    0.25,
	InstitutionalRoles:    0.20,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 100,
}
