// Package config loads HCL configuration for the engine and tournament
// binaries (SPEC_FULL.md §4A), grounded on the teacher's
// internal/server/config.go and internal/client/config.go (hclparse +
// gohcl.DecodeBody, a DefaultX() constructor, and a Load that falls back
// to defaults when the file is absent).
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// EngineConfig is the battle engine's own tunable parameters (§4.8
// "maxTurns (engine parameter)", §6 "full-information configuration
// flag").
type EngineConfig struct {
	Format       FormatConfig `hcl:"format,block"`
	LogLevel     string       `hcl:"log_level,optional"`
}

// FormatConfig mirrors battle.Format's fields for HCL decoding; callers
// convert it with ToBattleFormat rather than this package importing
// internal/battle (config stays a leaf dependency, matching the teacher's
// own config packages never importing internal/game).
type FormatConfig struct {
	Slots           int  `hcl:"slots,optional"`
	TeamSize        int  `hcl:"team_size,optional"`
	MaxTurns        int  `hcl:"max_turns,optional"`
	FullInformation bool `hcl:"full_information,optional"`
	TeamPreview     bool `hcl:"team_preview,optional"`
}

// TournamentConfig configures a Swiss tournament run and its optional
// wire server.
type TournamentConfig struct {
	Rounds         int          `hcl:"rounds,optional"`
	Regulation     string       `hcl:"regulation,optional"`
	Server         ServerConfig `hcl:"server,block"`
	MaxConcurrency int          `hcl:"max_concurrency,optional"`
}

// ServerConfig is the tournament wire server's listen address and log
// level, named the same as the teacher's own server.ServerSettings.
type ServerConfig struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// ToBattleFormat converts a decoded FormatConfig into the battle.Format
// fields by name only, without importing internal/battle; cmd/* callers
// that do import internal/battle perform the actual struct literal
// conversion so this package stays a leaf dependency.
func (f FormatConfig) ToBattleFormat() (slots, teamSize, maxTurns int, fullInformation, teamPreview bool) {
	return f.Slots, f.TeamSize, f.MaxTurns, f.FullInformation, f.TeamPreview
}

// DefaultEngineConfig returns the zero-configuration defaults: singles,
// a six-Pokémon team, the spec's DefaultMaxTurns equivalent, and no
// full-information leak.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Format: FormatConfig{
			Slots:    1,
			TeamSize: 6,
			MaxTurns: 1000,
		},
		LogLevel: "info",
	}
}

// DefaultTournamentConfig returns a single-round, unbounded-concurrency
// tournament with the wire server disabled by default (port 0).
func DefaultTournamentConfig() *TournamentConfig {
	return &TournamentConfig{
		Rounds:     1,
		Regulation: "standard-doubles",
		Server: ServerConfig{
			Address:  "localhost",
			Port:     0,
			LogLevel: "info",
		},
	}
}

// LoadEngineConfig loads from an HCL file, returning defaults unchanged
// when the file does not exist (matching the teacher's
// LoadServerConfig/LoadClientConfig fallback behavior).
func LoadEngineConfig(path string) (*EngineConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultEngineConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", path, diags.Error())
	}

	cfg := DefaultEngineConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", path, diags.Error())
	}
	if cfg.Format.Slots == 0 {
		cfg.Format.Slots = 1
	}
	if cfg.Format.TeamSize == 0 {
		cfg.Format.TeamSize = 6
	}
	if cfg.Format.MaxTurns == 0 {
		cfg.Format.MaxTurns = 1000
	}
	return cfg, nil
}

// LoadTournamentConfig loads a tournament/server HCL file, returning
// defaults unchanged when the file does not exist.
func LoadTournamentConfig(path string) (*TournamentConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultTournamentConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", path, diags.Error())
	}

	cfg := DefaultTournamentConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", path, diags.Error())
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = 1
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = "localhost"
	}
	return cfg, nil
}
