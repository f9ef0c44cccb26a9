// Package config loads the landmark build settings from YAML and checks them
// against an embedded JSON Schema.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/network"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/peak"
	"github.com/ShadyMccoy/DarkPhoenix-sub000/terrain"
)

// ErrInvalid wraps every schema violation.
var ErrInvalid = errors.New("config: invalid")

//go:embed schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// Config is the full set of build settings.
type Config struct {
	ChunkSize int    `yaml:"chunk_size" json:"chunk_size"`
	Obstacle  string `yaml:"obstacle" json:"obstacle"`

	// MaxChunks is the distance-transform chunk budget; 0 means the
	// starting chunks only.
	MaxChunks int `yaml:"max_chunks" json:"max_chunks"`

	ExclusionMultiplier float64 `yaml:"exclusion_multiplier" json:"exclusion_multiplier"`
	MinHeight           int     `yaml:"min_height" json:"min_height"`
	MaxPeaks            int     `yaml:"max_peaks" json:"max_peaks"`
	MaxExclusionRadius  int     `yaml:"max_exclusion_radius" json:"max_exclusion_radius"`

	MaxSearchDistance int `yaml:"max_search_distance" json:"max_search_distance"`
	OperationBudget   int `yaml:"operation_budget" json:"operation_budget"`

	TerritoryMaxChunks int      `yaml:"territory_max_chunks" json:"territory_max_chunks"`
	ForeignDepth       int      `yaml:"foreign_depth" json:"foreign_depth"`
	Whitelist          []string `yaml:"whitelist" json:"whitelist"`

	World World `yaml:"world" json:"world"`
}

// World drives terrain.Generate.
type World struct {
	Seed           int64    `yaml:"seed" json:"seed"`
	Chunks         []string `yaml:"chunks" json:"chunks"`
	WallThreshold  float64  `yaml:"wall_threshold" json:"wall_threshold"`
	SwampThreshold float64  `yaml:"swamp_threshold" json:"swamp_threshold"`
	Frequency      float64  `yaml:"frequency" json:"frequency"`
	Octaves        int      `yaml:"octaves" json:"octaves"`
	Persistence    float64  `yaml:"persistence" json:"persistence"`
	Border         bool     `yaml:"border" json:"border"`
	ExitWidth      int      `yaml:"exit_width" json:"exit_width"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	g := terrain.DefaultGenOptions()
	return Config{
		ChunkSize:           chunk.DefaultSize,
		Obstacle:            terrain.Wall.String(),
		ExclusionMultiplier: peak.DefaultExclusionMultiplier,
		MinHeight:           peak.DefaultMinHeight,
		MaxExclusionRadius:  peak.DefaultMaxExclusionRadius,
		MaxSearchDistance:   network.DefaultMaxDistance,
		OperationBudget:     500,
		World: World{
			Seed:           g.Seed,
			Chunks:         []string{"E0N0", "E1N0"},
			WallThreshold:  g.WallThreshold,
			SwampThreshold: g.SwampThreshold,
			Frequency:      g.Frequency,
			Octaves:        g.Octaves,
			Persistence:    g.Persistence,
			Border:         g.Border,
			ExitWidth:      g.ExitWidth,
		},
	}
}

// Load reads and validates a YAML file. Keys absent from the file keep
// their Default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(raw []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("config yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks c against the embedded schema.
func (c Config) Validate() error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Topology returns the chunk geometry.
func (c Config) Topology() chunk.Topology {
	return chunk.Topology{Size: c.ChunkSize}
}

// ObstacleTerrain returns the obstacle class; Validate guarantees it parses.
func (c Config) ObstacleTerrain() terrain.Terrain {
	t, err := terrain.Parse(c.Obstacle)
	if err != nil {
		return terrain.Wall
	}
	return t
}

// Names converts ids to chunk names.
func Names(ids []string) []chunk.Name {
	out := make([]chunk.Name, len(ids))
	for i, id := range ids {
		out[i] = chunk.Name(id)
	}
	return out
}

// GenOptions maps World onto terrain.GenOptions.
func (w World) GenOptions() terrain.GenOptions {
	return terrain.GenOptions{
		Seed:           w.Seed,
		WallThreshold:  w.WallThreshold,
		SwampThreshold: w.SwampThreshold,
		Frequency:      w.Frequency,
		Octaves:        w.Octaves,
		Persistence:    w.Persistence,
		Border:         w.Border,
		ExitWidth:      w.ExitWidth,
	}
}
