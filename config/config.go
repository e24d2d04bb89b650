package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/doggo/asset"
	"github.com/lixenwraith/doggo/constants"
)

// DefaultConfigPath is looked up in the working directory when no path is given
const DefaultConfigPath = "doggo.yaml"

// Config is the whole application configuration
type Config struct {
	World  World            `yaml:"world"`
	Sprite Sprite           `yaml:"sprite"`
	Audio  Audio            `yaml:"audio"`
	States map[string]State `yaml:"states"`

	// Source names where the configuration came from, for logs
	Source string `yaml:"-"`
}

// World describes the strip the dog lives in
type World struct {
	Width        int    `yaml:"width"` // 0 follows the terminal
	Height       int    `yaml:"height"`
	GroundHeight int    `yaml:"ground_height"`
	FPS          int    `yaml:"fps"`
	Biome        string `yaml:"biome"` // Empty picks one at random
}

// Sprite describes the sprite sheet and where each animation lives in it
type Sprite struct {
	Sheet   string            `yaml:"sheet"` // PNG path, empty for the built-in text sheet
	Columns int               `yaml:"columns"`
	Rows    int               `yaml:"rows"`
	Facing  string            `yaml:"facing"`
	Fur     string            `yaml:"fur"` // Empty picks one at random
	States  map[string]Frames `yaml:"states"`
}

// Frames locates one animation in the sheet
type Frames struct {
	Frames int `yaml:"frames"`
	Row    int `yaml:"row"`
}

// Audio holds the sound settings
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// State is the behavior of one state
// Speed and AnimationInterval fall back to the defaults when omitted
type State struct {
	Duration          []float64          `yaml:"duration"` // [min, max] seconds
	Speed             *float64           `yaml:"speed"`
	AnimationInterval *float64           `yaml:"animation_interval"`
	Transitions       map[string]float64 `yaml:"transitions"`
}

// Default returns the built-in configuration
func Default() *Config {
	c, err := decode([]byte(asset.DefaultConfig), nil)
	if err != nil {
		panic(fmt.Sprintf("config: built-in configuration is invalid: %v", err))
	}
	c.Source = "embedded"
	return c
}

// Parse decodes YAML on top of the built-in configuration
// Sections and keys left out keep their defaults, a states section replaces the built-in table whole
func Parse(data []byte) (*Config, error) {
	c, err := decode(data, Default())
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the configuration with priority: path > DefaultConfigPath > embedded
func Load(path string) (*Config, error) {
	// Priority 1: Custom path from CLI
	if path != "" {
		return loadFile(path)
	}

	// Priority 2: Default external config
	if fileExists(DefaultConfigPath) {
		return loadFile(DefaultConfigPath)
	}

	// Priority 3: Embedded fallback
	log.Printf("no %s found, using the built-in configuration", DefaultConfigPath)
	c := Default()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	c.Source = path
	log.Printf("configuration loaded from %s", path)
	return c, nil
}

// decode unmarshals data over base, unknown keys are rejected
func decode(data []byte, base *Config) (*Config, error) {
	c := &Config{}
	var states map[string]State
	if base != nil {
		*c = *base
		states = base.States
		c.States = nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(c.States) == 0 {
		c.States = states
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.World.Height == 0 {
		c.World.Height = constants.DefaultWorldHeight
	}
	if c.World.FPS == 0 {
		c.World.FPS = constants.DefaultFPS
	}
	if c.Sprite.Facing == "" {
		c.Sprite.Facing = "left"
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
