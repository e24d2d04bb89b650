package config

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/constants"
	"github.com/lixenwraith/doggo/dog"
	"github.com/lixenwraith/doggo/landscape"
)

// Validate checks every section
// Behavior problems are reported as *brain.ConfigError
func (c *Config) Validate() error {
	w := c.World
	if w.Width != 0 && w.Width < constants.MinWorldWidth {
		return fmt.Errorf("world: width %d is below the minimum of %d", w.Width, constants.MinWorldWidth)
	}
	if w.Height <= 0 {
		return fmt.Errorf("world: height must be positive, got %d", w.Height)
	}
	if w.GroundHeight < 0 || w.GroundHeight >= w.Height {
		return fmt.Errorf("world: ground_height %d must be in [0, %d)", w.GroundHeight, w.Height)
	}
	if w.FPS < 0 || w.FPS > constants.MaxFPS {
		return fmt.Errorf("world: fps %d must be in [0, %d]", w.FPS, constants.MaxFPS)
	}
	if w.Biome != "" {
		if _, err := landscape.ParseBiome(w.Biome); err != nil {
			return fmt.Errorf("world: %w", err)
		}
	}

	s := c.Sprite
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("sprite: grid must be positive, got %dx%d", s.Columns, s.Rows)
	}
	if _, err := brain.ParseDirection(s.Facing); err != nil {
		return fmt.Errorf("sprite: %w", err)
	}
	if s.Fur != "" {
		if _, err := dog.ParseFur(s.Fur); err != nil {
			return fmt.Errorf("sprite: %w", err)
		}
	}
	if _, err := c.SpriteConf(); err != nil {
		return err
	}

	if v := c.Audio.Volume; v < 0 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("audio: volume %v must be in [0, 1]", v)
	}

	defs, err := c.Definitions()
	if err != nil {
		return err
	}
	return checkDefinitions(defs)
}

// Definitions converts the states section, sorted in catalog order
func (c *Config) Definitions() ([]brain.Definition, error) {
	defs := make([]brain.Definition, 0, len(c.States))
	seen := make(map[brain.StateID]bool, len(c.States))

	for key, st := range c.States {
		id, err := brain.ParseStateID(key)
		if err != nil {
			return nil, &brain.ConfigError{Reason: err.Error()}
		}
		if seen[id] {
			return nil, &brain.ConfigError{State: id, HasState: true, Reason: "state is configured more than once"}
		}
		seen[id] = true

		d, err := st.definition(id)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}

	slices.SortFunc(defs, func(a, b brain.Definition) int { return int(a.ID) - int(b.ID) })
	return defs, nil
}

func (st State) definition(id brain.StateID) (brain.Definition, error) {
	if len(st.Duration) != 2 {
		return brain.Definition{}, &brain.ConfigError{State: id, HasState: true,
			Reason: fmt.Sprintf("duration must be [min, max] seconds, got %v", st.Duration)}
	}

	transitions := make(map[brain.StateID]float64, len(st.Transitions))
	for key, w := range st.Transitions {
		to, err := brain.ParseStateID(key)
		if err != nil {
			return brain.Definition{}, &brain.ConfigError{State: id, HasState: true, Reason: "transition to " + err.Error()}
		}
		if _, dup := transitions[to]; dup {
			return brain.Definition{}, &brain.ConfigError{State: id, HasState: true,
				Reason: fmt.Sprintf("transition to %s is given more than once", to.Key())}
		}
		transitions[to] = w
	}

	d := brain.Definition{
		ID:                id,
		Transitions:       transitions,
		MinDuration:       seconds(st.Duration[0]),
		MaxDuration:       seconds(st.Duration[1]),
		Speed:             constants.DefaultSpeed,
		AnimationInterval: constants.DefaultAnimationInterval,
	}
	if st.Speed != nil {
		d.Speed = *st.Speed
	}
	if st.AnimationInterval != nil {
		d.AnimationInterval = seconds(*st.AnimationInterval)
	}
	return d, nil
}

// checkDefinitions applies the rules the brain enforces at construction
func checkDefinitions(defs []brain.Definition) error {
	catalog := brain.FullCatalog()
	defined := make(map[brain.StateID]bool, len(defs))
	for _, d := range defs {
		defined[d.ID] = true
	}

	var missing []brain.StateID
	for _, id := range catalog.IDs() {
		if !defined[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &brain.ConfigError{Missing: missing, Reason: "every state must be configured"}
	}

	for _, d := range defs {
		if err := d.Validate(catalog); err != nil {
			return err
		}
	}
	return nil
}

// SpriteConf converts the sprite states section
func (c *Config) SpriteConf() (map[brain.StateID]dog.SpriteConf, error) {
	s := c.Sprite
	out := make(map[brain.StateID]dog.SpriteConf, len(s.States))
	for key, f := range s.States {
		id, err := brain.ParseStateID(key)
		if err != nil {
			return nil, &brain.ConfigError{Reason: "sprite: " + err.Error()}
		}
		if f.Frames <= 0 || f.Frames > s.Columns {
			return nil, &brain.ConfigError{State: id, HasState: true,
				Reason: fmt.Sprintf("sprite frames %d must be in [1, %d]", f.Frames, s.Columns)}
		}
		if f.Row < 0 || f.Row >= s.Rows {
			return nil, &brain.ConfigError{State: id, HasState: true,
				Reason: fmt.Sprintf("sprite row %d must be in [0, %d)", f.Row, s.Rows)}
		}
		out[id] = dog.SpriteConf{Frames: f.Frames, Row: f.Row}
	}
	return out, nil
}

// Facing returns the direction the sheet is drawn in
func (c *Config) Facing() brain.Direction {
	d, err := brain.ParseDirection(c.Sprite.Facing)
	if err != nil {
		return brain.Left
	}
	return d
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
