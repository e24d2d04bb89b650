package brain

import (
	"math"
	"time"
)

// WeightTolerance is the accepted distance between a transition vector sum and 1
const WeightTolerance = 1e-6

// Definition is the immutable configuration of one behavior
type Definition struct {
	ID          StateID
	Transitions map[StateID]float64 // Probability of each next state, one entry per catalog state

	MinDuration time.Duration // Inclusive bounds of how long the state lasts
	MaxDuration time.Duration

	Speed             float64       // Horizontal cells per second, 0 when stationary
	AnimationInterval time.Duration // Time between two animation frames
}

// Validate checks the definition against a catalog
func (d Definition) Validate(c Catalog) error {
	if !c.Contains(d.ID) {
		return stateError(d.ID, "state is not part of the catalog")
	}

	if len(d.Transitions) != c.Len() {
		return stateError(d.ID, "%d transition weights for %d states", len(d.Transitions), c.Len())
	}

	var sum float64
	for id, w := range d.Transitions {
		if !c.Contains(id) {
			return stateError(d.ID, "transition to %s which is not part of the catalog", id.Key())
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return stateError(d.ID, "invalid weight %v for transition to %s", w, id.Key())
		}
		sum += w
	}
	if math.Abs(sum-1) > WeightTolerance {
		return stateError(d.ID, "transition weights sum to %v instead of 1", sum)
	}

	if d.MinDuration <= 0 {
		return stateError(d.ID, "minimum duration must be positive, got %v", d.MinDuration)
	}
	if d.MaxDuration < d.MinDuration {
		return stateError(d.ID, "duration range [%v, %v] is inverted", d.MinDuration, d.MaxDuration)
	}
	if d.Speed < 0 || math.IsNaN(d.Speed) || math.IsInf(d.Speed, 0) {
		return stateError(d.ID, "invalid speed %v", d.Speed)
	}
	if d.AnimationInterval <= 0 {
		return stateError(d.ID, "animation interval must be positive, got %v", d.AnimationInterval)
	}

	return nil
}

// weights returns the transition vector in canonical catalog order
func (d Definition) weights(c Catalog) []float64 {
	w := make([]float64, c.Len())
	for i, id := range c.ids {
		w[i] = d.Transitions[id]
	}
	return w
}

// clone copies the transition map so callers cannot mutate a registered definition
func (d Definition) clone() Definition {
	t := make(map[StateID]float64, len(d.Transitions))
	for id, w := range d.Transitions {
		t[id] = w
	}
	d.Transitions = t
	return d
}

// OneHot returns a transition vector sending every draw to target
func OneHot(c Catalog, target StateID) map[StateID]float64 {
	t := make(map[StateID]float64, c.Len())
	for _, id := range c.ids {
		t[id] = 0
	}
	t[target] = 1
	return t
}

// Uniform returns a transition vector with equal weight on every catalog state
func Uniform(c Catalog) map[StateID]float64 {
	t := make(map[StateID]float64, c.Len())
	if c.Len() == 0 {
		return t
	}
	w := 1 / float64(c.Len())
	for _, id := range c.ids {
		t[id] = w
	}
	return t
}
