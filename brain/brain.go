package brain

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/doggo/engine"
)

// LiveState is the currently active behavior with its countdown and heading
type LiveState struct {
	Definition
	StartedAt time.Time
	Duration  time.Duration
	Direction Direction
}

// Done reports whether the state has used its time budget at now
func (s LiveState) Done(now time.Time) bool {
	return now.Sub(s.StartedAt) >= s.Duration
}

// Remaining returns the time left at now, never negative
func (s LiveState) Remaining(now time.Time) time.Duration {
	r := s.Duration - now.Sub(s.StartedAt)
	if r < 0 {
		return 0
	}
	return r
}

// Brain is the probabilistic state machine driving the dog
// Not safe for concurrent use: the frame loop owns it
type Brain struct {
	catalog     Catalog
	definitions []Definition // Indexed by catalog position
	weights     [][]float64  // Compiled transition vectors, same indexing

	clock Clock
	rng   Random

	current   LiveState
	listeners []func(LiveState)

	name    string
	initial StateID
	random  bool
}

// Option configures a Brain at construction
type Option func(*Brain)

// WithClock injects the time source used for state expiry
func WithClock(c Clock) Option {
	return func(b *Brain) { b.clock = c }
}

// WithRandom injects the randomness source for durations, directions and transitions
func WithRandom(r Random) Option {
	return func(b *Brain) { b.rng = r }
}

// WithCatalog restricts the brain to a subset of states
func WithCatalog(c Catalog) Option {
	return func(b *Brain) { b.catalog = c }
}

// WithInitialState forces the first activated state, default is uniformly random
func WithInitialState(id StateID) Option {
	return func(b *Brain) {
		b.initial = id
		b.random = false
	}
}

// WithName sets the name used in log lines
func WithName(name string) Option {
	return func(b *Brain) { b.name = name }
}

// New validates the definitions and activates the initial state
func New(defs []Definition, opts ...Option) (*Brain, error) {
	b := &Brain{
		catalog: FullCatalog(),
		clock:   engine.NewMonotonicTimeProvider(),
		name:    "dog",
		random:  true,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = NewRandom(0)
	}

	if b.catalog.Len() == 0 {
		return nil, &ConfigError{Reason: "empty state catalog"}
	}

	b.definitions = make([]Definition, b.catalog.Len())
	registered := make([]bool, b.catalog.Len())
	for _, d := range defs {
		i := b.catalog.Index(d.ID)
		if i < 0 {
			return nil, stateError(d.ID, "state is not part of the catalog")
		}
		if registered[i] {
			return nil, stateError(d.ID, "state is defined more than once")
		}
		registered[i] = true
		b.definitions[i] = d.clone()
	}

	var missing []StateID
	for i, ok := range registered {
		if !ok {
			missing = append(missing, b.catalog.At(i))
		}
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Missing: missing, Reason: "every state must be defined"}
	}

	b.weights = make([][]float64, len(b.definitions))
	for i, d := range b.definitions {
		if err := d.Validate(b.catalog); err != nil {
			return nil, err
		}
		b.weights[i] = d.weights(b.catalog)
	}

	initial := b.initial
	if b.random {
		initial = b.catalog.At(b.rng.IntN(b.catalog.Len()))
	} else if !b.catalog.Contains(initial) {
		return nil, stateError(initial, "initial state is not part of the catalog")
	}
	b.Activate(initial)

	return b, nil
}

// Activate replaces the current state, winding up a fresh duration and direction
// Panics on a state outside the catalog
func (b *Brain) Activate(id StateID) {
	i := b.catalog.Index(id)
	if i < 0 {
		panic(fmt.Sprintf("brain: activate unknown state %s", id.Key()))
	}

	def := b.definitions[i]
	b.current = LiveState{
		Definition: def,
		StartedAt:  b.clock.Now(),
		Duration:   drawDuration(b.rng, def.MinDuration, def.MaxDuration),
		Direction:  drawDirection(b.rng),
	}

	log.Printf("%s decided to %s for %s, heading %s", b.name, id, b.current.Duration.Round(time.Millisecond), b.current.Direction)

	for _, fn := range b.listeners {
		fn(b.current)
	}
}

// Update expires the current state and transitions at most once
// Returns true when a new state was activated
func (b *Brain) Update() bool {
	if !b.current.Done(b.clock.Now()) {
		return false
	}
	b.Activate(b.Next())
	return true
}

// Next draws the successor of the current state from its transition vector
func (b *Brain) Next() StateID {
	w := b.weights[b.catalog.Index(b.current.ID)]
	i := WeightedIndex(w, b.rng.Float64())
	if i < 0 {
		return b.current.ID
	}
	return b.catalog.At(i)
}

// OnActivate registers fn to be called after every activation
func (b *Brain) OnActivate(fn func(LiveState)) {
	b.listeners = append(b.listeners, fn)
}

// Current returns a copy of the active state
func (b *Brain) Current() LiveState {
	return b.current
}

// Remaining returns how long the active state still lasts
func (b *Brain) Remaining() time.Duration {
	return b.current.Remaining(b.clock.Now())
}

// Definition returns the registered definition of id
func (b *Brain) Definition(id StateID) (Definition, bool) {
	i := b.catalog.Index(id)
	if i < 0 {
		return Definition{}, false
	}
	return b.definitions[i].clone(), true
}

// Catalog returns the states the brain runs over
func (b *Brain) Catalog() Catalog {
	return b.catalog
}

// Doing returns a human-friendly description of the active state
func (b *Brain) Doing() string {
	return fmt.Sprintf("%s %s", b.name, b.current.ID.Doing())
}

func (b *Brain) String() string {
	return fmt.Sprintf("Brain(%s)", b.current.ID)
}
