package brain

import (
	"fmt"
	"sort"
	"strings"
)

// StateID identifies one behavior of the dog
// Values are the canonical order: transition vectors are always indexed in this order
type StateID int

const (
	Idle StateID = iota
	IdleAndBark
	Walk
	WalkAndBark
	Sit
	SitAndBark
	LieDown
	LieDownAndBark
	Run
	RunAndBark
	Stand
	StandAndBark
	Sleep

	stateCount
)

var stateKeys = [stateCount]string{
	Idle:           "idle",
	IdleAndBark:    "idle_and_bark",
	Walk:           "walk",
	WalkAndBark:    "walk_and_bark",
	Sit:            "sit",
	SitAndBark:     "sit_and_bark",
	LieDown:        "lie_down",
	LieDownAndBark: "lie_down_and_bark",
	Run:            "run",
	RunAndBark:     "run_and_bark",
	Stand:          "stand",
	StandAndBark:   "stand_and_bark",
	Sleep:          "sleep",
}

var stateDoing = [stateCount]string{
	Idle:           "is hanging around",
	IdleAndBark:    "is hanging around and barking at nothing",
	Walk:           "is taking a walk",
	WalkAndBark:    "is walking and barking",
	Sit:            "is sitting like a good dog",
	SitAndBark:     "is sitting and barking",
	LieDown:        "is lying down",
	LieDownAndBark: "is lying down and barking",
	Run:            "is running around",
	RunAndBark:     "is running and barking",
	Stand:          "is standing still",
	StandAndBark:   "is standing and barking",
	Sleep:          "is sleeping",
}

// States returns the full catalog in canonical order
func States() []StateID {
	ids := make([]StateID, stateCount)
	for i := range ids {
		ids[i] = StateID(i)
	}
	return ids
}

// Valid reports whether id belongs to the full catalog
func (id StateID) Valid() bool {
	return id >= 0 && id < stateCount
}

// Key returns the configuration key of the state (snake_case)
func (id StateID) Key() string {
	if !id.Valid() {
		return fmt.Sprintf("state(%d)", int(id))
	}
	return stateKeys[id]
}

// String returns the state name in plain words
func (id StateID) String() string {
	return strings.ReplaceAll(id.Key(), "_", " ")
}

// Doing returns a sentence fragment describing the behavior
func (id StateID) Doing() string {
	if !id.Valid() {
		return "is doing something strange"
	}
	return stateDoing[id]
}

// Barking reports whether the state is a bark variant
func (id StateID) Barking() bool {
	switch id {
	case IdleAndBark, WalkAndBark, SitAndBark, LieDownAndBark, RunAndBark, StandAndBark:
		return true
	}
	return false
}

// WithBark returns the barking twin of a posture, Sleep has none and maps to itself
func (id StateID) WithBark() StateID {
	if id == Sleep || id.Barking() || !id.Valid() {
		return id
	}
	return id + 1
}

// WithoutBark returns the silent twin of a barking posture
func (id StateID) WithoutBark() StateID {
	if !id.Barking() {
		return id
	}
	return id - 1
}

// ParseStateID resolves a configuration key ("sit_and_bark") or plain name ("sit and bark")
func ParseStateID(key string) (StateID, error) {
	k := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
	for i, name := range stateKeys {
		if name == k {
			return StateID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", key)
}

// Direction is the horizontal heading of the dog
type Direction int

const (
	Left Direction = iota
	Right
)

// Sign returns -1 for Left and +1 for Right
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// Opposite returns the other direction
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// ParseDirection resolves "left" or "right"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown direction %q", s)
}

// Catalog is an ordered set of states a brain runs over
type Catalog struct {
	ids   []StateID
	index map[StateID]int
}

// NewCatalog builds a catalog sorted in canonical order, duplicates are dropped
func NewCatalog(ids ...StateID) Catalog {
	sorted := make([]StateID, 0, len(ids))
	index := make(map[StateID]int, len(ids))
	seen := make(map[StateID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, id := range sorted {
		index[id] = i
	}
	return Catalog{ids: sorted, index: index}
}

// FullCatalog returns the catalog of every known state
func FullCatalog() Catalog {
	return NewCatalog(States()...)
}

// IDs returns the states in canonical order
func (c Catalog) IDs() []StateID {
	out := make([]StateID, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of states
func (c Catalog) Len() int {
	return len(c.ids)
}

// Contains reports whether id is part of the catalog
func (c Catalog) Contains(id StateID) bool {
	_, ok := c.index[id]
	return ok
}

// Index returns the canonical position of id, -1 if absent
func (c Catalog) Index(id StateID) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// At returns the state at canonical position i
func (c Catalog) At(i int) StateID {
	return c.ids[i]
}
