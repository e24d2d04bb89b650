package dog

import (
	"testing"
	"time"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/engine"
	"github.com/lixenwraith/doggo/sprite"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// fixedRandom makes every draw deterministic: IntN picks n (clamped), Float64 returns f
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) Int64N(n int64) int64 { return 0 }
func (r fixedRandom) IntN(n int) int { return min(r.n, n-1) }

// stripSheet returns a sheet of `frames` columns by `rows` rows of width x 1 frames
// Frame (col, row) is filled with the rune 'a'+col, rows share the pattern
func stripSheet(t *testing.T, width, frames, rows int) *sprite.Sheet {
	t.Helper()
	img := sprite.NewFrame(width*frames, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < frames; col++ {
			for x := 0; x < width; x++ {
				img.Set(col*width+x, row, sprite.Cell{Rune: rune('a' + col)})
			}
		}
	}
	sheet, err := sprite.NewSheet(img, frames, rows)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	return sheet
}

// mover builds a single-state brain that keeps state for an hour
func mover(t *testing.T, id brain.StateID, speed float64, dir brain.Direction) (*brain.Brain, *engine.MockTimeProvider) {
	t.Helper()
	c := brain.NewCatalog(id)
	clock := engine.NewMockTimeProvider(epoch)
	b, err := brain.New([]brain.Definition{{
		ID:                id,
		Transitions:       brain.OneHot(c, id),
		MinDuration:       time.Hour,
		MaxDuration:       time.Hour,
		Speed:             speed,
		AnimationInterval: 100 * time.Millisecond,
	}},
		brain.WithCatalog(c),
		brain.WithInitialState(id),
		brain.WithClock(clock),
		brain.WithRandom(fixedRandom{n: int(dir)}),
	)
	if err != nil {
		t.Fatalf("brain.New failed: %v", err)
	}
	return b, clock
}

// newMover builds a dog of the given width walking at speed in dir
func newMover(t *testing.T, worldWidth, spriteWidth int, speed float64, dir brain.Direction) *Dog {
	t.Helper()
	b, _ := mover(t, brain.Walk, speed, dir)
	body, err := NewBody(stripSheet(t, spriteWidth, 3, 1), brain.Left,
		map[brain.StateID]SpriteConf{brain.Walk: {Frames: 3, Row: 0}}, b.Catalog())
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}
	return New(b, body, worldWidth, 10, fixedRandom{})
}
