package dog

import (
	"fmt"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/sprite"
)

// SpriteConf locates the animation of one state in the sheet
type SpriteConf struct {
	Frames int // Number of frames, read left to right from column 0
	Row    int
}

// Body holds the precomputed frames of every (state, direction) pair and the animation cursor
type Body struct {
	catalog brain.Catalog
	frames  [][2][]sprite.Frame // [catalog index][direction]

	width, height int

	state   brain.StateID
	dir     brain.Direction
	index   int
	started bool
}

// NewBody slices the animations of every catalog state out of sheet
// Frames drawn facing one way are flipped to produce the other direction
func NewBody(sheet *sprite.Sheet, facing brain.Direction, conf map[brain.StateID]SpriteConf, catalog brain.Catalog) (*Body, error) {
	b := &Body{
		catalog: catalog,
		frames:  make([][2][]sprite.Frame, catalog.Len()),
		width:   sheet.FrameWidth,
		height:  sheet.FrameHeight,
	}

	for i, id := range catalog.IDs() {
		c, ok := conf[id]
		if !ok {
			return nil, &brain.ConfigError{State: id, HasState: true, Reason: "no sprite configuration"}
		}
		if c.Frames <= 0 {
			return nil, &brain.ConfigError{State: id, HasState: true, Reason: fmt.Sprintf("sprite needs at least one frame, got %d", c.Frames)}
		}

		same := make([]sprite.Frame, c.Frames)
		flipped := make([]sprite.Frame, c.Frames)
		for col := 0; col < c.Frames; col++ {
			f, err := sheet.Frame(col, c.Row, false)
			if err != nil {
				return nil, fmt.Errorf("sprite of %s: %w", id.Key(), err)
			}
			same[col] = f
			flipped[col] = f.FlipX()
		}
		b.frames[i][facing] = same
		b.frames[i][facing.Opposite()] = flipped
	}

	return b, nil
}

// Next returns the following frame of the (state, dir) cycle
// A change of state or direction restarts the cycle at frame 0
// Panics on a state outside the body's catalog
func (b *Body) Next(state brain.StateID, dir brain.Direction) sprite.Frame {
	frames := b.Frames(state, dir)
	if frames == nil {
		panic(fmt.Sprintf("dog: no frames for state %s", state.Key()))
	}

	if !b.started || state != b.state || dir != b.dir {
		b.state, b.dir, b.index, b.started = state, dir, 0, true
	} else {
		b.index = (b.index + 1) % len(frames)
	}
	return frames[b.index]
}

// Frames returns the precomputed frames of (state, dir), nil for unknown states
func (b *Body) Frames(state brain.StateID, dir brain.Direction) []sprite.Frame {
	i := b.catalog.Index(state)
	if i < 0 || (dir != brain.Left && dir != brain.Right) {
		return nil
	}
	return b.frames[i][dir]
}

// Index returns the position of the last frame returned by Next
func (b *Body) Index() int {
	return b.index
}

// Size returns the frame dimensions in cells
func (b *Body) Size() (int, int) {
	return b.width, b.height
}
