package dog

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/core"
	"github.com/lixenwraith/doggo/render"
	"github.com/lixenwraith/doggo/sprite"
)

// Dog is the entity walking the world strip
// Owned by the frame loop, not safe for concurrent use
type Dog struct {
	id    uuid.UUID
	brain *brain.Brain
	body  *Body

	x           float64 // Authoritative horizontal position, rect.X is its floor
	rect        core.Rect
	accumulator time.Duration
	image       sprite.Frame

	worldWidth int
	clone      BoundaryClone
}

// New places a dog at a random x with its paws on the ground row
func New(b *brain.Brain, body *Body, worldWidth, ground int, rng brain.Random) *Dog {
	d := &Dog{
		id:         uuid.New(),
		brain:      b,
		body:       body,
		worldWidth: worldWidth,
	}

	cur := b.Current()
	d.image = body.Next(cur.ID, cur.Direction)

	w, h := d.image.Width, d.image.Height
	x := 0
	if span := worldWidth - w; span > 0 {
		x = rng.IntN(span + 1)
	}
	d.x = float64(x)
	d.rect = core.Rect{X: x, Y: ground - h, Width: w, Height: h}
	d.clone.Update(d.rect, d.worldWidth)

	log.Printf("dog %s placed at x=%d in a world of %d cells", d.id, x, worldWidth)
	return d
}

// Update advances the dog by dt
func (d *Dog) Update(dt time.Duration) {
	d.brain.Update()
	cur := d.brain.Current()

	d.accumulator += dt
	if d.accumulator >= cur.AnimationInterval {
		d.accumulator = 0
		d.image = d.body.Next(cur.ID, cur.Direction)
	}

	// Wrap on the rectangle drawn last frame so the crossing shows once through the clone
	switch {
	case d.rect.Right() < 0:
		d.x += float64(d.worldWidth)
	case d.rect.Left() > d.worldWidth:
		d.x -= float64(d.worldWidth)
	}

	d.x += cur.Direction.Sign() * cur.Speed * dt.Seconds()
	d.rect.X = int(math.Floor(d.x))

	d.clone.Update(d.rect, d.worldWidth)
}

// Draw blits the dog, then its clone when visible
func (d *Dog) Draw(s render.Surface) {
	s.Blit(&d.image, d.rect)
	if d.clone.Visible() {
		s.Blit(&d.image, d.clone.Rect())
	}
}

// Force switches the brain to id and shows its first frame immediately
func (d *Dog) Force(id brain.StateID) {
	d.brain.Activate(id)
	cur := d.brain.Current()
	d.accumulator = 0
	d.image = d.body.Next(cur.ID, cur.Direction)
}

// Place moves the dog to x
func (d *Dog) Place(x float64) {
	d.x = x
	d.rect.X = int(math.Floor(x))
	d.clone.Update(d.rect, d.worldWidth)
}

// SetWorldWidth follows a resize of the world strip
func (d *Dog) SetWorldWidth(w int) {
	d.worldWidth = w
	d.clone.Update(d.rect, d.worldWidth)
}

// Contains reports whether the strip cell (x, y) shows the dog or its clone
func (d *Dog) Contains(x, y int) bool {
	if d.rect.Contains(x, y) {
		return true
	}
	return d.clone.Visible() && d.clone.Rect().Contains(x, y)
}

func (d *Dog) ID() uuid.UUID { return d.id }
func (d *Dog) X() float64 { return d.x }
func (d *Dog) Rect() core.Rect { return d.rect }
func (d *Dog) Image() sprite.Frame { return d.image }
func (d *Dog) Clone() BoundaryClone { return d.clone }
func (d *Dog) Brain() *brain.Brain { return d.brain }
func (d *Dog) WorldWidth() int { return d.worldWidth }
func (d *Dog) State() brain.StateID { return d.brain.Current().ID }
func (d *Dog) Direction() brain.Direction { return d.brain.Current().Direction }
func (d *Dog) Speed() float64 { return d.brain.Current().Speed }
func (d *Dog) AnimationIndex() int { return d.body.Index() }
func (d *Dog) String() string { return fmt.Sprintf("Dog(%s, %s at %.1f)", d.id, d.State(), d.x) }
