package world

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/config"
	"github.com/lixenwraith/doggo/constants"
	"github.com/lixenwraith/doggo/core"
	"github.com/lixenwraith/doggo/dog"
	"github.com/lixenwraith/doggo/engine"
	"github.com/lixenwraith/doggo/landscape"
	"github.com/lixenwraith/doggo/render"
)

// Barker plays the bark sound, see audio.SoundManager
type Barker interface {
	PlayBark()
}

// World runs the frame loop: input, update, render
// Every field is owned by the loop goroutine except running
type World struct {
	screen  tcell.Screen
	surface *render.ScreenSurface
	cfg     config.World

	dog    *dog.Dog
	land   *landscape.Landscape
	sounds Barker
	rng    brain.Random

	clock engine.TimeProvider
	delta *engine.FrameDelta

	running    atomic.Bool
	showStatus bool
	drag       *dragState
	events     chan tcell.Event
}

// Option configures a World at construction
type Option func(*World)

// WithRandom injects the randomness used to rebuild the landscape on resize
func WithRandom(r brain.Random) Option {
	return func(w *World) { w.rng = r }
}

// WithStatus shows the status line from the start
func WithStatus(show bool) Option {
	return func(w *World) { w.showStatus = show }
}

// New wires the dog and landscape to the screen
// sounds may be nil for a silent pet
func New(screen tcell.Screen, cfg config.World, d *dog.Dog, land *landscape.Landscape, sounds Barker, clock engine.TimeProvider, opts ...Option) *World {
	w := &World{
		screen: screen,
		cfg:    cfg,
		dog:    d,
		land:   land,
		sounds: sounds,
		clock:  clock,
		events: make(chan tcell.Event, constants.EventChannelSize),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = brain.NewRandom(0)
	}

	width, height := land.Size()
	w.surface = render.NewScreenSurface(screen, width, height)
	w.dock()

	d.Brain().OnActivate(func(s brain.LiveState) {
		if s.ID.Barking() && w.sounds != nil {
			w.sounds.PlayBark()
		}
	})

	w.delta = engine.NewFrameDelta(clock, constants.MaxFrameDelta)
	return w
}

// Run drives the loop until the user quits, Stop is called or ctx is cancelled
// A panic inside update or render ends the loop and is returned as an error
func (w *World) Run(ctx context.Context) (err error) {
	defer core.Recover(&err)

	w.running.Store(true)
	defer w.running.Store(false)

	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { w.pollEvents(quit) })

	ticker := time.NewTicker(constants.FrameInterval(w.cfg.FPS))
	defer ticker.Stop()

	log.Printf("world started: %s, %s", w.dog, w.land.Biome())

	for w.running.Load() {
		select {
		case <-ctx.Done():
			log.Printf("world stopped: %v", ctx.Err())
			return nil

		case ev := <-w.events:
			if !w.handleInput(ev) {
				log.Printf("world stopped by user")
				return nil
			}

		case <-ticker.C:
			w.Step()
		}
	}

	log.Printf("world stopped")
	return nil
}

// Stop ends the loop at its next iteration
func (w *World) Stop() {
	w.running.Store(false)
}

// Running reports whether Run is looping
func (w *World) Running() bool {
	return w.running.Load()
}

// Step advances the dog by the time since the previous step and redraws
func (w *World) Step() {
	w.dog.Update(w.delta.Tick())
	w.draw()
}

func (w *World) draw() {
	w.screen.Clear()

	w.land.DrawBackground(w.surface)
	w.dog.Draw(w.surface)
	w.land.DrawForeground(w.surface)

	if w.showStatus {
		w.drawStatus()
	}

	w.screen.Show()
}

// pollEvents forwards terminal events until the screen is finalized or quit closes
func (w *World) pollEvents(quit <-chan struct{}) {
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-quit:
			return
		}
	}
}

// dock puts the strip at the bottom-left of the terminal
func (w *World) dock() {
	_, sh := w.screen.Size()
	_, height := w.surface.Size()
	w.moveTo(0, sh-height-constants.StatusLineHeight)
}

// moveTo sets the strip origin, kept on screen when it fits
func (w *World) moveTo(x, y int) {
	sw, sh := w.screen.Size()
	width, height := w.surface.Size()
	x = min(max(x, 0), max(sw-width, 0))
	y = min(max(y, 0), max(sh-height-constants.StatusLineHeight, 0))
	w.surface.SetOrigin(x, y)
}

// Surface exposes the strip, for tests and hit-testing
func (w *World) Surface() *render.ScreenSurface {
	return w.surface
}

// Dog returns the pet
func (w *World) Dog() *dog.Dog {
	return w.dog
}

// StatusVisible reports whether the status line is drawn
func (w *World) StatusVisible() bool {
	return w.showStatus
}
