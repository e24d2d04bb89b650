package world

import (
	"context"
	"math"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/asset"
	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/config"
	"github.com/lixenwraith/doggo/constants"
	"github.com/lixenwraith/doggo/dog"
	"github.com/lixenwraith/doggo/engine"
	"github.com/lixenwraith/doggo/landscape"
	"github.com/lixenwraith/doggo/sprite"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type countingBarker struct {
	barks atomic.Int32
}

func (c *countingBarker) PlayBark() { c.barks.Add(1) }

type panickingBarker struct{}

func (panickingBarker) PlayBark() { panic("speaker on fire") }

type fixture struct {
	world  *World
	screen tcell.SimulationScreen
	clock  *engine.MockTimeProvider
	barker *countingBarker
}

// newFixture builds the default dog idling in a 40x12 terminal, strip of 6 rows with 1 ground row
func newFixture(t *testing.T, sounds Barker) *fixture {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	defs, err := cfg.Definitions()
	if err != nil {
		t.Fatalf("Definitions failed: %v", err)
	}

	clock := engine.NewMockTimeProvider(epoch)
	b, err := brain.New(defs,
		brain.WithClock(clock),
		brain.WithRandom(brain.NewRandom(1)),
		brain.WithInitialState(brain.Idle),
		brain.WithName("rex"),
	)
	if err != nil {
		t.Fatalf("brain.New failed: %v", err)
	}

	sheet, err := sprite.ParseText(asset.DogSheet, asset.DogSheetColumns, asset.DogSheetRows, dog.Orange.Style())
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	conf, err := cfg.SpriteConf()
	if err != nil {
		t.Fatalf("SpriteConf failed: %v", err)
	}
	body, err := dog.NewBody(sheet, cfg.Facing(), conf, b.Catalog())
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}

	land := landscape.Build(landscape.Meadow, 40, 6, 1, brain.NewRandom(1))
	d := dog.New(b, body, 40, land.Ground(), brain.NewRandom(1))
	d.Place(5)

	barker := &countingBarker{}
	if sounds == nil {
		sounds = barker
	}
	worldCfg := config.World{Height: 6, GroundHeight: 1, FPS: 30}
	w := New(screen, worldCfg, d, land, sounds, clock, WithRandom(brain.NewRandom(2)))

	return &fixture{world: w, screen: screen, clock: clock, barker: barker}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenRow(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestStripDockedAtBottom(t *testing.T) {
	f := newFixture(t, nil)
	if x, y := f.world.Surface().Origin(); x != 0 || y != 5 {
		t.Errorf("Expected strip at (0,5) above the status line, got (%d,%d)", x, y)
	}
}

func TestStepDrawsDog(t *testing.T) {
	f := newFixture(t, nil)
	f.world.Step()

	d := f.world.Dog()
	img := d.Image()
	r := d.Rect()
	ox, oy := f.world.Surface().Origin()

	// The bottom row shares space with foreground tufts
	for y := 0; y < img.Height-1; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			if c.Transparent() {
				continue
			}
			got, _, _, _ := f.screen.GetContent(ox+r.X+x, oy+r.Y+y)
			if got != c.Rune {
				t.Fatalf("Cell (%d,%d) of the dog: expected %q, got %q", x, y, c.Rune, got)
			}
		}
	}
}

func TestStepAdvancesByClock(t *testing.T) {
	f := newFixture(t, nil)
	f.world.handleInput(key('w'))
	d := f.world.Dog()
	d.Place(10)
	dir := d.Direction()

	f.clock.Advance(200 * time.Millisecond)
	f.world.Step()

	want := 10 + dir.Sign()*d.Speed()*0.2
	if math.Abs(d.X()-want) > 1e-9 {
		t.Errorf("Expected x=%v after 200ms of walking, got %v", want, d.X())
	}

	// A long stall moves the dog by one clamped frame only
	f.clock.Advance(2 * time.Second)
	f.world.Step()

	want += dir.Sign() * d.Speed() * constants.MaxFrameDelta.Seconds()
	if math.Abs(d.X()-want) > 1e-9 {
		t.Errorf("Expected x=%v after a clamped stall, got %v", want, d.X())
	}
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", key('q'), true},
		{"x", key('x'), false},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cont := f.world.handleInput(tt.ev); cont == tt.quit {
				t.Errorf("Expected quit=%v, got continue=%v", tt.quit, cont)
			}
		})
	}
}

func TestKeysForceStates(t *testing.T) {
	f := newFixture(t, nil)
	d := f.world.Dog()

	f.world.handleInput(key('w'))
	if d.State() != brain.Walk {
		t.Fatalf("Expected walk, got %s", d.State())
	}

	f.world.handleInput(key('b'))
	if d.State() != brain.WalkAndBark {
		t.Errorf("Expected walk and bark, got %s", d.State())
	}
	if f.barker.barks.Load() != 1 {
		t.Errorf("Expected one bark, got %d", f.barker.barks.Load())
	}

	f.world.handleInput(key('z'))
	f.world.handleInput(key('b'))
	if d.State() != brain.Sleep {
		t.Errorf("Expected sleeping dog to keep sleeping, got %s", d.State())
	}
	if f.barker.barks.Load() != 1 {
		t.Errorf("Expected no bark from a sleeping dog, got %d", f.barker.barks.Load())
	}

	f.world.handleInput(key('r'))
	f.world.handleInput(key('s'))
	if d.State() != brain.Sit {
		t.Errorf("Expected sit, got %s", d.State())
	}
}

func TestBarkOnNaturalTransition(t *testing.T) {
	f := newFixture(t, nil)
	d := f.world.Dog()

	// Walk some minutes of simulated time, barking states come up with the default table
	for i := 0; i < 2000 && f.barker.barks.Load() == 0; i++ {
		f.clock.AdvanceFrames(7, 30)
		f.world.Step()
	}
	if f.barker.barks.Load() == 0 {
		t.Fatalf("Expected at least one bark, dog ended %s", d.State())
	}
}

func TestStatusToggle(t *testing.T) {
	f := newFixture(t, nil)
	if f.world.StatusVisible() {
		t.Fatal("Expected status hidden by default")
	}

	f.world.handleInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	f.world.Step()

	if !f.world.StatusVisible() {
		t.Fatal("Expected status visible after Enter")
	}
	if !strings.HasPrefix(f.world.StatusLine(), "rex is hanging around") {
		t.Errorf("Unexpected status line %q", f.world.StatusLine())
	}
	if row := screenRow(f.screen, 11); !strings.HasPrefix(row, "rex is hanging") {
		t.Errorf("Expected status drawn under the strip, got %q", row)
	}

	f.world.handleInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	f.world.Step()
	if row := screenRow(f.screen, 11); strings.Contains(row, "rex") {
		t.Errorf("Expected status cleared, got %q", row)
	}
}

func TestMouseDragMovesStrip(t *testing.T) {
	f := newFixture(t, nil)

	// Press on the sky, away from the dog
	f.world.handleInput(tcell.NewEventMouse(30, 5, tcell.Button1, tcell.ModNone))
	f.world.handleInput(tcell.NewEventMouse(28, 3, tcell.Button1, tcell.ModNone))
	f.world.handleInput(tcell.NewEventMouse(28, 3, tcell.ButtonNone, tcell.ModNone))

	if _, y := f.world.Surface().Origin(); y != 3 {
		t.Errorf("Expected strip dragged up to row 3, got %d", y)
	}
	if f.world.Dog().State() != brain.Idle {
		t.Errorf("Expected drag not to bark, got %s", f.world.Dog().State())
	}

	// Dragging past the top is clamped
	f.world.handleInput(tcell.NewEventMouse(28, 3, tcell.Button1, tcell.ModNone))
	f.world.handleInput(tcell.NewEventMouse(28, 0, tcell.Button1, tcell.ModNone))
	f.world.handleInput(tcell.NewEventMouse(28, 0, tcell.ButtonNone, tcell.ModNone))
	if _, y := f.world.Surface().Origin(); y != 0 {
		t.Errorf("Expected strip clamped to row 0, got %d", y)
	}
}

func TestClickOnDogBarks(t *testing.T) {
	f := newFixture(t, nil)
	d := f.world.Dog()
	ox, oy := f.world.Surface().Origin()
	r := d.Rect()

	x, y := ox+r.X+2, oy+r.Y+1
	f.world.handleInput(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	f.world.handleInput(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))

	if d.State() != brain.IdleAndBark {
		t.Errorf("Expected idle and bark after a click, got %s", d.State())
	}
	if f.barker.barks.Load() != 1 {
		t.Errorf("Expected one bark, got %d", f.barker.barks.Load())
	}
}

func TestResizeFollowsTerminal(t *testing.T) {
	f := newFixture(t, nil)

	f.screen.SetSize(60, 20)
	f.world.handleInput(tcell.NewEventResize(60, 20))

	if got := f.world.Dog().WorldWidth(); got != 60 {
		t.Errorf("Expected world width 60, got %d", got)
	}
	if w, h := f.world.Surface().Size(); w != 60 || h != 6 {
		t.Errorf("Expected 60x6 strip, got %dx%d", w, h)
	}
	if _, y := f.world.Surface().Origin(); y != 13 {
		t.Errorf("Expected strip docked at row 13, got %d", y)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	f := newFixture(t, nil)
	f.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- f.world.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.world.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestRunStopsOnStop(t *testing.T) {
	f := newFixture(t, nil)

	done := make(chan error, 1)
	go func() { done <- f.world.Run(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for !f.world.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	f.world.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after Stop")
	}
	if f.world.Running() {
		t.Error("Expected Running false after Run returned")
	}
}

func TestRunReturnsFramePanic(t *testing.T) {
	f := newFixture(t, panickingBarker{})
	f.screen.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- f.world.Run(context.Background()) }()

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "speaker on fire") {
			t.Errorf("Expected panic returned as error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after a panic")
	}
}
