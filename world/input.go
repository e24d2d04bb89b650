package world

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/constants"
	"github.com/lixenwraith/doggo/landscape"
)

// Keys forcing a behavior
var keyStates = map[rune]brain.StateID{
	'z': brain.Sleep,
	'w': brain.Walk,
	'r': brain.Run,
	's': brain.Sit,
}

// dragState tracks a mouse press on the strip
type dragState struct {
	startX, startY   int // Screen position of the press
	originX, originY int // Strip origin at the press
	onDog            bool
	moved            bool
}

// handleInput processes one event, returns false to quit
func (w *World) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return w.handleKey(ev)

	case *tcell.EventMouse:
		w.handleMouse(ev)

	case *tcell.EventResize:
		w.handleResize()
	}

	return true
}

func (w *World) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		w.showStatus = !w.showStatus
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case 'b':
		w.bark()
	default:
		if id, ok := keyStates[r]; ok {
			w.force(id)
		}
	}
	return true
}

func (w *World) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		// Release ends the gesture, a press that never moved is a click
		if w.drag != nil && !w.drag.moved && w.drag.onDog {
			w.bark()
		}
		w.drag = nil
		return
	}

	if w.drag == nil {
		lx, ly, inside := w.surface.ToLocal(x, y)
		if !inside {
			return
		}
		ox, oy := w.surface.Origin()
		w.drag = &dragState{
			startX:  x,
			startY:  y,
			originX: ox,
			originY: oy,
			onDog:   w.dog.Contains(lx, ly),
		}
		return
	}

	dx, dy := x-w.drag.startX, y-w.drag.startY
	if dx == 0 && dy == 0 {
		return
	}
	w.drag.moved = true
	w.moveTo(w.drag.originX+dx, w.drag.originY+dy)
}

func (w *World) handleResize() {
	w.screen.Sync()
	sw, _ := w.screen.Size()

	if w.cfg.Width == 0 {
		_, height := w.surface.Size()
		width := max(sw, constants.MinWorldWidth)
		if width != w.dog.WorldWidth() {
			w.surface.Resize(width, height)
			w.dog.SetWorldWidth(width)
			_, h := w.land.Size()
			w.land = landscape.Build(w.land.Biome(), width, h, h-w.land.Ground(), w.rng)
			log.Printf("world resized to %d cells", width)
		}
	}

	w.dock()
}

// bark switches to the barking twin of the current posture
func (w *World) bark() {
	w.force(w.dog.State().WithBark())
}

func (w *World) force(id brain.StateID) {
	if !w.dog.Brain().Catalog().Contains(id) {
		return
	}
	w.dog.Force(id)
}
