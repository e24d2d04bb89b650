package world

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/constants"
)

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)

// StatusLine describes the pet's current activity
func (w *World) StatusLine() string {
	b := w.dog.Brain()
	cur := b.Current()
	fields := []string{
		b.Doing(),
		"heading " + cur.Direction.String(),
		fmt.Sprintf("%.1fs left", b.Remaining().Round(100*time.Millisecond).Seconds()),
		w.land.Biome().String(),
		"q quits",
	}
	return strings.Join(fields, constants.StatusSeparator)
}

func (w *World) drawStatus() {
	_, height := w.surface.Size()
	w.surface.Text(0, height, w.StatusLine(), statusStyle)
}
