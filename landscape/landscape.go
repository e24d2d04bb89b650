package landscape

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/core"
	"github.com/lixenwraith/doggo/render"
	"github.com/lixenwraith/doggo/sprite"
)

// Density of procedural decoration, one item per N cells on average
const (
	landmarkSpacing = 9
	tuftSpacing     = 5
	fallingSpacing  = 14
)

// Landscape is the static scenery around the dog
// The background is fully opaque, the foreground is sparse and drawn over the dog
type Landscape struct {
	biome        Biome
	width        int
	height       int
	groundHeight int

	background sprite.Frame
	foreground sprite.Frame
}

// Build paints a width x height strip whose bottom groundHeight rows are ground
func Build(b Biome, width, height, groundHeight int, rng brain.Random) *Landscape {
	groundHeight = min(max(groundHeight, 0), height)
	l := &Landscape{
		biome:        b,
		width:        width,
		height:       height,
		groundHeight: groundHeight,
		background:   sprite.NewFrame(width, height),
		foreground:   sprite.NewFrame(width, height),
	}
	p := palettes[b]
	ground := l.Ground()

	for y := 0; y < ground; y++ {
		style := tcell.StyleDefault.Background(p.skyAt(y, ground))
		for x := 0; x < width; x++ {
			l.background.Set(x, y, sprite.Cell{Rune: ' ', Style: style})
		}
	}

	if p.falling != 0 && ground > 1 {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		for x := 0; x < width; x++ {
			if rng.IntN(fallingSpacing) == 0 {
				y := rng.IntN(ground - 1)
				l.background.Set(x, y, sprite.Cell{Rune: p.falling, Style: style.Background(p.skyAt(y, ground))})
			}
		}
	}

	if ground > 0 && len(p.landmarks) > 0 {
		horizon := ground - 1
		style := tcell.StyleDefault.Foreground(p.scenery).Background(p.sky)
		for x := 0; x < width; x++ {
			if rng.IntN(landmarkSpacing) == 0 {
				l.background.Set(x, horizon, sprite.Cell{Rune: p.landmarks[rng.IntN(len(p.landmarks))], Style: style})
			}
		}
	}

	for y := ground; y < height; y++ {
		for x := 0; x < width; x++ {
			bg := p.ground
			if rng.Float64() < 0.2 {
				bg = p.groundAlt
			}
			l.background.Set(x, y, sprite.Cell{Rune: ' ', Style: tcell.StyleDefault.Background(bg)})
		}
	}

	if ground > 0 && len(p.tufts) > 0 {
		style := tcell.StyleDefault.Foreground(p.tuft)
		for x := 0; x < width; x++ {
			if rng.IntN(tuftSpacing) == 0 {
				l.foreground.Set(x, ground-1, sprite.Cell{Rune: p.tufts[rng.IntN(len(p.tufts))], Style: style})
			}
		}
	}

	return l
}

// DrawBackground paints sky, horizon and ground
func (l *Landscape) DrawBackground(s render.Surface) {
	s.Blit(&l.background, l.bounds())
}

// DrawForeground paints the decoration standing in front of the dog
func (l *Landscape) DrawForeground(s render.Surface) {
	s.Blit(&l.foreground, l.bounds())
}

// Ground returns the row the paws rest on: the dog's bottom edge
func (l *Landscape) Ground() int {
	return l.height - l.groundHeight
}

// Biome returns the biome the landscape was built for
func (l *Landscape) Biome() Biome {
	return l.biome
}

// Size returns the strip dimensions
func (l *Landscape) Size() (int, int) {
	return l.width, l.height
}

func (l *Landscape) bounds() core.Rect {
	return core.Rect{Width: l.width, Height: l.height}
}
