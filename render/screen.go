package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/core"
	"github.com/lixenwraith/doggo/sprite"
)

// ScreenSurface draws the world strip into a tcell screen
// Strip coordinates are offset by the origin and clipped to the strip size
type ScreenSurface struct {
	screen  tcell.Screen
	originX int
	originY int
	width   int
	height  int
}

// NewScreenSurface creates a strip of width x height cells at the screen origin
func NewScreenSurface(screen tcell.Screen, width, height int) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		width:  width,
		height: height,
	}
}

// SetOrigin moves the strip on screen
func (s *ScreenSurface) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// Origin returns the screen position of the strip's top-left cell
func (s *ScreenSurface) Origin() (int, int) {
	return s.originX, s.originY
}

// Resize changes the strip dimensions
func (s *ScreenSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

// Size returns the strip dimensions
func (s *ScreenSurface) Size() (int, int) {
	return s.width, s.height
}

// Bounds returns the strip rectangle in screen coordinates
func (s *ScreenSurface) Bounds() core.Rect {
	return core.Rect{X: s.originX, Y: s.originY, Width: s.width, Height: s.height}
}

// ToLocal converts screen coordinates to strip coordinates
// Returns false when the point lies outside the strip
func (s *ScreenSurface) ToLocal(x, y int) (int, int, bool) {
	lx, ly := x-s.originX, y-s.originY
	return lx, ly, lx >= 0 && ly >= 0 && lx < s.width && ly < s.height
}

func (s *ScreenSurface) inStrip(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// Blit draws the opaque cells of f at r
// Cells without a background take the one already on screen
func (s *ScreenSurface) Blit(f *sprite.Frame, r core.Rect) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if c.Transparent() {
				continue
			}
			lx, ly := r.X+x, r.Y+y
			if !s.inStrip(lx, ly) {
				continue
			}
			sx, sy := s.originX+lx, s.originY+ly

			style := c.Style
			if _, bg, _ := style.Decompose(); bg == tcell.ColorDefault {
				_, _, under, _ := s.screen.GetContent(sx, sy)
				_, underBg, _ := under.Decompose()
				style = style.Background(underBg)
			}
			s.screen.SetContent(sx, sy, c.Rune, nil, style)
		}
	}
}

// Fill paints r with ch, clipped to the strip
func (s *ScreenSurface) Fill(r core.Rect, ch rune, style tcell.Style) {
	clip := r.Intersect(core.Rect{Width: s.width, Height: s.height})
	for y := clip.Top(); y < clip.Bottom(); y++ {
		for x := clip.Left(); x < clip.Right(); x++ {
			s.screen.SetContent(s.originX+x, s.originY+y, ch, nil, style)
		}
	}
}

// Text writes a single line starting at strip coordinates (x, y), clipped to the strip width
// Row y may lie outside the strip, used for the status line under it
func (s *ScreenSurface) Text(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= s.width {
			return
		}
		if x >= 0 {
			s.screen.SetContent(s.originX+x, s.originY+y, r, nil, style)
		}
		x++
	}
}
