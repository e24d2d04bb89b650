package sprite

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of a frame, Rune 0 is transparent
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Transparent reports whether the cell lets the background through
func (c Cell) Transparent() bool {
	return c.Rune == 0
}

// Frame is one rectangular image made of cells, row-major
type Frame struct {
	Width, Height int
	Cells         []Cell
}

// NewFrame allocates a fully transparent frame
func NewFrame(width, height int) Frame {
	return Frame{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// At returns the cell at (x, y), transparent outside the frame
func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// Set writes the cell at (x, y), ignored outside the frame
func (f *Frame) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = c
}

// Sub copies the w*h region at (x, y)
func (f *Frame) Sub(x, y, w, h int) Frame {
	out := NewFrame(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out.Cells[row*w+col] = f.At(x+col, y+row)
		}
	}
	return out
}

// FlipX returns the frame mirrored horizontally
// Directional runes are swapped so text art keeps facing the new way
func (f *Frame) FlipX() Frame {
	out := NewFrame(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.Cells[y*f.Width+x]
			c.Rune = MirrorRune(c.Rune)
			out.Cells[y*f.Width+(f.Width-1-x)] = c
		}
	}
	return out
}

// Lines renders the frame runes as text, transparent cells as spaces
func (f *Frame) Lines() []string {
	lines := make([]string, f.Height)
	buf := make([]rune, f.Width)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r := f.Cells[y*f.Width+x].Rune
			if r == 0 {
				r = ' '
			}
			buf[x] = r
		}
		lines[y] = string(buf)
	}
	return lines
}

var mirrorPairs = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'd': 'b', 'b': 'd',
	'p': 'q', 'q': 'p',
	'`': '\'', '\'': '`',
	'▌': '▐', '▐': '▌',
	'▘': '▝', '▝': '▘',
	'▖': '▗', '▗': '▖',
	'▛': '▜', '▜': '▛',
	'▙': '▟', '▟': '▙',
	'▞': '▚', '▚': '▞',
}

// MirrorRune returns the horizontally mirrored counterpart of r, or r itself
func MirrorRune(r rune) rune {
	if m, ok := mirrorPairs[r]; ok {
		return m
	}
	return r
}
