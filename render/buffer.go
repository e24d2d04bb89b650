package render

import (
	"github.com/lixenwraith/doggo/core"
	"github.com/lixenwraith/doggo/sprite"
)

// BlitRecord is one call received by a Buffer
type BlitRecord struct {
	Frame sprite.Frame
	Rect  core.Rect
}

// Buffer is an in-memory Surface compositing into a cell grid and recording every blit
type Buffer struct {
	cells  []sprite.Cell
	width  int
	height int

	Blits []BlitRecord
}

// NewBuffer creates a transparent buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		cells:  make([]sprite.Cell, width*height),
		width:  width,
		height: height,
	}
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]sprite.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to transparent and forgets recorded blits
func (b *Buffer) Clear() {
	clear(b.cells)
	b.Blits = b.Blits[:0]
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), transparent outside the buffer
func (b *Buffer) Get(x, y int) sprite.Cell {
	if !b.inBounds(x, y) {
		return sprite.Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell, ignored outside the buffer
func (b *Buffer) Set(x, y int, c sprite.Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Blit records the call and composites the opaque cells of f at r
func (b *Buffer) Blit(f *sprite.Frame, r core.Rect) {
	b.Blits = append(b.Blits, BlitRecord{Frame: *f, Rect: r})
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if c.Transparent() {
				continue
			}
			b.Set(r.X+x, r.Y+y, c)
		}
	}
}

// Row returns row y as text, transparent cells as spaces
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	buf := make([]rune, b.width)
	for x := range buf {
		r := b.cells[y*b.width+x].Rune
		if r == 0 {
			r = ' '
		}
		buf[x] = r
	}
	return string(buf)
}
