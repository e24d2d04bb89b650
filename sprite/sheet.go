package sprite

import "fmt"

// Sheet is a grid of equally sized frames
type Sheet struct {
	image         Frame
	Columns, Rows int
	FrameWidth    int
	FrameHeight   int
}

// NewSheet slices an image into columns*rows frames
// Remainder cells past the last full frame are ignored
func NewSheet(image Frame, columns, rows int) (*Sheet, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("sheet grid must be positive, got %dx%d", columns, rows)
	}
	fw, fh := image.Width/columns, image.Height/rows
	if fw == 0 || fh == 0 {
		return nil, fmt.Errorf("sheet of %dx%d cells is too small for a %dx%d grid", image.Width, image.Height, columns, rows)
	}
	return &Sheet{
		image:       image,
		Columns:     columns,
		Rows:        rows,
		FrameWidth:  fw,
		FrameHeight: fh,
	}, nil
}

// Frame returns the frame at (col, row), mirrored when flipX is set
func (s *Sheet) Frame(col, row int, flipX bool) (Frame, error) {
	if col < 0 || row < 0 || col >= s.Columns || row >= s.Rows {
		return Frame{}, &BoundsError{Col: col, Row: row, Columns: s.Columns, Rows: s.Rows}
	}

	f := s.image.Sub(col*s.FrameWidth, row*s.FrameHeight, s.FrameWidth, s.FrameHeight)
	if flipX {
		f = f.FlipX()
	}
	return f, nil
}

// Recolor rewrites every opaque cell of the sheet through fn
// Coordinates are sheet-wide, not frame-local
func (s *Sheet) Recolor(fn func(x, y int, c Cell) Cell) {
	for y := 0; y < s.image.Height; y++ {
		for x := 0; x < s.image.Width; x++ {
			i := y*s.image.Width + x
			if s.image.Cells[i].Transparent() {
				continue
			}
			s.image.Cells[i] = fn(x, y, s.image.Cells[i])
		}
	}
}
