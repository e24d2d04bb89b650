package core

// Rect is an integer rectangle in world cells, Y grows downward
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Left returns the x of the first column
func (r Rect) Left() int { return r.X }

// Right returns the x one past the last column
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the y of the first row
func (r Rect) Top() int { return r.Y }

// Bottom returns the y one past the last row
func (r Rect) Bottom() int { return r.Y + r.Height }

// WithX returns a copy moved horizontally to x
func (r Rect) WithX(x int) Rect {
	r.X = x
	return r
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlapping area, empty when disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether the rectangle covers no cell
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
