package sprite

import "fmt"

// BoundsError reports a frame location outside the sprite sheet
type BoundsError struct {
	Col, Row      int
	Columns, Rows int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sprite location (%d, %d) is out of bounds for a %dx%d sheet", e.Col, e.Row, e.Columns, e.Rows)
}
