package dog

import "github.com/lixenwraith/doggo/core"

// BoundaryClone is the copy of the dog drawn on the opposite edge while it crosses one
// Derived from the owner's rectangle every frame, it keeps no reference to the owner
type BoundaryClone struct {
	visible bool
	rect    core.Rect
}

// Update recomputes the clone from the owner's rectangle
func (c *BoundaryClone) Update(owner core.Rect, worldWidth int) {
	c.rect = owner
	switch {
	case owner.Left() < 0:
		c.visible = true
		c.rect.X = owner.X + worldWidth
	case owner.Right() > worldWidth:
		c.visible = true
		c.rect.X = owner.X - worldWidth
	default:
		c.visible = false
	}
}

// Visible reports whether the owner overlaps a world edge
func (c BoundaryClone) Visible() bool {
	return c.visible
}

// Rect returns the clone position, meaningful only while visible
func (c BoundaryClone) Rect() core.Rect {
	return c.rect
}
