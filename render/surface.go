package render

import (
	"github.com/lixenwraith/doggo/core"
	"github.com/lixenwraith/doggo/sprite"
)

// Surface receives sprite frames at strip coordinates
// Implementations clip to their own bounds and skip transparent cells
type Surface interface {
	Blit(f *sprite.Frame, r core.Rect)
}
