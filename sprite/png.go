package sprite

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/gdamore/tcell/v2"
)

// alphaThreshold is the 8-bit alpha below which a pixel counts as transparent
const alphaThreshold = 128

// LoadPNG loads a PNG sprite sheet and slices it into columns*rows frames
func LoadPNG(path string, columns, rows int) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet %s: %w", path, err)
	}

	return ImageSheet(img, columns, rows)
}

// ImageSheet converts an image into a cell sheet
// Frame boundaries follow the pixel grid: each frame keeps its own pixel height
// so vertically adjacent frames never share a half-block cell
func ImageSheet(img image.Image, columns, rows int) (*Sheet, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("sheet grid must be positive, got %dx%d", columns, rows)
	}

	b := img.Bounds()
	fw, fh := b.Dx()/columns, b.Dy()/rows
	if fw == 0 || fh == 0 {
		return nil, fmt.Errorf("image of %dx%d pixels is too small for a %dx%d grid", b.Dx(), b.Dy(), columns, rows)
	}

	cellH := (fh + 1) / 2
	out := NewFrame(fw*columns, cellH*rows)

	for row := 0; row < rows; row++ {
		for cy := 0; cy < cellH; cy++ {
			top := b.Min.Y + row*fh + cy*2
			bottom := top + 1
			hasBottom := cy*2+1 < fh

			for x := 0; x < fw*columns; x++ {
				px := b.Min.X + x
				upper, upperOK := pixel(img.At(px, top))
				var lower tcell.Color
				var lowerOK bool
				if hasBottom {
					lower, lowerOK = pixel(img.At(px, bottom))
				}
				out.Set(x, row*cellH+cy, halfBlock(upper, upperOK, lower, lowerOK))
			}
		}
	}

	return NewSheet(out, columns, rows)
}

// halfBlock packs two vertically stacked pixels into one cell
func halfBlock(upper tcell.Color, upperOK bool, lower tcell.Color, lowerOK bool) Cell {
	switch {
	case upperOK && lowerOK:
		return Cell{Rune: '▀', Style: tcell.StyleDefault.Foreground(upper).Background(lower)}
	case upperOK:
		return Cell{Rune: '▀', Style: tcell.StyleDefault.Foreground(upper)}
	case lowerOK:
		return Cell{Rune: '▄', Style: tcell.StyleDefault.Foreground(lower)}
	}
	return Cell{}
}

// pixel converts a colour to a terminal colour, false when transparent
func pixel(c color.Color) (tcell.Color, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < alphaThreshold {
		return tcell.ColorDefault, false
	}
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B)), true
}
