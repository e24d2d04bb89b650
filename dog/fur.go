package dog

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/sprite"
)

// Fur is the coat colour of the dog
type Fur int

const (
	DarkBrown Fur = iota
	LightBrown
	Grey
	RedBrown
	White
	WhiteWithBrownSpots
	DarkBrownWithGreySpots
	WhiteWithGreySpots
	LightBrownWithWhiteSpots
	Orange
	furCount
)

type coat struct {
	key   string
	base  tcell.Color
	spots tcell.Color // ColorDefault when plain
}

var coats = [furCount]coat{
	DarkBrown:                {"dark_brown", tcell.NewRGBColor(101, 67, 33), tcell.ColorDefault},
	LightBrown:               {"light_brown", tcell.NewRGBColor(181, 136, 82), tcell.ColorDefault},
	Grey:                     {"grey", tcell.NewRGBColor(150, 150, 150), tcell.ColorDefault},
	RedBrown:                 {"red_brown", tcell.NewRGBColor(150, 70, 40), tcell.ColorDefault},
	White:                    {"white", tcell.NewRGBColor(240, 240, 235), tcell.ColorDefault},
	WhiteWithBrownSpots:      {"white_with_brown_spots", tcell.NewRGBColor(240, 240, 235), tcell.NewRGBColor(120, 80, 40)},
	DarkBrownWithGreySpots:   {"dark_brown_with_grey_spots", tcell.NewRGBColor(101, 67, 33), tcell.NewRGBColor(160, 160, 160)},
	WhiteWithGreySpots:       {"white_with_grey_spots", tcell.NewRGBColor(240, 240, 235), tcell.NewRGBColor(130, 130, 130)},
	LightBrownWithWhiteSpots: {"light_brown_with_white_spots", tcell.NewRGBColor(181, 136, 82), tcell.NewRGBColor(245, 245, 240)},
	Orange:                   {"orange", tcell.NewRGBColor(230, 130, 40), tcell.ColorDefault},
}

// Furs returns every coat in declaration order
func Furs() []Fur {
	out := make([]Fur, furCount)
	for i := range out {
		out[i] = Fur(i)
	}
	return out
}

// RandomFur picks a coat uniformly
func RandomFur(rng brain.Random) Fur {
	return Fur(rng.IntN(int(furCount)))
}

// ParseFur resolves a coat key such as "white_with_grey_spots"
func ParseFur(s string) (Fur, error) {
	k := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for i, c := range coats {
		if c.key == k {
			return Fur(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fur %q", s)
}

func (f Fur) String() string {
	if f < 0 || f >= furCount {
		return fmt.Sprintf("Fur(%d)", int(f))
	}
	return coats[f].key
}

// Style returns the base coat style for text sprites
func (f Fur) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(coats[f].base)
}

// Spotted reports whether the coat carries a second colour
func (f Fur) Spotted() bool {
	return coats[f].spots != tcell.ColorDefault
}

// Paint recolours a text sheet with the coat, spots land on a fixed scatter of cells
func (f Fur) Paint(s *sprite.Sheet) {
	c := coats[f]
	base := tcell.StyleDefault.Foreground(c.base)
	spots := tcell.StyleDefault.Foreground(c.spots)
	s.Recolor(func(x, y int, cell sprite.Cell) sprite.Cell {
		cell.Style = base
		if c.spots != tcell.ColorDefault && (x*7+y*3)%5 == 0 {
			cell.Style = spots
		}
		return cell
	})
}
