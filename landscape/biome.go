package landscape

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doggo/brain"
)

// Biome selects the palette and scenery of the world strip
type Biome int

const (
	Meadow Biome = iota
	Mountain
	Forest
	Desert
	Snow
	biomeCount
)

type palette struct {
	key       string
	skyTop    tcell.Color
	sky       tcell.Color
	ground    tcell.Color
	groundAlt tcell.Color
	scenery   tcell.Color
	tuft      tcell.Color

	landmarks []rune // Drawn on the horizon row
	tufts     []rune // Drawn in front of the dog
	falling   rune   // Sky particles, 0 for none
}

var palettes = [biomeCount]palette{
	Meadow: {
		key:       "meadow",
		skyTop:    tcell.NewRGBColor(90, 150, 220),
		sky:       tcell.NewRGBColor(135, 195, 240),
		ground:    tcell.NewRGBColor(70, 140, 50),
		groundAlt: tcell.NewRGBColor(95, 160, 60),
		scenery:   tcell.NewRGBColor(240, 200, 60),
		tuft:      tcell.NewRGBColor(40, 110, 35),
		landmarks: []rune{'✿', '❀', '*'},
		tufts:     []rune{'"', ',', '\''},
	},
	Mountain: {
		key:       "mountain",
		skyTop:    tcell.NewRGBColor(60, 100, 170),
		sky:       tcell.NewRGBColor(120, 160, 210),
		ground:    tcell.NewRGBColor(110, 105, 95),
		groundAlt: tcell.NewRGBColor(90, 85, 80),
		scenery:   tcell.NewRGBColor(80, 80, 90),
		tuft:      tcell.NewRGBColor(140, 135, 125),
		landmarks: []rune{'^', '▲', '^'},
		tufts:     []rune{'.', 'o', ','},
	},
	Forest: {
		key:       "forest",
		skyTop:    tcell.NewRGBColor(70, 120, 160),
		sky:       tcell.NewRGBColor(120, 170, 190),
		ground:    tcell.NewRGBColor(60, 90, 40),
		groundAlt: tcell.NewRGBColor(80, 60, 35),
		scenery:   tcell.NewRGBColor(30, 90, 40),
		tuft:      tcell.NewRGBColor(50, 120, 50),
		landmarks: []rune{'♣', '♠', '↟'},
		tufts:     []rune{'"', '\'', ','},
	},
	Desert: {
		key:       "desert",
		skyTop:    tcell.NewRGBColor(210, 150, 90),
		sky:       tcell.NewRGBColor(245, 205, 140),
		ground:    tcell.NewRGBColor(220, 185, 120),
		groundAlt: tcell.NewRGBColor(200, 165, 100),
		scenery:   tcell.NewRGBColor(60, 130, 60),
		tuft:      tcell.NewRGBColor(170, 140, 90),
		landmarks: []rune{'Ψ', '¥'},
		tufts:     []rune{'.', '~'},
	},
	Snow: {
		key:       "snow",
		skyTop:    tcell.NewRGBColor(150, 165, 190),
		sky:       tcell.NewRGBColor(200, 210, 225),
		ground:    tcell.NewRGBColor(240, 245, 250),
		groundAlt: tcell.NewRGBColor(215, 225, 240),
		scenery:   tcell.NewRGBColor(40, 80, 60),
		tuft:      tcell.NewRGBColor(190, 200, 215),
		landmarks: []rune{'▲', '♠'},
		tufts:     []rune{'.', '°'},
		falling:   '*',
	},
}

// Biomes returns every biome in declaration order
func Biomes() []Biome {
	out := make([]Biome, biomeCount)
	for i := range out {
		out[i] = Biome(i)
	}
	return out
}

// RandomBiome picks a biome uniformly
func RandomBiome(rng brain.Random) Biome {
	return Biome(rng.IntN(int(biomeCount)))
}

// ParseBiome resolves a biome name
func ParseBiome(s string) (Biome, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	for i, p := range palettes {
		if p.key == k {
			return Biome(i), nil
		}
	}
	return 0, fmt.Errorf("unknown biome %q", s)
}

func (b Biome) String() string {
	if b < 0 || b >= biomeCount {
		return fmt.Sprintf("Biome(%d)", int(b))
	}
	return palettes[b].key
}

// skyAt returns the sky colour of row y, the upper half is darker
func (p palette) skyAt(y, ground int) tcell.Color {
	if y < ground/2 {
		return p.skyTop
	}
	return p.sky
}
