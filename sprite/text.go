package sprite

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ParseText builds a sheet from text art, spaces are transparent
// Lines are padded to the widest one; a leading blank line is dropped so the
// sheet can be written as a raw string literal
func ParseText(text string, columns, rows int, style tcell.Style) (*Sheet, error) {
	text = strings.TrimPrefix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	width := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}

	img := NewFrame(width, len(lines))
	for y, l := range lines {
		x := 0
		for _, r := range l {
			if r != ' ' {
				img.Set(x, y, Cell{Rune: r, Style: style})
			}
			x++
		}
	}

	return NewSheet(img, columns, rows)
}
