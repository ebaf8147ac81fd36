package engine

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	slotWidth  = 5
	emptyGlyph = "-"
	openGlyph  = "**"
)

// Format renders the grid as text: "-" for empty cells, values padded
// into fixed-width slots, one row per line.
func (e *Engine) Format() string {
	return e.format(nil, emptyGlyph)
}

// FormatEmpty is like Format but draws empty cells with glyph.
// An empty glyph falls back to "-".
func (e *Engine) FormatEmpty(glyph string) string {
	if glyph == "" {
		glyph = emptyGlyph
	}
	return e.format(nil, glyph)
}

// FormatOpenCells is like Format but marks cells in the open-cell index with "**".
func (e *Engine) FormatOpenCells() string {
	marked := make(map[Cell]bool, len(e.open))
	for _, c := range e.open {
		marked[c] = true
	}
	return e.format(marked, emptyGlyph)
}

func (e *Engine) format(marked map[Cell]bool, empty string) string {
	var sb strings.Builder
	for r, row := range e.grid {
		for c, v := range row {
			s := strconv.Itoa(v)
			switch {
			case marked[Cell{Row: r, Col: c}]:
				s = openGlyph
			case v == 0:
				s = empty
			}
			sb.WriteString(s)
			if pad := slotWidth - utf8.RuneCountInString(s); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
