package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: ")
	s.DrawTextColor(7, 0, "2048", core.TileColor(2048))
	s.DrawTextColor(0, 1, "-", core.ColorGray)

	out := RenderScreen(s)

	assert.Equal(t, 2, lipgloss.Height(out))
	assert.Equal(t, 12, lipgloss.Width(out))
	assert.Contains(t, out, "2048")
}
