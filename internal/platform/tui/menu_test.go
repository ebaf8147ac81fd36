package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func newTestMenu(t *testing.T) MenuModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
}

func sendKeys(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuCampaign(t *testing.T) {
	m := sendKeys(newTestMenu(t), keyEnter)

	r := m.Result()
	assert.Equal(t, t2048.IDCampaign, r.GameID)
	assert.Equal(t, 0, r.StartLevel)
	assert.False(t, r.Quit)
	assert.Equal(t, 80, r.Config.ScreenW)
}

func TestMenuEndless(t *testing.T) {
	m := sendKeys(newTestMenu(t), keyDown, keyEnter)
	assert.Equal(t, t2048.IDEndless, m.Result().GameID)
}

func TestMenuSelectLevel(t *testing.T) {
	m := sendKeys(newTestMenu(t), keyDown, keyDown, keyEnter)
	require.True(t, m.inLevelSelect)
	assert.Contains(t, m.View(), "Warm-up")

	m = sendKeys(m, keyDown, keyDown, keyEnter)
	r := m.Result()
	assert.Equal(t, t2048.IDCampaign, r.GameID)
	assert.Equal(t, 3, r.StartLevel)
}

func TestMenuLevelSelectBack(t *testing.T) {
	m := sendKeys(newTestMenu(t), keyDown, keyDown, keyEnter, keyEsc)
	assert.False(t, m.inLevelSelect)
	assert.False(t, m.done)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendKeys(newTestMenu(t), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Result().WantsScoreboard)

	m = sendKeys(newTestMenu(t), keyDown, keyDown, keyDown, keyEnter)
	assert.True(t, m.Result().WantsScoreboard)

	m = sendKeys(newTestMenu(t), runeKey('q'))
	assert.True(t, m.Result().Quit)

	assert.True(t, newTestMenu(t).Result().Quit, "no choice made yet")
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := newTestMenu(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = sendKeys(next.(MenuModel), keyEnter)

	assert.Equal(t, 120, m.Result().Config.ScreenW)
	assert.Equal(t, 40, m.Result().Config.ScreenH)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   ab", centerText("ab", 8))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}
