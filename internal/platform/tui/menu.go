package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// menuEntry is one line of the main menu.
type menuEntry int

const (
	entryCampaign menuEntry = iota
	entryEndless
	entrySelectLevel
	entryScores
)

var menuEntries = []menuEntry{entryCampaign, entryEndless, entrySelectLevel, entryScores}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel lets users choose the game mode and starting level.
type MenuModel struct {
	levels        []t2048.Level
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	result        MenuResult
	done          bool
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string // Registry ID of the chosen mode
	StartLevel      int    // 0 = start from beginning, otherwise 1-based level
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		levels:    t2048.Levels(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleModeSelect(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) finish(r MenuResult) (tea.Model, tea.Cmd) {
	r.Config = m.config
	m.result = r
	m.done = true
	return m, tea.Quit
}

func (m MenuModel) handleModeSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		return m.finish(MenuResult{Quit: true})
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		return m.finish(MenuResult{WantsScoreboard: true})
	case MenuActionSelect:
		switch menuEntries[m.cursor] {
		case entryCampaign:
			return m.finish(MenuResult{GameID: t2048.IDCampaign})
		case entryEndless:
			return m.finish(MenuResult{GameID: t2048.IDEndless})
		case entrySelectLevel:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		case entryScores:
			return m.finish(MenuResult{WantsScoreboard: true})
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		return m.finish(MenuResult{Quit: true})
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.finish(MenuResult{
			GameID:     t2048.IDCampaign,
			StartLevel: m.levelCursor + 1, // 1-indexed
		})
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m MenuModel) entryLabel(e menuEntry) string {
	switch e {
	case entryCampaign:
		return fmt.Sprintf("Campaign (%d levels)", len(m.levels))
	case entryEndless:
		return "Endless Mode"
	case entrySelectLevel:
		return "Select Level..."
	default:
		return "High Scores"
	}
}

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, e := range menuEntries {
		b.WriteString(m.cursorLine(i == m.cursor, m.entryLabel(e)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuFooterStyle, "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		line := fmt.Sprintf("%2d. %s (Target: %d)", lvl.ID, lvl.Name, lvl.Target)
		b.WriteString(m.cursorLine(i == m.levelCursor, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuFooterStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) cursorLine(selected bool, label string) string {
	if selected {
		return centerStyled(menuCursorStyle, "> "+label, m.width)
	}
	return centerText("  "+label, m.width)
}

// Result returns the menu outcome. Quit is set if the menu was left without a choice.
func (m MenuModel) Result() MenuResult {
	if !m.done {
		return MenuResult{Config: m.config, Quit: true}
	}
	return m.result
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text by its visible width, then styles it.
func centerStyled(style lipgloss.Style, text string, width int) string {
	padding := max((width-lipgloss.Width(text))/2, 0)
	return strings.Repeat(" ", padding) + style.Render(text)
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
