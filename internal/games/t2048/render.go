package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
	openMarker = "**"
)

// cellWidth returns the configured cell width, including the left border.
func (g *Game) cellWidth() int {
	return max(g.cfg.Display.CellWidth, 3)
}

// boardDims returns the board size in screen cells, borders included.
func (g *Game) boardDims() (int, int) {
	n := g.cfg.Board.Size
	return n*g.cellWidth() + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardDims()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.eng.Score()))

	// Level/Target info (campaign) or Max tile (endless)
	var infoStr string
	if g.mode == ModeCampaign && g.currentTarget > 0 {
		infoStr = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, len(g.levels), g.currentTarget)
	} else {
		infoStr = fmt.Sprintf("Max: %d", g.eng.MaxTile())
	}
	dst.DrawText(max(boardX+boardW-len(infoStr), boardX), 1, infoStr)

	modeStr := fmt.Sprintf("Campaign  Moves: %d", g.moves)
	if g.mode == ModeEndless {
		modeStr = fmt.Sprintf("Endless  Moves: %d", g.moves)
	}
	dst.DrawText(boardX+(boardW-len(modeStr))/2, 2, modeStr)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.eng.Size()
	cw := g.cellWidth()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cw
			py := boardY + y*cellHeight
			dst.Set(px, py, gridCorner(x, y, n))

			if x < n {
				dst.DrawHLine(px+1, py, cw-1, '─')
			}
			if y < n {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	open := make(map[engine.Cell]bool)
	if g.showOpen {
		for _, c := range g.eng.OpenCells() {
			open[c] = true
		}
	}

	for r := range n {
		for c := range n {
			val := g.eng.Value(r, c)

			var text string
			color := core.TileColor(val)
			switch {
			case open[engine.Cell{Row: r, Col: c}]:
				text = openMarker
				color = core.ColorCyan
			case val == 0:
				text = g.cfg.Display.EmptyCell
			default:
				text = strconv.Itoa(val)
			}

			// Center the value in the cell
			cellX := boardX + c*cw + 1
			cellY := boardY + r*cellHeight + 1
			padLeft := max((cw-1-len(text))/2, 0)
			dst.DrawTextColor(cellX+padLeft, cellY, text, color)
		}
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= len(g.levels)-1 {
			drawOverlay(dst, board, targetStr, "Final level complete!")
		} else {
			drawOverlay(dst, board, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won:
		drawOverlay(dst, board, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.eng.MaxTile())
		drawOverlay(dst, board, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | O: Open cells | P: Pause | R: Restart | Q: Quit"
}
