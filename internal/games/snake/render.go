package snake

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.machine == nil {
		g.renderTooSmall(dst)
		return
	}

	snap := g.Snapshot()
	colors := g.theme.Colors

	reqW, _ := g.RequiredSize()
	offX := max(0, (dst.Width()-reqW)/2)
	board := core.NewRect(offX, hudHeight, reqW, g.rules.GridH+2)

	dst.DrawTextColored(offX, 0, g.hud(snap), core.Color(colors.HUD))
	dst.DrawBox(board, core.Color(colors.Border))

	for y := range g.rules.GridH {
		for x := range g.rules.GridW {
			g.drawCell(dst, board, core.Point{X: x, Y: y}, g.theme.Glyphs.Empty, core.Color(colors.Empty))
		}
	}

	if snap.HasFood {
		g.drawCell(dst, board, snap.Food, g.theme.Glyphs.Food, core.Color(colors.Food))
	}

	// Tail first so the head stays on top.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		glyph := g.theme.Glyphs.Body
		if i == 0 {
			glyph = g.theme.Glyphs.Head
		}
		g.drawCell(dst, board, snap.Segments[i], glyph, g.segmentColor(i, len(snap.Segments)))
	}

	switch snap.Status {
	case StatusOver:
		g.drawOverlay(dst, board, []string{"GAME OVER!", "Press R to restart"}, core.Color(colors.GameOver))
	case StatusPaused:
		g.drawOverlay(dst, board, []string{"PAUSED", "Press P to resume"}, core.Color(colors.Paused))
	}
}

// drawCell draws one grid cell. Points outside the grid are skipped.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, p core.Point, glyph string, c core.Color) {
	if p.X < 0 || p.X >= g.rules.GridW || p.Y < 0 || p.Y >= g.rules.GridH {
		return
	}
	cellW := max(minCellW, g.theme.CellWidth())
	dst.DrawTextColored(board.X+1+p.X*cellW, board.Y+1+p.Y, glyph, c)
}

// segmentColor blends from BodyFrom at the head to BodyTo at the tail.
// Non-hex theme colors fall back to Head for the head and BodyFrom elsewhere.
func (g *Game) segmentColor(i, n int) core.Color {
	colors := g.theme.Colors
	fr, fg, fb, okFrom := config.ParseHex(colors.BodyFrom)
	tr, tg, tb, okTo := config.ParseHex(colors.BodyTo)
	if !okFrom || !okTo {
		if i == 0 {
			return core.Color(colors.Head)
		}
		return core.Color(colors.BodyFrom)
	}
	if i == 0 && colors.Head != "" {
		return core.Color(colors.Head)
	}

	t := float64(i) / float64(n)
	return core.RGB(core.Lerp(fr, tr, t), core.Lerp(fg, tg, t), core.Lerp(fb, tb, t))
}

// drawOverlay draws a bordered message box centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines []string, c core.Color) {
	inner := max(1, board.W-6)
	var wrapped []string
	for _, line := range lines {
		wrapped = append(wrapped, strings.Split(wordwrap.String(line, inner), "\n")...)
	}

	boxW := 0
	for _, line := range wrapped {
		boxW = max(boxW, len([]rune(line)))
	}
	boxW += 4
	boxH := len(wrapped) + 2

	cx, cy := board.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawTextColored(box.X+1, y, strings.Repeat(" ", boxW-2), c)
	}
	dst.DrawBox(box, c)

	for i, line := range wrapped {
		x := box.X + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	reqW, reqH := g.RequiredSize()
	midY := dst.Height() / 2
	dst.DrawTextCentered(midY-1, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(midY, "Resize to continue", core.ColorGray)
	dst.DrawTextCentered(midY+1, fmt.Sprintf("need %dx%d, have %dx%d", reqW, reqH, g.screenW, g.screenH), core.ColorGray)
}
