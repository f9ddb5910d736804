package camelrace

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/camelrace/internal/core"
	"github.com/vovakirdan/camelrace/internal/race"
)

// Layout constants
const (
	cellWidth  = 4 // Columns per board cell including its left border
	trackWidth = race.BoardSize*cellWidth + 1
	minScreenW = trackWidth + 2
	minScreenH = 18
)

// camelColors maps camels to their display colour.
var camelColors = map[race.CamelName]core.Color{
	race.White:  core.ColorWhite,
	race.Orange: core.ColorOrange,
	race.Yellow: core.ColorYellow,
	race.Green:  core.ColorGreen,
	race.Blue:   core.ColorBlue,
}

// Render draws the board, stacks, dice and status into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	left := (g.screenW - trackWidth) / 2
	s := g.engine.State()

	g.renderHUD(dst, left, &s)

	// Stacks grow upward from just above the track.
	trackY := 4 + race.CamelCount
	g.renderStacks(dst, left, trackY-1, &s)
	g.renderTrack(dst, left, trackY, &s)
	g.renderDice(dst, left, trackY+5, &s)
	if g.cfg.Render.ShowLastMove {
		g.renderLastMove(dst, left, trackY+7)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, leg and roll counters and autoplay status.
func (g *Game) renderHUD(dst *core.Screen, left int, s *race.State) {
	dst.DrawTextCentered(0, g.Title())

	status := fmt.Sprintf("Leg %d   Rolled %d/%d", g.engine.Leg(), s.Dice.Count(), race.CamelCount)
	if g.engine.Phase() == race.PhaseLegComplete {
		status += "   leg complete, advance to start the next"
	}
	dst.DrawText(left, 1, status)

	if g.autoplay {
		label, color := "AUTO", core.ColorBrightGreen
		if g.paused {
			label, color = "PAUSED", core.ColorGray
		}
		dst.DrawTextColored(left+trackWidth-len(label), 1, label, color)
	}
}

// renderStacks draws each cell's camels bottom to top starting at baseY.
func (g *Game) renderStacks(dst *core.Screen, left, baseY int, s *race.State) {
	for p := range race.BoardSize {
		x := left + p*cellWidth + 1
		for _, c := range s.CamelsAt(p) {
			label := strings.ToUpper(string(c.Name[:1]))
			if g.cfg.Render.ShowRanks {
				label += fmt.Sprint(c.Rank)
			}
			dst.DrawTextColored(x+1, baseY-c.Rank, label, camelColors[c.Name])
		}
	}
}

// renderTrack draws the ring as a row of numbered cells with markers and
// the editing cursor below it.
func (g *Game) renderTrack(dst *core.Screen, left, y int, s *race.State) {
	dst.DrawBox(core.NewRect(left, y, trackWidth, 3), core.ColorGray)

	for p := range race.BoardSize {
		x := left + p*cellWidth
		if p > 0 {
			dst.SetColored(x, y, '┬', core.ColorGray)
			dst.SetColored(x, y+1, '│', core.ColorGray)
			dst.SetColored(x, y+2, '┴', core.ColorGray)
		}
		dst.DrawText(x+1, y+1, fmt.Sprintf("%2d", p))

		switch s.Board.ModifierAt(p) {
		case race.ModifierBoost:
			dst.SetColored(x+3, y+1, '+', core.ColorBrightGreen)
		case race.ModifierTrap:
			dst.SetColored(x+3, y+1, '-', core.ColorBrightRed)
		}
	}

	cursorX := left + g.cursor*cellWidth + 2
	dst.SetColored(cursorX, y+3, '^', core.ColorCyan)
}

// renderDice lists each camel's roll this leg.
func (g *Game) renderDice(dst *core.Screen, left, y int, s *race.State) {
	dst.DrawText(left, y, "Dice")
	x := left + 6
	for i, name := range race.CamelNames {
		value := "-"
		if v, ok := s.Dice.Rolled(name); ok {
			value = fmt.Sprint(v)
		}
		text := fmt.Sprintf("%d:%s %s", i+1, name, value)
		dst.DrawTextColored(x, y, text, camelColors[name])
		x += len(text) + 3
	}
}

// renderLastMove describes the most recent roll.
func (g *Game) renderLastMove(dst *core.Screen, left, y int) {
	move, ok := g.engine.LastMove()
	if !ok {
		return
	}
	dst.DrawText(left, y, DescribeMove(move))
}

// DescribeMove formats a move as one line of text.
func DescribeMove(m race.Move) string {
	text := fmt.Sprintf("%s rolled %d: %d -> %d", m.Camel, m.Die, m.From, m.To)
	if riders := len(m.Carried) - 1; riders > 0 {
		text += fmt.Sprintf(", carrying %d", riders)
	}
	switch m.Modifier {
	case race.ModifierTrap:
		text += ", trapped under the stack"
	case race.ModifierBoost:
		text += ", boosted onto the stack"
	}
	return text
}
