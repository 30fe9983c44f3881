package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghostflap/internal/core"
	"github.com/vovakirdan/ghostflap/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Drawing runes.
const (
	actorRune = '@'
	ghostRune = 'o'
	pipeRune  = '█'
)

// drawRun renders one run state onto the screen buffer. Ghosts are drawn
// first so the actor always wins the cell when they overlap.
func drawRun(s *core.Screen, p sim.Params, st sim.RunState, best int, paused bool) {
	s.Clear()

	drawPipes(s, p, st)
	drawGhosts(s, st)
	drawActor(s, st)
	drawHUD(s, st, best)

	if paused {
		drawPauseOverlay(s)
	}
	if st.Over {
		drawGameOverOverlay(s, st)
	}
}

// drawPipes renders each active obstacle as two vertical bars around its
// gap.
func drawPipes(s *core.Screen, p sim.Params, st sim.RunState) {
	for _, o := range st.Obstacles {
		left := int(o.X)
		width := int(p.PipeWidth)
		gapTop := int(o.GapTop())
		gapBottom := int(o.GapBottom())

		color := core.ColorGreen
		if o.Passed {
			color = core.ColorGray
		}

		top := core.NewRect(left, 0, width, gapTop)
		s.DrawRect(top, pipeRune, color)

		bottom := core.NewRect(left, gapBottom+1, width, s.Height()-gapBottom-1)
		s.DrawRect(bottom, pipeRune, color)
	}
}

// drawGhosts renders echoes of previous runs. Finished ghosts are not
// drawn.
func drawGhosts(s *core.Screen, st sim.RunState) {
	for _, g := range st.Ghosts {
		if g.Finished {
			continue
		}
		s.SetColored(int(st.Actor.X), int(g.Y), ghostRune, core.ColorGray)
	}
}

// drawActor renders the player. While the damage indicator is active the
// actor flashes red.
func drawActor(s *core.Screen, st sim.RunState) {
	color := core.ColorBrightYellow
	if st.Damage > 0 {
		color = core.ColorBrightRed
	}
	s.SetColored(int(st.Actor.X), int(st.Actor.Y), actorRune, color)
}

// drawHUD renders the status line at the top of the screen.
func drawHUD(s *core.Screen, st sim.RunState, best int) {
	hud := fmt.Sprintf(" SCORE %d  LIVES %s  BEST %d ", st.Score, strings.Repeat("♥", st.Lives), best)
	s.DrawTextColored(0, 0, hud, core.ColorWhite)

	progress := fmt.Sprintf(" %d/%d ", st.PassedCount, st.TotalObstacles)
	s.DrawTextColored(s.Width()-len(progress), 0, progress, core.ColorGray)
}

// drawPauseOverlay renders the pause indicator.
func drawPauseOverlay(s *core.Screen) {
	s.DrawTextCentered(s.Height()/2, "| PAUSED |")
}

// drawGameOverOverlay renders the end-of-run box.
func drawGameOverOverlay(s *core.Screen, st sim.RunState) {
	w, h := 34, 7
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)

	title := "GAME OVER"
	titleColor := core.ColorBrightRed
	if st.Won {
		title = "YOU WIN"
		titleColor = core.ColorBrightYellow
	}

	cx := box.X + w/2
	s.DrawTextColored(cx-len(title)/2, box.Y+1, title, titleColor)

	score := fmt.Sprintf("score: %d", st.Score)
	s.DrawText(cx-len(score)/2, box.Y+3, score)

	hint := "enter: replay with ghost  q: quit"
	s.DrawTextColored(cx-len(hint)/2, box.Y+5, hint, core.ColorGray)
}

// drawSplash renders the title screen shown before the first run.
func drawSplash(s *core.Screen, best, ghosts int) {
	s.Clear()

	cy := s.Height() / 2
	s.DrawTextCentered(cy-4, "G H O S T F L A P")
	s.DrawTextCentered(cy-2, "fly through the pipes; your past runs fly with you")

	if best > 0 {
		s.DrawTextCentered(cy, fmt.Sprintf("best score: %d", best))
	}
	if ghosts > 0 {
		s.DrawTextCentered(cy+1, fmt.Sprintf("ghosts this session: %d", ghosts))
	}

	s.DrawTextCentered(cy+3, "space/w/up: flap   p: pause   q: quit")
	s.DrawTextCentered(cy+5, "press enter to start")
}
