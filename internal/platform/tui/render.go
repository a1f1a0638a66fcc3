package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/torgrid/torsnake/internal/core"
	"github.com/torgrid/torsnake/internal/render"
)

const hudHeight = 2 // title line plus separator

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// draw paints the current state into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()

	f := render.Layout(m.state, m.world, m.cellSize)

	m.drawHUD()

	requiredW := f.World.W
	requiredH := f.World.H + hudHeight
	if m.screen.Width() < requiredW || m.screen.Height() < requiredH {
		m.drawOverlay("Window too small", "Resize to continue")
		return
	}

	// Center the world below the HUD.
	offX := (m.screen.Width() - f.World.W) / 2
	offY := hudHeight + (m.screen.Height()-hudHeight-f.World.H)/2
	offY = core.Clamp(offY, hudHeight, m.screen.Height())

	m.screen.FillRect(f.World.Offset(offX, offY), '·', core.ColorGray)
	for _, seg := range f.Segments {
		m.screen.FillRect(seg.Offset(offX, offY), '█', core.ColorGreen)
	}
	m.screen.FillRect(f.Head.Offset(offX, offY), '█', core.ColorBrightGreen)
	if !f.Full {
		m.screen.FillRect(f.Apple.Offset(offX, offY), '█', core.ColorBrightRed)
	}

	if f.Full {
		// The engine only signals that no apple fits; calling that a
		// stalemate is this layer's choice.
		m.drawOverlay("Board full", "The snake has nowhere left to grow")
	}
}

// drawHUD draws the title line and separator.
func (m Model) drawHUD() {
	m.screen.DrawText(1, 0, "torsnake")
	for x := 0; x < m.screen.Width(); x++ {
		m.screen.SetCell(x, 1, '─', core.ColorGray)
	}
}

// drawOverlay draws a centered two-line message box.
func (m Model) drawOverlay(line1, line2 string) {
	w := len(line1)
	if len(line2) > w {
		w = len(line2)
	}
	box := core.NewRect(
		(m.screen.Width()-(w+4))/2,
		(m.screen.Height()-5)/2,
		w+4, 5,
	)

	m.screen.FillRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, line1)
	m.screen.DrawTextCentered(box.Y+3, line2)
}

// RenderScreen converts a screen buffer to a styled string. Adjacent
// cells with the same color are grouped to keep the escape-sequence
// overhead down.
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
