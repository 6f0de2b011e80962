package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/tetrigo/internal/game"
)

var (
	// colors maps palette indexes to ANSI 256 colors.
	colors = [game.PaletteSize]string{
		"0",   // background
		"196", // red
		"34",  // green
		"21",  // blue
		"208", // orange
		"226", // yellow
		"129", // purple
		"44",  // cyan
	}

	gridColor   = lipgloss.Color("238")
	shadowColor = lipgloss.Color("244")

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)
)

// RenderBoard draws the locked cells with the active piece on top and a
// drop shadow where a hard drop would land.
func RenderBoard(snap game.Snapshot) string {
	if snap.Board == nil {
		return boardStyle.Render("")
	}

	var sb strings.Builder
	grid := snap.Composite()
	shadow := snap.Shadow()
	empty := lipgloss.NewStyle().Foreground(gridColor).Render("· ")
	ghost := lipgloss.NewStyle().Foreground(shadowColor).Render("[]")

	for y, row := range grid {
		for x, c := range row {
			switch {
			case c != game.Empty:
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(colors[c])).
					Render("██"))
			case shadow[[2]int{y, x}]:
				sb.WriteString(ghost)
			default:
				sb.WriteString(empty)
			}
		}
		if y < len(grid)-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

func RenderInfo(playerName string, snap game.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("TETRIGO") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Player: %s", playerName)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", snap.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level: %d", snap.Level)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", snap.Lines)) + "\n")

	return sb.String()
}

func RenderGameOver(score int) string {
	return gameOverStyle.Render(fmt.Sprintf("Game Over! Score: %d", score))
}

func RenderControls() string {
	return infoStyle.Render(`
Controls:
  ← → / H L          Move
  ↓ / J              Soft drop
  ↑ / X              Rotate
  Space / C          Hard drop
  Q / Esc / Ctrl+C   Quit
`)
}
