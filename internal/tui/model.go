package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/tetrigo/internal/game"
	"github.com/hersh/tetrigo/internal/log"
)

// --- Custom tea.Msg types ---

// FrameMsg drives one controller tick.
type FrameMsg time.Time

// RestartMsg ends the game-over pause.
type RestartMsg time.Time

// --- Screens ---

type Screen int

const (
	ScreenPlaying Screen = iota
	ScreenGameOver
)

// --- Model ---

type Model struct {
	screen     Screen
	playerName string
	ctrl       *game.Controller
	frame      time.Duration
	pause      time.Duration
	width      int
	height     int

	// final holds the snapshot shown during the game-over pause.
	final game.Snapshot
}

// NewModel wraps ctrl for the terminal. The controller must not be touched
// by anything else while the program runs.
func NewModel(playerName string, ctrl *game.Controller) Model {
	cfg := ctrl.Config()
	return Model{
		screen:     ScreenPlaying,
		playerName: playerName,
		ctrl:       ctrl,
		frame:      cfg.FrameInterval(),
		pause:      cfg.GameOverPause,
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd(m.frame)
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func restartCmd(pause time.Duration) tea.Cmd {
	return tea.Tick(pause, func(t time.Time) tea.Msg {
		return RestartMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	case RestartMsg:
		return m.handleRestart(time.Time(msg))
	}
	return m, nil
}

// keyIntents maps keys to controller intents.
var keyIntents = map[string]game.Intent{
	"left":  game.IntentMoveLeft,
	"h":     game.IntentMoveLeft,
	"right": game.IntentMoveRight,
	"l":     game.IntentMoveRight,
	"down":  game.IntentSoftDrop,
	"j":     game.IntentSoftDrop,
	"up":    game.IntentRotate,
	"x":     game.IntentRotate,
	" ":     game.IntentHardDrop,
	"c":     game.IntentHardDrop,
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	}

	// Input is not processed during the game-over pause.
	if m.screen != ScreenPlaying {
		return m, nil
	}
	if in, ok := keyIntents[msg.String()]; ok {
		m.ctrl.Handle(in)
		return m.enterGameOver()
	}
	return m, nil
}

// --- Frame handlers ---

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying {
		return m, nil
	}
	m.ctrl.Tick(now)
	m, cmd := m.enterGameOver()
	if cmd != nil {
		return m, cmd
	}
	return m, frameCmd(m.frame)
}

// enterGameOver switches to the game-over screen when the controller has
// ended the session. The frame chain stops until RestartMsg arrives.
func (m Model) enterGameOver() (Model, tea.Cmd) {
	if m.screen != ScreenPlaying || m.ctrl.State() != game.StateGameOver {
		return m, nil
	}
	m.final = m.ctrl.Snapshot()
	m.screen = ScreenGameOver
	log.Info("game over for %s: score %d, level %d", m.playerName, m.final.Score, m.final.Level)
	return m, restartCmd(m.pause)
}

func (m Model) handleRestart(now time.Time) (tea.Model, tea.Cmd) {
	if m.screen != ScreenGameOver {
		return m, nil
	}
	m.ctrl.Reset(now)
	m.screen = ScreenPlaying
	return m, frameCmd(m.frame)
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenPlaying:
		return m.renderPlaying()
	case ScreenGameOver:
		return m.renderGameOver()
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying() string {
	snap := m.ctrl.Snapshot()

	leftPanel := lipgloss.NewStyle().
		Width(32).
		Render(RenderInfo(m.playerName, snap) + "\n" + RenderControls())

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderBoard(snap))

	return m.renderCentered(lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
	))
}

func (m Model) renderGameOver() string {
	board := lipgloss.NewStyle().
		Padding(1, 2).
		Render(RenderBoard(m.final))

	return m.renderCentered(lipgloss.JoinVertical(
		lipgloss.Center,
		RenderGameOver(m.final.Score),
		board,
	))
}

// Screen reports which screen is showing.
func (m Model) Screen() Screen {
	return m.screen
}
