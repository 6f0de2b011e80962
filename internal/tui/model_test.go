package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/tetrigo/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// fixedRand always yields 1, so every spawn is a green O piece.
type fixedRand struct{}

func (fixedRand) Intn(n int) int { return 1 % n }

func newTestModel(t *testing.T) (Model, *game.Controller) {
	t.Helper()
	ctrl := game.NewController(t0, game.WithRand(fixedRand{}))
	require.Equal(t, game.StateFalling, ctrl.State())
	return NewModel("tester", ctrl), ctrl
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestInitSchedulesFrame(t *testing.T) {
	m, _ := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestKeysMovePiece(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = update(t, m, key("left"))
	assert.Equal(t, 3, ctrl.Snapshot().Piece.X)

	m, _ = update(t, m, key("l"))
	m, _ = update(t, m, key("right"))
	assert.Equal(t, 5, ctrl.Snapshot().Piece.X)

	m, _ = update(t, m, key("down"))
	assert.Equal(t, 1, ctrl.Snapshot().Piece.Y)

	_, _ = update(t, m, key(" "))
	snap := ctrl.Snapshot()
	assert.Equal(t, game.Green, snap.Board.At(5, game.BoardHeight-1))
	assert.Equal(t, 0, snap.Piece.Y)
}

func TestFrameTicksController(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, cmd := update(t, m, FrameMsg(t0.Add(500*time.Millisecond)))
	assert.NotNil(t, cmd, "frames keep coming while playing")
	assert.Equal(t, 0, ctrl.Snapshot().Piece.Y)

	_, _ = update(t, m, FrameMsg(t0.Add(1001*time.Millisecond)))
	assert.Equal(t, 1, ctrl.Snapshot().Piece.Y)
}

func TestGameOverPauseAndRestart(t *testing.T) {
	m, ctrl := newTestModel(t)

	var cmd tea.Cmd
	for i := 0; i < game.BoardHeight && m.Screen() == ScreenPlaying; i++ {
		m, cmd = update(t, m, key(" "))
	}
	require.Equal(t, ScreenGameOver, m.Screen())
	assert.NotNil(t, cmd, "game over schedules the restart")
	assert.Contains(t, m.View(), "Game Over! Score: 0")

	m, cmd = update(t, m, FrameMsg(t0.Add(time.Hour)))
	assert.Nil(t, cmd, "no frames during the pause")

	before := ctrl.Snapshot()
	m, _ = update(t, m, key("left"))
	assert.Equal(t, before, ctrl.Snapshot(), "input ignored during the pause")

	m, cmd = update(t, m, RestartMsg(t0.Add(time.Hour)))
	assert.Equal(t, ScreenPlaying, m.Screen())
	assert.NotNil(t, cmd)
	assert.Equal(t, game.StateFalling, ctrl.State())
	assert.Equal(t, game.NewBoard().Cells, ctrl.Snapshot().Board.Cells)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		_, cmd := update(t, m, key(k))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestViewShowsScoreAndLevel(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "Level: 1")
	assert.Contains(t, view, "tester")
}

func TestControlsListEveryBinding(t *testing.T) {
	controls := RenderControls()
	for _, label := range []string{"← →", "H L", "↓ / J", "↑ / X", "Space / C", "Q / Esc / Ctrl+C"} {
		assert.Contains(t, controls, label)
	}
}

func TestKeyIntentDetectsGameOver(t *testing.T) {
	m, ctrl := newTestModel(t)
	for i := 0; i < game.BoardHeight && ctrl.State() == game.StateFalling; i++ {
		m, _ = update(t, m, key(" "))
	}
	require.Equal(t, game.StateGameOver, ctrl.State())
	assert.Equal(t, ScreenGameOver, m.Screen())
}
