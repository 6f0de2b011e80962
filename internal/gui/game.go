// Package gui runs the engine in a window with ebiten: one controller tick
// per ebiten update, cells drawn as filled squares under a gray grid.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hersh/tetrigo/internal/game"
	"github.com/hersh/tetrigo/internal/log"
	"golang.org/x/image/colornames"
)

// BlockSize is the pixel pitch of one cell; cells are drawn one pixel
// smaller to leave a gap.
const BlockSize = 30

var (
	palette = [game.PaletteSize]color.Color{
		colornames.Black,
		colornames.Red,
		colornames.Green,
		colornames.Blue,
		colornames.Darkorange,
		colornames.Yellow,
		colornames.Darkviolet,
		colornames.Darkturquoise,
	}

	gridLineColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

var keyIntents = []struct {
	key    ebiten.Key
	intent game.Intent
}{
	{ebiten.KeyArrowLeft, game.IntentMoveLeft},
	{ebiten.KeyArrowRight, game.IntentMoveRight},
	{ebiten.KeyArrowDown, game.IntentSoftDrop},
	{ebiten.KeyArrowUp, game.IntentRotate},
	{ebiten.KeySpace, game.IntentHardDrop},
}

// Game implements ebiten.Game around a controller it exclusively drives.
type Game struct {
	ctrl *game.Controller
	now  func() time.Time

	// sleep holds the window on the final score. Nothing else runs meanwhile.
	sleep func(time.Duration)

	// overDrawn is set once the game-over frame has been shown.
	overDrawn bool
}

func NewGame(ctrl *game.Controller) *Game {
	return &Game{
		ctrl:  ctrl,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// ScreenSize returns the window size in pixels for the controller's board.
func ScreenSize(cfg game.Config) (int, int) {
	return cfg.Width * BlockSize, cfg.Height * BlockSize
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var pressed []game.Intent
	for _, k := range keyIntents {
		if inpututil.IsKeyJustPressed(k.key) {
			pressed = append(pressed, k.intent)
		}
	}
	g.step(pressed)
	return nil
}

// step is one frame of game logic.
func (g *Game) step(intents []game.Intent) {
	if g.ctrl.State() == game.StateGameOver {
		// Wait until Draw has shown the final score.
		if !g.overDrawn {
			return
		}
		g.sleep(g.ctrl.Config().GameOverPause)
		g.overDrawn = false
		g.ctrl.Reset(g.now())
		return
	}

	for _, in := range intents {
		g.ctrl.Handle(in)
	}
	g.ctrl.Tick(g.now())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette[game.Empty])
	snap := g.ctrl.Snapshot()

	for y, row := range snap.Board.Cells {
		for x, c := range row {
			drawCell(screen, x, y, c)
		}
	}
	drawGridLines(screen, snap.Board.Width, snap.Board.Height)
	if snap.Piece != nil {
		snap.Piece.Cells(0, 0, func(x, y int) bool {
			drawCell(screen, x, y, snap.Piece.Color)
			return true
		})
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", snap.Level), 10, 40)

	if snap.State == game.StateGameOver {
		g.markOverDrawn(snap)
		w, h := ScreenSize(g.ctrl.Config())
		msg := fmt.Sprintf("Game Over! Score: %d", snap.Score)
		// The debug font is 6x16.
		ebitenutil.DebugPrintAt(screen, msg, (w-len(msg)*6)/2, h/2-8)
	}
}

// markOverDrawn records that the game-over frame for snap has been drawn.
func (g *Game) markOverDrawn(snap game.Snapshot) {
	if g.overDrawn {
		return
	}
	g.overDrawn = true
	log.Info("game over: score %d, level %d", snap.Score, snap.Level)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenSize(g.ctrl.Config())
}

// cellRect returns the pixel rectangle of board cell (x, y).
func cellRect(x, y int) (px, py, w, h float32) {
	return float32(x * BlockSize), float32(y * BlockSize), BlockSize - 1, BlockSize - 1
}

func drawCell(screen *ebiten.Image, x, y int, c game.Color) {
	if !c.Valid() {
		return
	}
	px, py, w, h := cellRect(x, y)
	vector.DrawFilledRect(screen, px, py, w, h, palette[c], false)
}

func drawGridLines(screen *ebiten.Image, cols, rows int) {
	width := float32(cols * BlockSize)
	height := float32(rows * BlockSize)
	for x := 0; x <= cols; x++ {
		fx := float32(x * BlockSize)
		vector.StrokeLine(screen, fx, 0, fx, height, 1, gridLineColor, false)
	}
	for y := 0; y <= rows; y++ {
		fy := float32(y * BlockSize)
		vector.StrokeLine(screen, 0, fy, width, fy, 1, gridLineColor, false)
	}
}
