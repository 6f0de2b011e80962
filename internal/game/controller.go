package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hersh/tetrigo/internal/log"
)

// State is the controller's position in the piece lifecycle. Between calls
// to Handle, Tick and Reset the controller is always Falling or GameOver;
// Spawning and Locking are passed through within a single call.
type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Intent is one discrete player action.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveLeft:
		return "move-left"
	case IntentMoveRight:
		return "move-right"
	case IntentSoftDrop:
		return "soft-drop"
	case IntentRotate:
		return "rotate"
	case IntentHardDrop:
		return "hard-drop"
	default:
		return fmt.Sprintf("Intent(%d)", int(i))
	}
}

// Config holds the geometry and timing of a session.
type Config struct {
	Width  int
	Height int
	SpawnX int
	SpawnY int
	// GameOverPause is how long frontends hold the final score before Reset.
	GameOverPause time.Duration
	// FrameRate is the number of ticks per second frontends drive.
	FrameRate int
}

func DefaultConfig() Config {
	return Config{
		Width:         BoardWidth,
		Height:        BoardHeight,
		SpawnX:        4,
		SpawnY:        0,
		GameOverPause: 3 * time.Second,
		FrameRate:     60,
	}
}

// FrameInterval is the duration of one tick at the configured frame rate.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

type Option func(*Controller)

func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

func WithGenerator(gen *PieceGenerator) Option {
	return func(c *Controller) {
		c.gen = gen
	}
}

// WithRand draws pieces from rng.
func WithRand(rng Rand) Option {
	return WithGenerator(NewPieceGenerator(rng))
}

// Controller owns the board and the active piece for one session at a time
// and is their only writer. It is not safe for concurrent use; frontends
// drive it from their single update loop.
type Controller struct {
	cfg       Config
	gen       *PieceGenerator
	board     *Board
	piece     *Piece
	scoring   Scoring
	state     State
	lastFall  time.Time
	sessionID uuid.UUID
}

// NewController starts a session at now.
func NewController(now time.Time, opts ...Option) *Controller {
	c := &Controller{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	if c.gen == nil {
		c.gen = NewSeededPieceGenerator(0)
	}
	c.Reset(now)
	return c
}

// Reset discards the session and starts a fresh one at now: empty board,
// score 0, level 1, base fall interval, and a newly spawned piece.
func (c *Controller) Reset(now time.Time) {
	if c.board != nil && c.board.Width == c.cfg.Width && c.board.Height == c.cfg.Height {
		c.board.Reset()
	} else {
		c.board = NewBoardSize(c.cfg.Width, c.cfg.Height)
	}
	c.scoring = NewScoring()
	c.piece = nil
	c.lastFall = now
	c.sessionID = uuid.New()
	c.state = StateSpawning
	log.Debug("session %s started (%dx%d)", c.sessionID, c.cfg.Width, c.cfg.Height)
	c.settle()
}

// Handle applies one intent to the falling piece. Intents are ignored in
// any other state. It reports whether the piece moved, rotated or dropped.
func (c *Controller) Handle(in Intent) bool {
	if c.state != StateFalling {
		return false
	}
	switch in {
	case IntentMoveLeft:
		return c.shift(-1, 0)
	case IntentMoveRight:
		return c.shift(1, 0)
	case IntentSoftDrop:
		return c.shift(0, 1)
	case IntentRotate:
		return c.rotate()
	case IntentHardDrop:
		c.hardDrop()
		return true
	}
	return false
}

// Tick advances the clock to now. Once more than the fall interval has
// passed since the last automatic descent, the piece drops one row or,
// when blocked, locks.
func (c *Controller) Tick(now time.Time) {
	if c.state != StateFalling {
		return
	}
	if now.Sub(c.lastFall) <= c.scoring.FallInterval {
		return
	}
	if c.shift(0, 1) {
		c.lastFall = now
		return
	}
	c.state = StateLocking
	c.settle()
}

func (c *Controller) shift(dx, dy int) bool {
	if c.board.Collides(c.piece, dx, dy) {
		return false
	}
	c.piece.X += dx
	c.piece.Y += dy
	return true
}

// rotate turns the piece clockwise and reverts when the result collides.
// There is no wall kick.
func (c *Controller) rotate() bool {
	c.piece.Rotate()
	if c.board.Collides(c.piece, 0, 0) {
		c.piece.RotateBack()
		return false
	}
	return true
}

func (c *Controller) hardDrop() {
	c.piece.Y = c.board.RestingRow(c.piece)
	c.state = StateLocking
	c.settle()
}

// settle runs the Locking and Spawning transitions until the controller is
// Falling or GameOver.
func (c *Controller) settle() {
	for {
		switch c.state {
		case StateLocking:
			c.lock()
		case StateSpawning:
			c.spawn()
		default:
			return
		}
	}
}

func (c *Controller) spawn() {
	c.piece = c.gen.Spawn(c.cfg.SpawnX, c.cfg.SpawnY)
	if c.board.Collides(c.piece, 0, 0) {
		c.state = StateGameOver
		log.Debug("session %s over: score %d, level %d, lines %d",
			c.sessionID, c.scoring.Score, c.scoring.Level, c.scoring.Lines)
		return
	}
	log.Trace("spawned %v (%v) at (%d,%d)", c.piece.Type, c.piece.Color, c.piece.X, c.piece.Y)
	c.state = StateFalling
}

func (c *Controller) lock() {
	if err := c.board.Lock(c.piece); err != nil {
		log.Error("session %s: %v", c.sessionID, err)
		c.state = StateGameOver
		return
	}
	log.Trace("locked %v at (%d,%d)", c.piece.Type, c.piece.X, c.piece.Y)

	if lines := c.board.ClearLines(); lines > 0 {
		leveled := c.scoring.Apply(lines)
		log.Debug("cleared %d line(s): score %d", lines, c.scoring.Score)
		if leveled {
			log.Debug("level %d, fall interval %s", c.scoring.Level, c.scoring.FallInterval)
		}
	}
	c.state = StateSpawning
}

func (c *Controller) State() State                { return c.state }
func (c *Controller) Score() int                  { return c.scoring.Score }
func (c *Controller) Level() int                  { return c.scoring.Level }
func (c *Controller) Lines() int                  { return c.scoring.Lines }
func (c *Controller) FallInterval() time.Duration { return c.scoring.FallInterval }
func (c *Controller) SessionID() uuid.UUID        { return c.sessionID }
func (c *Controller) Config() Config              { return c.cfg }

// Snapshot returns a copy of everything a renderer needs. Mutating it does
// not affect the controller.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:    c.sessionID.String(),
		State:        c.state,
		Board:        c.board.Clone(),
		Piece:        c.piece.Clone(),
		Score:        c.scoring.Score,
		Level:        c.scoring.Level,
		Lines:        c.scoring.Lines,
		FallInterval: c.scoring.FallInterval,
	}
	if c.piece != nil && c.state == StateFalling {
		s.RestingRow = c.board.RestingRow(c.piece)
	}
	return s
}
