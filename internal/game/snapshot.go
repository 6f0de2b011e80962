package game

import "time"

// Snapshot is a read-only view of a session for renderers.
type Snapshot struct {
	SessionID    string
	State        State
	Board        *Board
	Piece        *Piece
	RestingRow   int
	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration
}

// Composite returns the board grid with the active piece painted over it.
// Piece cells above row 0 are not shown.
func (s Snapshot) Composite() [][]Color {
	grid := s.Board.Clone().Cells
	if s.Piece == nil {
		return grid
	}
	s.Piece.Cells(0, 0, func(x, y int) bool {
		if s.Board.InBounds(x, y) {
			grid[y][x] = s.Piece.Color
		}
		return true
	})
	return grid
}

// Shadow reports the cells the falling piece would occupy after a hard
// drop, keyed by [y][x]. It is empty outside the Falling state.
func (s Snapshot) Shadow() map[[2]int]bool {
	cells := make(map[[2]int]bool)
	if s.Piece == nil || s.State != StateFalling {
		return cells
	}
	s.Piece.Cells(0, s.RestingRow-s.Piece.Y, func(x, y int) bool {
		cells[[2]int{y, x}] = true
		return true
	})
	return cells
}
