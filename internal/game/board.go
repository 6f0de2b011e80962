package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	BoardWidth  = 10
	BoardHeight = 20
)

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrOverlap     = errors.New("cell already occupied")
)

// Board is the grid of locked cells. Row 0 is the top. Dimensions are fixed
// at construction.
type Board struct {
	Cells  [][]Color
	Width  int
	Height int
}

func NewBoard() *Board {
	return NewBoardSize(BoardWidth, BoardHeight)
}

func NewBoardSize(width, height int) *Board {
	cells := make([][]Color, height)
	for i := range cells {
		cells[i] = make([]Color, width)
	}
	return &Board{
		Cells:  cells,
		Width:  width,
		Height: height,
	}
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the color at (x, y), or Empty outside the board.
func (b *Board) At(x, y int) Color {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.Cells[y][x]
}

// Fill sets a single cell. It is used to lay out fixtures and never by the
// falling-piece path, which goes through Lock.
func (b *Board) Fill(x, y int, c Color) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("fill (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	if !c.Valid() {
		return fmt.Errorf("fill (%d,%d): %v: %w", x, y, c, ErrInvalidColor)
	}
	b.Cells[y][x] = c
	return nil
}

// Collides reports whether p shifted by (dx, dy) would leave the board
// horizontally, go below the floor, or overlap a locked cell. Cells above
// row 0 only take the horizontal check. Neither b nor p is modified.
func (b *Board) Collides(p *Piece, dx, dy int) bool {
	hit := false
	p.Cells(dx, dy, func(x, y int) bool {
		if x < 0 || x >= b.Width || y >= b.Height {
			hit = true
		} else if y >= 0 && b.Cells[y][x] != Empty {
			hit = true
		}
		return !hit
	})
	return hit
}

// RestingRow returns the row p would settle at if dropped straight down
// from its current position.
func (b *Board) RestingRow(p *Piece) int {
	dy := 0
	for !b.Collides(p, 0, dy+1) {
		dy++
	}
	return p.Y + dy
}

// Lock writes p's color into every cell it covers. The placement must
// already be legal; if any cell is off the board or occupied, nothing is
// written and an error is returned.
func (b *Board) Lock(p *Piece) error {
	var err error
	p.Cells(0, 0, func(x, y int) bool {
		switch {
		case !b.InBounds(x, y):
			err = fmt.Errorf("lock %v at (%d,%d): %w", p.Type, x, y, ErrOutOfBounds)
		case b.Cells[y][x] != Empty:
			err = fmt.Errorf("lock %v at (%d,%d): %w", p.Type, x, y, ErrOverlap)
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if !p.Color.IsPieceColor() {
		return fmt.Errorf("lock %v: %v: %w", p.Type, p.Color, ErrInvalidColor)
	}

	p.Cells(0, 0, func(x, y int) bool {
		b.Cells[y][x] = p.Color
		return true
	})
	return nil
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.Cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row and drops the rows above it, inserting
// empty rows at the top. Each original row is tested exactly once, so
// several full rows, contiguous or not, go in a single call. It returns the
// number of rows removed.
func (b *Board) ClearLines() int {
	linesCleared := 0
	kept := make([][]Color, 0, b.Height)

	for y := 0; y < b.Height; y++ {
		if b.rowFull(y) {
			linesCleared++
			continue
		}
		kept = append(kept, b.Cells[y])
	}
	if linesCleared == 0 {
		return 0
	}

	newCells := make([][]Color, 0, b.Height)
	for i := 0; i < linesCleared; i++ {
		newCells = append(newCells, make([]Color, b.Width))
	}
	b.Cells = append(newCells, kept...)
	return linesCleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.Cells {
		clear(row)
	}
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	cells := make([][]Color, b.Height)
	for y := range cells {
		cells[y] = make([]Color, b.Width)
		copy(cells[y], b.Cells[y])
	}
	return &Board{
		Cells:  cells,
		Width:  b.Width,
		Height: b.Height,
	}
}

// String renders the grid as rows of '.' and palette digits.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.Cells {
		for _, c := range row {
			if c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c))
			}
		}
		if y < b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
