package game

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyShape   = errors.New("empty shape")
	ErrInvalidColor = errors.New("invalid piece color")
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceJ
	PieceL
	PieceS
	PieceZ

	// PieceCustom marks pieces built by NewPieceFromShape.
	PieceCustom PieceType = -1
)

// PieceTypes lists the canonical tetrominoes in spawn-table order.
var PieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceJ, PieceL, PieceS, PieceZ}

var pieceNames = map[PieceType]string{
	PieceI: "I",
	PieceO: "O",
	PieceT: "T",
	PieceJ: "J",
	PieceL: "L",
	PieceS: "S",
	PieceZ: "Z",

	PieceCustom: "custom",
}

func (t PieceType) String() string {
	if name, ok := pieceNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PieceType(%d)", int(t))
}

// Shape is a row-major occupancy matrix. Rows all have the same length.
type Shape [][]bool

var pieceShapes = map[PieceType]Shape{
	PieceI: {
		{true, true, true, true},
	},
	PieceO: {
		{true, true},
		{true, true},
	},
	PieceT: {
		{true, true, true},
		{false, true, false},
	},
	PieceJ: {
		{true, true, true},
		{true, false, false},
	},
	PieceL: {
		{true, true, true},
		{false, false, true},
	},
	PieceS: {
		{true, true, false},
		{false, true, true},
	},
	PieceZ: {
		{false, true, true},
		{true, true, false},
	},
}

// Shape returns a fresh copy of the canonical matrix for t.
func (t PieceType) Shape() Shape {
	return pieceShapes[t].Clone()
}

func (s Shape) Rows() int { return len(s) }

func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotated returns s turned 90 degrees clockwise. An R×C matrix becomes C×R
// with out[c][R-1-r] = s[r][c].
func (s Shape) Rotated() Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for c := range out {
		out[c] = make([]bool, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c][rows-1-r] = s[r][c]
		}
	}
	return out
}

func (s Shape) String() string {
	b := make([]byte, 0, s.Rows()*(s.Cols()+1))
	for i, row := range s {
		for _, cell := range row {
			if cell {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		if i < len(s)-1 {
			b = append(b, '\n')
		}
	}
	return string(b)
}

// Piece is the falling tetromino. X, Y locate the top-left corner of Shape
// on the board; Y grows downward.
type Piece struct {
	Type  PieceType
	Shape Shape
	Color Color
	X, Y  int
}

// NewPiece builds a canonical piece at (x, y).
func NewPiece(t PieceType, color Color, x, y int) *Piece {
	return &Piece{
		Type:  t,
		Shape: t.Shape(),
		Color: color,
		X:     x,
		Y:     y,
	}
}

// NewPieceFromShape builds a piece from an arbitrary matrix. The shape must be
// rectangular with at least one occupied cell and color must be a piece color.
func NewPieceFromShape(shape Shape, color Color, x, y int) (*Piece, error) {
	if shape.Rows() == 0 || shape.Cols() == 0 || shape.Count() == 0 {
		return nil, ErrEmptyShape
	}
	for i, row := range shape {
		if len(row) != shape.Cols() {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), shape.Cols(), ErrEmptyShape)
		}
	}
	if !color.IsPieceColor() {
		return nil, fmt.Errorf("%v: %w", color, ErrInvalidColor)
	}
	return &Piece{
		Type:  PieceCustom,
		Shape: shape.Clone(),
		Color: color,
		X:     x,
		Y:     y,
	}, nil
}

// Rotate turns the piece 90 degrees clockwise in place. Placement is not
// checked; callers validate with Board.Collides afterwards.
func (p *Piece) Rotate() {
	if p.Shape.Rows() == 0 || p.Shape.Cols() == 0 {
		panic("game: rotate of empty shape")
	}
	p.Shape = p.Shape.Rotated()
}

// RotateBack undoes Rotate by applying three more clockwise turns.
func (p *Piece) RotateBack() {
	for i := 0; i < 3; i++ {
		p.Rotate()
	}
}

func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Shape = p.Shape.Clone()
	return &cp
}

// Cells calls fn with the absolute board coordinates of every occupied cell
// when the piece is shifted by (dx, dy). Iteration stops when fn returns false.
func (p *Piece) Cells(dx, dy int, fn func(x, y int) bool) {
	for r, row := range p.Shape {
		for c, cell := range row {
			if !cell {
				continue
			}
			if !fn(p.X+c+dx, p.Y+r+dy) {
				return
			}
		}
	}
}
