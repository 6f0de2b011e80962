package game

import (
	"math/rand"
	"time"
)

// Rand is the randomness the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// PieceGenerator spawns pieces with a uniformly random shape and a uniformly
// random non-background color. Two generators built from the same seed produce
// identical sequences.
type PieceGenerator struct {
	rng Rand
}

// NewPieceGenerator creates a generator drawing from rng.
func NewPieceGenerator(rng Rand) *PieceGenerator {
	return &PieceGenerator{rng: rng}
}

// NewSeededPieceGenerator creates a generator over math/rand seeded with seed.
// A zero seed is replaced by the current time.
func NewSeededPieceGenerator(seed int64) *PieceGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewPieceGenerator(rand.New(rand.NewSource(seed)))
}

// Spawn returns a new piece with its origin at (x, y).
func (pg *PieceGenerator) Spawn(x, y int) *Piece {
	t := PieceTypes[pg.rng.Intn(len(PieceTypes))]
	color := Color(1 + pg.rng.Intn(PaletteSize-1))
	return NewPiece(t, color, x, y)
}
