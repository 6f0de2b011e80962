package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays vals in order, wrapping around, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// boardFromRows builds a board from text rows: '.' is empty, '#' is Red and
// the digits 1-7 are palette indexes.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	require.NotEmpty(t, rows)
	b := NewBoardSize(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, b.Width, "row %d", y)
		for x, ch := range row {
			switch {
			case ch == '.':
			case ch == '#':
				require.NoError(t, b.Fill(x, y, Red))
			case ch >= '1' && ch <= '7':
				require.NoError(t, b.Fill(x, y, Color(ch-'0')))
			default:
				t.Fatalf("bad cell %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return b
}

// fillRow paints every cell of row y except the listed columns.
func fillRow(t *testing.T, b *Board, y int, color Color, skip ...int) {
	t.Helper()
	skipped := make(map[int]bool, len(skip))
	for _, x := range skip {
		skipped[x] = true
	}
	for x := 0; x < b.Width; x++ {
		if !skipped[x] {
			require.NoError(t, b.Fill(x, y, color))
		}
	}
}
