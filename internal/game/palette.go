package game

import "fmt"

// Color is an index into the 8-entry palette. Index 0 is the background.
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Blue
	Orange
	Yellow
	Purple
	Cyan
)

// PaletteSize counts the background entry.
const PaletteSize = 8

var colorNames = [PaletteSize]string{
	"empty", "red", "green", "blue", "orange", "yellow", "purple", "cyan",
}

func (c Color) String() string {
	if c.Valid() {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Valid reports whether c is a palette index.
func (c Color) Valid() bool {
	return c < PaletteSize
}

// IsPieceColor reports whether c may be assigned to a spawned piece.
func (c Color) IsPieceColor() bool {
	return c != Empty && c.Valid()
}
