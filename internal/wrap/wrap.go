// Package wrap maps between logical offsets in a single line of text and
// the (row, column) positions that line occupies when wrapped at a fixed
// terminal width.
//
// All row and column arithmetic for the editor lives here.
package wrap

// Pos is a zero-based row and column on the terminal, relative to the
// row the line starts on.
type Pos struct {
	Row int
	Col int
}

// Position returns the row and column of the provided offset when wrapping
// every width characters. An offset that is an exact multiple of width
// maps to column 0 of a new row. Width must be positive.
func Position(index, width int) Pos {
	return Pos{Row: index / width, Col: index % width}
}

// Index returns the offset of the provided row and column.
func Index(row, col, width int) int {
	return row*width + col
}

// RowStart returns the offset of the first character on the row containing
// index.
func RowStart(index, width int) int {
	return Index(Position(index, width).Row, 0, width)
}

// NextRow returns the offset of the first character on the row after the
// one containing index.
func NextRow(index, width int) int {
	return Index(Position(index, width).Row+1, 0, width)
}

// LastRow returns the row holding the final character of a line of the
// provided length, or 0 for an empty line. A line that exactly fills its
// last row does not occupy the row after it.
func LastRow(length, width int) int {
	if length == 0 {
		return 0
	}
	return Position(length-1, width).Row
}

// Rows returns the number of rows a line of the provided length occupies.
// An empty line still occupies one row.
func Rows(length, width int) int {
	return LastRow(length, width) + 1
}
