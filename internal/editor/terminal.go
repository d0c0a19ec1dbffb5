package editor

import (
	"context"

	"github.com/ryanfowler/wrapline/internal/key"
)

// Screen is the output side of a terminal that offers relative cursor
// motion only: there is no absolute positioning and no way to read back
// what is displayed.
//
// Writing the last column of a row leaves the cursor on that column; the
// next character is only drawn on the following row after a WriteLine.
type Screen interface {
	// Write draws s at the cursor, moving it right.
	Write(s string) error
	// WriteLine draws s, then moves to column 0 of the next row,
	// scrolling if the cursor is on the bottom row.
	WriteLine(s string) error
	// ClearLine erases the cursor's row and moves to its column 0.
	ClearLine() error

	MoveUp(n int) error
	MoveDown(n int) error
	MoveLeft(n int) error
	MoveRight(n int) error
}

// Terminal is a Screen that can also be read from.
type Terminal interface {
	Screen

	// ReadKey blocks until the next key event is available.
	ReadKey(ctx context.Context) (key.Key, error)
	// Width returns the current number of columns.
	Width() (int, error)
}
