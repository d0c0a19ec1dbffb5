package editor

import (
	"unicode/utf8"

	"github.com/ryanfowler/wrapline/internal/wrap"
)

// Cursor tracks the logical offset of the terminal cursor within the line
// and relocates it using relative motions only.
//
// After a write that exactly fills a row the cursor is pending: its offset
// is the start of the next row, but the terminal still shows it on the
// last column of the filled row. The same state is used when jumping to
// the start of a row that has never been drawn.
type Cursor struct {
	screen  Screen
	index   int
	width   int
	pending bool
	drawn   int // deepest row advanced onto
}

// NewCursor returns a Cursor at offset 0, which must be column 0 of the
// terminal cursor's current row.
func NewCursor(s Screen, width int) *Cursor {
	return &Cursor{screen: s, width: width}
}

// Index returns the cursor's logical offset.
func (c *Cursor) Index() int {
	return c.index
}

// Width returns the wrap width the cursor's position is computed against.
func (c *Cursor) Width() int {
	return c.width
}

// Pending reports whether the cursor is resting on the last column of a
// full row while logically at the start of the next.
func (c *Cursor) Pending() bool {
	return c.pending
}

// Position returns the logical row and column of the cursor.
func (c *Cursor) Position() wrap.Pos {
	return wrap.Position(c.index, c.width)
}

// Displayed returns the row and column the terminal cursor is shown on.
func (c *Cursor) Displayed() wrap.Pos {
	return wrap.Position(c.displayed(), c.width)
}

func (c *Cursor) displayed() int {
	if c.pending {
		return c.index - 1
	}
	return c.index
}

// Restart moves the terminal cursor to the start of a fresh row below every
// row drawn so far, and makes that offset 0 at the provided width. Only
// rows are counted on the way down: after a resize the terminal may
// already have clamped the cursor's column.
func (c *Cursor) Restart(width int) error {
	if down := c.drawn - c.Displayed().Row; down > 0 {
		if err := c.moveRows(down); err != nil {
			return err
		}
	}
	if err := c.screen.WriteLine(""); err != nil {
		return err
	}

	c.index = 0
	c.width = width
	c.pending = false
	c.drawn = 0
	return nil
}

// Jump moves the cursor by delta characters, emitting at most one vertical
// and one horizontal motion.
func (c *Cursor) Jump(delta int) error {
	target := c.index + delta
	if target < 0 {
		return &BoundsError{Op: "jump", Index: target, Lower: 0, Upper: -1}
	}

	to := wrap.Position(target, c.width)
	pending := false
	if to.Row > c.drawn {
		// Only the start of the row after the last drawn one can be
		// reached, by resting on the final column above it.
		if to.Row > c.drawn+1 || to.Col != 0 {
			upper := wrap.Index(c.drawn+1, 0, c.width)
			return &BoundsError{Op: "jump", Index: target, Lower: 0, Upper: upper}
		}
		to = wrap.Position(target-1, c.width)
		pending = true
	}

	from := c.Displayed()
	if err := c.moveRows(to.Row - from.Row); err != nil {
		return err
	}
	if err := c.moveCols(to.Col - from.Col); err != nil {
		return err
	}

	c.index = target
	c.pending = pending
	return nil
}

// JumpChecked moves the cursor by delta characters, clamping the result to
// [lower, upper].
func (c *Cursor) JumpChecked(delta, lower, upper int) error {
	if lower > upper {
		return &BoundsError{Op: "jump", Index: c.index + delta, Lower: lower, Upper: upper}
	}
	target := min(max(c.index+delta, lower), upper)
	return c.Jump(target - c.index)
}

// Write draws s at the cursor. s must fit in the remainder of the row.
func (c *Cursor) Write(s string) error {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return nil
	}
	if err := c.checkFits(n); err != nil {
		return err
	}
	if err := c.screen.Write(s); err != nil {
		return err
	}
	c.advance(n)
	return nil
}

// WriteLine draws s at the cursor and moves to the start of the next row.
func (c *Cursor) WriteLine(s string) error {
	n := utf8.RuneCountInString(s)
	if n > 0 {
		if err := c.checkFits(n); err != nil {
			return err
		}
	}
	if err := c.screen.WriteLine(s); err != nil {
		return err
	}
	if n > 0 {
		c.advance(n)
	}

	if !c.pending {
		c.index = wrap.NextRow(c.index, c.width)
	}
	c.pending = false
	c.drawn = max(c.drawn, c.Position().Row)
	return nil
}

// ClearLine clears the row the cursor is displayed on and moves to its
// start.
func (c *Cursor) ClearLine() error {
	if err := c.screen.ClearLine(); err != nil {
		return err
	}
	c.index = wrap.RowStart(c.displayed(), c.width)
	c.pending = false
	return nil
}

func (c *Cursor) checkFits(n int) error {
	if c.pending || c.Position().Col+n > c.width {
		return overflowError{index: c.index, count: n, width: c.width}
	}
	return nil
}

func (c *Cursor) advance(n int) {
	c.index += n
	c.pending = c.Position().Col == 0
}

func (c *Cursor) moveRows(n int) error {
	switch {
	case n < 0:
		return c.screen.MoveUp(-n)
	case n > 0:
		return c.screen.MoveDown(n)
	}
	return nil
}

func (c *Cursor) moveCols(n int) error {
	switch {
	case n < 0:
		return c.screen.MoveLeft(-n)
	case n > 0:
		return c.screen.MoveRight(n)
	}
	return nil
}
