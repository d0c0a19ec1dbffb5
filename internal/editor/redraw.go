package editor

import (
	"github.com/ryanfowler/wrapline/internal/wrap"
)

// updateTerminal repaints every row from the cursor's row to the end of the
// buffer, clears rows still holding text from a buffer of length prevLen,
// and then returns the cursor to its offset.
//
// An edit shifts every character after it, so the cursor must be at or
// before the first changed offset.
func (s *Session) updateTerminal(prevLen int) error {
	c := s.cursor
	origin := c.Index()
	width := c.Width()

	// Move to the start of the cursor's row. A pending cursor is still on
	// the row above, and that row has no room left.
	var err error
	if c.Pending() {
		err = c.WriteLine("")
	} else {
		err = c.Jump(-wrap.Position(origin, width).Col)
	}
	if err != nil {
		return err
	}

	end := s.buf.Len()
	for {
		start := c.Index()
		stop := min(wrap.NextRow(start, width), end)
		if err := c.ClearLine(); err != nil {
			return err
		}
		text := s.buf.Slice(start, stop)
		if stop == end {
			if err := c.Write(text); err != nil {
				return err
			}
			break
		}
		if err := c.WriteLine(text); err != nil {
			return err
		}
	}

	// Rows below the new end that held text before the edit.
	last := wrap.LastRow(prevLen, width)
	for c.Displayed().Row < last {
		if err := c.WriteLine(""); err != nil {
			return err
		}
		if err := c.ClearLine(); err != nil {
			return err
		}
	}

	return c.Jump(origin - c.Index())
}

// relayout renders the whole buffer again below the old rendering at a new
// width, keeping the cursor's logical offset. What the terminal did to the
// old rows is unknown, so they are left alone.
func (s *Session) relayout(width int) error {
	origin := s.cursor.Index()
	if err := s.cursor.Restart(width); err != nil {
		return err
	}
	if err := s.updateTerminal(0); err != nil {
		return err
	}
	return s.cursor.Jump(origin)
}
