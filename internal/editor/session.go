package editor

import (
	"context"
	"fmt"
	"io"

	"github.com/ryanfowler/wrapline/internal/key"
	"github.com/ryanfowler/wrapline/internal/wrap"
)

// State is the state of an input session.
type State int

const (
	Editing State = iota
	Submitted
)

// Session edits a single line on a Terminal, keeping the terminal in sync
// with every change. A Session is not safe for concurrent use, and nothing
// else may write to its Terminal while it runs.
type Session struct {
	term   Terminal
	buf    *Buffer
	cursor *Cursor
	state  State
}

// New returns a Session that edits a line following the provided prompt.
func New(t Terminal, prompt string) *Session {
	return &Session{term: t, buf: NewBuffer(prompt)}
}

// GetLine draws the prompt, handles keys until the line is submitted, and
// returns the line without its prompt.
//
// io.EOF is returned if the user ends input on an empty line, and
// ErrInterrupted if they interrupt it. Terminal errors abort the session.
func (s *Session) GetLine(ctx context.Context) (string, error) {
	if err := s.Start(); err != nil {
		return "", err
	}

	for s.state == Editing {
		k, err := s.term.ReadKey(ctx)
		if err != nil {
			return "", err
		}
		if err := s.syncWidth(); err != nil {
			return "", err
		}
		if err := s.HandleKey(k); err != nil {
			return "", err
		}
	}
	return s.buf.Text(), nil
}

// Start draws the prompt on the terminal cursor's row and places the
// cursor after it.
func (s *Session) Start() error {
	width, err := s.width()
	if err != nil {
		return err
	}
	s.cursor = NewCursor(s.term, width)
	s.state = Editing

	if err := s.updateTerminal(0); err != nil {
		return err
	}
	return s.cursor.Jump(s.buf.Len())
}

// State returns the session's state.
func (s *Session) State() State {
	return s.state
}

// Buffer returns the line being edited.
func (s *Session) Buffer() *Buffer {
	return s.buf
}

// Cursor returns the session's cursor. It is nil before Start.
func (s *Session) Cursor() *Cursor {
	return s.cursor
}

// HandleKey applies a single key event. Keys received after the line was
// submitted are ignored.
func (s *Session) HandleKey(k key.Key) error {
	if s.state != Editing {
		return nil
	}

	c := s.cursor
	idx := c.Index()
	switch k.Code {
	case key.Char:
		return s.insert(k.Rune)
	case key.Backspace:
		return s.deleteBackward()
	case key.Delete:
		return s.deleteForward()
	case key.Enter:
		return s.finish()
	case key.Left:
		if idx > s.buf.PromptLen() {
			return c.Jump(-1)
		}
	case key.Right:
		if idx < s.buf.Len() {
			return c.Jump(1)
		}
	case key.Up:
		if idx >= c.Width() {
			return c.JumpChecked(-c.Width(), s.buf.PromptLen(), s.buf.Len())
		}
	case key.Down:
		if wrap.LastRow(s.buf.Len(), c.Width()) > c.Position().Row {
			return c.JumpChecked(c.Width(), s.buf.PromptLen(), s.buf.Len())
		}
	case key.Home:
		return c.Jump(s.buf.PromptLen() - idx)
	case key.End:
		return c.Jump(s.buf.Len() - idx)
	case key.KillLine:
		return s.removeBefore(s.buf.PromptLen())
	case key.DeleteWord:
		return s.removeBefore(s.buf.WordStart(idx))
	case key.Interrupt:
		if err := s.finish(); err != nil {
			return err
		}
		return ErrInterrupted
	case key.EOF:
		if s.buf.Len() > s.buf.PromptLen() {
			return s.deleteForward()
		}
		if err := s.finish(); err != nil {
			return err
		}
		return io.EOF
	case key.Resize:
		return s.syncWidth()
	case key.Tab:
		// Completion is not supported.
	}
	return nil
}

func (s *Session) insert(r rune) error {
	prevLen := s.buf.Len()
	if err := s.buf.Insert(s.cursor.Index(), r); err != nil {
		return err
	}
	if err := s.updateTerminal(prevLen); err != nil {
		return err
	}
	return s.cursor.Jump(1)
}

func (s *Session) deleteBackward() error {
	idx := s.cursor.Index()
	if idx <= s.buf.PromptLen() {
		return nil
	}
	prevLen := s.buf.Len()
	if err := s.buf.Remove(idx - 1); err != nil {
		return err
	}
	if err := s.cursor.Jump(-1); err != nil {
		return err
	}
	return s.updateTerminal(prevLen)
}

func (s *Session) deleteForward() error {
	idx := s.cursor.Index()
	if idx >= s.buf.Len() {
		return nil
	}
	prevLen := s.buf.Len()
	if err := s.buf.Remove(idx); err != nil {
		return err
	}
	return s.updateTerminal(prevLen)
}

// removeBefore removes the characters between start and the cursor.
func (s *Session) removeBefore(start int) error {
	idx := s.cursor.Index()
	if start >= idx {
		return nil
	}
	prevLen := s.buf.Len()
	if err := s.buf.RemoveRange(start, idx); err != nil {
		return err
	}
	if err := s.cursor.Jump(start - idx); err != nil {
		return err
	}
	return s.updateTerminal(prevLen)
}

// finish moves below the end of the line and ends the session.
func (s *Session) finish() error {
	if err := s.cursor.Jump(s.buf.Len() - s.cursor.Index()); err != nil {
		return err
	}
	if err := s.cursor.WriteLine(""); err != nil {
		return err
	}
	s.state = Submitted
	return nil
}

// syncWidth re-lays out the line if the terminal width changed.
func (s *Session) syncWidth() error {
	width, err := s.width()
	if err != nil {
		return err
	}
	if width == s.cursor.Width() {
		return nil
	}
	return s.relayout(width)
}

func (s *Session) width() (int, error) {
	width, err := s.term.Width()
	if err != nil {
		return 0, fmt.Errorf("querying terminal width: %w", err)
	}
	if width <= 0 {
		return 0, invalidWidthError(width)
	}
	return width, nil
}
