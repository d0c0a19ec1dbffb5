// Package termtest provides an in-memory terminal for testing code that
// draws with relative cursor motions.
package termtest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ryanfowler/wrapline/internal/key"
)

// Terminal is an in-memory terminal. Writing the last column of a row
// leaves the cursor on that column until the next motion, clear or row
// advance, and writing again from there is an error. Motions that a real
// terminal would clamp are errors too, so rendering bugs fail loudly.
type Terminal struct {
	width   int
	rows    [][]rune
	row     int
	col     int
	pending bool
	input   []input
	ops     []string
}

type input struct {
	key   key.Key
	width int
}

// New returns a Terminal with the provided width and a single empty row.
func New(width int) *Terminal {
	return &Terminal{width: width, rows: [][]rune{nil}}
}

// Type queues a Char event for every rune in s.
func (t *Terminal) Type(s string) {
	for _, r := range s {
		t.Queue(key.Rune(r))
	}
}

// Queue queues the provided key events for ReadKey.
func (t *Terminal) Queue(keys ...key.Key) {
	for _, k := range keys {
		t.input = append(t.input, input{key: k})
	}
}

// QueueResize queues a Resize event; the width changes when it is read.
func (t *Terminal) QueueResize(width int) {
	t.input = append(t.input, input{key: key.Of(key.Resize), width: width})
}

// SetWidth changes the width immediately. Existing rows are not reflowed.
func (t *Terminal) SetWidth(width int) {
	t.width = width
	t.col = min(t.col, width-1)
}

// ReadKey returns the next queued key, or io.EOF once none are left.
func (t *Terminal) ReadKey(ctx context.Context) (key.Key, error) {
	if err := ctx.Err(); err != nil {
		return key.Key{}, err
	}
	if len(t.input) == 0 {
		return key.Key{}, io.EOF
	}
	in := t.input[0]
	t.input = t.input[1:]
	if in.width > 0 {
		t.SetWidth(in.width)
	}
	return in.key, nil
}

// Width returns the current width.
func (t *Terminal) Width() (int, error) {
	return t.width, nil
}

func (t *Terminal) Write(s string) error {
	t.ops = append(t.ops, fmt.Sprintf("write %q", s))
	return t.write(s)
}

func (t *Terminal) WriteLine(s string) error {
	t.ops = append(t.ops, fmt.Sprintf("line %q", s))
	if err := t.write(s); err != nil {
		return err
	}
	t.row++
	t.col = 0
	t.pending = false
	if t.row == len(t.rows) {
		t.rows = append(t.rows, nil)
	}
	return nil
}

func (t *Terminal) ClearLine() error {
	t.ops = append(t.ops, "clear")
	t.rows[t.row] = nil
	t.col = 0
	t.pending = false
	return nil
}

func (t *Terminal) MoveUp(n int) error {
	t.ops = append(t.ops, fmt.Sprintf("up %d", n))
	if n <= 0 || t.row-n < 0 {
		return t.badMotion("up", n)
	}
	t.row -= n
	t.pending = false
	return nil
}

func (t *Terminal) MoveDown(n int) error {
	t.ops = append(t.ops, fmt.Sprintf("down %d", n))
	if n <= 0 || t.row+n >= len(t.rows) {
		return t.badMotion("down", n)
	}
	t.row += n
	t.pending = false
	return nil
}

func (t *Terminal) MoveLeft(n int) error {
	t.ops = append(t.ops, fmt.Sprintf("left %d", n))
	if n <= 0 || t.col-n < 0 {
		return t.badMotion("left", n)
	}
	t.col -= n
	t.pending = false
	return nil
}

func (t *Terminal) MoveRight(n int) error {
	t.ops = append(t.ops, fmt.Sprintf("right %d", n))
	if n <= 0 || t.col+n >= t.width {
		return t.badMotion("right", n)
	}
	t.col += n
	t.pending = false
	return nil
}

func (t *Terminal) write(s string) error {
	for _, r := range s {
		if t.pending {
			return fmt.Errorf("write of %q past the last column of row %d", r, t.row)
		}
		line := t.rows[t.row]
		for len(line) <= t.col {
			line = append(line, 0)
		}
		line[t.col] = r
		t.rows[t.row] = line

		if t.col == t.width-1 {
			t.pending = true
		} else {
			t.col++
		}
	}
	return nil
}

func (t *Terminal) badMotion(dir string, n int) error {
	return fmt.Errorf("invalid motion %s %d from row %d column %d", dir, n, t.row, t.col)
}

// Rows returns the text of every row, with unwritten cells as spaces and
// trailing unwritten cells removed.
func (t *Terminal) Rows() []string {
	out := make([]string, len(t.rows))
	for i, line := range t.rows {
		end := len(line)
		for end > 0 && line[end-1] == 0 {
			end--
		}
		out[i] = strings.Map(func(r rune) rune {
			if r == 0 {
				return ' '
			}
			return r
		}, string(line[:end]))
	}
	return out
}

// Cursor returns the row and column of the cursor.
func (t *Terminal) Cursor() (row, col int) {
	return t.row, t.col
}

// Pending reports whether the cursor is on the last column after writing
// it.
func (t *Terminal) Pending() bool {
	return t.pending
}

// Ops returns every operation performed since the last call to ResetOps.
func (t *Terminal) Ops() []string {
	return t.ops
}

// ResetOps clears the operation log.
func (t *Terminal) ResetOps() {
	t.ops = nil
}

// ErrWrite is returned by FailingTerminal for every screen operation.
var ErrWrite = errors.New("termtest: write failed")

// FailingTerminal is a Terminal whose screen operations fail once the
// provided number of operations have succeeded.
type FailingTerminal struct {
	*Terminal
	After int
}

func (f *FailingTerminal) fail() error {
	if f.After <= 0 {
		return ErrWrite
	}
	f.After--
	return nil
}

func (f *FailingTerminal) Write(s string) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Terminal.Write(s)
}

func (f *FailingTerminal) WriteLine(s string) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Terminal.WriteLine(s)
}

func (f *FailingTerminal) ClearLine() error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Terminal.ClearLine()
}
