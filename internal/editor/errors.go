package editor

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ryanfowler/wrapline/internal/core"
)

// ErrInterrupted is returned when the user interrupts an input session.
var ErrInterrupted = errors.New("interrupted")

// BoundsError is returned when an operation would place an offset outside
// the region it is allowed to reach. It indicates a caller bug, never bad
// user input.
type BoundsError struct {
	Op    string
	Index int
	Lower int
	Upper int // less than Lower when there is no upper bound
}

func (err *BoundsError) Error() string {
	if err.Upper < err.Lower {
		return fmt.Sprintf("%s: offset %d is before %d", err.Op, err.Index, err.Lower)
	}
	return fmt.Sprintf("%s: offset %d is outside [%d, %d]", err.Op, err.Index, err.Lower, err.Upper)
}

func (err *BoundsError) PrintTo(p *core.Printer) {
	p.WriteString(err.Op)
	p.WriteString(": offset ")
	p.Set(core.Bold)
	p.WriteString(strconv.Itoa(err.Index))
	p.Reset()
	if err.Upper < err.Lower {
		p.WriteString(" is before ")
		p.WriteString(strconv.Itoa(err.Lower))
		return
	}
	p.WriteString(" is outside [")
	p.WriteString(strconv.Itoa(err.Lower))
	p.WriteString(", ")
	p.WriteString(strconv.Itoa(err.Upper))
	p.WriteString("]")
}

// overflowError is returned when a write would run past the last column of
// the cursor's row.
type overflowError struct {
	index int
	count int
	width int
}

func (err overflowError) Error() string {
	return fmt.Sprintf("writing %d characters at offset %d overflows a %d-column row", err.count, err.index, err.width)
}

type invalidWidthError int

func (err invalidWidthError) Error() string {
	return fmt.Sprintf("invalid terminal width: %d", int(err))
}

func (err invalidWidthError) PrintTo(p *core.Printer) {
	p.WriteString("invalid terminal width: ")
	p.Set(core.Bold)
	p.WriteString(strconv.Itoa(int(err)))
	p.Reset()
}
