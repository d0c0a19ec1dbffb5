// Package tty drives a terminal in raw mode using relative cursor motions.
package tty

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ryanfowler/wrapline/internal/core"
	"github.com/ryanfowler/wrapline/internal/editor"
	"github.com/ryanfowler/wrapline/internal/key"

	"golang.org/x/term"
)

const (
	readBufSize  = 256
	inputChanBuf = 64
	defaultWidth = 80

	// escTimeout is how long a lone escape byte is held waiting for the
	// rest of a sequence before it is reported as a key of its own.
	escTimeout = 50 * time.Millisecond
)

var _ editor.Terminal = (*Terminal)(nil)

// Terminal reads keys from a terminal in raw mode and draws on it. Output
// is buffered until the next key is read or the Terminal is closed.
type Terminal struct {
	fd    int
	saved *term.State
	out   *bufio.Writer

	width  int
	last   int
	sizeOf func() (int, error)

	dec      key.Decoder
	keys     []key.Key
	inputCh  chan []byte
	resizeCh chan struct{}
	cancel   context.CancelFunc
}

// Open puts stdin into raw mode and returns a Terminal reading keys from
// stdin and drawing on stderr. A width greater than zero is used instead
// of the terminal's own.
func Open(width int) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}

	t := newTerminal(os.Stdin, os.Stderr, width, func() (int, error) {
		return core.TerminalWidth(os.Stderr)
	})
	t.fd = fd
	t.saved = state

	ctx, cancel := context.WithCancel(context.Background())
	stop := t.cancel
	t.cancel = func() {
		cancel()
		stop()
	}
	go t.watchResize(ctx)
	return t, nil
}

func newTerminal(in io.Reader, out io.Writer, width int, sizeOf func() (int, error)) *Terminal {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Terminal{
		out:      bufio.NewWriter(out),
		width:    width,
		sizeOf:   sizeOf,
		inputCh:  make(chan []byte, inputChanBuf),
		resizeCh: make(chan struct{}, 1),
		cancel:   cancel,
	}
	go t.readInput(ctx, in)
	return t
}

// Close flushes pending output and restores the terminal's previous mode.
func (t *Terminal) Close() error {
	t.cancel()
	err := t.out.Flush()
	if t.saved != nil {
		if rerr := term.Restore(t.fd, t.saved); err == nil {
			err = rerr
		}
	}
	return err
}

func (t *Terminal) readInput(ctx context.Context, in io.Reader) {
	buf := make([]byte, readBufSize)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			b := make([]byte, n)
			copy(b, buf[:n])
			select {
			case t.inputCh <- b:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			close(t.inputCh)
			return
		}
	}
}

func (t *Terminal) notifyResize() {
	select {
	case t.resizeCh <- struct{}{}:
	default:
	}
}

// ReadKey flushes pending output and blocks until the next key is
// available. A change of terminal size is reported as a Resize key, and
// io.EOF is returned once input is closed.
func (t *Terminal) ReadKey(ctx context.Context) (key.Key, error) {
	if err := t.out.Flush(); err != nil {
		return key.Key{}, err
	}

	for len(t.keys) == 0 {
		var timeout <-chan time.Time
		if t.dec.Pending() {
			timeout = time.After(escTimeout)
		}

		select {
		case b, ok := <-t.inputCh:
			if !ok {
				t.keys = t.dec.Flush()
				if len(t.keys) == 0 {
					return key.Key{}, io.EOF
				}
				break
			}
			t.keys = t.dec.Feed(b)
		case <-timeout:
			t.keys = t.dec.Flush()
		case <-t.resizeCh:
			return key.Of(key.Resize), nil
		case <-ctx.Done():
			return key.Key{}, context.Cause(ctx)
		}
	}

	k := t.keys[0]
	t.keys = t.keys[1:]
	return k, nil
}

// Width returns the number of columns to wrap at. If the terminal cannot
// be queried, the last known width is used.
func (t *Terminal) Width() (int, error) {
	if t.width > 0 {
		return t.width, nil
	}
	w, err := t.sizeOf()
	if err != nil || w <= 0 {
		if t.last > 0 {
			return t.last, nil
		}
		return defaultWidth, nil
	}
	t.last = w
	return w, nil
}

func (t *Terminal) Write(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

func (t *Terminal) WriteLine(s string) error {
	t.out.WriteString(s)
	_, err := t.out.WriteString("\r\n")
	return err
}

func (t *Terminal) ClearLine() error {
	_, err := t.out.WriteString("\r\x1b[2K")
	return err
}

func (t *Terminal) MoveUp(n int) error {
	return t.move(n, 'A')
}

func (t *Terminal) MoveDown(n int) error {
	return t.move(n, 'B')
}

func (t *Terminal) MoveRight(n int) error {
	return t.move(n, 'C')
}

func (t *Terminal) MoveLeft(n int) error {
	return t.move(n, 'D')
}

func (t *Terminal) move(n int, dir byte) error {
	if n <= 0 {
		return nil
	}
	t.out.WriteString("\x1b[")
	t.out.WriteString(strconv.Itoa(n))
	return t.out.WriteByte(dir)
}
