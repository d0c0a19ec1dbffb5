package tty

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ryanfowler/wrapline/internal/key"
)

func fixedSize(w int) func() (int, error) {
	return func() (int, error) { return w, nil }
}

func TestTerminalOutput(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(strings.NewReader(""), &out, 0, fixedSize(80))

	term.Write("ab")
	term.MoveLeft(2)
	term.WriteLine("x")
	term.ClearLine()
	term.MoveUp(1)
	term.MoveDown(3)
	term.MoveRight(12)
	term.MoveLeft(0)
	if out.Len() != 0 {
		t.Fatalf("expected output to be buffered, got %q", out.String())
	}

	if err := term.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exp := "ab\x1b[2Dx\r\n\r\x1b[2K\x1b[1A\x1b[3B\x1b[12C"
	if got := out.String(); got != exp {
		t.Fatalf("expected %q, got %q", exp, got)
	}
}

func TestTerminalReadKey(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(strings.NewReader("ab\x1b[D\x1b[3~\r"), &out, 0, fixedSize(80))
	defer term.Close()

	term.Write("> ")
	ctx := context.Background()
	exp := []key.Key{key.Rune('a'), key.Rune('b'), key.Of(key.Left), key.Of(key.Delete), key.Of(key.Enter)}
	for i, want := range exp {
		k, err := term.ReadKey(ctx)
		if err != nil {
			t.Fatalf("key %d: unexpected error: %v", i, err)
		}
		if k != want {
			t.Fatalf("key %d: expected %s, got %s", i, want, k)
		}
	}
	if out.String() != "> " {
		t.Fatalf("expected output to be flushed before reading, got %q", out.String())
	}

	if _, err := term.ReadKey(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if _, err := term.ReadKey(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF again, got %v", err)
	}
}

func TestTerminalLoneEscape(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term := newTerminal(pr, io.Discard, 0, fixedSize(80))
	defer term.Close()

	go pw.Write([]byte{0x1b})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	k, err := term.ReadKey(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != key.Of(key.Other) {
		t.Fatalf("expected Other, got %s", k)
	}
}

func TestTerminalResize(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term := newTerminal(pr, io.Discard, 0, fixedSize(80))
	defer term.Close()

	term.notifyResize()
	term.notifyResize()
	k, err := term.ReadKey(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != key.Of(key.Resize) {
		t.Fatalf("expected Resize, got %s", k)
	}
}

func TestTerminalCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term := newTerminal(pr, io.Discard, 0, fixedSize(80))
	defer term.Close()

	ctx, cancel := context.WithCancelCause(context.Background())
	errStop := errors.New("stop")
	cancel(errStop)
	if _, err := term.ReadKey(ctx); !errors.Is(err, errStop) {
		t.Fatalf("expected cancellation cause, got %v", err)
	}
}

func TestTerminalWidth(t *testing.T) {
	t.Run("fixed", func(t *testing.T) {
		term := newTerminal(strings.NewReader(""), io.Discard, 40, fixedSize(120))
		defer term.Close()
		if w, _ := term.Width(); w != 40 {
			t.Fatalf("expected 40, got %d", w)
		}
	})

	t.Run("queried", func(t *testing.T) {
		w, err := 120, error(nil)
		term := newTerminal(strings.NewReader(""), io.Discard, 0, func() (int, error) {
			return w, err
		})
		defer term.Close()

		if got, _ := term.Width(); got != 120 {
			t.Fatalf("expected 120, got %d", got)
		}
		w, err = 0, errors.New("no terminal")
		if got, _ := term.Width(); got != 120 {
			t.Fatalf("expected last known width 120, got %d", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		term := newTerminal(strings.NewReader(""), io.Discard, 0, func() (int, error) {
			return 0, errors.New("no terminal")
		})
		defer term.Close()
		if got, _ := term.Width(); got != defaultWidth {
			t.Fatalf("expected %d, got %d", defaultWidth, got)
		}
	})
}
