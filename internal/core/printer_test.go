package core

import (
	"bytes"
	"errors"
	"testing"
)

func TestPrinterColor(t *testing.T) {
	tests := []struct {
		name   string
		isTerm bool
		color  Color
		exp    string
	}{
		{name: "auto terminal", isTerm: true, color: ColorAuto, exp: "\x1b[1mhi\x1b[0m"},
		{name: "auto pipe", isTerm: false, color: ColorAuto, exp: "hi"},
		{name: "unknown terminal", isTerm: true, color: ColorUnknown, exp: "\x1b[1mhi\x1b[0m"},
		{name: "forced on", isTerm: false, color: ColorOn, exp: "\x1b[1mhi\x1b[0m"},
		{name: "forced off", isTerm: true, color: ColorOff, exp: "hi"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinter(&buf, test.isTerm, test.color)
			p.Set(Bold)
			p.WriteString("hi")
			p.Reset()
			if buf.Len() != 0 {
				t.Fatalf("expected output to be buffered, got %q", buf.String())
			}
			if err := p.Flush(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != test.exp {
				t.Fatalf("expected %q, got %q", test.exp, got)
			}
		})
	}
}

func TestWriteErrorMsg(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, ColorOff)

	WriteErrorMsg(p, errors.New("boom"))
	if got := buf.String(); got != "error: boom\n" {
		t.Fatalf("unexpected output: %q", got)
	}

	buf.Reset()
	WriteErrorMsg(p, NewValueError("width", "x", "must be a non-negative integer", false))
	exp := "error: invalid value 'x' for option '--width': must be a non-negative integer\n"
	if got := buf.String(); got != exp {
		t.Fatalf("expected %q, got %q", exp, got)
	}
}

func TestValueErrorFromFile(t *testing.T) {
	err := NewValueError("color", "sometimes", "must be one of [auto, off, on]", true)
	exp := "invalid value 'sometimes' for option 'color': must be one of [auto, off, on]"
	if got := err.Error(); got != exp {
		t.Fatalf("expected %q, got %q", exp, got)
	}
}
