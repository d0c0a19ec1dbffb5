package core

import (
	"bytes"
	"io"
	"os"
)

// Sequence represents an ANSI escape sequence.
type Sequence string

const (
	escape = "\x1b"
	reset  = "0"

	Bold      Sequence = "1"
	Dim       Sequence = "2"
	Italic    Sequence = "3"
	Underline Sequence = "4"

	Red     Sequence = "31"
	Green   Sequence = "32"
	Yellow  Sequence = "33"
	Blue    Sequence = "34"
	Default Sequence = "39"
)

// PrinterTo represents the interface for printing to a Printer.
type PrinterTo interface {
	PrintTo(*Printer)
}

// Handle represents a handle for stderr and stdout Printers.
type Handle struct {
	stderr *Printer
	stdout *Printer
}

// NewHandle returns a new Handle given the provided color configuration.
func NewHandle(c Color) *Handle {
	return &Handle{
		stderr: NewPrinter(os.Stderr, IsStderrTerm, c),
		stdout: NewPrinter(os.Stdout, IsStdoutTerm, c),
	}
}

// Stderr returns the Printer for stderr.
func (h *Handle) Stderr() *Printer {
	return h.stderr
}

// Stdout returns the Printer for stdout.
func (h *Handle) Stdout() *Printer {
	return h.stdout
}

// Printer allows for writing data with optional ANSI escape sequences based on
// the color settings for a target.
type Printer struct {
	w        io.Writer
	buf      bytes.Buffer
	useColor bool
}

// NewPrinter returns a Printer that flushes to w. When c is ColorAuto or
// unset, color is used only if isTerm is true.
func NewPrinter(w io.Writer, isTerm bool, c Color) *Printer {
	var useColor bool
	switch c {
	case ColorOn:
		useColor = true
	case ColorOff:
		useColor = false
	default:
		useColor = isTerm
	}
	return &Printer{w: w, useColor: useColor}
}

// Set writes the provided Sequence.
func (p *Printer) Set(s Sequence) {
	if p.useColor {
		p.buf.WriteString(escape)
		p.buf.WriteByte('[')
		p.buf.WriteString(string(s))
		p.buf.WriteByte('m')
	}
}

// Reset resets any active escape sequences.
func (p *Printer) Reset() {
	p.Set(reset)
}

// Flush writes any buffered data to the underlying writer.
func (p *Printer) Flush() error {
	_, err := p.w.Write(p.buf.Bytes())
	p.buf.Reset()
	return err
}

// Bytes returns the current contents of the buffer.
func (p *Printer) Bytes() []byte {
	return p.buf.Bytes()
}

// Write writes the provided data to the buffer.
func (p *Printer) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

// WriteString writes the provided string to the buffer.
func (p *Printer) WriteString(s string) (int, error) {
	return p.buf.WriteString(s)
}

// WriteErrorMsg writes the provided error to the printer.
func WriteErrorMsg(p *Printer, err error) {
	WriteErrorMsgNoFlush(p, err)
	p.Flush()
}

// WriteErrorMsgNoFlush writes the provided error msg to the printer, but does
// not flush the printer.
func WriteErrorMsgNoFlush(p *Printer, err error) {
	p.Set(Red)
	p.Set(Bold)
	p.WriteString("error")
	p.Reset()
	p.WriteString(": ")

	if pt, ok := err.(PrinterTo); ok {
		pt.PrintTo(p)
	} else {
		p.WriteString(err.Error())
	}
	p.WriteString("\n")
}

// WriteWarningMsg writes the provided warning msg to the printer.
func WriteWarningMsg(p *Printer, msg string) {
	p.Set(Bold)
	p.Set(Yellow)
	p.WriteString("warning")
	p.Reset()
	p.WriteString(": ")

	p.WriteString(msg)
	p.WriteString("\n")
	p.Flush()
}
