package editor

import (
	"context"
	"fmt"

	"github.com/ryanfowler/wrapline/internal/core"
	"github.com/ryanfowler/wrapline/internal/key"
)

// Trace returns a Terminal that forwards to t, logging every key read and
// every terminal operation to p, one per line.
func Trace(t Terminal, p *core.Printer) Terminal {
	return &traceTerminal{t: t, p: p}
}

type traceTerminal struct {
	t Terminal
	p *core.Printer
}

func (tt *traceTerminal) ReadKey(ctx context.Context) (key.Key, error) {
	k, err := tt.t.ReadKey(ctx)
	if err != nil {
		tt.log(err, "read")
		return k, err
	}
	tt.log(nil, "read", k.String())
	return k, nil
}

func (tt *traceTerminal) Width() (int, error) {
	w, err := tt.t.Width()
	tt.log(err, "width", fmt.Sprint(w))
	return w, err
}

func (tt *traceTerminal) Write(s string) error {
	err := tt.t.Write(s)
	tt.log(err, "write", fmt.Sprintf("%q", s))
	return err
}

func (tt *traceTerminal) WriteLine(s string) error {
	err := tt.t.WriteLine(s)
	tt.log(err, "line", fmt.Sprintf("%q", s))
	return err
}

func (tt *traceTerminal) ClearLine() error {
	err := tt.t.ClearLine()
	tt.log(err, "clear")
	return err
}

func (tt *traceTerminal) MoveUp(n int) error {
	err := tt.t.MoveUp(n)
	tt.log(err, "up", fmt.Sprint(n))
	return err
}

func (tt *traceTerminal) MoveDown(n int) error {
	err := tt.t.MoveDown(n)
	tt.log(err, "down", fmt.Sprint(n))
	return err
}

func (tt *traceTerminal) MoveLeft(n int) error {
	err := tt.t.MoveLeft(n)
	tt.log(err, "left", fmt.Sprint(n))
	return err
}

func (tt *traceTerminal) MoveRight(n int) error {
	err := tt.t.MoveRight(n)
	tt.log(err, "right", fmt.Sprint(n))
	return err
}

// log writes a single trace line. Errors writing the trace are ignored.
func (tt *traceTerminal) log(err error, op string, args ...string) {
	p := tt.p
	p.Set(core.Bold)
	p.WriteString(op)
	p.Reset()
	for _, arg := range args {
		p.WriteString(" ")
		p.WriteString(arg)
	}
	if err != nil {
		p.WriteString(" ")
		p.Set(core.Red)
		p.WriteString("error")
		p.Reset()
		p.WriteString(": ")
		p.WriteString(err.Error())
	}
	p.WriteString("\n")
	_ = p.Flush()
}
