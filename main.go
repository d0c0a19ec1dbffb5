package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ryanfowler/wrapline/internal/cli"
	"github.com/ryanfowler/wrapline/internal/config"
	"github.com/ryanfowler/wrapline/internal/core"
	"github.com/ryanfowler/wrapline/internal/editor"
	"github.com/ryanfowler/wrapline/internal/tty"
)

func main() {
	// Cancel the context when one of the below signals are caught.
	ctx, cancel := context.WithCancelCause(context.Background())
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		cancel(core.SignalError(sig.String()))
	}()

	// Parse the CLI args.
	app, err := cli.Parse(os.Args[1:])
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		writeCLIErr(p, err)
		os.Exit(1)
	}

	// Parse any config file, and merge with it.
	if !app.NoConfig {
		err = parseConfigFile(app)
		if err != nil {
			p := core.NewHandle(app.Cfg.Color).Stderr()
			core.WriteErrorMsg(p, err)
			os.Exit(1)
		}
	}

	handle := core.NewHandle(app.Cfg.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		os.Exit(0)
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "wrapline", core.Version)
		os.Exit(0)
	}

	os.Exit(run(ctx, app, handle))
}

// run reads a single line and writes it to stdout, returning the exit
// status.
func run(ctx context.Context, app *cli.App, handle *core.Handle) int {
	line, err := readLine(ctx, app, handle.Stderr())
	switch {
	case err == nil:
	case errors.Is(err, editor.ErrInterrupted):
		return 130
	case errors.Is(err, io.EOF):
		return 1
	default:
		core.WriteErrorMsg(handle.Stderr(), err)
		return 1
	}

	p := handle.Stdout()
	p.WriteString(line)
	p.WriteString("\n")
	if err := p.Flush(); err != nil {
		return 1
	}
	return 0
}

func readLine(ctx context.Context, app *cli.App, stderr *core.Printer) (string, error) {
	// Without a terminal on both ends there is nothing to edit on.
	if !core.IsStdinTerm || !core.IsStderrTerm {
		if app.Cfg.Trace != nil {
			core.WriteWarningMsg(stderr, "--trace is ignored when not reading from a terminal")
		}
		return tty.ReadLine(ctx, os.Stdin)
	}

	t, err := tty.Open(app.Width())
	if err != nil {
		return "", err
	}
	defer t.Close()

	var term editor.Terminal = t
	if app.Cfg.Trace != nil {
		f, err := os.Create(*app.Cfg.Trace)
		if err != nil {
			return "", err
		}
		defer f.Close()
		term = editor.Trace(t, core.NewPrinter(f, false, core.ColorOff))
	}

	return editor.New(term, app.Prompt()).GetLine(ctx)
}

// parse and merge any config file with the CLI app configuration.
func parseConfigFile(app *cli.App) error {
	file, err := config.GetFile(app.ConfigPath)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	app.Cfg.Merge(file.Global)
	return nil
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
