package cli

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ryanfowler/wrapline/internal/core"
)

func TestFlagsAlphabeticalOrder(t *testing.T) {
	app, err := Parse(nil)
	if err != nil {
		t.Fatalf("unable to parse cli: %s", err.Error())
	}
	cli := app.CLI()
	for i := 1; i < len(cli.Flags); i++ {
		prev := cli.Flags[i-1].Long
		curr := cli.Flags[i].Long
		if curr < prev {
			t.Errorf("flags out of alphabetical order: %q should come before %q", curr, prev)
		}
	}
}

func TestCLI(t *testing.T) {
	app, err := Parse(nil)
	if err != nil {
		t.Fatalf("unable to parse cli: %s", err.Error())
	}
	p := core.NewPrinter(nil, false, core.ColorOff)

	// Verify that no line of the help command is over 80 characters.
	app.PrintHelp(p)
	for line := range strings.Lines(string(p.Bytes())) {
		line = strings.TrimSuffix(line, "\n")
		if utf8.RuneCountInString(line) > 80 {
			t.Fatalf("line too long: %q", line)
		}
	}
	if !strings.Contains(string(p.Bytes()), "Usage: wrapline [OPTIONS]") {
		t.Fatalf("unexpected help output:\n%s", p.Bytes())
	}
}

func TestHelpAlignment(t *testing.T) {
	app, err := Parse(nil)
	if err != nil {
		t.Fatalf("unable to parse cli: %s", err.Error())
	}
	p := core.NewPrinter(nil, false, core.ColorOff)
	app.PrintHelp(p)
	out := string(p.Bytes())

	for _, line := range []string{
		"  -w, --width <COLUMNS>  Wrap at a fixed number of columns\n",
		"      --no-config        Do not read a config file\n",
		"      --color <OPTION>   Enable/disable color [auto, off, on] [default: auto]\n",
		"  -p, --prompt <TEXT>    Text drawn before the input [default: \"> \"]\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("expected help to contain %q, got:\n%s", line, out)
		}
	}
	if strings.Contains(out, "Arguments") {
		t.Errorf("unexpected arguments section in help:\n%s", out)
	}
}

func TestParseFlags(t *testing.T) {
	app, err := Parse([]string{"-p", "$ ", "--width=40", "--colour", "off", "-c", "cfg.yaml", "--trace", "out.log"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := app.Prompt(); got != "$ " {
		t.Errorf("expected prompt %q, got %q", "$ ", got)
	}
	if got := app.Width(); got != 40 {
		t.Errorf("expected width 40, got %d", got)
	}
	if app.Cfg.Color != core.ColorOff {
		t.Errorf("expected color off, got %d", app.Cfg.Color)
	}
	if app.ConfigPath != "cfg.yaml" {
		t.Errorf("expected config path %q, got %q", "cfg.yaml", app.ConfigPath)
	}
	if app.Cfg.Trace == nil || *app.Cfg.Trace != "out.log" {
		t.Errorf("expected trace path %q, got %v", "out.log", app.Cfg.Trace)
	}
}

func TestParseDefaults(t *testing.T) {
	app, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := app.Prompt(); got != DefaultPrompt {
		t.Errorf("expected default prompt, got %q", got)
	}
	if got := app.Width(); got != 0 {
		t.Errorf("expected width 0, got %d", got)
	}
	if app.Help || app.Version || app.NoConfig {
		t.Errorf("expected no boolean flags to be set: %+v", app)
	}
}

func TestParseShortFlags(t *testing.T) {
	app, err := Parse([]string{"-hV", "-w72", "-p=>> "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !app.Help || !app.Version {
		t.Errorf("expected help and version to be set: %+v", app)
	}
	if got := app.Width(); got != 72 {
		t.Errorf("expected width 72, got %d", got)
	}
	if got := app.Prompt(); got != ">> " {
		t.Errorf("expected prompt %q, got %q", ">> ", got)
	}
}

func TestParseSeparator(t *testing.T) {
	app, err := Parse([]string{"-w", "10", "--"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := app.Width(); got != 10 {
		t.Errorf("expected width 10, got %d", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expErr string
	}{
		{
			name:   "unknown flag",
			args:   []string{"--history"},
			expErr: "unknown flag '--history'",
		},
		{
			name:   "unknown short flag",
			args:   []string{"-x"},
			expErr: "unknown flag '-x'",
		},
		{
			name:   "missing argument",
			args:   []string{"--width"},
			expErr: "argument required for flag '--width'",
		},
		{
			name:   "argument for bool flag",
			args:   []string{"--help=yes"},
			expErr: "flag '--help' does not take any arguments",
		},
		{
			name:   "exclusive flags",
			args:   []string{"--config", "a.yaml", "--no-config"},
			expErr: "flags '--config' and '--no-config' cannot be used together",
		},
		{
			name:   "positional argument",
			args:   []string{"hello"},
			expErr: "unexpected argument 'hello'",
		},
		{
			name:   "positional argument after separator",
			args:   []string{"--", "hello"},
			expErr: "unexpected argument 'hello'",
		},
		{
			name:   "flag after separator",
			args:   []string{"--", "--help"},
			expErr: "unexpected argument '--help'",
		},
		{
			name:   "lone dash",
			args:   []string{"-"},
			expErr: "unexpected argument '-'",
		},
		{
			name:   "bool flag with value in short cluster",
			args:   []string{"-h=1"},
			expErr: "flag '-h' does not take any arguments",
		},
		{
			name:   "invalid width",
			args:   []string{"-w", "-5"},
			expErr: "invalid value '-5' for option '--width'",
		},
		{
			name:   "wide prompt",
			args:   []string{"--prompt", "日> "},
			expErr: "invalid value '日> ' for option '--prompt'",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.args)
			if err == nil {
				t.Fatalf("expected error %q, got none", test.expErr)
			}
			if !strings.Contains(err.Error(), test.expErr) {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			var pt core.PrinterTo
			if !errors.As(err, &pt) {
				t.Fatalf("expected error to be printable, got %T", err)
			}
		})
	}
}
