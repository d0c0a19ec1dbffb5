package cli

import (
	"github.com/ryanfowler/wrapline/internal/config"
	"github.com/ryanfowler/wrapline/internal/core"
)

// DefaultPrompt is drawn before the input when no prompt is configured.
const DefaultPrompt = "> "

// App represents the full configuration for a wrapline invocation.
type App struct {
	Cfg config.Config

	ConfigPath string
	Help       bool
	NoConfig   bool
	Version    bool
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

// Prompt returns the configured prompt, or DefaultPrompt.
func (a *App) Prompt() string {
	if a.Cfg.Prompt != nil {
		return *a.Cfg.Prompt
	}
	return DefaultPrompt
}

// Width returns the configured wrap width, or 0 to use the terminal's.
func (a *App) Width() int {
	if a.Cfg.Width != nil {
		return *a.Cfg.Width
	}
	return 0
}

func (a *App) CLI() *CLI {
	return &CLI{
		Description: "wrapline reads a line of input, wrapping it across rows as it is typed",
		ExclusiveFlags: [][]string{
			{"config", "no-config"},
		},
		Flags: []Flag{
			cfgFlag("color", "", "OPTION", "Enable/disable color",
				func() bool { return a.Cfg.Color != core.ColorUnknown },
				a.Cfg.ParseColor,
			).WithAliases("colour").WithValues("auto", "off", "on").WithDefault("auto"),
			stringFlag(&a.ConfigPath, "config", "c", "PATH", "Path to config file"),
			boolFlag(&a.Help, "help", "h", "Print help"),
			boolFlag(&a.NoConfig, "no-config", "", "Do not read a config file"),
			cfgFlag("prompt", "p", "TEXT", "Text drawn before the input",
				func() bool { return a.Cfg.Prompt != nil },
				a.Cfg.ParsePrompt,
			).WithDefault(`"` + DefaultPrompt + `"`),
			cfgFlag("trace", "", "PATH", "Log every key and terminal operation to a file",
				func() bool { return a.Cfg.Trace != nil },
				a.Cfg.ParseTrace,
			),
			boolFlag(&a.Version, "version", "V", "Print version"),
			cfgFlag("width", "w", "COLUMNS", "Wrap at a fixed number of columns",
				func() bool { return a.Cfg.Width != nil },
				a.Cfg.ParseWidth,
			),
		},
	}
}
