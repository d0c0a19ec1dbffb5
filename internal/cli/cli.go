package cli

import (
	"strings"

	"github.com/ryanfowler/wrapline/internal/core"
)

// CLI describes wrapline's command line. It takes flags only; any
// positional argument is rejected.
type CLI struct {
	Description    string
	Flags          []Flag
	ExclusiveFlags [][]string
}

type Flag struct {
	Short       string
	Long        string
	Aliases     []string
	Args        string
	Description string
	Default     string
	Values      []string
	IsSet       func() bool
	Fn          func(value string) error
}

// flagIndex resolves flag names, aliases included, to their Flag.
type flagIndex struct {
	short map[string]Flag
	long  map[string]Flag
}

func newFlagIndex(flags []Flag) flagIndex {
	idx := flagIndex{short: make(map[string]Flag), long: make(map[string]Flag)}
	for _, flag := range flags {
		if flag.Short != "" {
			idx.short[flag.Short] = flag
		}
		idx.long[flag.Long] = flag
		for _, alias := range flag.Aliases {
			if len(alias) == 1 {
				idx.short[alias] = flag
			} else {
				idx.long[alias] = flag
			}
		}
	}
	return idx
}

func parse(cli *CLI, args []string) error {
	idx := newFlagIndex(cli.Flags)

	for len(args) > 0 {
		arg := args[0]
		args = args[1:]

		var err error
		switch {
		case arg == "--":
			// Nothing may follow the separator.
			if len(args) > 0 {
				return unexpectedArgError(args[0])
			}
		case len(arg) < 2 || arg[0] != '-':
			return unexpectedArgError(arg)
		case arg[1] == '-':
			args, err = idx.parseLong(arg[2:], args)
		default:
			args, err = idx.parseShort(arg[1:], args)
		}
		if err != nil {
			return err
		}
	}

	for _, group := range cli.ExclusiveFlags {
		if err := idx.checkExclusive(group); err != nil {
			return err
		}
	}
	return nil
}

// parseShort applies a cluster of short flags such as "-hV", "-w80",
// "-w=80" or "-w 80", returning the unconsumed args.
func (idx flagIndex) parseShort(cluster string, args []string) ([]string, error) {
	for cluster != "" {
		name := cluster[:1]
		cluster = cluster[1:]
		flag, ok := idx.short[name]
		if !ok {
			return nil, unknownFlagError("-" + name)
		}

		var value string
		switch {
		case strings.HasPrefix(cluster, "="):
			if flag.Args == "" {
				return nil, flagNoArgsError("-" + name)
			}
			value, cluster = cluster[1:], ""
		case flag.Args == "":
		case cluster != "":
			value, cluster = cluster, ""
		case len(args) > 0:
			value, args = args[0], args[1:]
		default:
			return nil, argRequiredError("-" + name)
		}

		if err := flag.Fn(value); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// parseLong applies a single "--name", "--name=value" or "--name value"
// flag, returning the unconsumed args.
func (idx flagIndex) parseLong(arg string, args []string) ([]string, error) {
	name, value, hasValue := strings.Cut(arg, "=")
	flag, ok := idx.long[name]
	if !ok {
		return nil, unknownFlagError("--" + name)
	}

	switch {
	case flag.Args == "":
		if hasValue {
			return nil, flagNoArgsError("--" + name)
		}
	case !hasValue:
		if len(args) == 0 {
			return nil, argRequiredError("--" + name)
		}
		value, args = args[0], args[1:]
	}

	if err := flag.Fn(value); err != nil {
		return nil, err
	}
	return args, nil
}

// checkExclusive returns an error naming the first two flags of group that
// are both set.
func (idx flagIndex) checkExclusive(group []string) error {
	var first string
	for _, name := range group {
		if !idx.long[name].IsSet() {
			continue
		}
		if first != "" {
			return newExclusiveFlagsError(first, name)
		}
		first = name
	}
	return nil
}

func Parse(args []string) (*App, error) {
	var app App
	err := parse(app.CLI(), args)
	return &app, err
}

func printHelp(cli *CLI, p *core.Printer) {
	p.WriteString(cli.Description)
	p.WriteString("\n\n")

	writeHeading(p, "Usage")
	p.WriteString(" ")
	p.Set(core.Bold)
	p.WriteString("wrapline")
	p.Reset()
	p.WriteString(" [OPTIONS]\n\n")

	writeHeading(p, "Options")
	p.WriteString("\n")

	width := 0
	for _, flag := range cli.Flags {
		width = max(width, flagWidth(flag))
	}
	for _, flag := range cli.Flags {
		writeFlag(p, flag, width)
	}
}

func writeHeading(p *core.Printer, name string) {
	p.Set(core.Bold)
	p.Set(core.Underline)
	p.WriteString(name)
	p.Reset()
	p.WriteString(":")
}

// writeFlag writes a single help line, padding the flag's names so that
// descriptions line up at column width.
func writeFlag(p *core.Printer, flag Flag, width int) {
	p.WriteString("  ")
	p.Set(core.Bold)
	if flag.Short != "" {
		p.WriteString("-" + flag.Short + ", ")
	} else {
		p.WriteString("    ")
	}
	p.WriteString("--" + flag.Long)
	p.Reset()
	if flag.Args != "" {
		p.WriteString(" <" + flag.Args + ">")
	}
	p.WriteString(strings.Repeat(" ", width-flagWidth(flag)+2))

	p.WriteString(flag.Description)
	if len(flag.Values) > 0 {
		p.WriteString(" [" + strings.Join(flag.Values, ", ") + "]")
	}
	if flag.Default != "" {
		p.WriteString(" [default: " + flag.Default + "]")
	}
	p.WriteString("\n")
}

// flagWidth is the display width of a flag's long name and argument.
func flagWidth(flag Flag) int {
	n := len(flag.Long)
	if flag.Args != "" {
		n += len(" <>") + len(flag.Args)
	}
	return n
}
