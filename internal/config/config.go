package config

import (
	"fmt"
	"strconv"

	"github.com/ryanfowler/wrapline/internal/core"

	"github.com/mattn/go-runewidth"
)

// Config represents the configuration options for wrapline.
type Config struct {
	isFile bool

	Color  core.Color
	Prompt *string
	Trace  *string
	Width  *int
}

// Merge merges the two Configs together, with "c" taking priority.
func (c *Config) Merge(c2 *Config) {
	if c.Color == core.ColorUnknown {
		c.Color = c2.Color
	}
	if c.Prompt == nil {
		c.Prompt = c2.Prompt
	}
	if c.Trace == nil {
		c.Trace = c2.Trace
	}
	if c.Width == nil {
		c.Width = c2.Width
	}
}

// Set sets the provided key and value pair, returning any error encountered.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "color", "colour":
		err = c.ParseColor(val)
	case "prompt":
		err = c.ParsePrompt(val)
	case "trace":
		err = c.ParseTrace(val)
	case "width":
		err = c.ParseWidth(val)
	default:
		err = invalidOptionError(key)
	}
	return err
}

func (c *Config) ParseColor(value string) error {
	switch value {
	case "auto":
		c.Color = core.ColorAuto
	case "off":
		c.Color = core.ColorOff
	case "on":
		c.Color = core.ColorOn
	default:
		const usage = "must be one of [auto, off, on]"
		return core.NewValueError("color", value, usage, c.isFile)
	}
	return nil
}

// ParsePrompt sets the prompt. Every character of the prompt must take up
// exactly one column, or wrapping would misplace the cursor.
func (c *Config) ParsePrompt(value string) error {
	for _, r := range value {
		if runewidth.RuneWidth(r) != 1 {
			const usage = "must contain only single-column characters"
			return core.NewValueError("prompt", value, usage, c.isFile)
		}
	}
	c.Prompt = core.PointerTo(value)
	return nil
}

func (c *Config) ParseTrace(value string) error {
	if value == "" {
		return core.NewValueError("trace", value, "must be a file path", c.isFile)
	}
	c.Trace = core.PointerTo(value)
	return nil
}

// ParseWidth sets a fixed wrap width. Zero uses the terminal's width.
func (c *Config) ParseWidth(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		const usage = "must be a non-negative integer"
		return core.NewValueError("width", value, usage, c.isFile)
	}
	c.Width = core.PointerTo(n)
	return nil
}

type invalidOptionError string

func (err invalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: '%s'", string(err))
}

func (err invalidOptionError) PrintTo(p *core.Printer) {
	p.WriteString("invalid option: '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}
