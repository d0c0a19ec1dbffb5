// Package key defines the key events an interactive line editor reacts to,
// and a decoder that turns raw terminal input into those events.
package key

import (
	"fmt"
	"strconv"
)

// Code identifies the kind of a key event.
type Code int

const (
	Other Code = iota
	Char
	Backspace
	Delete
	Enter
	Tab
	Up
	Down
	Left
	Right
	Home
	End
	KillLine
	DeleteWord
	Interrupt
	EOF
	Resize
)

var codeNames = [...]string{
	Other:      "Other",
	Char:       "Char",
	Backspace:  "Backspace",
	Delete:     "Delete",
	Enter:      "Enter",
	Tab:        "Tab",
	Up:         "Up",
	Down:       "Down",
	Left:       "Left",
	Right:      "Right",
	Home:       "Home",
	End:        "End",
	KillLine:   "KillLine",
	DeleteWord: "DeleteWord",
	Interrupt:  "Interrupt",
	EOF:        "EOF",
	Resize:     "Resize",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Key is a single key event. Rune is only meaningful for Char events, and
// for Other events produced from unsupported runes.
type Key struct {
	Code Code
	Rune rune
}

// Rune returns a printable character event.
func Rune(r rune) Key {
	return Key{Code: Char, Rune: r}
}

// Of returns an event with no associated rune.
func Of(c Code) Key {
	return Key{Code: c}
}

func (k Key) String() string {
	if k.Code == Char {
		return fmt.Sprintf("Char %q", k.Rune)
	}
	return k.Code.String()
}
