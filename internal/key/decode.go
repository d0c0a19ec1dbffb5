package key

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

const esc = 0x1b

// controls maps single control bytes to their key events.
var controls = map[byte]Code{
	0x01: Home,       // Ctrl+A
	0x02: Left,       // Ctrl+B
	0x03: Interrupt,  // Ctrl+C
	0x04: EOF,        // Ctrl+D
	0x05: End,        // Ctrl+E
	0x06: Right,      // Ctrl+F
	0x08: Backspace,  // Ctrl+H
	0x09: Tab,        // Tab
	0x0A: Enter,      // Ctrl+J
	0x0D: Enter,      // Enter
	0x15: KillLine,   // Ctrl+U
	0x17: DeleteWord, // Ctrl+W
	0x7F: Backspace,  // Backspace
}

// Decoder converts raw bytes read from a terminal in raw mode into key
// events. Bytes belonging to an incomplete escape sequence or UTF-8
// encoding are held until the next call to Feed.
type Decoder struct {
	pending []byte
}

// Feed decodes as many key events as possible from the provided bytes.
func (d *Decoder) Feed(b []byte) []Key {
	buf := append(d.pending, b...)
	var keys []Key

	i := 0
	for i < len(buf) {
		c := buf[i]

		// Escape sequence.
		if c == esc {
			k, n := decodeEscape(buf[i:])
			if n == 0 {
				break
			}
			keys = append(keys, k)
			i += n
			continue
		}

		// Control characters.
		if code, ok := controls[c]; ok {
			keys = append(keys, Of(code))
			i++
			continue
		}
		if c < 0x20 {
			keys = append(keys, Of(Other))
			i++
			continue
		}

		// Printable run, possibly ending in a partial UTF-8 encoding.
		n, complete := printableRun(buf[i:])
		keys = appendRunes(keys, buf[i:i+n])
		i += n
		if !complete {
			break
		}
	}

	d.pending = append([]byte(nil), buf[i:]...)
	return keys
}

// Pending reports whether bytes are held waiting for the rest of a
// sequence.
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// Flush returns the events for any bytes still held. An incomplete escape
// sequence is taken to be a lone Escape press followed by ordinary input,
// and a partial UTF-8 encoding is dropped.
func (d *Decoder) Flush() []Key {
	buf := d.pending
	d.pending = nil
	if len(buf) == 0 || buf[0] != esc {
		return nil
	}
	return append([]Key{Of(Other)}, d.Feed(buf[1:])...)
}

// printableRun returns the length of the run of non-control bytes at the
// start of buf, excluding a trailing partial UTF-8 encoding. complete is
// false if such a partial encoding was excluded.
func printableRun(buf []byte) (int, bool) {
	n := 0
	for n < len(buf) && buf[n] >= 0x20 && buf[n] != 0x7F {
		n++
	}

	if n < len(buf) {
		// Terminated by a control byte; any partial encoding is invalid.
		return n, true
	}

	last := n - 1
	for last > 0 && !utf8.RuneStart(buf[last]) {
		last--
	}
	if last >= 0 && !utf8.FullRune(buf[last:n]) {
		return last, false
	}
	return n, true
}

// appendRunes appends a Char event for every single-column rune in run,
// after composing it to NFC. Runes of any other width cannot be placed on
// the editor's one-rune-per-column grid and become Other events.
func appendRunes(keys []Key, run []byte) []Key {
	run = norm.NFC.Bytes(run)
	for len(run) > 0 {
		r, size := utf8.DecodeRune(run)
		run = run[size:]
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		if runewidth.RuneWidth(r) != 1 {
			keys = append(keys, Key{Code: Other, Rune: r})
			continue
		}
		keys = append(keys, Rune(r))
	}
	return keys
}

// decodeEscape decodes the escape sequence at the start of buf, where
// buf[0] == ESC. It returns the number of bytes consumed, or 0 if the
// sequence is incomplete.
func decodeEscape(buf []byte) (Key, int) {
	if len(buf) < 2 {
		return Key{}, 0
	}

	switch buf[1] {
	case '[':
		return decodeCSI(buf)
	case 'O':
		// SS3, sent for arrows in application cursor mode.
		if len(buf) < 3 {
			return Key{}, 0
		}
		return Of(finalCode(buf[2])), 3
	}

	// Lone escape, or an Alt-modified key: drop the escape only.
	return Of(Other), 1
}

func decodeCSI(buf []byte) (Key, int) {
	// Find the final byte, skipping parameter and intermediate bytes.
	end := -1
	for j := 2; j < len(buf); j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7E {
			end = j
			break
		}
	}
	if end < 0 {
		return Key{}, 0
	}

	final := buf[end]
	if final != '~' {
		// Modifiers such as "1;5C" are ignored.
		return Of(finalCode(final)), end + 1
	}

	// VT-style "<n>~" sequences.
	param := buf[2:end]
	for j, b := range param {
		if b == ';' {
			param = param[:j]
			break
		}
	}
	switch string(param) {
	case "1", "7":
		return Of(Home), end + 1
	case "3":
		return Of(Delete), end + 1
	case "4", "8":
		return Of(End), end + 1
	}
	return Of(Other), end + 1
}

func finalCode(b byte) Code {
	switch b {
	case 'A':
		return Up
	case 'B':
		return Down
	case 'C':
		return Right
	case 'D':
		return Left
	case 'H':
		return Home
	case 'F':
		return End
	}
	return Other
}
