//go:build windows

package core

import (
	"os"

	"golang.org/x/sys/windows"
)

// TerminalWidth returns the number of columns of the console attached to
// the provided file.
func TerminalWidth(f *os.File) (int, error) {
	var info windows.ConsoleScreenBufferInfo
	err := windows.GetConsoleScreenBufferInfo(windows.Handle(f.Fd()), &info)
	if err != nil {
		return 0, err
	}
	return int(info.Window.Right - info.Window.Left + 1), nil
}
