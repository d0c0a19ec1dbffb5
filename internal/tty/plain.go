package tty

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// ReadLine reads a single line from r without any editing, for input that
// is not a terminal. The line ending is removed. io.EOF is returned only
// if r ends before any input.
func ReadLine(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := bufio.NewReader(r).ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		ch <- result{line: strings.TrimRight(line, "\r\n"), err: err}
	}()

	select {
	case res := <-ch:
		return res.line, res.err
	case <-ctx.Done():
		return "", context.Cause(ctx)
	}
}
