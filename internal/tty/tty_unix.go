//go:build unix

package tty

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// watchResize reports SIGWINCH as a resize until ctx is cancelled.
func (t *Terminal) watchResize(ctx context.Context) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			t.notifyResize()
		}
	}
}
