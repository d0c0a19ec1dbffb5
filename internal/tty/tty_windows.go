//go:build windows

package tty

import (
	"context"
	"time"
)

// watchResize polls for width changes on Windows (no SIGWINCH). It blocks
// until ctx is cancelled.
func (t *Terminal) watchResize(ctx context.Context) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	prev, _ := t.sizeOf()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w, err := t.sizeOf()
			if err != nil || w == prev {
				continue
			}
			prev = w
			t.notifyResize()
		}
	}
}
