//go:build !windows

package viewport

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Watch sends the fresh width of v every time the terminal is resized until ctx is done
func Watch(ctx context.Context, v Viewport) <-chan int {
	widths := make(chan int, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)

	go func() {
		defer close(widths)
		defer signal.Stop(sig)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				select {
				case widths <- v.Width():
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return widths
}
