//go:build windows

package viewport

import (
	"context"
)

// Watch never fires on windows, there is no resize signal. The channel closes when ctx is done.
func Watch(ctx context.Context, v Viewport) <-chan int {
	widths := make(chan int)
	go func() {
		<-ctx.Done()
		close(widths)
	}()
	return widths
}
