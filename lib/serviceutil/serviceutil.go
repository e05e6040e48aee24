package serviceutil

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext returns a context that lives until Ctrl+C (or a
// TERM signal) arrives. Interrupted reports whether that happened.
func SignalContext() (ctx context.Context, interrupted func() bool) {
	ctx, cancel := context.WithCancel(context.Background())

	hit := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		close(hit)
		cancel()
	}()

	return ctx, func() bool {
		select {
		case <-hit:
			return true
		default:
			return false
		}
	}
}

func Fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}
