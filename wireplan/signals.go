package wireplan

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalHandledContext returns a context derived from parent that is canceled on the first
// SIGINT or SIGTERM; a second signal exits the program.
func SignalHandledContext(
	parent context.Context,
	logger *slog.Logger,
) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigs := make(chan os.Signal, 2) //nolint:gomnd

	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("received signal, canceling context", "signal", sig.String())

			cancel()
		case <-ctx.Done():
			signal.Stop(sigs)

			return
		}

		sig := <-sigs
		logger.Warn("received signal, exiting program", "signal", sig.String())

		os.Exit(130) //nolint:gomnd
	}()

	return ctx, cancel
}
