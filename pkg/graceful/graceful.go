// Package graceful wires OS signals to context cancellation so the API
// server and its workers drain before the process exits.
package graceful

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpillora/overseer"
)

// RestartSignal triggers a zero-downtime binary swap through overseer.
const RestartSignal = syscall.SIGUSR2

// SetupGracefulShutdown cancels ctx-bound work when a shutdown or restart
// signal arrives. Overseer's internal signals are included so a supervised
// restart drains the same way a plain SIGINT does.
func SetupGracefulShutdown(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		RestartSignal,
		syscall.SIGHUP,
		syscall.SIGTSTP,
		syscall.SIGINT,
		os.Interrupt,
		overseer.SIGTERM,
		overseer.SIGUSR1,
		overseer.SIGUSR2,
	)

	go func() {
		sig := <-sigCh
		log.Printf("🔴 Received signal %v. Initiating shutdown...", sig)
		signal.Stop(sigCh)
		cancel()
	}()
}
