package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// ErrPipelineStopped is returned by the start command when the pipeline
// stops on its own, e.g. after losing the notification feed.
var ErrPipelineStopped = errors.New("pipeline stopped unexpectedly")

// startPipelineCommand returns a CLI command that runs the pipeline.
//
// Usage example:
//
//	tracestream start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or the
// pipeline stops.
func startPipelineCommand(p Pipeline) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Subscribes to the ledger notification feed and publishes the derived records.",
		Usage:       "Runs the pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := p.Start(ctx); err != nil {
				return err
			}
			defer p.Close()

			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return nil
			case <-p.Done():
				return ErrPipelineStopped
			}
		},
	}
}
