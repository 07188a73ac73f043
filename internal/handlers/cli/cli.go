package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

// Pipeline is the long-running service driven by the start command.
type Pipeline interface {
	Start(ctx context.Context) error
	Done() <-chan struct{}
	Close()
}

// Checkpoint is the stored resume point managed by the checkpoint commands.
type Checkpoint interface {
	LoadLastIrreversible(ctx context.Context) (uint32, error)
	ResetLastIrreversible(ctx context.Context) error
}

// Run initializes and executes the tracestream CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the pipeline until interrupted.
//   - `checkpoint show`: Prints the stored last irreversible block.
//   - `checkpoint reset`: Deletes the stored last irreversible block.
func Run(ctx context.Context, p Pipeline, cp Checkpoint) error {
	return newApp(p, cp).Run(ctx, os.Args)
}

func newApp(p Pipeline, cp Checkpoint) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "tracestream",
		Description:           "Streams ledger blocks, transaction traces and derived action logs to Kafka.",
		Usage:                 "tracestream [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(p),
			checkpointCommand(cp),
		},
	}
}
