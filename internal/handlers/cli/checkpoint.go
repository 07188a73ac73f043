package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/tracestream/internal/pipeline"

	"github.com/urfave/cli/v3"
)

// checkpointCommand groups the commands inspecting the resume point.
//
// Usage example:
//
//	tracestream checkpoint show
//	tracestream checkpoint reset
func checkpointCommand(cp Checkpoint) *cli.Command {
	return &cli.Command{
		Name:        "checkpoint",
		Description: "Inspect or clear the last irreversible block the pipeline resumes from.",
		Usage:       "Manages the stored resume point.",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Prints the stored last irreversible block.",
				Action: func(ctx context.Context, c *cli.Command) error {
					n, err := cp.LoadLastIrreversible(ctx)
					if errors.Is(err, pipeline.ErrNoCheckpointFound) {
						_, err = fmt.Fprintln(c.Root().Writer, "no checkpoint stored")
						return err
					}
					if err != nil {
						return err
					}

					_, err = fmt.Fprintln(c.Root().Writer, n)
					return err
				},
			},
			{
				Name:  "reset",
				Usage: "Deletes the stored last irreversible block. The next start begins at the start block.",
				Action: func(ctx context.Context, c *cli.Command) error {
					return cp.ResetLastIrreversible(ctx)
				},
			},
		},
	}
}
