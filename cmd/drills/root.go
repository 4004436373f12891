package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/drills/internal/log"
)

// NewRootCmd creates the root command for drills.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drills",
		Short: "Minesweeper board annotator and TV series genre ranking",
		Long: `drills runs two independent pipelines.

minesweeper reads a grid of 0 and 1 cells, marks every mine as 9 and replaces
every other cell with the number of mines around it.

best fetches every page of a paginated TV series API and prints the
best-rated series of a genre.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", log.FormatText, "Log output format on stderr (text or json)")

	// Add subcommands
	cmd.AddCommand(NewMinesweeperCmd())
	cmd.AddCommand(NewBestCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
// SIGINT and SIGTERM cancel the command context, aborting any fetch in flight.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
