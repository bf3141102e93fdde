// Package cli is the command line front end of the solver.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const defaultConfigPath = "./config.yml"

type Service interface {
	Solve(ctx context.Context, board entity.Board) (*entity.Solution, error)
	Analyze(ctx context.Context, board entity.Board) (*entity.Analysis, error)
	Move(ctx context.Context, board entity.Board, action entity.Action) (*entity.Position, error)
}

// Runtime is what a command needs once configuration is loaded.
type Runtime struct {
	Logger  *slog.Logger
	Service Service

	// Serve blocks serving the HTTP API until ctx is canceled.
	Serve func(ctx context.Context) error
	Close func() error
}

// Loader builds a Runtime from the config file at configPath.
type Loader func(ctx context.Context, configPath string) (*Runtime, error)

func NewRootCommand(load Loader, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Tic-tac-toe rules engine and minimax solver",
		Long:          `Finds the optimal move of any tic-tac-toe position, from the command line or over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", defaultConfigPath, "Path to the config file")

	root.AddCommand(
		newSolveCommand(load),
		newAnalyzeCommand(load),
		newMoveCommand(load),
		newBatchCommand(load),
		newServeCommand(load),
		newVersionCommand(version),
	)

	return root
}

// withRuntime loads the runtime for cmd and closes it after run returns.
func withRuntime(cmd *cobra.Command, load Loader, run func(rt *Runtime) error) error {
	configPath, _ := cmd.Flags().GetString("config")

	rt, err := load(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	defer func() {
		if rt.Close == nil {
			return
		}

		if closeErr := rt.Close(); closeErr != nil {
			rt.Logger.Error("failed to close runtime", "error", closeErr)
		}
	}()

	return run(rt)
}
