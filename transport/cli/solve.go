package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

func newSolveCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:     "solve <board>",
		Short:   "Print the optimal action for the player to move",
		Example: `  tictactoe solve "OXX/XOO/X.."`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return err
			}

			return withRuntime(cmd, load, func(rt *Runtime) error {
				solution, err := rt.Service.Solve(cmd.Context(), board)
				if err != nil {
					return fmt.Errorf("failed to solve: %w", err)
				}

				printSolution(cmd.OutOrStdout(), solution)

				return nil
			})
		},
	}
}

func newAnalyzeCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <board>",
		Short: "Print the minimax value of every legal action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return err
			}

			return withRuntime(cmd, load, func(rt *Runtime) error {
				analysis, err := rt.Service.Analyze(cmd.Context(), board)
				if err != nil {
					return fmt.Errorf("failed to analyze: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s\n\nplayer: %s\n", board.Grid(), analysis.Player)
				for _, av := range analysis.Actions {
					fmt.Fprintf(out, "%s\t%+d\n", av.Action, av.Value)
				}

				return nil
			})
		},
	}
}

func newMoveCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "move <board> <row> <col>",
		Short: "Place the mark of the player to move and print the new position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return err
			}

			action, err := parseAction(args[1], args[2])
			if err != nil {
				return err
			}

			return withRuntime(cmd, load, func(rt *Runtime) error {
				position, err := rt.Service.Move(cmd.Context(), board, action)
				if err != nil {
					return fmt.Errorf("failed to move: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\nboard:   %s\nplayer:  %s\noutcome: %s\n",
					position.Board.Grid(), position.Board, position.Player, position.Outcome)

				return nil
			})
		},
	}
}

func parseAction(row, col string) (entity.Action, error) {
	r, err := strconv.Atoi(row)
	if err != nil {
		return entity.NoAction, fmt.Errorf("%w: row %q", apperror.ErrInvalidCell, row)
	}

	c, err := strconv.Atoi(col)
	if err != nil {
		return entity.NoAction, fmt.Errorf("%w: col %q", apperror.ErrInvalidCell, col)
	}

	return entity.Action{Row: r, Col: c}, nil
}

func printSolution(out io.Writer, solution *entity.Solution) {
	fmt.Fprintf(out, "%s\n\nboard:   %s\nplayer:  %s\naction:  %s\nvalue:   %d\noutcome: %s\n",
		solution.Board.Grid(),
		solution.Board,
		solution.Player,
		solution.BestAction(),
		solution.Value,
		solution.Outcome,
	)
}
