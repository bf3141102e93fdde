package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type batchFile struct {
	Positions []batchPosition `yaml:"positions"`
}

type batchPosition struct {
	Name  string       `yaml:"name"`
	Board *entity.Board `yaml:"board"`
}

type batchResult struct {
	Name string `yaml:"name"`

	entity.Solution `yaml:",inline"`
}

func newBatchCommand(load Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every position listed in a YAML file",
		Long: `Reads a YAML document of the form

  positions:
    - name: opening
      board: ".../.../..."

and writes one solution per position to stdout, in input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("file")
			workers, _ := cmd.Flags().GetInt("workers")

			positions, err := readBatch(path)
			if err != nil {
				return err
			}

			return withRuntime(cmd, load, func(rt *Runtime) error {
				results := make([]batchResult, len(positions))

				group, ctx := errgroup.WithContext(cmd.Context())
				group.SetLimit(max(workers, 1))

				for i, position := range positions {
					group.Go(func() error {
						solution, err := rt.Service.Solve(ctx, *position.Board)
						if err != nil {
							return fmt.Errorf("failed to solve %q: %w", position.Name, err)
						}

						results[i] = batchResult{Name: position.Name, Solution: *solution}

						return nil
					})
				}

				if err := group.Wait(); err != nil {
					return err
				}

				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				defer encoder.Close()

				if err := encoder.Encode(results); err != nil {
					return fmt.Errorf("failed to encode results: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringP("file", "f", "", "YAML file with the positions to solve")
	cmd.Flags().IntP("workers", "w", 4, "Number of positions solved concurrently")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readBatch(path string) ([]batchPosition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var file batchFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	for i, position := range file.Positions {
		if position.Board == nil {
			return nil, fmt.Errorf("%w: position %d (%q) has no board", apperror.ErrInvalidNotation, i, position.Name)
		}
	}

	return file.Positions, nil
}
