package cli

import (
	"github.com/spf13/cobra"
)

func newServeCommand(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, load, func(rt *Runtime) error {
				return rt.Serve(cmd.Context())
			})
		},
	}
}
