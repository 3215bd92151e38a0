// Command optiroute hosts the route optimizer: `serve` runs the HTTP API
// backed by the Google Routes API, `solve` optimizes offline from a matrix
// or coordinate file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "optiroute",
		Short:         "Exact route optimization over real road distances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (optional)")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newSolveCmd())

	return root
}
