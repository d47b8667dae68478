// Command accounts runs the account opening server and offers the same
// validation and creation from the command line.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "accounts",
		Short:         "Open everyday and savings bank accounts",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newValidateCmd(),
		newCreateCmd(),
	)

	return root
}
