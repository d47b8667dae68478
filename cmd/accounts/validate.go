package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deppfellow/account-opening/internal/account"
	"github.com/deppfellow/account-opening/internal/lib/utils"
)

func newValidateCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate account data and print the result",
		Example: `  accounts validate --nickname "My Savings" --type savings --goal 50000
  echo '{"nickname":"abc"}' | accounts validate --json -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.input(cmd)
			if err != nil {
				return err
			}

			result := account.Validate(in)
			if err := utils.PrintJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}

			if first := result.FirstError(); first != nil {
				return errors.New(first.Message)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
