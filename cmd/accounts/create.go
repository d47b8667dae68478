package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/account-opening/internal/client"
	"github.com/deppfellow/account-opening/internal/lib/utils"
)

func newCreateCmd() *cobra.Command {
	var (
		flags   inputFlags
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account through a running server",
		Example: `  accounts create --nickname "My Account"
  accounts create --url https://accounts.example.com --nickname "My Savings" --type savings --goal 50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.input(cmd)
			if err != nil {
				return err
			}

			c, err := client.New(baseURL)
			if err != nil {
				return err
			}

			created, err := c.CreateAccount(cmd.Context(), in)
			if err != nil {
				return err
			}

			return utils.PrintJSON(cmd.OutOrStdout(), created)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "base URL of the account server")

	return cmd
}
