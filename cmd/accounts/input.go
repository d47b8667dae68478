package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deppfellow/account-opening/internal/account"
)

// inputFlags are the account fields shared by validate and create.
type inputFlags struct {
	nickname    string
	accountType string
	savingsGoal string
	jsonBody    string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.nickname, "nickname", "", "account nickname")
	cmd.Flags().StringVar(&f.accountType, "type", "", `account type, "everyday" or "savings"`)
	cmd.Flags().StringVar(&f.savingsGoal, "goal", "", "savings goal, required for savings accounts")
	cmd.Flags().StringVar(&f.jsonBody, "json", "", `JSON request body, or "-" to read it from stdin`)

	cmd.MarkFlagsMutuallyExclusive("json", "nickname")
	cmd.MarkFlagsMutuallyExclusive("json", "type")
	cmd.MarkFlagsMutuallyExclusive("json", "goal")
}

// input builds the raw input. Only flags that were set become keys, so an
// unset --goal stays undefined rather than empty.
func (f *inputFlags) input(cmd *cobra.Command) (account.RawInput, error) {
	if cmd.Flags().Changed("json") {
		body := []byte(f.jsonBody)
		if f.jsonBody == "-" {
			var err error
			body, err = io.ReadAll(io.LimitReader(cmd.InOrStdin(), 1<<20))
			if err != nil {
				return nil, errors.Wrap(err, "failed to read stdin")
			}
		}
		return account.ParseRequest(body)
	}

	in := account.RawInput{}

	if cmd.Flags().Changed("nickname") {
		in[account.FieldNickname] = f.nickname
	}
	if cmd.Flags().Changed("type") {
		t, err := account.ParseAccountType(f.accountType)
		if err != nil {
			return nil, err
		}
		in[account.FieldAccountType] = string(t)
	}
	if cmd.Flags().Changed("goal") {
		in[account.FieldSavingsGoal] = f.savingsGoal
	}

	return in, nil
}
