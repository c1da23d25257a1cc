package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// accountsCmd lists configured account names. Keys and secrets are never
// printed.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List account names from the credentials file",
	RunE:  runAccounts,
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}

func runAccounts(cmd *cobra.Command, args []string) error {
	e, err := buildEnumerator()
	if err != nil {
		return err
	}
	for _, account := range e.Accounts() {
		fmt.Fprintln(cmd.OutOrStdout(), account.Name)
	}
	return nil
}
