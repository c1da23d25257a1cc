package main

import (
	"github.com/spf13/cobra"
)

var (
	elbsAccount string
	elbsAll     bool

	elbsCmd = &cobra.Command{
		Use:   "elbs",
		Short: "List load balancers across all regions",
		Example: `  awsenum elbs --account prod
  awsenum elbs --all`,
		RunE: runELBs,
	}
)

func init() {
	rootCmd.AddCommand(elbsCmd)
	elbsCmd.Flags().StringVarP(&elbsAccount, "account", "a", "", "Account name from the credentials file")
	elbsCmd.Flags().BoolVar(&elbsAll, "all", false, "Enumerate every configured account")
}

func runELBs(cmd *cobra.Command, args []string) error {
	if err := requireAccountSelector(elbsAccount, elbsAll); err != nil {
		return err
	}
	e, err := buildEnumerator()
	if err != nil {
		return err
	}

	if elbsAll {
		lbs, err := e.ListAllLoadBalancers(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(lbs)
	}

	lbs, err := e.ListLoadBalancers(cmd.Context(), elbsAccount)
	if err != nil {
		return err
	}
	return printJSON(lbs)
}
