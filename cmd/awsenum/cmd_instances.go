package main

import (
	"github.com/spf13/cobra"
)

var (
	instancesAccount string
	instancesAll     bool

	instancesCmd = &cobra.Command{
		Use:   "instances",
		Short: "List EC2 instances across all regions",
		Example: `  awsenum instances --account prod
  awsenum instances --all --parallel 4`,
		RunE: runInstances,
	}
)

func init() {
	rootCmd.AddCommand(instancesCmd)
	instancesCmd.Flags().StringVarP(&instancesAccount, "account", "a", "", "Account name from the credentials file")
	instancesCmd.Flags().BoolVar(&instancesAll, "all", false, "Enumerate every configured account")
}

func runInstances(cmd *cobra.Command, args []string) error {
	if err := requireAccountSelector(instancesAccount, instancesAll); err != nil {
		return err
	}
	e, err := buildEnumerator()
	if err != nil {
		return err
	}

	if instancesAll {
		instances, err := e.ListAllInstances(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(instances)
	}

	instances, err := e.ListInstances(cmd.Context(), instancesAccount)
	if err != nil {
		return err
	}
	return printJSON(instances)
}
