package main

import (
	"github.com/spf13/cobra"
)

var (
	sgAccount string
	sgAll     bool

	securityGroupsCmd = &cobra.Command{
		Use:     "security-groups",
		Aliases: []string{"sgs"},
		Short:   "List security groups across all regions",
		Example: `  awsenum security-groups --account prod
  awsenum sgs --all`,
		RunE: runSecurityGroups,
	}
)

func init() {
	rootCmd.AddCommand(securityGroupsCmd)
	securityGroupsCmd.Flags().StringVarP(&sgAccount, "account", "a", "", "Account name from the credentials file")
	securityGroupsCmd.Flags().BoolVar(&sgAll, "all", false, "Enumerate every configured account")
}

func runSecurityGroups(cmd *cobra.Command, args []string) error {
	if err := requireAccountSelector(sgAccount, sgAll); err != nil {
		return err
	}
	e, err := buildEnumerator()
	if err != nil {
		return err
	}

	if sgAll {
		groups, err := e.ListAllSecurityGroups(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(groups)
	}

	groups, err := e.ListSecurityGroups(cmd.Context(), sgAccount)
	if err != nil {
		return err
	}
	return printJSON(groups)
}
