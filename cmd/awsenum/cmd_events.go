package main

import (
	"github.com/spf13/cobra"
)

var (
	eventsAccount string

	// eventsCmd has no --all variant; maintenance events are per-account only.
	eventsCmd = &cobra.Command{
		Use:     "events",
		Short:   "List scheduled instance maintenance events for one account",
		Example: `  awsenum events --account prod`,
		RunE:    runEvents,
	}
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().StringVarP(&eventsAccount, "account", "a", "", "Account name from the credentials file")
	_ = eventsCmd.MarkFlagRequired("account")
}

func runEvents(cmd *cobra.Command, args []string) error {
	e, err := buildEnumerator()
	if err != nil {
		return err
	}

	events, err := e.ListMaintenanceEvents(cmd.Context(), eventsAccount)
	if err != nil {
		return err
	}
	return printJSON(events)
}
