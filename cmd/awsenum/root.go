package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jfalken/aws-enumeration-lib/config"
	"github.com/jfalken/aws-enumeration-lib/enumerator"
)

var (
	version = "0.1.0"

	cfgPath  string
	debug    bool
	parallel int

	rootCmd = &cobra.Command{
		Use:   "awsenum",
		Short: "Enumerate AWS resources across accounts and regions",
		Long: `awsenum - multi-account AWS resource enumeration

Lists EC2 instances, load balancers, security groups and scheduled
instance maintenance events across every region of the accounts named
in a credentials file, for security auditing.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "ase.yaml", "Path to the account credentials file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&parallel, "parallel", 1, "Max concurrent region queries (1 = sequential)")
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// buildEnumerator loads the credentials file and wires up the library.
func buildEnumerator() (*enumerator.Enumerator, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return enumerator.New(cfg,
		enumerator.WithLogger(newLogger()),
		enumerator.WithParallelism(parallel),
	), nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// requireAccountSelector enforces that exactly one of --account / --all was given.
func requireAccountSelector(account string, all bool) error {
	if all == (account != "") {
		return fmt.Errorf("exactly one of --account or --all is required")
	}
	return nil
}
