// Package cli wires the noc commands: the dashboard itself plus host
// management helpers that talk to the same backend.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ronaldocrispimsg/SistemaMonitoramentoDeRede-NOC/internal/errors"
)

// configFlag holds the --config persistent flag value.
var configFlag string

// rootCmd is the base command. Running it bare starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "noc",
	Short: "Terminal dashboard for the host monitoring backend",
	Long: `noc is a terminal dashboard for a host monitoring backend.

It polls host snapshots and the alert feed on independent timers, keeps one
card per host with lazily loaded history, latency, SLA and heatmap panels,
and pops ephemeral notifications for fresh status changes.

Running noc with no subcommand starts the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(dashAPIFlag, dashIntervalFlag, dashAlertIntervalFlag)
	},
}

// Config returns the value of the --config flag.
func Config() string {
	return configFlag
}

// Execute runs the CLI. Errors are printed in the structured format and the
// process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders an error for the terminal. Structured errors already
// carry their own multi-line format.
func formatError(err error) string {
	if _, ok := err.(*errors.Error); ok {
		return err.Error()
	}
	return "✗ " + err.Error()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}
