package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	dashAPIFlag           string
	dashIntervalFlag      string
	dashAlertIntervalFlag string

	hostAddNameFlag    string
	hostAddAddressFlag string
	hostAddPortFlag    int
	hostAddHTTPFlag    string

	hostRemoveYesFlag bool

	hostUpdateAddressFlag string
	hostUpdatePortFlag    int
	hostUpdateHTTPFlag    string
)

// dashCmd starts the dashboard explicitly.
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Start the monitoring dashboard",
	Long: `Start the interactive terminal dashboard.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  up/k        Select previous host
  down/j      Select next host
  h           Toggle check history panel
  l           Toggle latency chart
  s           Toggle SLA chart
  m           Toggle latency heatmap
  e           Edit the selected host
  r           Force refresh

Examples:
  noc dash
  noc dash --api http://10.0.0.2:8000
  noc dash --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(dashAPIFlag, dashIntervalFlag, dashAlertIntervalFlag)
	},
}

// hostCmd groups the host management subcommands.
var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Manage monitored hosts",
	Long:  `Add, remove, list, and update the hosts the backend monitors.`,
}

// hostAddCmd registers a new host with the backend.
var hostAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new host",
	Long: `Register a new host with the monitoring backend.

Prompts for the host details unless they are given as flags.

Examples:
  noc host add
  noc host add --name db1 --address 10.0.0.5
  noc host add --name web1 --address 10.0.0.9 --port 443 --http https://10.0.0.9/health`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostAdd(HostAddOptions{
			Name:    hostAddNameFlag,
			Address: hostAddAddressFlag,
			Port:    hostAddPortFlag,
			HTTPURL: hostAddHTTPFlag,
		})
	},
}

// hostRemoveCmd deletes a host from the backend.
var hostRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a host",
	Long: `Remove a host and its recorded history from the backend.

Examples:
  noc host remove db1
  noc host remove db1 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostRemove(args[0], hostRemoveYesFlag)
	},
}

// hostListCmd prints the current host snapshots.
var hostListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitored hosts",
	Long: `Print every monitored host with its current status and health score.

Examples:
  noc host list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostList()
	},
}

// hostUpdateCmd changes a host's probe targets.
var hostUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update a host's address, port, or HTTP URL",
	Long: `Send a partial update for one host. Only the given flags change;
the host name itself is immutable.

Examples:
  noc host update db1 --address 10.0.0.6
  noc host update web1 --port 8443 --http https://10.0.0.9:8443/health`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostUpdate(args[0], cmd.Flags().Changed("address"),
			cmd.Flags().Changed("port"), cmd.Flags().Changed("http"))
	},
}

func init() {
	// dash command flags
	dashCmd.Flags().StringVar(&dashAPIFlag, "api", "", "backend base URL (overrides config)")
	dashCmd.Flags().StringVar(&dashIntervalFlag, "interval", "", "host poll interval (e.g. 5s, 1m)")
	dashCmd.Flags().StringVar(&dashAlertIntervalFlag, "alert-interval", "", "alert poll interval (e.g. 5s)")
	rootCmd.Flags().StringVar(&dashAPIFlag, "api", "", "backend base URL (overrides config)")
	rootCmd.Flags().StringVar(&dashIntervalFlag, "interval", "", "host poll interval (e.g. 5s, 1m)")
	rootCmd.Flags().StringVar(&dashAlertIntervalFlag, "alert-interval", "", "alert poll interval (e.g. 5s)")

	// host add flags
	hostAddCmd.Flags().StringVar(&hostAddNameFlag, "name", "", "unique host name")
	hostAddCmd.Flags().StringVar(&hostAddAddressFlag, "address", "", "IP address or hostname")
	hostAddCmd.Flags().IntVar(&hostAddPortFlag, "port", 0, "TCP port to probe (optional)")
	hostAddCmd.Flags().StringVar(&hostAddHTTPFlag, "http", "", "HTTP URL to probe (optional)")

	// host remove flags
	hostRemoveCmd.Flags().BoolVar(&hostRemoveYesFlag, "yes", false, "skip the confirmation prompt")

	// host update flags
	hostUpdateCmd.Flags().StringVar(&hostUpdateAddressFlag, "address", "", "new IP address or hostname")
	hostUpdateCmd.Flags().IntVar(&hostUpdatePortFlag, "port", 0, "new TCP port")
	hostUpdateCmd.Flags().StringVar(&hostUpdateHTTPFlag, "http", "", "new HTTP URL")

	// Register all commands
	hostCmd.AddCommand(hostAddCmd)
	hostCmd.AddCommand(hostRemoveCmd)
	hostCmd.AddCommand(hostListCmd)
	hostCmd.AddCommand(hostUpdateCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(hostCmd)
}
