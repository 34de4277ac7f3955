package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity to the Flight Plan Database API",
	RunE:  runPing,
}

// limitsCmd represents the limits command
var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show API version, units and request quota usage",
	Long: `Show the API version, the unit system responses use, and how much of
the 24-hour request quota has been spent. The quota is tracked per API key,
or per IP address for anonymous use.`,
	RunE: runLimits,
}

func init() {
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(limitsCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	status, err := client.Ping(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%s (authenticated: %v)\n", status.Message, client.Authenticated())
	return nil
}

func runLimits(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	version, err := client.Version(ctx)
	if err != nil {
		return err
	}
	units, err := client.ServerUnits(ctx)
	if err != nil {
		return err
	}
	used, err := client.LimitUsed(ctx)
	if err != nil {
		return err
	}
	cap, err := client.LimitCap(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("API version: %d\n", version)
	fmt.Printf("Units:       %s\n", units)
	fmt.Printf("Quota:       %d/%d requests used\n", used, cap)
	return nil
}
