package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <icao>",
	Short: "Show the current METAR and TAF for an airport",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, args []string) error {
	icao := strings.ToUpper(args[0])

	weather, err := client.AirportWeather(cmd.Context(), icao)
	if err != nil {
		return err
	}

	if weather.METAR != nil {
		fmt.Println(*weather.METAR)
	}
	if weather.TAF != nil {
		fmt.Println(*weather.TAF)
	}
	if weather.METAR == nil && weather.TAF == nil {
		fmt.Printf("No weather reported for %s.\n", icao)
	}
	return nil
}
