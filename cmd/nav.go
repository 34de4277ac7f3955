package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/phkdx/flightplandb-go/flightplandb"
)

var (
	airportWeather bool

	navaidType string
	navaidMax  int
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Airports, oceanic tracks and navaids",
}

var airportCmd = &cobra.Command{
	Use:   "airport <icao>",
	Short: "Show an airport's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runAirport,
}

var natsCmd = &cobra.Command{
	Use:   "nats",
	Short: "Show currently active North Atlantic tracks",
	RunE:  runNATS,
}

var pacotsCmd = &cobra.Command{
	Use:   "pacots",
	Short: "Show currently active Pacific Organized Track System tracks",
	RunE:  runPACOTS,
}

var navaidSearchCmd = &cobra.Command{
	Use:   "navaid <query>",
	Short: "Search navaids by ident or name",
	Args:  cobra.ExactArgs(1),
	RunE:  runNavaidSearch,
}

func init() {
	airportCmd.Flags().BoolVarP(&airportWeather, "weather", "w", false, "include current METAR and TAF")
	navaidSearchCmd.Flags().StringVar(&navaidType, "type", "", "restrict to a navaid type (VOR, NDB, ...)")
	navaidSearchCmd.Flags().IntVar(&navaidMax, "max", 0, "stop after this many results")

	navCmd.AddCommand(airportCmd)
	navCmd.AddCommand(natsCmd)
	navCmd.AddCommand(pacotsCmd)
	navCmd.AddCommand(navaidSearchCmd)
	rootCmd.AddCommand(navCmd)
}

func runAirport(cmd *cobra.Command, args []string) error {
	icao := strings.ToUpper(args[0])

	var (
		airport *flightplandb.Airport
		weather *flightplandb.Weather
	)

	// The weather endpoint is separate from the airport record, so fetch
	// both at once when asked for a full briefing.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		airport, err = client.Airport(ctx, icao)
		return err
	})
	if airportWeather {
		g.Go(func() error {
			var err error
			weather, err = client.AirportWeather(ctx, icao)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("%s", airport.ICAO)
	if airport.IATA != nil {
		fmt.Printf(" / %s", *airport.IATA)
	}
	fmt.Printf("  %s\n", airport.Name)
	if airport.RegionName != nil {
		fmt.Printf("  Region: %s\n", *airport.RegionName)
	}
	fmt.Printf("  Position: %.4f, %.4f  elevation %.0f ft\n", airport.Lat, airport.Lon, airport.Elevation)
	if airport.Timezone.Name != nil {
		fmt.Printf("  Timezone: %s\n", *airport.Timezone.Name)
	}

	fmt.Printf("  Runways (%d):\n", airport.RunwayCount)
	for _, rwy := range airport.Runways {
		fmt.Printf("    %-4s %6.0f x %3.0f ft  %s\n", rwy.Ident, rwy.Length, rwy.Width, rwy.Surface)
	}

	if len(airport.Frequencies) > 0 {
		fmt.Println("  Frequencies:")
		for _, freq := range airport.Frequencies {
			name := ""
			if freq.Name != nil {
				name = *freq.Name
			}
			fmt.Printf("    %-8s %8.3f  %s\n", freq.Type, freq.Frequency/1e6, name)
		}
	}

	if weather != nil {
		if weather.METAR != nil {
			fmt.Printf("  METAR: %s\n", *weather.METAR)
		}
		if weather.TAF != nil {
			fmt.Printf("  TAF: %s\n", *weather.TAF)
		}
	}
	return nil
}

func runNATS(cmd *cobra.Command, args []string) error {
	tracks, err := client.NATS(cmd.Context())
	if err != nil {
		return err
	}
	printTracks(tracks)
	return nil
}

func runPACOTS(cmd *cobra.Command, args []string) error {
	tracks, err := client.PACOTS(cmd.Context())
	if err != nil {
		return err
	}
	printTracks(tracks)
	return nil
}

func printTracks(tracks []flightplandb.Track) {
	if len(tracks) == 0 {
		fmt.Println("No active tracks.")
		return
	}
	for _, track := range tracks {
		idents := make([]string, 0, len(track.Route.Nodes))
		for _, node := range track.Route.Nodes {
			idents = append(idents, node.Ident)
		}
		fmt.Printf("Track %s: %s\n", track.Ident, strings.Join(idents, " "))
		if len(track.Route.EastLevels) > 0 {
			fmt.Printf("  East levels: %s\n", strings.Join(track.Route.EastLevels, " "))
		}
		if len(track.Route.WestLevels) > 0 {
			fmt.Printf("  West levels: %s\n", strings.Join(track.Route.WestLevels, " "))
		}
		fmt.Printf("  Valid %s to %s\n",
			track.ValidFrom.Format("2006-01-02 15:04Z"),
			track.ValidTo.Format("2006-01-02 15:04Z"))
	}
}

func runNavaidSearch(cmd *cobra.Command, args []string) error {
	var found int
	for navaid, err := range client.SearchNavaids(cmd.Context(), args[0], navaidType, searchOptions("", navaidMax)...) {
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-6s %-10s %9.4f, %9.4f", navaid.Ident, navaid.Type, navaid.Lat, navaid.Lon)
		if navaid.Name != nil {
			line += "  " + *navaid.Name
		}
		if navaid.AirportICAO != nil {
			line += "  (" + *navaid.AirportICAO + ")"
		}
		fmt.Println(line)
		found++
	}
	if found == 0 {
		fmt.Println("No navaids found.")
	}
	return nil
}
