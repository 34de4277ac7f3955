package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phkdx/flightplandb-go/filter"
	"github.com/phkdx/flightplandb-go/flightplandb"
)

var (
	exportFormat string
	exportOutput string

	searchQuery  string
	searchFrom   string
	searchTo     string
	searchTags   string
	searchFilter string
	searchSort   string
	searchMax    int
)

// planCmd groups the flight plan commands
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Fetch, search, export and manage flight plans",
}

var planFetchCmd = &cobra.Command{
	Use:   "fetch <id>",
	Short: "Fetch a flight plan by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanFetch,
}

var planExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a flight plan in a simulator or document format",
	Long: `Export a flight plan in one of the API's export formats: json, xml,
csv, pdf, kml, xplane, xplane11, fs9, fsx, squawkbox, xfmc, pmdg, airbusx,
qualitywings, ifly747, flightgear, tfdi717 or infiniteflight.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanExport,
}

var planSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search flight plans",
	RunE:  runPlanSearch,
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a flight plan linked to your account",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanDelete,
}

var planDecodeCmd = &cobra.Command{
	Use:   "decode <route...>",
	Short: "Decode an ATC route string into a flight plan",
	Long:  `Decode a route string such as "KSAN BROWS TRM LRAIN KDEN" into a full flight plan. Requires authentication.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlanDecode,
}

func init() {
	planExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "export format")
	planExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")

	planSearchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "free-text query (username, tags, flight number)")
	planSearchCmd.Flags().StringVar(&searchFrom, "from", "", "departure airport ICAO")
	planSearchCmd.Flags().StringVar(&searchTo, "to", "", "destination airport ICAO")
	planSearchCmd.Flags().StringVar(&searchTags, "tags", "", "comma-separated tag names")
	planSearchCmd.Flags().StringVar(&searchFilter, "filter", "", "client-side filter expression")
	planSearchCmd.Flags().StringVar(&searchSort, "sort", "", "sort order (created, updated, popularity, distance)")
	planSearchCmd.Flags().IntVar(&searchMax, "max", 0, "stop after this many results")

	planCmd.AddCommand(planFetchCmd)
	planCmd.AddCommand(planExportCmd)
	planCmd.AddCommand(planSearchCmd)
	planCmd.AddCommand(planDeleteCmd)
	planCmd.AddCommand(planDecodeCmd)
	rootCmd.AddCommand(planCmd)
}

func parsePlanID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid plan ID %q", arg)
	}
	return id, nil
}

func runPlanFetch(cmd *cobra.Command, args []string) error {
	id, err := parsePlanID(args[0])
	if err != nil {
		return err
	}

	plan, err := client.Plan(cmd.Context(), id)
	if err != nil {
		return err
	}

	printPlan(*plan)
	return nil
}

func runPlanExport(cmd *cobra.Command, args []string) error {
	id, err := parsePlanID(args[0])
	if err != nil {
		return err
	}

	format := flightplandb.Format(exportFormat)
	if !format.Valid() || format == flightplandb.FormatNative {
		return fmt.Errorf("invalid export format %q", exportFormat)
	}

	body, err := client.ExportPlan(cmd.Context(), id, format)
	if err != nil {
		return err
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, body, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		logger.Info().Str("file", exportOutput).Int("bytes", len(body)).Msg("Export written")
		return nil
	}

	_, err = os.Stdout.Write(body)
	return err
}

func runPlanSearch(cmd *cobra.Command, args []string) error {
	var planFilter *filter.PlanFilter
	if searchFilter != "" {
		var err error
		planFilter, err = filter.Compile(searchFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	query := flightplandb.PlanQuery{
		Query:    searchQuery,
		FromICAO: searchFrom,
		ToICAO:   searchTo,
		Tags:     searchTags,
	}

	var shown int
	for plan, err := range client.SearchPlans(cmd.Context(), query, searchOptions(searchSort, searchMax)...) {
		if err != nil {
			return err
		}
		if planFilter != nil {
			matched, err := planFilter.Match(plan)
			if err != nil {
				return err
			}
			if !matched {
				continue
			}
		}
		printPlanLine(plan)
		shown++
	}

	if shown == 0 {
		fmt.Println("No plans found.")
	}
	return nil
}

func runPlanDelete(cmd *cobra.Command, args []string) error {
	id, err := parsePlanID(args[0])
	if err != nil {
		return err
	}

	status, err := client.DeletePlan(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted plan %d: %s\n", id, status.Message)
	return nil
}

func runPlanDecode(cmd *cobra.Command, args []string) error {
	route := strings.Join(args, " ")

	plan, err := client.DecodeRoute(cmd.Context(), route)
	if err != nil {
		return err
	}

	printPlan(*plan)
	return nil
}

func printPlanLine(plan flightplandb.Plan) {
	from, to := "????", "????"
	if plan.FromICAO != nil {
		from = *plan.FromICAO
	}
	if plan.ToICAO != nil {
		to = *plan.ToICAO
	}

	line := fmt.Sprintf("#%-8d %s → %s", plan.ID, from, to)
	if plan.Distance != nil {
		line += fmt.Sprintf("  %7.1f nm", *plan.Distance)
	}
	if plan.User != nil {
		line += "  by " + plan.User.Username
	}
	fmt.Println(line)
}

func printPlan(plan flightplandb.Plan) {
	printPlanLine(plan)

	if plan.FromName != nil && plan.ToName != nil {
		fmt.Printf("  %s → %s\n", *plan.FromName, *plan.ToName)
	}
	if plan.MaxAltitude != nil {
		fmt.Printf("  Max altitude: %.0f\n", *plan.MaxAltitude)
	}
	if plan.Waypoints != nil {
		fmt.Printf("  Waypoints: %d\n", *plan.Waypoints)
	}
	if len(plan.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(plan.Tags, ", "))
	}
	if plan.CreatedAt != nil {
		fmt.Printf("  Created: %s\n", plan.CreatedAt.Format("2006-01-02"))
	}
	if plan.Route != nil {
		idents := make([]string, 0, len(plan.Route.Nodes))
		for _, node := range plan.Route.Nodes {
			idents = append(idents, node.Ident)
		}
		fmt.Printf("  Route: %s\n", strings.Join(idents, " "))
	}
}
