package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phkdx/flightplandb-go/flightplandb"
)

var (
	userSort string
	userMax  int
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Look up users and their flight plans",
}

var userShowCmd = &cobra.Command{
	Use:   "show [username]",
	Short: "Show a user's profile (your own when no username is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUserShow,
}

var userPlansCmd = &cobra.Command{
	Use:   "plans <username>",
	Short: "List a user's flight plans",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserPlans,
}

var userLikesCmd = &cobra.Command{
	Use:   "likes <username>",
	Short: "List the flight plans a user has liked",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserLikes,
}

var userSearchCmd = &cobra.Command{
	Use:   "search <username>",
	Short: "Search users by username",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserSearch,
}

func init() {
	userCmd.PersistentFlags().StringVar(&userSort, "sort", "", "sort order (created, updated, popularity, distance)")
	userCmd.PersistentFlags().IntVar(&userMax, "max", 0, "stop after this many results")

	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userPlansCmd)
	userCmd.AddCommand(userLikesCmd)
	userCmd.AddCommand(userSearchCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserShow(cmd *cobra.Command, args []string) error {
	var (
		user *flightplandb.User
		err  error
	)
	if len(args) == 0 {
		user, err = client.Me(cmd.Context())
	} else {
		user, err = client.User(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (#%d)\n", user.Username, user.ID)
	if user.Location != nil {
		fmt.Printf("  Location: %s\n", *user.Location)
	}
	if user.Joined != nil {
		fmt.Printf("  Joined: %s\n", user.Joined.Format("2006-01-02"))
	}
	if user.PlansCount != nil {
		fmt.Printf("  Plans: %d\n", *user.PlansCount)
	}
	if user.PlansDistance != nil {
		fmt.Printf("  Total distance: %.0f nm\n", *user.PlansDistance)
	}
	if user.PlansLikes != nil {
		fmt.Printf("  Likes received: %d\n", *user.PlansLikes)
	}
	return nil
}

func runUserPlans(cmd *cobra.Command, args []string) error {
	for plan, err := range client.UserPlans(cmd.Context(), args[0], searchOptions(userSort, userMax)...) {
		if err != nil {
			return err
		}
		printPlanLine(plan)
	}
	return nil
}

func runUserLikes(cmd *cobra.Command, args []string) error {
	for plan, err := range client.UserLikes(cmd.Context(), args[0], searchOptions(userSort, userMax)...) {
		if err != nil {
			return err
		}
		printPlanLine(plan)
	}
	return nil
}

func runUserSearch(cmd *cobra.Command, args []string) error {
	var found int
	for user, err := range client.SearchUsers(cmd.Context(), args[0], searchOptions(userSort, userMax)...) {
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-20s #%d", user.Username, user.ID)
		if user.Location != nil {
			line += "  " + *user.Location
		}
		fmt.Println(line)
		found++
	}
	if found == 0 {
		fmt.Println("No users found.")
	}
	return nil
}
