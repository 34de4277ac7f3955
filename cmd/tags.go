package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the flight plan tags in use",
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	tags, err := client.Tags(cmd.Context())
	if err != nil {
		return err
	}

	for _, tag := range tags {
		line := fmt.Sprintf("%-20s %6d plans", tag.Name, tag.PlanCount)
		if tag.Description != nil {
			line += "  " + *tag.Description
		}
		fmt.Println(line)
	}
	return nil
}
