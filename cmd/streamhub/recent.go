package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently updated content",
	Long: `List recently updated content.

Examples:
  streamhub recent
  streamhub recent --medium manga
  streamhub recent --medium movie --page 2`,
	RunE: runRecentCmd,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().StringP("medium", "m", "anime", "Content medium (anime, manga, movie)")
	recentCmd.Flags().Int("page", 1, "Result page")
}

func runRecentCmd(cmd *cobra.Command, args []string) error {
	medium, _ := cmd.Flags().GetString("medium")
	page, _ := cmd.Flags().GetInt("page")
	if !validMediums[medium] {
		return fmt.Errorf("unknown medium %q (want anime, manga, or movie)", medium)
	}

	client := NewClient(serverURL)
	results, err := client.Recent(medium, page)
	if err != nil {
		return fmt.Errorf("recent failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Results) == 0 {
		fmt.Println("No results found")
		return nil
	}
	printItems(results)
	return nil
}
