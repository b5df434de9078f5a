package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var validMediums = map[string]bool{"anime": true, "manga": true, "movie": true}

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search for content",
	Long: `Search for content across the gateway's providers.

Examples:
  streamhub search "one piece"
  streamhub search --medium movie "Inception"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("medium", "m", "anime", "Content medium (anime, manga, movie)")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	medium, _ := cmd.Flags().GetString("medium")
	if !validMediums[medium] {
		return fmt.Errorf("unknown medium %q (want anime, manga, or movie)", medium)
	}

	client := NewClient(serverURL)
	results, err := client.Search(medium, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
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

func printItems(resp *ResultsResponse) {
	for i, item := range resp.Results {
		line := fmt.Sprintf("%2d. %s", i+1, item.Title)
		if item.ReleaseDate != "" {
			line += fmt.Sprintf(" (%s)", item.ReleaseDate)
		}
		if item.Status != "" {
			line += "  [" + item.Status + "]"
		}
		fmt.Println(line)
		fmt.Printf("    id: %s\n", item.ID)
	}
}
