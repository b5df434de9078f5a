package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server and provider status",
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	health, err := client.Health()
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}

	providers, provErr := client.Providers()

	if jsonOutput {
		out := map[string]any{"health": health}
		if provErr == nil {
			out["providers"] = providers.Providers
		}
		printJSON(out)
		return nil
	}

	fmt.Printf("Server:  %s (%s)\n", health.Status, serverURL)
	if provErr != nil {
		fmt.Println("Providers: unavailable")
		return nil
	}
	for _, p := range providers.Providers {
		state := "down"
		if p.Healthy {
			state = fmt.Sprintf("up (%dms)", p.LatencyMS)
		}
		fmt.Printf("  %-10s %s\n", p.Provider, state)
		if p.Error != "" {
			fmt.Printf("             %s\n", p.Error)
		}
	}
	return nil
}
