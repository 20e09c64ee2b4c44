package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows a list of all game modes registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Println("Game modes:")
	fmt.Println()
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", idWidth, g.ID, g.Title)
		if g.Description != "" {
			fmt.Printf("  %-*s  %s\n", idWidth, "", g.Description)
		}
	}
	fmt.Println()
	fmt.Println("Run 'arcade play <id>' or 'arcade window <id>' to play.")
}
