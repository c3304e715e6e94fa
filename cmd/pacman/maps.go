package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the built-in maps",
	Long:  `Shows every map registered in the game.`,
	Args:  cobra.NoArgs,
	Run:   runMaps,
}

func runMaps(_ *cobra.Command, _ []string) {
	maps := registry.List()

	if len(maps) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, m := range maps {
		maxNameLen = max(maxNameLen, len(m.Name))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-----")

	for _, m := range maps {
		size := fmt.Sprintf("%dx%d", m.Width, m.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, m.Name, size, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play --map <name>' to play a map.")
}
