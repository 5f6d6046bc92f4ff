package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/game"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List selectable characters",
	Long:  `Shows the characters you can pick before a game. They differ only in looks.`,
	Args:  cobra.NoArgs,
	Run:   runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	sprites := game.Sprites()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range sprites {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Println("Characters:")
	fmt.Println()
	fmt.Printf("  %-5s  %-*s  %s\n", "Look", maxNameLen, "Name", "Title")
	fmt.Printf("  %-5s  %-*s  %s\n", "----", maxNameLen, "----", "-----")

	for _, s := range sprites {
		fmt.Printf("  %-5s  %-*s  %s\n", string(s.Glyph), maxNameLen, s.Name, s.Title)
	}

	fmt.Println()
	fmt.Println("Pick one on the start screen of 'skyfall play'.")
}
