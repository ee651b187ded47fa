package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/npc-quest/internal/strategy"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all decision strategies",
	Long:  `Shows the decision strategies a session can run with.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	strategies := strategy.List()

	fmt.Println("Available strategies:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range strategies {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, s := range strategies {
		fmt.Printf("  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'npcquest play <name>' to start a session.")
}
