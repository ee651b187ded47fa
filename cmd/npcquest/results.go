package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/npc-quest/internal/platform/tui"
	"github.com/vovakirdan/npc-quest/internal/storage"
)

var flagResultsParticipant string

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse recorded sessions",
	Long: `Show recorded study sessions with per-condition completion stats.

Examples:
  npcquest results
  npcquest results --participant P001
  npcquest results --db ./sessions.db`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagResultsParticipant, "participant", "", "Only show sessions for this participant")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := tui.RunResults(store, flagResultsParticipant); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
		os.Exit(1)
	}
}
