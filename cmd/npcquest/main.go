// npcquest is a terminal game for behavioral studies: the participant
// guides a player through a two-room world together with an NPC companion
// whose emotions are driven by a configurable decision strategy.
//
// Usage:
//
//	npcquest list                - List available decision strategies
//	npcquest play <strategy>     - Run a study session
//	npcquest results             - Browse recorded sessions
//	npcquest serve               - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.npc-quest/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped into verification codes so survey responses can be
// matched to the build that produced them.
const Version = "1.0.0"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "npcquest",
	Short: "NPC Quest - emotion-driven companion study in your terminal",
	Long: `NPC Quest is a terminal-based study game. The participant steers a
player through two rooms, collecting resources, fighting enemies and
reaching the exit, while an NPC companion reacts with emotions chosen
by a pluggable decision strategy.

Available commands:
  list     - Show all decision strategies
  play     - Run a session with a given strategy
  results  - Browse recorded sessions
  serve    - Start SSH server for remote sessions

Examples:
  npcquest list
  npcquest play rules --participant P001
  npcquest play model --model ./weights.yaml
  npcquest results
  npcquest serve --ssh :2222 --condition random`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.npc-quest/sessions.db", "Path to session database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
