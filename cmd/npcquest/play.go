package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/npc-quest/internal/config"
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/platform/tui"
	"github.com/vovakirdan/npc-quest/internal/storage"
	"github.com/vovakirdan/npc-quest/internal/strategy"
)

var (
	flagConfig      string
	flagModel       string
	flagParticipant string
	flagTimeLimit   int
	flagVerbose     bool
)

var playCmd = &cobra.Command{
	Use:   "play <strategy>",
	Short: "Run a study session",
	Long: `Start a session with the given decision strategy.

Controls:
  WASD/Arrows  - Move
  Space        - Attack
  Ctrl+D       - Toggle debug overlay
  Q/Ctrl+C     - Quit

Strategies:
  random - Uniformly random emotions on a jittered interval
  rules  - Deterministic rule table over the player's situation
  model  - Pretrained emotion classifier (see --model)

Examples:
  npcquest play rules
  npcquest play rules --participant P001
  npcquest play random --seed 42
  npcquest play model --model ./weights.yaml
  npcquest play rules --config ./my-quest.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom quest config YAML")
	playCmd.Flags().StringVar(&flagModel, "model", "", "Path to classifier weights YAML (model strategy)")
	playCmd.Flags().StringVar(&flagParticipant, "participant", "", "Participant ID recorded with the session")
	playCmd.Flags().IntVar(&flagTimeLimit, "time-limit", 120, "Session time limit in seconds")
	playCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log simulation events to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	name := args[0]

	if !strategy.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'npcquest list' to see available strategies.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		TimeLimit: flagTimeLimit,
	}

	questCfg, err := config.LoadQuest(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	strategy.SetModelPath(flagModel)
	strat, err := strategy.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating strategy: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - the session still works
		store = nil
	}

	var logger *log.Logger
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "npcquest"})
	}

	runErr := tui.Run(tui.Options{
		ParticipantID: flagParticipant,
		Version:       Version,
		QuestConfig:   questCfg,
		Strategy:      strat,
		Store:         store,
		Logger:        logger,
	}, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
