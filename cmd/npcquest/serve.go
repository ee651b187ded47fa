package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/npc-quest/internal/config"
	"github.com/vovakirdan/npc-quest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagCondition   string
	flagServeConfig string
	flagServeLimit  int
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the study SSH server",
	Long: `Start an SSH server so participants can run sessions remotely.

The SSH username is recorded as the participant ID; every connection
runs the condition chosen with --condition. Sessions are stored in a
shared database on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.npc-quest/host_key

Examples:
  npcquest serve                           # Listen on :23234
  npcquest serve --ssh :2222               # Listen on port 2222
  npcquest serve --condition random        # All sessions use the random strategy
  npcquest serve --db ./sessions.db        # Use specific database

Participants connect with:
  ssh P001@yourhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagCondition, "condition", "rules", "Decision strategy for all remote sessions")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom quest config YAML")
	serveCmd.Flags().IntVar(&flagServeLimit, "time-limit", 120, "Session time limit in seconds")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	questCfg, err := config.LoadQuest(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Condition:   flagCondition,
		Version:     Version,
		QuestConfig: questCfg,
		TickRate:    flagFPS,
		TimeLimit:   flagServeLimit,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting NPC Quest SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh <participant-id>@localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
