// Package sim implements the deterministic quest simulation: a two-room
// world where the participant guides a player past enemies and obstacles
// while an emotion-driven NPC companion reacts to the situation. All state
// advances in fixed ticks; the same seed and input sequence always yield
// the same run.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/npc-quest/internal/config"
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// End reasons reported in Result.
const (
	EndReasonCompleted = "completed"
	EndReasonTimeout   = "timeout"
	EndReasonQuit      = "quit"
)

// World holds the complete simulation state for one session.
type World struct {
	cfg      config.QuestConfig
	runtime  core.RuntimeConfig
	strategy emotion.Strategy
	logger   *log.Logger
	rng      *rand.Rand

	rooms [2]core.Rect
	door  core.Rect
	exit  core.Rect

	player    Player
	companion Companion
	enemies   []Enemy
	resources []Resource
	obstacles []Obstacle

	resourcesCollected int
	enemiesKilled      int
	deaths             int
	doorOpen           bool
	doorUnlockEffect   bool
	exitOpen           bool

	tick          int
	doorReadyTick int
	prevIntent    emotion.Intent

	done      bool
	completed bool
	endReason string
}

// New creates a simulation world. The world is unusable until Reset is
// called. A nil logger discards all output.
func New(strategy emotion.Strategy, cfg config.QuestConfig, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		cfg:      cfg,
		strategy: strategy,
		logger:   logger,
	}
}

// Reset initializes or restarts the session. It seeds the RNG, lays out
// both rooms, places obstacles, enemies and resources, and initializes
// the decision strategy. A strategy that fails to initialize is logged
// and left in whatever degraded mode it provides; the session proceeds.
func (w *World) Reset(runtime core.RuntimeConfig) {
	w.runtime = runtime
	w.rng = rand.New(rand.NewSource(runtime.Seed))

	if err := w.strategy.Init(emotion.InitConfig{Seed: runtime.Seed, TickRate: runtime.TickRate}); err != nil {
		w.logger.Warn("strategy init failed, continuing degraded",
			"strategy", w.strategy.Name(), "err", err)
	}

	w.resourcesCollected = 0
	w.enemiesKilled = 0
	w.deaths = 0
	w.doorOpen = false
	w.doorUnlockEffect = false
	w.exitOpen = false
	w.tick = 0
	w.doorReadyTick = 0
	w.prevIntent = emotion.IntentIdle
	w.done = false
	w.completed = false
	w.endReason = ""

	w.layout()
}

// layout rebuilds the world geometry and entity placement. Used by Reset
// and by the death respawn, which keeps counters but rebuilds the rooms.
func (w *World) layout() {
	wc := w.cfg.World
	w.rooms[Room1] = core.NewRect(0, 0, wc.RoomWidth, wc.RoomHeight)
	w.rooms[Room2] = core.NewRect(wc.RoomWidth+wc.RoomGap, 0, wc.RoomWidth, wc.RoomHeight)

	w.door = core.NewRect(w.rooms[Room1].Right(), wc.RoomHeight/2-50, wc.RoomGap, 100)
	w.exit = core.NewRect(w.rooms[Room2].Right()-70, wc.RoomHeight/2-40, 60, 80)

	w.player = Player{
		Pos:    core.Vec2{X: w.rooms[Room1].X + 150, Y: w.rooms[Room1].Y + 150},
		Room:   Room1,
		Health: fullHealth,
	}
	w.companion = Companion{
		Pos:     core.Vec2{X: w.rooms[Room1].X + 100, Y: w.rooms[Room1].Y + 100},
		Room:    Room1,
		Emotion: emotion.Anticipation,
	}

	w.obstacles = w.obstacles[:0]
	w.generateObstacles(Room1)
	w.generateObstacles(Room2)

	w.enemies = w.enemies[:0]
	w.spawnEnemies(Room1, w.cfg.Entities.EnemiesRoom1)
	w.spawnEnemies(Room2, w.cfg.Entities.EnemiesRoom2)

	w.resources = w.resources[:0]
	w.spawnResources(Room1)
	w.spawnResources(Room2)
}

func (w *World) spawnEnemies(room, count int) {
	for i := 0; i < count; i++ {
		speed := w.cfg.Entities.EnemySpeed * (0.8 + w.rng.Float64()*0.4)
		w.enemies = append(w.enemies, Enemy{
			Pos:    w.validPosition(room),
			Room:   room,
			Speed:  speed,
			Health: enemyHealth,
			Alive:  true,
		})
	}
}

func (w *World) spawnResources(room int) {
	for i := 0; i < w.cfg.Entities.ResourcesPerRoom; i++ {
		w.resources = append(w.resources, Resource{
			Pos:  w.validPosition(room),
			Room: room,
		})
	}
}

// respawn restarts the run after the player dies: counters and gates go
// back to zero and the layout is rerolled. Only the death count and the
// session clock survive.
func (w *World) respawn() {
	w.deaths++
	w.resourcesCollected = 0
	w.enemiesKilled = 0
	w.doorOpen = false
	w.doorUnlockEffect = false
	w.exitOpen = false
	w.doorReadyTick = 0
	w.prevIntent = emotion.IntentIdle
	w.layout()
	w.logger.Info("player died, restarting run", "deaths", w.deaths)
}

// Done reports whether the session has ended.
func (w *World) Done() bool { return w.done }

// Quit ends the session early without completion.
func (w *World) Quit() {
	if w.done {
		return
	}
	w.done = true
	w.completed = false
	w.endReason = EndReasonQuit
}

func (w *World) doorCooldownTicks() int {
	return int(w.cfg.Progression.DoorCooldownSeconds * float64(w.runtime.TickRate))
}

func (w *World) timeLimitTicks() int {
	return w.runtime.TimeLimit * w.runtime.TickRate
}
