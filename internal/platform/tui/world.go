package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/sim"
)

// World glyphs.
const (
	playerChar    = '@'
	companionChar = '&'
	enemyChar     = '♦'
	resourceChar  = '◆'
	obstacleChar  = '█'
	doorChar      = '▓'
	exitChar      = '░'
)

// Screen rows reserved around the world view: one HUD line on top, one
// status line at the bottom.
const (
	hudRows    = 1
	statusRows = 1
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	scaleX, scaleY float64
	offsetY        int
}

func newViewport(f sim.Frame, screenW, screenH int) viewport {
	worldW := f.Rooms[sim.Room2].Right()
	worldH := f.Rooms[sim.Room1].H
	rows := core.Max(screenH-hudRows-statusRows, 1)

	return viewport{
		scaleX:  float64(screenW) / worldW,
		scaleY:  float64(rows) / worldH,
		offsetY: hudRows,
	}
}

func (v viewport) point(p core.Vec2) (int, int) {
	return int(p.X * v.scaleX), v.offsetY + int(p.Y*v.scaleY)
}

func (v viewport) rect(r core.Rect) (x, y, w, h int) {
	x, y = v.point(core.Vec2{X: r.X, Y: r.Y})
	w = core.Max(int(r.W*v.scaleX), 1)
	h = core.Max(int(r.H*v.scaleY), 1)
	return x, y, w, h
}

// drawWorld renders one simulation frame into the screen buffer.
func drawWorld(s *core.Screen, f sim.Frame, debug bool) {
	s.Clear()
	v := newViewport(f, s.Width(), s.Height())

	for _, room := range f.Rooms {
		x, y, w, h := v.rect(room)
		s.DrawBox(x, y, w, h, core.ColorGray)
	}

	drawDoor(s, v, f)
	drawExit(s, v, f)

	for _, o := range f.Obstacles {
		x, y := v.point(o.Pos)
		s.SetColored(x, y, obstacleChar, core.ColorGray)
	}
	for _, r := range f.Resources {
		if r.Collected {
			continue
		}
		x, y := v.point(r.Pos)
		s.SetColored(x, y, resourceChar, core.ColorYellow)
	}
	for _, e := range f.Enemies {
		if !e.Alive {
			continue
		}
		x, y := v.point(e.Pos)
		s.SetColored(x, y, enemyChar, core.ColorBrightRed)
	}

	cx, cy := v.point(f.Companion.Pos)
	s.SetColored(cx, cy, companionChar, core.ColorCyan)
	s.DrawText(cx+1, cy-1, f.Companion.Emotion.Symbol(), core.ColorBrightYellow)

	px, py := v.point(f.Player.Pos)
	s.SetColored(px, py, playerChar, core.ColorBrightGreen)

	drawHUD(s, f)
	if debug {
		drawDebug(s, f)
	}
}

// drawDoor renders the doorway: red while locked, green once open, and
// pulsing bright green while the unlock effect lasts (it clears on the
// first traversal).
func drawDoor(s *core.Screen, v viewport, f sim.Frame) {
	color := core.ColorRed
	if f.DoorOpen {
		color = core.ColorGreen
		if f.DoorUnlockEffect && f.Tick%10 < 5 {
			color = core.ColorBrightGreen
		}
	}
	x, y, w, h := v.rect(f.Door)
	for dy := 0; dy < h; dy++ {
		s.DrawHLine(x, y+dy, w, doorChar, color)
	}
}

func drawExit(s *core.Screen, v viewport, f sim.Frame) {
	color := core.ColorGray
	if f.ExitOpen {
		color = core.ColorBrightGreen
	}
	x, y, w, h := v.rect(f.Exit)
	for dy := 0; dy < h; dy++ {
		s.DrawHLine(x, y+dy, w, exitChar, color)
	}
}

// drawHUD renders the health bar, progress counters and remaining time,
// plus a key-hint status line. The companion's emotion and reaction
// labels live in the debug overlay; only its symbol bubble is always on.
func drawHUD(s *core.Screen, f sim.Frame) {
	const barWidth = 10
	filled := core.Clamp(int(f.Player.Health/100*barWidth), 0, barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	hud := fmt.Sprintf("HP %s %3.0f  RES %d  KILLS %d  TIME %3.0fs",
		bar, f.Player.Health, f.ResourcesCollected, f.EnemiesKilled, f.RemainingSeconds)
	s.DrawText(0, 0, hud, core.ColorWhite)

	status := fmt.Sprintf("room %d   [q] quit  [ctrl+d] debug", f.Player.Room+1)
	s.DrawText(0, s.Height()-1, status, core.ColorGray)
}

// drawDebug overlays raw simulation values on the right edge.
func drawDebug(s *core.Screen, f sim.Frame) {
	lines := []string{
		fmt.Sprintf("tick %d", f.Tick),
		fmt.Sprintf("player %.0f,%.0f r%d", f.Player.Pos.X, f.Player.Pos.Y, f.Player.Room+1),
		fmt.Sprintf("npc %.0f,%.0f", f.Companion.Pos.X, f.Companion.Pos.Y),
		fmt.Sprintf("emotion %s (%s)", f.Companion.Emotion, f.Reaction),
		fmt.Sprintf("deaths %d", f.Deaths),
	}
	for i, line := range lines {
		s.DrawText(core.Max(s.Width()-len(line)-1, 0), hudRows+i, line, core.ColorGray)
	}
}
