package sim

import (
	"testing"

	"github.com/vovakirdan/npc-quest/internal/config"
	"github.com/vovakirdan/npc-quest/internal/core"
	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// fixedStrategy always answers the same emotion, which pins the
// companion to one reaction for behavior tests.
type fixedStrategy struct{ e emotion.Emotion }

func (s fixedStrategy) Name() string                  { return "fixed" }
func (s fixedStrategy) Init(emotion.InitConfig) error { return nil }

func (s fixedStrategy) Decide(emotion.Observation) (emotion.Emotion, error) {
	return s.e, nil
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  30,
		Seed:      42,
		TimeLimit: 120,
	}
}

func newTestWorld(e emotion.Emotion) *World {
	w := New(fixedStrategy{e: e}, config.DefaultQuestConfig(), nil)
	w.Reset(testRuntime())
	return w
}

func idle() core.InputFrame { return core.NewInputFrame() }

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetLayout(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)

	if w.rooms[Room1].W != 600 || w.rooms[Room2].X != 750 {
		t.Errorf("unexpected room layout: %+v", w.rooms)
	}
	if w.door.X != w.rooms[Room1].Right() || w.door.W != 150 {
		t.Errorf("door should span the room gap, got %+v", w.door)
	}
	if !w.rooms[Room2].Intersects(w.exit) {
		t.Error("exit area must lie inside room 2")
	}

	counts := [2]int{}
	for _, e := range w.enemies {
		if !e.Alive {
			t.Error("enemies must spawn alive")
		}
		counts[e.Room]++
	}
	if counts[Room1] != 7 || counts[Room2] != 8 {
		t.Errorf("enemy counts = %v, expected [7 8]", counts)
	}

	if len(w.resources) != 4 {
		t.Errorf("expected 2 resources per room, got %d total", len(w.resources))
	}
	if w.player.Health != fullHealth || w.player.Room != Room1 {
		t.Errorf("bad player spawn: %+v", w.player)
	}

	perRoom := [2]int{}
	for _, o := range w.obstacles {
		perRoom[o.Room]++
	}
	for room, n := range perRoom {
		if n > 8 {
			t.Errorf("room %d has %d obstacles, max is 8", room+1, n)
		}
	}
}

func TestDeterminism(t *testing.T) {
	script := make([]core.InputFrame, 200)
	for i := range script {
		switch {
		case i%7 == 0:
			script[i] = press(core.ActionRight, core.ActionDown)
		case i%11 == 0:
			script[i] = press(core.ActionAttack)
		default:
			script[i] = press(core.ActionRight)
		}
	}

	run := func() *World {
		w := newTestWorld(emotion.Anticipation)
		for _, in := range script {
			w.Step(in)
		}
		return w
	}

	w1, w2 := run(), run()
	if w1.player.Pos != w2.player.Pos {
		t.Errorf("player positions diverge: %v vs %v", w1.player.Pos, w2.player.Pos)
	}
	if w1.companion.Pos != w2.companion.Pos {
		t.Errorf("companion positions diverge: %v vs %v", w1.companion.Pos, w2.companion.Pos)
	}
	if w1.enemiesKilled != w2.enemiesKilled || w1.resourcesCollected != w2.resourcesCollected {
		t.Errorf("counters diverge: %d/%d vs %d/%d",
			w1.enemiesKilled, w1.resourcesCollected, w2.enemiesKilled, w2.resourcesCollected)
	}
}

func TestLockedDoorPushesBack(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = nil

	midY := w.rooms[Room1].Y + w.cfg.World.RoomHeight/2
	w.player.Pos = core.Vec2{X: w.rooms[Room1].Right() - 16, Y: midY}

	w.Step(press(core.ActionRight))

	if w.player.Room != Room1 {
		t.Fatal("locked door must not let the player through")
	}
	if w.player.Pos.X >= w.rooms[Room1].Right()-16 {
		t.Errorf("player should be pushed back from the locked door, x=%v", w.player.Pos.X)
	}
}

func TestOpenDoorCrossesRooms(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = nil
	w.doorOpen = true

	midY := w.rooms[Room1].Y + w.cfg.World.RoomHeight/2
	w.player.Pos = core.Vec2{X: w.rooms[Room1].Right() - 16, Y: midY}

	w.Step(press(core.ActionRight))

	if w.player.Room != Room2 {
		t.Fatal("open door should move the player to room 2")
	}
	want := core.Vec2{X: w.rooms[Room2].X + 50, Y: midY}
	if w.player.Pos != want {
		t.Errorf("player landed at %v, expected %v", w.player.Pos, want)
	}
	if w.companion.Room != Room2 {
		t.Error("companion must cross together with the player")
	}
	if core.Dist(w.companion.Pos, w.player.Pos) > 60 {
		t.Errorf("companion should land next to the player, got %v", w.companion.Pos)
	}

	// The door cools down: bouncing straight back must fail, but the
	// doorway stays inert rather than shoving the player away.
	w.player.Pos = core.Vec2{X: w.rooms[Room2].X + 16, Y: midY}
	w.Step(press(core.ActionLeft))
	if w.player.Room != Room2 {
		t.Error("door cooldown should block an immediate return crossing")
	}
	if w.player.Pos.X > w.rooms[Room2].X+16 {
		t.Errorf("a cooling-down open door must not push the player back, x = %v", w.player.Pos.X)
	}
}

func TestResourcePickupHealsAndOpensDoor(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = nil
	w.player.Health = 50

	for i := range w.resources {
		if w.resources[i].Room == Room1 {
			w.resources[i].Pos = w.player.Pos
		}
	}

	w.Step(idle())

	if w.resourcesCollected != 2 {
		t.Fatalf("expected both room-1 resources collected, got %d", w.resourcesCollected)
	}
	if w.player.Health != 70 {
		t.Errorf("each resource heals 10: health = %v, expected 70", w.player.Health)
	}
	if !w.doorOpen {
		t.Error("door must open at 2 resources")
	}
}

func TestDoorUnlockEffectClearsOnTraversal(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = nil

	for i := range w.resources {
		if w.resources[i].Room == Room1 {
			w.resources[i].Pos = w.player.Pos
		}
	}
	w.Step(idle())

	if !w.doorOpen || !w.doorUnlockEffect {
		t.Fatalf("opening the door should raise the unlock effect, open=%v effect=%v",
			w.doorOpen, w.doorUnlockEffect)
	}
	if !w.Frame().DoorUnlockEffect {
		t.Error("frame must expose the unlock effect for rendering")
	}

	// The effect survives any number of ticks until the door is used.
	for i := 0; i < 20; i++ {
		w.Step(idle())
	}
	if !w.doorUnlockEffect {
		t.Fatal("unlock effect must persist until the door is used")
	}

	midY := w.rooms[Room1].Y + w.cfg.World.RoomHeight/2
	w.player.Pos = core.Vec2{X: w.rooms[Room1].Right() - 16, Y: midY}
	w.Step(press(core.ActionRight))

	if w.player.Room != Room2 {
		t.Fatal("open door should let the player through")
	}
	if w.doorUnlockEffect {
		t.Error("crossing the door must clear the unlock effect")
	}
	if !w.doorOpen {
		t.Error("the door itself stays open after a crossing")
	}
}

func TestPlayerAttackRange(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = []Enemy{
		{Pos: w.player.Pos.Add(core.Vec2{X: 30}), Room: Room1, Speed: 0, Health: enemyHealth, Alive: true},
		{Pos: w.player.Pos.Add(core.Vec2{X: -30}), Room: Room1, Speed: 0, Health: enemyHealth, Alive: true},
		{Pos: w.player.Pos.Add(core.Vec2{X: 200}), Room: Room1, Speed: 0, Health: enemyHealth, Alive: true},
	}

	w.Step(press(core.ActionAttack))

	if w.enemies[0].Alive || w.enemies[1].Alive {
		t.Error("every enemy inside attack range should die to one player hit")
	}
	if !w.enemies[2].Alive {
		t.Error("enemy outside attack range must survive")
	}
	if w.enemiesKilled != 2 {
		t.Errorf("kill counter = %d, expected 2", w.enemiesKilled)
	}
}

func TestEnemyContactDamage(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.obstacles = nil
	w.enemies = []Enemy{
		{Pos: w.player.Pos.Add(core.Vec2{X: 10}), Room: Room1, Speed: 0, Health: enemyHealth, Alive: true},
	}

	w.Step(idle())

	if w.player.Health >= fullHealth {
		t.Error("enemy contact should drain health")
	}
	perTick := w.cfg.Combat.EnemyDamagePerSecond / float64(testRuntime().TickRate)
	if w.player.Health < fullHealth-2*perTick {
		t.Errorf("one tick of contact drained too much: %v", w.player.Health)
	}
}

func TestEnemyFrozenOutsideCurrentRoom(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.obstacles = nil
	start := core.Vec2{X: w.rooms[Room2].X + 300, Y: 300}
	w.enemies = []Enemy{
		{Pos: start, Room: Room2, Speed: 1.5, Health: enemyHealth, Alive: true},
	}

	for i := 0; i < 10; i++ {
		w.Step(idle())
	}

	if w.enemies[0].Pos != start {
		t.Errorf("enemy outside the player's room must not move: %v -> %v", start, w.enemies[0].Pos)
	}
}

func TestDeathRestartsRun(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.resourcesCollected = 3
	w.enemiesKilled = 5
	w.doorOpen = true
	w.player.Health = 0.1
	w.obstacles = nil
	w.enemies = []Enemy{
		{Pos: w.player.Pos, Room: Room1, Speed: 0, Health: enemyHealth, Alive: true},
	}

	w.Step(idle())

	if w.deaths != 1 {
		t.Fatalf("expected one recorded death, got %d", w.deaths)
	}
	if w.player.Health != fullHealth {
		t.Errorf("restart should restore health, got %v", w.player.Health)
	}
	if w.resourcesCollected != 0 || w.enemiesKilled != 0 {
		t.Errorf("restart must zero progress, got %d/%d", w.resourcesCollected, w.enemiesKilled)
	}
	if w.doorOpen {
		t.Error("restart must close the door again")
	}
	if w.done {
		t.Error("death must not end the session")
	}
	if w.player.Room != Room1 {
		t.Error("restart must spawn the player in room 1")
	}
}

func TestTimeout(t *testing.T) {
	rt := testRuntime()
	rt.TimeLimit = 1

	w := New(fixedStrategy{e: emotion.Anticipation}, config.DefaultQuestConfig(), nil)
	w.Reset(rt)
	w.enemies = nil

	for i := 0; i < rt.TickRate; i++ {
		w.Step(idle())
	}

	if !w.Done() {
		t.Fatal("session should time out after the limit")
	}
	res := w.Result()
	if res.Completed {
		t.Error("timeout must not count as completion")
	}
	if res.EndReason != EndReasonTimeout {
		t.Errorf("end reason = %q, expected %q", res.EndReason, EndReasonTimeout)
	}
}

func TestExitGate(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = nil
	w.player.Room = Room2
	w.player.Pos = w.exit.Center()

	w.enemiesKilled = 7
	w.resourcesCollected = 4
	w.Step(idle())
	if w.Done() {
		t.Fatal("exit must stay locked below the kill threshold")
	}

	w.enemiesKilled = 8
	w.player.Pos = w.exit.Center()
	w.Step(idle())
	if !w.Done() {
		t.Fatal("exit should finish the session once both thresholds are met")
	}

	res := w.Result()
	if !res.Completed || res.EndReason != EndReasonCompleted {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestCompanionFollowEnvelope(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = nil
	w.obstacles = nil

	// Far behind: close the gap.
	w.player.Pos = core.Vec2{X: 300, Y: 300}
	w.companion.Pos = core.Vec2{X: 150, Y: 300}
	before := core.Dist(w.companion.Pos, w.player.Pos)
	w.Step(idle())
	if after := core.Dist(w.companion.Pos, w.player.Pos); after >= before {
		t.Errorf("trailing companion should approach: %v -> %v", before, after)
	}

	// Crowding the player: back off.
	w.companion.Pos = core.Vec2{X: 290, Y: 300}
	before = core.Dist(w.companion.Pos, w.player.Pos)
	w.Step(idle())
	if after := core.Dist(w.companion.Pos, w.player.Pos); after <= before {
		t.Errorf("crowding companion should retreat: %v -> %v", before, after)
	}
}

func TestCompanionAttackCooldown(t *testing.T) {
	w := newTestWorld(emotion.Anger)
	w.obstacles = nil
	w.player.Pos = core.Vec2{X: 300, Y: 300}
	w.companion.Pos = core.Vec2{X: 300, Y: 330}
	w.enemies = []Enemy{
		{Pos: core.Vec2{X: 300, Y: 350}, Room: Room1, Speed: 0, Health: enemyHealth, Alive: true},
	}

	w.Step(idle())
	if w.enemies[0].Health != enemyHealth-w.cfg.Combat.CompanionDamage {
		t.Fatalf("first strike should land, enemy health = %v", w.enemies[0].Health)
	}

	afterFirst := w.enemies[0].Health
	w.Step(idle())
	if w.enemies[0].Health != afterFirst {
		t.Error("companion must respect its attack cooldown")
	}
}

func TestCompanionAttackWaitsAtRadiusEdge(t *testing.T) {
	w := newTestWorld(emotion.Anger)
	w.obstacles = nil
	w.player.Pos = core.Vec2{X: 300, Y: 300}
	w.companion.Pos = core.Vec2{X: 300, Y: 300}
	w.enemies = []Enemy{
		{Pos: core.Vec2{X: 300, Y: 362}, Room: Room1, Speed: 0, Health: enemyHealth, Alive: true},
	}

	w.Step(idle())

	if w.enemies[0].Health != enemyHealth {
		t.Error("companion must not strike outside the attack radius")
	}
	if w.companion.Pos != (core.Vec2{X: 300, Y: 300}) {
		t.Errorf("companion between the radius and its approach margin should wait, pos = %v",
			w.companion.Pos)
	}
}

func TestCompanionAttackHoldsWithoutTarget(t *testing.T) {
	w := newTestWorld(emotion.Anger)
	w.enemies = nil
	w.obstacles = nil
	w.player.Pos = core.Vec2{X: 300, Y: 300}
	w.companion.Pos = core.Vec2{X: 150, Y: 300}

	w.Step(idle())

	if w.companion.Pos != (core.Vec2{X: 150, Y: 300}) {
		t.Errorf("companion with no target must hold position, pos = %v", w.companion.Pos)
	}
}

func TestCompanionHealing(t *testing.T) {
	w := newTestWorld(emotion.Sadness)
	w.enemies = nil
	w.obstacles = nil
	w.player.Health = 50
	w.player.Pos = core.Vec2{X: 300, Y: 300}
	w.companion.Pos = core.Vec2{X: 300, Y: 340}

	w.Step(idle())

	if w.player.Health != 50+w.cfg.Combat.CompanionHeal {
		t.Errorf("companion in range should heal, health = %v", w.player.Health)
	}
}

func TestObstacleBlocksPlayer(t *testing.T) {
	w := newTestWorld(emotion.Anticipation)
	w.enemies = nil
	w.player.Pos = core.Vec2{X: 300, Y: 300}
	w.obstacles = []Obstacle{
		{Pos: core.Vec2{X: 334, Y: 300}, Room: Room1},
	}

	w.Step(press(core.ActionRight))

	if w.player.Pos.X != 300 {
		t.Errorf("move into an obstacle must revert, x = %v", w.player.Pos.X)
	}
}

func TestHealthNeverExceedsFull(t *testing.T) {
	w := newTestWorld(emotion.Sadness)
	w.enemies = nil
	w.obstacles = nil
	w.player.Pos = core.Vec2{X: 300, Y: 300}
	w.companion.Pos = core.Vec2{X: 300, Y: 340}

	for i := 0; i < 5; i++ {
		w.Step(idle())
	}

	if w.player.Health > fullHealth {
		t.Errorf("health exceeded the cap: %v", w.player.Health)
	}
}

// recordingStrategy captures the observations it receives so tests can
// check the lag semantics of intent and emotion.
type recordingStrategy struct {
	observations []emotion.Observation
	next         emotion.Emotion
}

func (s *recordingStrategy) Name() string                  { return "recording" }
func (s *recordingStrategy) Init(emotion.InitConfig) error { return nil }
func (s *recordingStrategy) Decide(obs emotion.Observation) (emotion.Emotion, error) {
	s.observations = append(s.observations, obs)
	return s.next, nil
}

func TestObservationLag(t *testing.T) {
	rec := &recordingStrategy{next: emotion.Happiness}
	w := New(rec, config.DefaultQuestConfig(), nil)
	w.Reset(testRuntime())
	w.enemies = nil

	w.Step(press(core.ActionRight))
	w.Step(press(core.ActionAttack))
	w.Step(idle())

	if len(rec.observations) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(rec.observations))
	}

	if rec.observations[0].LaggedIntent != emotion.IntentIdle {
		t.Error("first tick has no previous intent")
	}
	if rec.observations[1].LaggedIntent != emotion.IntentMove {
		t.Errorf("lagged intent = %v, expected move from the previous tick",
			rec.observations[1].LaggedIntent)
	}
	if rec.observations[2].LaggedIntent != emotion.IntentAttack {
		t.Errorf("lagged intent = %v, expected attack from the previous tick",
			rec.observations[2].LaggedIntent)
	}

	if rec.observations[1].LaggedEmotion != emotion.Happiness {
		t.Error("lagged emotion should reflect the previous decision")
	}
}
