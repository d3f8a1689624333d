package systems

import (
	gomath "math"
	"testing"

	"github.com/automoto/magehorde/assets"
	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func setVelocity(entry *donburi.Entry, x, y float64) {
	components.Velocity.Get(entry).Vec2 = math.NewVec2(x, y)
}

func velocityOf(entry *donburi.Entry) math.Vec2 {
	return components.Velocity.Get(entry).Vec2
}

func TestPlayerVelocityZeroWithoutInput(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	setVelocity(player, 12, -7)

	for i := 0; i < 3; i++ {
		pushInputFrame(e, nil)
		UpdatePlayerVelocity(e)
		assert.Equal(t, math.Vec2{}, velocityOf(player))
	}
}

func TestPlayerVelocityFromKeys(t *testing.T) {
	speed := cfg.Player.Speed

	tests := []struct {
		name    string
		pressed []cfg.ActionID
		want    math.Vec2
	}{
		{"up", []cfg.ActionID{cfg.ActionMoveUp}, math.NewVec2(0, speed)},
		{"down", []cfg.ActionID{cfg.ActionMoveDown}, math.NewVec2(0, -speed)},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, math.NewVec2(-speed, 0)},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, math.NewVec2(speed, 0)},
		{"diagonal", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveRight}, math.NewVec2(speed, speed)},
		{"opposites cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, math.NewVec2(0, 0)},
		{"all four", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown, cfg.ActionMoveLeft, cfg.ActionMoveRight}, math.NewVec2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)

			pushInputFrame(e, tt.pressed)
			UpdatePlayerVelocity(e)

			assert.Equal(t, tt.want, velocityOf(player))
		})
	}
}

func TestPlayerVelocityOverwrites(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)

	pushInputFrame(e, []cfg.ActionID{cfg.ActionMoveRight})
	UpdatePlayerVelocity(e)
	UpdatePlayerVelocity(e)

	assert.Equal(t, math.NewVec2(cfg.Player.Speed, 0), velocityOf(player))
}

func TestGetActionEdges(t *testing.T) {
	e := newTestECS()
	input := getOrCreateInput(e)

	pushInputFrame(e, []cfg.ActionID{cfg.ActionPause})
	state := GetAction(input, cfg.ActionPause)
	assert.True(t, state.Pressed)
	assert.True(t, state.JustPressed)

	pushInputFrame(e, []cfg.ActionID{cfg.ActionPause})
	state = GetAction(input, cfg.ActionPause)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)

	pushInputFrame(e, nil)
	state = GetAction(input, cfg.ActionPause)
	assert.False(t, state.Pressed)
	assert.True(t, state.JustReleased)
}

func TestSeekTowardTarget(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(3, 4), nil)
	agent := factory.CreateAgent(e, math.NewVec2(0, 0), cfg.AgentOrc, 10, player.Entity(), nil)

	UpdateSeek(e)

	v := velocityOf(agent)
	assert.InDelta(t, 6.0, v.X, 1e-9)
	assert.InDelta(t, 8.0, v.Y, 1e-9)
}

func TestSeekDirectionIsUnitBeforeSpeed(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(17, -250), nil)

	positions := []math.Vec2{
		math.NewVec2(-400, 400),
		math.NewVec2(17.001, -250),
		math.NewVec2(399, 0),
		math.NewVec2(-3, -3),
	}
	var agents []*donburi.Entry
	for _, p := range positions {
		agents = append(agents, factory.CreateAgent(e, p, cfg.AgentKnight, 1, player.Entity(), nil))
	}

	UpdateSeek(e)

	for i, agent := range agents {
		v := velocityOf(agent)
		assert.InDelta(t, 1.0, gomath.Hypot(v.X, v.Y), 1e-9, "agent %d", i)
	}
}

func TestSeekOnTargetIsStill(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(5, 5), nil)
	agent := factory.CreateAgent(e, math.NewVec2(5, 5), cfg.AgentOrc, 15, player.Entity(), nil)

	UpdateSeek(e)

	assert.Equal(t, math.Vec2{}, velocityOf(agent))
}

func TestSeekStopsWhenTargetRemoved(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(100, 0), nil)
	agent := factory.CreateAgent(e, math.NewVec2(0, 0), cfg.AgentOrc, 12, player.Entity(), nil)

	UpdateSeek(e)
	require.InDelta(t, 12.0, velocityOf(agent).X, 1e-9)

	e.World.Remove(player.Entity())
	UpdateSeek(e)

	assert.Equal(t, math.Vec2{}, velocityOf(agent))
}

func TestSeekFollowsMovedTarget(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(10, 0), nil)
	agent := factory.CreateAgent(e, math.NewVec2(0, 0), cfg.AgentOrc, 10, player.Entity(), nil)

	UpdateSeek(e)
	assert.InDelta(t, 10.0, velocityOf(agent).X, 1e-9)

	// The per-frame cache must not leak the old position into the next frame
	transform.Transform.Get(player).LocalPosition = math.NewVec2(0, -10)
	UpdateSeek(e)
	assert.InDelta(t, 0.0, velocityOf(agent).X, 1e-9)
	assert.InDelta(t, -10.0, velocityOf(agent).Y, 1e-9)
}

func TestMovementIntegratesPosition(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(1, 2), nil)
	setVelocity(player, 10, -4)
	setClock(e, 0.5, 0)

	UpdateMovement(e)

	pos := transform.Transform.Get(player).LocalPosition
	assert.InDelta(t, 6.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)
}

func TestMovementFacing(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	setClock(e, 1.0/60, 1)
	scale := func() float64 { return transform.Transform.Get(player).LocalScale.X }

	setVelocity(player, -3, 0)
	UpdateMovement(e)
	assert.Equal(t, -1.0, scale())

	// Straight vertical movement keeps the last facing
	setVelocity(player, 0, 5)
	UpdateMovement(e)
	assert.Equal(t, -1.0, scale())

	setVelocity(player, 0.01, 0)
	UpdateMovement(e)
	assert.Equal(t, 1.0, scale())

	setVelocity(player, 0, 0)
	UpdateMovement(e)
	assert.Equal(t, 1.0, scale())
}

func TestMovementWalkBob(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	setClock(e, 1.0/60, 2.5)

	setVelocity(player, 30, 40)
	UpdateMovement(e)

	tr := transform.Transform.Get(player)
	phase := gomath.Sin(2.5 * 50 * cfg.Walk.BobFrequency)
	assert.InDelta(t, phase*cfg.Walk.MaxTilt, tr.LocalRotation, 1e-9)
	assert.InDelta(t, 1+phase*0.1, tr.LocalScale.Y, 1e-9)
}

func TestMovementStationaryResetsBob(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	tr := transform.Transform.Get(player)
	tr.LocalRotation = 0.05
	tr.LocalScale.Y = 0.93
	setClock(e, 1.0/60, 7.3)

	setVelocity(player, 0, 0)
	UpdateMovement(e)

	assert.Equal(t, 0.0, tr.LocalRotation)
	assert.Equal(t, 1.0, tr.LocalScale.Y)
}

func TestDepthIsNegatedHeight(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 12.5), nil)
	agent := factory.CreateAgent(e, math.NewVec2(3, -40), cfg.AgentOrc, 10, player.Entity(), nil)
	camera := factory.CreateCamera(e, math.NewVec2(0, 99), 4)

	transform.Transform.Get(player).LocalPosition.Y = -8
	UpdateDepth(e)

	assert.Equal(t, 8.0, components.Depth.Get(player).Z)
	assert.Equal(t, 40.0, components.Depth.Get(agent).Z)
	assert.False(t, camera.HasComponent(components.Depth))
}

func TestDepthSkipsCamera(t *testing.T) {
	e := newTestECS()
	camera := factory.CreateCamera(e, math.NewVec2(0, 99), 4)
	camera.AddComponent(components.Depth)
	components.Depth.Get(camera).Z = 123

	UpdateDepth(e)

	assert.Equal(t, 123.0, components.Depth.Get(camera).Z)
}

func TestCameraLerpsTowardTarget(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, math.NewVec2(100, -50), nil)
	camera := factory.CreateCamera(e, math.NewVec2(0, 0), 4)

	UpdateCamera(e)

	pos := transform.Transform.Get(camera).LocalPosition
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, -0.5, pos.Y, 1e-9)

	UpdateCamera(e)
	pos = transform.Transform.Get(camera).LocalPosition
	assert.InDelta(t, 1.0+(100-1.0)*0.01, pos.X, 1e-9)
}

func TestCameraSkipsAmbiguousTarget(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, math.NewVec2(100, 0), nil)
	factory.CreatePlayer(e, math.NewVec2(-100, 0), nil)
	camera := factory.CreateCamera(e, math.NewVec2(3, 3), 4)

	UpdateCamera(e)

	assert.Equal(t, math.NewVec2(3, 3), transform.Transform.Get(camera).LocalPosition)
}

func TestCameraWithoutTarget(t *testing.T) {
	e := newTestECS()
	camera := factory.CreateCamera(e, math.NewVec2(3, 3), 4)

	assert.NotPanics(t, func() { UpdateCamera(e) })
	assert.Equal(t, math.NewVec2(3, 3), transform.Transform.Get(camera).LocalPosition)
}

func TestContactsCountTouchingAgents(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, 1024, 1024, 16, 16)
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	factory.CreateAgent(e, math.NewVec2(2, 3), cfg.AgentOrc, 10, player.Entity(), nil)
	factory.CreateAgent(e, math.NewVec2(-4, -5), cfg.AgentKnight, 10, player.Entity(), nil)
	far := factory.CreateAgent(e, math.NewVec2(200, 200), cfg.AgentOrc, 10, player.Entity(), nil)

	UpdateContacts(e)
	contacts := GetOrCreateContacts(e)
	assert.Equal(t, 2, contacts.Current)
	assert.Equal(t, 2, contacts.Peak)

	// Moving the far agent on top of the player is picked up on the next sync
	transform.Transform.Get(far).LocalPosition = math.NewVec2(1, 1)
	UpdateContacts(e)
	assert.Equal(t, 3, contacts.Current)

	transform.Transform.Get(player).LocalPosition = math.NewVec2(-300, 300)
	UpdateContacts(e)
	assert.Equal(t, 0, contacts.Current)
	assert.Equal(t, 3, contacts.Peak)
}

func newBoundedArena(e *ecs.ECS) *assets.Arena {
	arena := &assets.Arena{Width: 1024, Height: 1024}
	factory.CreateArena(e, arena)
	factory.CreateSpace(e, 1024, 1024, 16, 16)
	return arena
}

func TestContactsPastArenaEdge(t *testing.T) {
	e := newTestECS()
	arena := newBoundedArena(e)
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	agent := factory.CreateAgent(e, math.NewVec2(0, 0), cfg.AgentOrc, 10, player.Entity(), nil)

	transform.Transform.Get(player).LocalPosition = math.NewVec2(700, 0)
	transform.Transform.Get(agent).LocalPosition = math.NewVec2(701, 1)
	UpdateBounds(e)
	UpdateContacts(e)

	assert.Equal(t, 1, GetOrCreateContacts(e).Current)

	pos := transform.Transform.Get(player).LocalPosition
	assert.InDelta(t, arena.Width/2-cfg.Player.BodyWidth/2, pos.X, 1e-9)
	assert.Equal(t, 0.0, pos.Y)
	assert.True(t, arena.Contains(pos))
}

func TestBoundsClampsEveryEdge(t *testing.T) {
	e := newTestECS()
	newBoundedArena(e)
	player := factory.CreatePlayer(e, math.NewVec2(-2000, -2000), nil)
	agent := factory.CreateAgent(e, math.NewVec2(30, 9000), cfg.AgentKnight, 10, player.Entity(), nil)

	UpdateBounds(e)

	assert.Equal(t, math.NewVec2(-512+cfg.Player.BodyWidth/2, -512+cfg.Player.BodyHeight/2), transform.Transform.Get(player).LocalPosition)
	assert.Equal(t, math.NewVec2(30, 512-cfg.Horde.BodyHeight/2), transform.Transform.Get(agent).LocalPosition)
}

func TestBoundsLeavesInteriorAlone(t *testing.T) {
	e := newTestECS()
	newBoundedArena(e)
	player := factory.CreatePlayer(e, math.NewVec2(123.5, -77.25), nil)

	UpdateBounds(e)

	assert.Equal(t, math.NewVec2(123.5, -77.25), transform.Transform.Get(player).LocalPosition)
}

func TestBoundsWithoutArena(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(5000, 0), nil)

	UpdateBounds(e)

	assert.Equal(t, math.NewVec2(5000, 0), transform.Transform.Get(player).LocalPosition)
}

func TestSpawnFadeCompletes(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	agent := factory.CreateAgent(e, math.NewVec2(10, 10), cfg.AgentOrc, 10, player.Entity(), nil)
	setClock(e, 0.1, 0)

	UpdateSpawnFade(e)
	require.True(t, agent.HasComponent(components.SpawnFade))
	alpha := components.SpawnFade.Get(agent).Alpha
	assert.Greater(t, alpha, float32(0))
	assert.Less(t, alpha, float32(1))

	for i := 0; i < 20; i++ {
		UpdateSpawnFade(e)
	}
	assert.False(t, agent.HasComponent(components.SpawnFade))
}

func TestClockStopsWhilePaused(t *testing.T) {
	e := newTestECS()
	clock := GetOrCreateClock(e)

	UpdateClock(e)
	UpdateClock(e)
	assert.Equal(t, 2, clock.Ticks)
	assert.InDelta(t, 2*clock.Delta, clock.Elapsed, 1e-12)

	GetOrCreatePause(e).IsPaused = true
	UpdateClock(e)
	assert.Equal(t, 2, clock.Ticks)
	assert.InDelta(t, 2*clock.Delta, clock.Elapsed, 1e-12)
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestECS()
	calls := 0
	system := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)
	GetOrCreatePause(e).IsPaused = false
	system(e)

	assert.Equal(t, 2, calls)
}

func TestUpdatePauseToggles(t *testing.T) {
	e := newTestECS()

	pushInputFrame(e, []cfg.ActionID{cfg.ActionPause})
	UpdatePause(e)
	assert.True(t, IsPaused(e))

	// Holding the key does not toggle again
	pushInputFrame(e, []cfg.ActionID{cfg.ActionPause})
	UpdatePause(e)
	assert.True(t, IsPaused(e))

	pushInputFrame(e, nil)
	pushInputFrame(e, []cfg.ActionID{cfg.ActionPause})
	UpdatePause(e)
	assert.False(t, IsPaused(e))
}

func setClock(e *ecs.ECS, delta, elapsed float64) {
	clock := GetOrCreateClock(e)
	clock.Delta = delta
	clock.Elapsed = elapsed
}

func TestHordeCount(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, math.NewVec2(0, 0), nil)
	assert.Equal(t, 0, GetHordeCount(e))

	for i := 0; i < 5; i++ {
		factory.CreateAgent(e, math.NewVec2(float64(i), 0), cfg.AgentOrc, 10, player.Entity(), nil)
	}
	assert.Equal(t, 5, GetHordeCount(e))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00", formatElapsed(0))
	assert.Equal(t, "0:59", formatElapsed(59.9))
	assert.Equal(t, "2:05", formatElapsed(125))
}
