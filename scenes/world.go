package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/magehorde/assets"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/systems"
	"github.com/automoto/magehorde/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the playable scene: the mage, the horde and the camera.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewArenaScene creates a new arena scene using the current settings
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	// Back to the setup menu from the pause overlay
	if systems.IsPaused(as.ecs) && systems.IsMenuBackPressed(as.ecs) {
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	// Decode sprites up front so the horde doesn't stall the first frame
	assets.PreloadSprites()
	arena := assets.MustLoadArena(assets.DefaultArena)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	for _, system := range gameplaySystems() {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	populateArena(ecs, arena, newRand(cfg.Debug.Seed), factory.AgentSprites{
		cfg.AgentOrc:    assets.GetSprite(assets.OrcSprite),
		cfg.AgentKnight: assets.GetSprite(assets.KnightSprite),
	}, assets.GetSprite(assets.MageSprite))
}

// gameplaySystems lists the systems that stop while paused, in run order.
func gameplaySystems() []ecs.System {
	return []ecs.System{
		// Velocity writers, independent of each other
		systems.UpdatePlayerVelocity,
		systems.UpdateSeek,

		// Consumers of velocity, then of position
		systems.UpdateMovement,
		systems.UpdateBounds,
		systems.UpdateCamera,
		systems.UpdateDepth,
		systems.UpdateContacts,
		systems.UpdateSpawnFade,
	}
}

// populateArena creates the arena, contact space, player, camera and horde.
// The player must exist before the horde so agents have a target.
func populateArena(e *ecs.ECS, arena *assets.Arena, rng *rand.Rand, agentSprites factory.AgentSprites, mage *ebiten.Image) {
	factory.CreateArena(e, arena)
	factory.CreateSpace(e, int(arena.Width), int(arena.Height), 16, 16)

	player := factory.CreatePlayer(e, arena.PlayerSpawn, mage)
	factory.CreateCamera(e, arena.PlayerSpawn, cfg.Camera.Zoom)

	// The setting keeps its 0 "map default" so saving it later stays portable
	count := systems.ResolveHordeSize(systems.GetOrCreateSettings(e).HordeSize, arena.HordeCount)

	extent := arena.HordeExtent
	if extent <= 0 {
		extent = cfg.Horde.Extent
	}

	factory.SpawnHorde(e, count, arena.HordeCenter, extent, rng, agentSprites, player.Entity())
	log.Printf("Spawned %d agents in %s", count, arena.Name)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
