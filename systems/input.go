package systems

import (
	"github.com/automoto/magehorde/components"
	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/gamemath"
	"github.com/automoto/magehorde/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateInput polls raw keyboard state into the Input singleton.
// Must run BEFORE UpdatePlayerVelocity and UpdatePause in the system order.
func UpdateInput(ecs *ecs.ECS) {
	pushInputFrame(ecs, pressedActions())
}

func pressedActions() []cfg.ActionID {
	var pressed []cfg.ActionID
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed = append(pressed, actionID)
				break
			}
		}
	}
	return pressed
}

// pushInputFrame makes the current frame the previous one and records the
// actions held this frame.
func pushInputFrame(ecs *ecs.ECS, pressed []cfg.ActionID) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range pressed {
		input.Current[id] = true
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdatePlayerVelocity overwrites the player's velocity from the movement keys.
// Opposite keys cancel, and with nothing held the velocity is exactly zero.
func UpdatePlayerVelocity(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	direction := math.NewVec2(
		gamemath.Axis(input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight]),
		gamemath.Axis(input.Current[cfg.ActionMoveDown], input.Current[cfg.ActionMoveUp]),
	)

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		speed := components.Moveable.Get(entry).Speed
		velocity := components.Velocity.Get(entry)
		velocity.Vec2 = math.NewVec2(direction.X*speed, direction.Y*speed)
	})
}

// IsMenuBackPressed reports whether the leave-to-menu key went down this frame
func IsMenuBackPressed(ecs *ecs.ECS) bool {
	return GetAction(getOrCreateInput(ecs), cfg.ActionMenuBack).JustPressed
}
