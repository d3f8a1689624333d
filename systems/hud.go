package systems

import (
	"fmt"

	cfg "github.com/automoto/magehorde/config"
	"github.com/automoto/magehorde/fonts"
	"github.com/automoto/magehorde/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var agents = query.NewQuery(filter.Contains(tags.Agent))

// DrawHUD renders the horde size and contact counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	contacts := GetOrCreateContacts(ecs)
	clock := GetOrCreateClock(ecs)

	lines := []string{
		fmt.Sprintf("Horde: %d", GetHordeCount(ecs)),
		fmt.Sprintf("Touching: %d  (peak %d)", contacts.Current, contacts.Peak),
		fmt.Sprintf("Time: %s", formatElapsed(clock.Elapsed)),
	}

	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	for _, line := range lines {
		drawShadowedText(screen, line, x, y)
		y += cfg.HUD.LineHeight
	}

	hint := "WASD: Move   Esc: Pause"
	text.Draw(screen, hint, fonts.Small.Get(), cfg.HUD.Margin, screen.Bounds().Dy()-cfg.HUD.Margin, cfg.HUD.TextColor)
}

func drawShadowedText(screen *ebiten.Image, s string, x, y int) {
	face := fonts.Regular.Get()
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
}

// formatElapsed renders seconds as m:ss
func formatElapsed(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// GetHordeCount returns the number of agents alive in the scene
func GetHordeCount(ecs *ecs.ECS) int {
	return agents.Count(ecs.World)
}
