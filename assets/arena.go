package assets

import (
	"fmt"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

const DefaultArena = "levels/arena.tmx"

// Arena is the playfield layout read from a Tiled map.
// All coordinates are world space: origin at the map center, Y up.
type Arena struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn math.Vec2
	HordeCenter math.Vec2
	HordeExtent float64 // half-size of the square agents spawn in
	HordeCount  int     // 0 = use config default
}

// ToWorld converts a Tiled pixel position (top-left origin, Y down) to world space.
func (a *Arena) ToWorld(x, y float64) math.Vec2 {
	return math.NewVec2(x-a.Width/2, a.Height/2-y)
}

// Contains reports whether a world position lies inside the arena bounds
func (a *Arena) Contains(p math.Vec2) bool {
	return p.X >= -a.Width/2 && p.X <= a.Width/2 && p.Y >= -a.Height/2 && p.Y <= a.Height/2
}

// Clamp moves p inside the arena bounds shrunk by inset on each axis.
func (a *Arena) Clamp(p math.Vec2, insetX, insetY float64) math.Vec2 {
	maxX := max(a.Width/2-insetX, 0)
	maxY := max(a.Height/2-insetY, 0)
	return math.NewVec2(min(max(p.X, -maxX), maxX), min(max(p.Y, -maxY), maxY))
}

// LoadArena parses an embedded Tiled map into an Arena.
func LoadArena(path string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}
	return arenaFromMap(path, levelMap)
}

func MustLoadArena(path string) *Arena {
	arena, err := LoadArena(path)
	if err != nil {
		panic(err)
	}
	return arena
}

func arenaFromMap(name string, levelMap *tiled.Map) (*Arena, error) {
	arena := &Arena{
		Name:   name,
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("arena %s has no size", name)
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			arena.PlayerSpawn = arena.ToWorld(o.X, o.Y)
			spawnFound = true
		case "HordeArea":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			arena.HordeCenter = arena.ToWorld(o.X+o.Width/2, o.Y+o.Height/2)
			arena.HordeExtent = min(o.Width, o.Height) / 2
			arena.HordeCount = o.Properties.GetInt("agents")
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("arena %s: no PlayerSpawn object", name)
	}
	return arena, nil
}
