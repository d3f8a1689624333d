package components

import (
	"github.com/automoto/magehorde/assets"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Layout *assets.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
