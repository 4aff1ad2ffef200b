package components

import (
	"github.com/automoto/torch/shared/leveldata"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Arena *leveldata.ArenaData
}

var Arena = donburi.NewComponentType[ArenaData]()
