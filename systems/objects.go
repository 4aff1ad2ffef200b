package systems

import (
	"github.com/automoto/torch/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs moved bodies back into the arena space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
