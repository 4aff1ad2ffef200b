package systems

import (
	"github.com/automoto/torch/components"
	"github.com/automoto/torch/tags"
)

// resolveHorizontalCollision moves object by dx, stopping flush against solids
func resolveHorizontalCollision(physics *components.PhysicsData, object *components.ObjectData, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		dx = check.ContactWithObject(solids[0]).X()
		physics.SpeedX = 0
	}
	object.X += dx
}

// resolveVerticalCollision moves object by dy, stopping flush against solids
func resolveVerticalCollision(physics *components.PhysicsData, object *components.ObjectData, dy float64) {
	if dy == 0 {
		return
	}

	check := object.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		dy = check.ContactWithObject(solids[0]).Y()
		physics.SpeedY = 0
	}
	object.Y += dy
}
