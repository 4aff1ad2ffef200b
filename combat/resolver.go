package combat

import (
	"iter"

	"github.com/automoto/torch/shared/gamemath"
	"github.com/solarlune/resolv"
)

const resolvTarget = "target"

// resolv rounds object extents to whole pixels when bucketing them into
// cells, so broad phase rects are padded to keep the candidate set a superset.
const broadPhasePad = 1.0

// Resolver finds the targets a world-space hitbox overlaps. A resolv space is
// the broad phase; gamemath.Overlaps is the narrow phase, so touching edges
// never collide.
type Resolver struct {
	space   *resolv.Space
	bounds  gamemath.Rect
	objects map[uint64]*resolv.Object
	probe   *resolv.Object
	seen    map[uint64]bool
}

// NewResolver creates a resolver over a space of the given pixel size.
func NewResolver(width, height, cellSize int) *Resolver {
	probe := resolv.NewObject(0, 0, 1, 1)
	space := resolv.NewSpace(width, height, cellSize, cellSize)
	space.Add(probe)
	return &Resolver{
		space:   space,
		bounds:  gamemath.Rect{W: float64(width), H: float64(height)},
		objects: make(map[uint64]*resolv.Object),
		probe:   probe,
		seen:    make(map[uint64]bool),
	}
}

// FindOverlapping returns the damage-eligible targets whose hit region
// strictly overlaps world. Order is unspecified.
func (r *Resolver) FindOverlapping(world gamemath.Rect, targets iter.Seq[Target]) []Target {
	var found []Target
	var outside []Target

	clear(r.seen)
	for t := range targets {
		if t == nil || !t.CanTakeDamage() {
			continue
		}
		region := t.HitRegion()
		padded := pad(region)
		if !r.bounds.Contains(padded) {
			outside = append(outside, t)
			continue
		}
		r.sync(t, padded)
	}
	r.dropStale()

	probe := pad(world)
	if !r.bounds.Contains(probe) {
		// Probe leaves the space: test everything directly.
		for _, obj := range r.objects {
			outside = append(outside, obj.Data.(Target))
		}
	} else {
		r.place(r.probe, probe)
		if check := r.probe.Check(0, 0, resolvTarget); check != nil {
			hit := make(map[uint64]bool, len(check.Objects))
			for _, obj := range check.Objects {
				t, ok := obj.Data.(Target)
				if !ok || hit[t.ID()] {
					continue
				}
				hit[t.ID()] = true
				if gamemath.Overlaps(world, t.HitRegion()) {
					found = append(found, t)
				}
			}
		}
	}

	for _, t := range outside {
		if gamemath.Overlaps(world, t.HitRegion()) {
			found = append(found, t)
		}
	}
	return found
}

// Len reports how many targets are currently held in the broad phase space.
func (r *Resolver) Len() int {
	return len(r.objects)
}

func (r *Resolver) sync(t Target, rect gamemath.Rect) {
	id := t.ID()
	r.seen[id] = true
	obj, ok := r.objects[id]
	if !ok {
		obj = resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, resolvTarget)
		r.space.Add(obj)
		r.objects[id] = obj
	}
	obj.Data = t
	r.place(obj, rect)
}

func (r *Resolver) place(obj *resolv.Object, rect gamemath.Rect) {
	obj.X, obj.Y, obj.W, obj.H = rect.X, rect.Y, rect.W, rect.H
	obj.Update()
}

func (r *Resolver) dropStale() {
	for id, obj := range r.objects {
		if !r.seen[id] {
			r.space.Remove(obj)
			delete(r.objects, id)
		}
	}
}

func pad(r gamemath.Rect) gamemath.Rect {
	return gamemath.Rect{
		X: r.X - broadPhasePad,
		Y: r.Y - broadPhasePad,
		W: r.W + 2*broadPhasePad,
		H: r.H + 2*broadPhasePad,
	}
}
