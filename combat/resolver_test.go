package combat

import (
	"testing"

	"github.com/automoto/torch/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func ids(targets []Target) []uint64 {
	out := make([]uint64, 0, len(targets))
	for _, t := range targets {
		out = append(out, t.ID())
	}
	return out
}

func TestResolverFindOverlapping(t *testing.T) {
	probe := gamemath.Rect{X: 100, Y: 100, W: 20, H: 20}

	cases := []struct {
		name   string
		region gamemath.Rect
		want   bool
	}{
		{"inside", gamemath.Rect{X: 105, Y: 105, W: 5, H: 5}, true},
		{"partial", gamemath.Rect{X: 115, Y: 90, W: 20, H: 20}, true},
		{"touching_right_edge", gamemath.Rect{X: 120, Y: 100, W: 10, H: 10}, false},
		{"touching_bottom_edge", gamemath.Rect{X: 100, Y: 120, W: 10, H: 10}, false},
		{"touching_corner", gamemath.Rect{X: 90, Y: 90, W: 10, H: 10}, false},
		{"far_away", gamemath.Rect{X: 400, Y: 400, W: 10, H: 10}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewResolver(640, 360, 32)
			reg := &fakeRegistry{targets: []*fakeTarget{newTarget(7, c.region)}}
			found := r.FindOverlapping(probe, reg.Targets())
			if c.want {
				assert.Equal(t, []uint64{7}, ids(found))
			} else {
				assert.Empty(t, found)
			}
		})
	}
}

func TestResolverSubPixelExtents(t *testing.T) {
	r := NewResolver(640, 360, 32)
	// The target pokes 0.5px into the next cell; the probe lives only there.
	reg := &fakeRegistry{targets: []*fakeTarget{newTarget(1, gamemath.Rect{X: 31.5, Y: 4, W: 1, H: 1})}}

	found := r.FindOverlapping(gamemath.Rect{X: 32.2, Y: 4.2, W: 0.5, H: 0.5}, reg.Targets())
	assert.Equal(t, []uint64{1}, ids(found))
}

func TestResolverSkipsIneligibleTargets(t *testing.T) {
	r := NewResolver(640, 360, 32)
	immune := newTarget(1, gamemath.Rect{X: 10, Y: 10, W: 10, H: 10})
	immune.canDamage = false
	open := newTarget(2, gamemath.Rect{X: 10, Y: 10, W: 10, H: 10})
	reg := &fakeRegistry{targets: []*fakeTarget{immune, open}}

	found := r.FindOverlapping(gamemath.Rect{X: 0, Y: 0, W: 50, H: 50}, reg.Targets())
	assert.Equal(t, []uint64{2}, ids(found))
	assert.Equal(t, 1, r.Len())
}

func TestResolverOutsideSpaceFallsBack(t *testing.T) {
	r := NewResolver(64, 64, 16)
	inside := newTarget(1, gamemath.Rect{X: 40, Y: 40, W: 10, H: 10})
	outside := newTarget(2, gamemath.Rect{X: 200, Y: -50, W: 10, H: 10})
	reg := &fakeRegistry{targets: []*fakeTarget{inside, outside}}

	found := r.FindOverlapping(gamemath.Rect{X: 195, Y: -55, W: 10, H: 10}, reg.Targets())
	assert.Equal(t, []uint64{2}, ids(found))

	found = r.FindOverlapping(gamemath.Rect{X: 30, Y: 30, W: 200, H: 200}, reg.Targets())
	assert.ElementsMatch(t, []uint64{1}, ids(found))

	found = r.FindOverlapping(gamemath.Rect{X: -100, Y: -100, W: 400, H: 400}, reg.Targets())
	assert.ElementsMatch(t, []uint64{1, 2}, ids(found))
}

func TestResolverTracksMovingAndRemovedTargets(t *testing.T) {
	r := NewResolver(640, 360, 32)
	a := newTarget(1, gamemath.Rect{X: 10, Y: 10, W: 10, H: 10})
	b := newTarget(2, gamemath.Rect{X: 300, Y: 10, W: 10, H: 10})
	reg := &fakeRegistry{targets: []*fakeTarget{a, b}}
	probe := gamemath.Rect{X: 0, Y: 0, W: 40, H: 40}

	assert.Equal(t, []uint64{1}, ids(r.FindOverlapping(probe, reg.Targets())))
	assert.Equal(t, 2, r.Len())

	a.region.X = 500
	b.region.X = 20
	assert.Equal(t, []uint64{2}, ids(r.FindOverlapping(probe, reg.Targets())))

	reg.targets = reg.targets[1:]
	r.FindOverlapping(probe, reg.Targets())
	assert.Equal(t, 1, r.Len())
}
