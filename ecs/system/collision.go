package system

import (
	"sort"

	"github.com/milk9111/voicejumper/common"
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
)

// CollisionSystem lands bodies on platforms. Only the first overlapping
// platform in table order is resolved, and only by snapping the body onto
// its top surface. Fast falls can tunnel through thin platforms.
type CollisionSystem struct {
	platforms []component.Platform
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.platforms = s.platforms[:0]
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		s.platforms = append(s.platforms, *p)
	})
	if len(s.platforms) == 0 {
		return
	}
	sort.SliceStable(s.platforms, func(i, j int) bool { return s.platforms[i].Order < s.platforms[j].Order })

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.HitboxComponent.Kind(), func(e ecs.Entity, t *component.Transform, h *component.Hitbox) {
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}

		p, ok := FirstOverlap(s.platforms, common.Rect{X: t.X, Y: t.Y, Width: h.Width, Height: h.Height})
		if !ok {
			return
		}
		t.Y = p.Rect.Y - h.Height
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			v.Y = 0
		}
	})
}

// FirstOverlap returns the first platform in slice order that overlaps box.
func FirstOverlap(platforms []component.Platform, box common.Rect) (component.Platform, bool) {
	for _, p := range platforms {
		if box.Intersects(p.Rect) {
			return p, true
		}
	}
	return component.Platform{}, false
}
