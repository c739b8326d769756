package system

import (
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
	"github.com/milk9111/voicejumper/trail"
)

type TrailSystem struct{}

func NewTrailSystem() *TrailSystem {
	return &TrailSystem{}
}

func (s *TrailSystem) Update(w *ecs.World) {
	if w == nil || LevelChangePending(w) {
		return
	}

	ecs.ForEach2(w, component.TrailComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tr *component.Trail, t *component.Transform) {
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}
		tr.Points = trail.Update(tr.Points, t.X, t.Y)
	})
}
