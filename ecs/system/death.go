package system

import (
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
)

// DeathSystem marks the player dead once it falls below the playfield.
type DeathSystem struct {
	floor float64
}

func NewDeathSystem(floor float64) *DeathSystem {
	return &DeathSystem{floor: floor}
}

func (s *DeathSystem) Update(w *ecs.World) {
	if s == nil || w == nil || LevelChangePending(w) {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		if t.Y <= s.floor || ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}
		_ = ecs.Add(w, e, component.DeadComponent.Kind(), &component.Dead{})
	})
}
