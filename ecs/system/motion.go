package system

import (
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
)

// MotionSystem advances every moving entity by one frame: constant scroll on
// X, then the jump impulse (which replaces the vertical velocity), then
// gravity, then integration.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}

		t.X += v.X

		if in, ok := ecs.Get(w, e, component.VoiceInputComponent.Kind()); ok && in.Jump {
			v.Y = in.Impulse
		}
		if g, ok := ecs.Get(w, e, component.GravityComponent.Kind()); ok {
			v.Y += g.Accel
		}

		t.Y += v.Y
	})
}
