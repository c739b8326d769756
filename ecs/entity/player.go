package entity

import (
	"fmt"

	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
	"github.com/milk9111/voicejumper/prefabs"
)

// NewPlayerAt builds the character from player.yaml with its top-left corner
// at (x, y).
func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	adds := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
		},
		func() error {
			return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: spec.ScrollSpeed})
		},
		func() error {
			return ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: spec.Gravity})
		},
		func() error {
			return ecs.Add(w, e, component.HitboxComponent.Kind(), &component.Hitbox{Width: spec.Hitbox.Width, Height: spec.Hitbox.Height})
		},
		func() error { return ecs.Add(w, e, component.VoiceInputComponent.Kind(), &component.VoiceInput{}) },
		func() error { return ecs.Add(w, e, component.TrailComponent.Kind(), &component.Trail{}) },
	}
	for _, add := range adds {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}

// ResetPlayer puts the character back at (x, y) at rest, alive and without a
// trail. Scroll speed and gravity are kept.
func ResetPlayer(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("player: %w", component.ErrEntityNotAlive)
	}
	t.X, t.Y = x, y

	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.Y = 0
	}
	if in, ok := ecs.Get(w, e, component.VoiceInputComponent.Kind()); ok {
		*in = component.VoiceInput{}
	}
	if tr, ok := ecs.Get(w, e, component.TrailComponent.Kind()); ok {
		tr.Points = nil
	}
	ecs.Remove(w, e, component.DeadComponent.Kind())
	return nil
}

// SetPlayerState places the character without touching its trail, used when
// restoring a saved session.
func SetPlayerState(w *ecs.World, e ecs.Entity, x, y, vy float64, dead bool) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("player: %w", component.ErrEntityNotAlive)
	}
	t.X, t.Y = x, y
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.Y = vy
	}
	if dead {
		return ecs.Add(w, e, component.DeadComponent.Kind(), &component.Dead{})
	}
	ecs.Remove(w, e, component.DeadComponent.Kind())
	return nil
}
