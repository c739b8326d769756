package system

import (
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
	"github.com/milk9111/voicejumper/voice"
)

// VoiceSystem samples the sensor once per frame and stores the loudness and
// the impulse it maps to on the player.
type VoiceSystem struct {
	sensor voice.Sensor
	curve  voice.Curve
}

func NewVoiceSystem(sensor voice.Sensor, curve voice.Curve) *VoiceSystem {
	if curve == nil {
		curve = voice.DefaultCurve()
	}
	return &VoiceSystem{sensor: sensor, curve: curve}
}

func (s *VoiceSystem) Update(w *ecs.World) {
	if s == nil || s.sensor == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.VoiceInputComponent.Kind(), func(e ecs.Entity, in *component.VoiceInput) {
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}
		loudness := s.sensor.Loudness()
		impulse, jump := s.curve.Impulse(loudness)
		in.Loudness = loudness
		in.Impulse = impulse
		in.Jump = jump
	})
}
