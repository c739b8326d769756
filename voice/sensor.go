// Package voice turns microphone input into a per-frame loudness value and
// maps loudness to jump impulses.
package voice

import "sync"

// MaxLoudness is the top of the loudness scale.
const MaxLoudness = 255

// Sensor is polled once per frame. Start acquires the input device and may
// fail when no device exists or access is denied.
type Sensor interface {
	Start() error
	Loudness() float64
	Close() error
}

// NullSensor always reports silence. It backs the -mute flag.
type NullSensor struct{}

func (NullSensor) Start() error      { return nil }
func (NullSensor) Loudness() float64 { return 0 }
func (NullSensor) Close() error      { return nil }

// ScriptedSensor replays a fixed loudness sequence, holding the last value
// once the sequence runs out.
type ScriptedSensor struct {
	mu       sync.Mutex
	values   []float64
	next     int
	started  bool
	StartErr error
}

func NewScriptedSensor(values ...float64) *ScriptedSensor {
	return &ScriptedSensor{values: values}
}

func (s *ScriptedSensor) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.StartErr != nil {
		return s.StartErr
	}
	s.started = true
	return nil
}

func (s *ScriptedSensor) Loudness() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || len(s.values) == 0 {
		return 0
	}
	i := s.next
	if i >= len(s.values) {
		i = len(s.values) - 1
	} else {
		s.next++
	}
	return s.values[i]
}

// Set replaces the remaining sequence.
func (s *ScriptedSensor) Set(values ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = values
	s.next = 0
}

func (s *ScriptedSensor) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *ScriptedSensor) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
	return nil
}
