package main

import (
	"errors"
	"testing"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/voicejumper/levels"
	"github.com/milk9111/voicejumper/session"
	"github.com/milk9111/voicejumper/storage"
	"github.com/milk9111/voicejumper/voice"
)

func TestLevelText(t *testing.T) {
	tests := []struct {
		index, count int
		want         string
	}{
		{0, 5, "Level 1 of 5"},
		{2, 5, "Level 3 of 5"},
		{4, 5, "Level 5 of 5"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := levelText(tc.index, tc.count); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func visible(b *widget.Button) bool {
	return b.GetWidget().Visibility == widget.Visibility_Show
}

func runUntilDead(t *testing.T, s *session.Session) {
	t.Helper()
	for i := 0; i < 500 && s.State() == session.Running; i++ {
		s.Update()
	}
	if s.State() != session.Dead {
		t.Fatalf("expected the silent character to fall off level 1, state %v", s.State())
	}
}

func TestHUDButtonVisibilityFollowsState(t *testing.T) {
	sensor := voice.NewScriptedSensor(0)
	s, err := session.New(session.Options{
		Levels: levels.MustLoad(),
		Store:  storage.NewMemory(),
		Sensor: sensor,
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer s.Close()

	h := NewHUD(nil, nil)

	steps := []struct {
		name      string
		action    func(t *testing.T)
		wantState session.State
		wantStart bool
		wantRetry bool
	}{
		{
			name:      "idle",
			action:    func(*testing.T) {},
			wantState: session.Idle,
			wantStart: true,
		},
		{
			name: "start_fails",
			action: func(t *testing.T) {
				sensor.StartErr = errors.New("no capture device")
				if err := s.Start(); err == nil {
					t.Fatal("expected start to fail")
				}
				sensor.StartErr = nil
			},
			wantState: session.Idle,
			wantStart: true,
		},
		{
			name: "running",
			action: func(t *testing.T) {
				if err := s.Start(); err != nil {
					t.Fatalf("start: %v", err)
				}
			},
			wantState: session.Running,
		},
		{
			name:      "dead",
			action:    runUntilDead,
			wantState: session.Dead,
			wantRetry: true,
		},
		{
			name: "retry",
			action: func(t *testing.T) {
				if err := s.Retry(); err != nil {
					t.Fatalf("retry: %v", err)
				}
			},
			wantState: session.Running,
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			step.action(t)
			if s.State() != step.wantState {
				t.Fatalf("expected state %v, got %v", step.wantState, s.State())
			}

			h.Sync(s)

			if got := visible(h.startBtn); got != step.wantStart {
				t.Fatalf("start button visible=%v, want %v", got, step.wantStart)
			}
			if got := visible(h.retryBtn); got != step.wantRetry {
				t.Fatalf("retry button visible=%v, want %v", got, step.wantRetry)
			}
			if h.level.Label != "Level 1 of 5" {
				t.Fatalf("unexpected level text %q", h.level.Label)
			}
		})
	}
}

func TestDebugLine(t *testing.T) {
	if debugBar.Y+debugBar.Height != 600 || debugBar.X != 0 || debugBar.Width != 800 {
		t.Fatalf("debug backdrop should span the bottom row, got %+v", debugBar)
	}
	if got := debugText(60, session.Dead, 12.34); got != "FPS: 60.00  state: dead  loudness: 12.3" {
		t.Fatalf("unexpected debug text %q", got)
	}
}
