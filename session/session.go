// Package session owns one play session: the ECS world, the level table, the
// microphone and the saved state. The game loop calls Update once per tick;
// Start and Retry are the only other entry points that change state.
package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/voicejumper/common"
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
	"github.com/milk9111/voicejumper/ecs/entity"
	"github.com/milk9111/voicejumper/ecs/system"
	"github.com/milk9111/voicejumper/levels"
	"github.com/milk9111/voicejumper/prefabs"
	"github.com/milk9111/voicejumper/storage"
	"github.com/milk9111/voicejumper/trail"
	"github.com/milk9111/voicejumper/voice"
)

type State int

const (
	// Idle: not listening yet, or the microphone could not be opened.
	Idle State = iota
	Running
	// Dead: the character fell out of the playfield; waiting for Retry.
	Dead
	// LevelTransition only lasts while Update swaps levels.
	LevelTransition
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Dead:
		return "dead"
	case LevelTransition:
		return "level-transition"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrNotIdle = errors.New("session: already started")
	ErrNotDead = errors.New("session: player is not dead")
)

type Options struct {
	Levels levels.Table
	Store  storage.Store
	Sensor voice.Sensor
	// Curve defaults to voice.DefaultCurve.
	Curve voice.Curve
	// Theme defaults to prefabs/theme.yaml.
	Theme *prefabs.ThemeSpec
	Debug bool
}

type Session struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	table     levels.Table
	store     storage.Store
	sensor    voice.Sensor
	debug     bool

	state  State
	level  int
	player ecs.Entity
	frames int
}

// New restores the saved session, if any, and builds the world for its
// level. The session starts Idle.
func New(opts Options) (*Session, error) {
	if err := opts.Levels.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if opts.Sensor == nil {
		opts.Sensor = voice.NullSensor{}
	}
	if opts.Theme == nil {
		theme, err := prefabs.LoadThemeSpec()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		opts.Theme = theme
	}

	saved, err := LoadGameState(opts.Store)
	if err != nil {
		return nil, err
	}

	s := &Session{
		world:  ecs.NewWorld(),
		table:  opts.Levels,
		store:  opts.Store,
		sensor: opts.Sensor,
		debug:  opts.Debug,
		level:  opts.Levels.Clamp(saved.Level),
	}
	if s.level != saved.Level {
		log.Printf("session: saved level %d out of range, using %d", saved.Level, s.level)
	}

	s.scheduler = ecs.NewScheduler(
		system.NewVoiceSystem(opts.Sensor, opts.Curve),
		system.NewMotionSystem(),
		system.NewCollisionSystem(),
		system.NewGoalSystem(),
		system.NewDeathSystem(common.BaseHeight),
		system.NewTrailSystem(),
		system.NewRenderSystem(opts.Theme),
	)

	if err := s.loadLevel(); err != nil {
		return nil, err
	}
	player, err := entity.NewPlayerAt(s.world, saved.CharacterX, saved.CharacterY)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.player = player
	if err := entity.SetPlayerState(s.world, player, saved.CharacterX, saved.CharacterY, saved.Velocity, saved.IsDead); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return s, nil
}

// Start opens the microphone and begins the current level from its spawn.
// When the microphone cannot be opened the session stays Idle and Start may
// be called again.
func (s *Session) Start() error {
	if s.state != Idle {
		return ErrNotIdle
	}
	if err := s.sensor.Start(); err != nil {
		log.Printf("session: error accessing microphone: %v", err)
		return fmt.Errorf("session: start: %w", err)
	}
	if err := s.respawn(); err != nil {
		return err
	}
	s.state = Running
	s.debugf("started on level %d", s.level)
	return nil
}

// Retry respawns the character on the current level after a death.
func (s *Session) Retry() error {
	if s.state != Dead {
		return ErrNotDead
	}
	if err := s.respawn(); err != nil {
		return err
	}
	s.state = Running
	s.debugf("retry level %d", s.level)
	return nil
}

// Update advances the simulation by one frame while Running.
func (s *Session) Update() {
	if s == nil || s.state != Running {
		return
	}
	s.scheduler.Update(s.world)
	s.frames++

	if reqEnt, ok := ecs.First(s.world, component.LevelChangeRequestComponent.Kind()); ok {
		req, _ := ecs.Get(s.world, reqEnt, component.LevelChangeRequestComponent.Kind())
		s.changeLevel(req.TargetLevel)
		return
	}

	if ecs.Has(s.world, s.player, component.DeadComponent.Kind()) {
		s.state = Dead
		s.debugf("died on level %d after %d frames", s.level, s.frames)
	}
}

// Draw renders the playfield while Running. A dead or idle session leaves
// the last frame on screen.
func (s *Session) Draw(screen *ebiten.Image) {
	if s == nil || s.state != Running {
		return
	}
	ecs.Draw(s.scheduler, s.world, screen)
}

// ReloadLevels swaps in a new level table and restarts the current level,
// clamped to the new table.
func (s *Session) ReloadLevels(table levels.Table) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("session: reload levels: %w", err)
	}
	s.table = table
	s.level = table.Clamp(s.level)
	if err := s.loadLevel(); err != nil {
		return err
	}
	if err := s.respawn(); err != nil {
		return err
	}
	if s.state == Dead {
		s.state = Running
	}
	return nil
}

// Close releases the microphone and the store. The session is Idle
// afterwards.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	s.state = Idle
	var errs []error
	if s.sensor != nil {
		errs = append(errs, s.sensor.Close())
	}
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	return errors.Join(errs...)
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) LevelIndex() int {
	return s.level
}

func (s *Session) LevelCount() int {
	return s.table.Len()
}

func (s *Session) Level() levels.Level {
	return s.table.Level(s.level)
}

// GameState snapshots the character and level.
func (s *Session) GameState() GameState {
	gs := GameState{Level: s.level}
	if t, ok := ecs.Get(s.world, s.player, component.TransformComponent.Kind()); ok {
		gs.CharacterX, gs.CharacterY = t.X, t.Y
	}
	if v, ok := ecs.Get(s.world, s.player, component.VelocityComponent.Kind()); ok {
		gs.Velocity = v.Y
	}
	gs.IsDead = ecs.Has(s.world, s.player, component.DeadComponent.Kind())
	return gs
}

// Loudness is the value sampled on the last simulated frame.
func (s *Session) Loudness() float64 {
	if in, ok := ecs.Get(s.world, s.player, component.VoiceInputComponent.Kind()); ok {
		return in.Loudness
	}
	return 0
}

func (s *Session) Trail() []trail.Point {
	if tr, ok := ecs.Get(s.world, s.player, component.TrailComponent.Kind()); ok {
		return tr.Points
	}
	return nil
}

func (s *Session) Frames() int {
	return s.frames
}

func (s *Session) changeLevel(target int) {
	s.state = LevelTransition
	s.level = s.table.Clamp(target)

	if err := s.loadLevel(); err != nil {
		log.Printf("session: %v", err)
	}
	if err := s.respawn(); err != nil {
		log.Printf("session: %v", err)
	}
	if err := SaveGameState(s.store, s.GameState()); err != nil {
		log.Printf("session: %v", err)
	}
	s.debugf("entered level %d (%s)", s.level, s.Level().Name)
	s.state = Running
}

func (s *Session) loadLevel() error {
	if err := entity.LoadLevelToWorld(s.world, s.table.Level(s.level), s.level, s.table.Len()); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

func (s *Session) respawn() error {
	x, y := s.Level().Spawn()
	if err := entity.ResetPlayer(s.world, s.player, x, y); err != nil {
		return fmt.Errorf("session: respawn: %w", err)
	}
	return nil
}

func (s *Session) debugf(format string, args ...any) {
	if s.debug {
		log.Printf("session: "+format, args...)
	}
}
