package system

import (
	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
)

// GoalSystem requests the next level once the player passes the middle of
// the goal platform. On the last level nothing happens and the player keeps
// scrolling.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil || LevelChangePending(w) {
		return
	}

	progressEnt, ok := ecs.First(w, component.LevelProgressComponent.Kind())
	if !ok {
		return
	}
	progress, _ := ecs.Get(w, progressEnt, component.LevelProgressComponent.Kind())
	if progress.Index >= progress.Count-1 {
		return
	}

	goalEnt, ok := ecs.First(w, component.GoalTagComponent.Kind())
	if !ok {
		return
	}
	goal, ok := ecs.Get(w, goalEnt, component.PlatformComponent.Kind())
	if !ok {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok || ecs.Has(w, player, component.DeadComponent.Kind()) {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok || t.X <= goal.Rect.CenterX() {
		return
	}

	req := ecs.CreateEntity(w)
	_ = ecs.Add(w, req, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{
		TargetLevel: progress.Index + 1,
	})
}

// LevelChangePending reports whether a level change was requested this
// frame and not consumed yet.
func LevelChangePending(w *ecs.World) bool {
	_, ok := ecs.First(w, component.LevelChangeRequestComponent.Kind())
	return ok
}
