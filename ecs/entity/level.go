package entity

import (
	"fmt"

	"github.com/milk9111/voicejumper/ecs"
	"github.com/milk9111/voicejumper/ecs/component"
	"github.com/milk9111/voicejumper/levels"
)

// LoadLevelToWorld creates one entity per platform, in table order, and the
// LevelProgress singleton. Any previously loaded level is cleared first.
func LoadLevelToWorld(w *ecs.World, lvl levels.Level, index, count int) error {
	if len(lvl.Platforms) == 0 {
		return fmt.Errorf("level %d: %w", index, levels.ErrEmptyLevel)
	}
	ClearLevel(w)

	last := len(lvl.Platforms) - 1
	for i, rect := range lvl.Platforms {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Rect: rect, Order: i}); err != nil {
			return fmt.Errorf("level %d platform %d: %w", index, i, err)
		}
		if i == last {
			if err := ecs.Add(w, e, component.GoalTagComponent.Kind(), &component.GoalTag{}); err != nil {
				return fmt.Errorf("level %d goal: %w", index, err)
			}
		}
	}

	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.LevelProgressComponent.Kind(), &component.LevelProgress{
		Index: index,
		Count: count,
		Name:  lvl.Name,
	})
}

// ClearLevel destroys platforms, the progress singleton and any pending
// level change requests.
func ClearLevel(w *ecs.World) {
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(e ecs.Entity, _ *component.Platform) {
		ecs.DestroyEntity(w, e)
	})
	ecs.ForEach(w, component.LevelProgressComponent.Kind(), func(e ecs.Entity, _ *component.LevelProgress) {
		ecs.DestroyEntity(w, e)
	})
	ecs.ForEach(w, component.LevelChangeRequestComponent.Kind(), func(e ecs.Entity, _ *component.LevelChangeRequest) {
		ecs.DestroyEntity(w, e)
	})
}
