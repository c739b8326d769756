package main

import (
	"fmt"

	"github.com/milk9111/voicejumper/common"
	"github.com/milk9111/voicejumper/levels"
)

// Finding is one lint result for a level.
type Finding struct {
	Level    int
	Platform int
	Message  string
}

func (f Finding) String() string {
	if f.Platform < 0 {
		return fmt.Sprintf("level %d: %s", f.Level+1, f.Message)
	}
	return fmt.Sprintf("level %d platform %d: %s", f.Level+1, f.Platform, f.Message)
}

// Check lints a table that already passed Validate. It reports layouts the
// game accepts but that are almost certainly mistakes.
func Check(t levels.Table) []Finding {
	var out []Finding
	for i, lvl := range t.Levels {
		out = append(out, checkLevel(i, lvl)...)
	}
	return out
}

func checkLevel(index int, lvl levels.Level) []Finding {
	var out []Finding
	add := func(platform int, format string, args ...any) {
		out = append(out, Finding{Level: index, Platform: platform, Message: fmt.Sprintf(format, args...)})
	}

	canvas := common.Rect{Width: common.BaseWidth, Height: common.BaseHeight}
	for j, p := range lvl.Platforms {
		if !p.Intersects(canvas) {
			add(j, "outside the %dx%d canvas", common.BaseWidth, common.BaseHeight)
		}
		for k := j + 1; k < len(lvl.Platforms); k++ {
			if p.Intersects(lvl.Platforms[k]) {
				add(j, "overlaps platform %d; the earlier one always wins collisions", k)
			}
		}
	}

	spawnX, spawnY := lvl.Spawn()
	if spawnY < 0 {
		add(0, "spawn point above the canvas")
	}
	if len(lvl.Platforms) > 1 && lvl.GoalX() < spawnX {
		add(-1, "goal midpoint %.0f is left of the spawn point %.0f", lvl.GoalX(), spawnX)
	}
	if lvl.GoalX() > common.BaseWidth {
		add(len(lvl.Platforms)-1, "goal midpoint %.0f is off screen", lvl.GoalX())
	}
	return out
}
