package component

import "github.com/milk9111/voicejumper/common"

// Platform is a static ledge. Order is the platform's position in the level
// table; collision resolves the lowest Order first.
type Platform struct {
	Rect  common.Rect
	Order int
}

var PlatformComponent = NewComponent[Platform]()

// GoalTag marks the last platform of the level.
type GoalTag struct{}

var GoalTagComponent = NewComponent[GoalTag]()
