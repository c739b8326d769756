package component

// LevelProgress is a singleton describing which level the world holds.
type LevelProgress struct {
	Index int
	Count int
	Name  string
}

var LevelProgressComponent = NewComponent[LevelProgress]()

// LevelChangeRequest is a one-shot request emitted by the goal system. The
// session owns storage and world rebuilding, so systems only emit data.
type LevelChangeRequest struct {
	TargetLevel int
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
