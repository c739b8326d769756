package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Dead is attached to the player once it falls out of the playfield. The
// session stops stepping the world while it is present.
type Dead struct{}

var DeadComponent = NewComponent[Dead]()
