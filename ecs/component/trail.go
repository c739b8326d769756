package component

import "github.com/milk9111/voicejumper/trail"

type Trail struct {
	Points []trail.Point
}

var TrailComponent = NewComponent[Trail]()
