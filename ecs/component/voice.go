package component

// VoiceInput holds the loudness sampled this frame and the impulse it maps
// to. Jump is false when the loudness stayed at or under the threshold.
type VoiceInput struct {
	Loudness float64
	Impulse  float64
	Jump     bool
}

var VoiceInputComponent = NewComponent[VoiceInput]()
