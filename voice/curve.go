package voice

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const (
	// JumpThreshold is the loudness a frame has to exceed to jump.
	JumpThreshold = 35
	// ImpulseScale is how much loudness above the threshold buys one px/frame.
	ImpulseScale = 15
	// MaxImpulse caps the upward speed of a jump in px/frame.
	MaxImpulse = 8
)

// Curve maps a loudness sample to an upward velocity override. ok is false
// when the sample should not trigger a jump.
type Curve interface {
	Impulse(loudness float64) (impulse float64, ok bool)
}

// LinearCurve grows the impulse linearly above Threshold up to Max.
type LinearCurve struct {
	Threshold float64
	Scale     float64
	Max       float64
}

func DefaultCurve() LinearCurve {
	return LinearCurve{Threshold: JumpThreshold, Scale: ImpulseScale, Max: MaxImpulse}
}

func (c LinearCurve) Impulse(loudness float64) (float64, bool) {
	if loudness <= c.Threshold {
		return 0, false
	}
	return -math.Min((loudness-c.Threshold)/c.Scale, c.Max), true
}

const curveDispatchScript = `
__result := impulse(__loudness, __threshold)
`

// ScriptCurve evaluates a tengo script defining
//
//	impulse := func(loudness, threshold) { ... }
//
// The function returns the velocity to set (negative is up) or undefined for
// no jump. Any runtime failure falls back to the wrapped curve for that frame.
type ScriptCurve struct {
	compiled  *tengo.Compiled
	fallback  LinearCurve
	lastError string
}

// LoadScriptCurve compiles the script at path.
func LoadScriptCurve(path string, fallback LinearCurve) (*ScriptCurve, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("voice: read curve script: %w", err)
	}
	c, err := NewScriptCurve(src, fallback)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func NewScriptCurve(src []byte, fallback LinearCurve) (*ScriptCurve, error) {
	full := append(append([]byte(nil), src...), curveDispatchScript...)
	script := tengo.NewScript(full)
	_ = script.Add("__loudness", 0.0)
	_ = script.Add("__threshold", fallback.Threshold)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("voice: compile curve script: %w", err)
	}

	c := &ScriptCurve{compiled: compiled, fallback: fallback}
	// A dry run surfaces a missing or non-callable impulse at load time.
	if _, _, err := c.eval(0); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ScriptCurve) Impulse(loudness float64) (float64, bool) {
	v, ok, err := c.eval(loudness)
	if err != nil {
		if msg := err.Error(); msg != c.lastError {
			log.Printf("voice: curve script: %v (using built-in curve)", err)
			c.lastError = msg
		}
		return c.fallback.Impulse(loudness)
	}
	return v, ok
}

func (c *ScriptCurve) eval(loudness float64) (float64, bool, error) {
	if err := c.compiled.Set("__loudness", loudness); err != nil {
		return 0, false, fmt.Errorf("voice: curve script: %w", err)
	}
	if err := c.compiled.Run(); err != nil {
		return 0, false, fmt.Errorf("voice: run curve script: %w", err)
	}

	result := c.compiled.Get("__result")
	if result.IsUndefined() {
		return 0, false, nil
	}
	var v float64
	switch n := result.Value().(type) {
	case float64:
		v = n
	case int64:
		v = float64(n)
	default:
		return 0, false, fmt.Errorf("voice: curve script returned %s, want number", result.ValueType())
	}
	// Only upward (non-positive) impulses are jumps.
	if v > 0 {
		return 0, false, nil
	}
	return v, true, nil
}
