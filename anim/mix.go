package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Mixer interpolates between two values. Progress is unclamped so
// that overshooting easings extrapolate past the endpoints.
type Mixer func(progress float64) Value

// Mix creates a Mixer between two values of the same kind. Numbers
// mix linearly and colours blend in HCL space, the same space frames
// are cross-faded in. Any other kind snaps from a to b halfway.
func Mix(a, b Value) Mixer {
	switch origin := a.(type) {
	case float64:
		target, _ := b.(float64)
		return func(p float64) Value {
			return origin + (target-origin)*p
		}
	case colorful.Color:
		target, _ := b.(colorful.Color)
		return func(p float64) Value {
			return origin.BlendHcl(target, p)
		}
	default:
		return func(p float64) Value {
			if p < 0.5 {
				return a
			}
			return b
		}
	}
}
