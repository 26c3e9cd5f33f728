// Package anim animates values over time. An Animation plays a
// keyframe sequence through a pluggable sampling strategy (tween,
// spring, decay), handling repetition and direction, and can either
// be driven by a frame clock or sampled headlessly.
package anim

// Value is an animated quantity. Numeric values are float64; anything
// else must be understood by Mix.
type Value = interface{}

// State is a single generator output.
type State struct {
	Value Value
	Done  bool
}

// A Generator samples one animation strategy at an elapsed time in
// milliseconds. Elapsed time is always non-negative.
type Generator interface {
	Next(elapsedMs float64) State
}

// A TargetFlipper is a Generator that can swap its origin and target,
// so that mirror repeats run the return path.
type TargetFlipper interface {
	FlipTarget()
}

// GeneratorType names a sampling strategy.
type GeneratorType string

const (
	Keyframes GeneratorType = "keyframes"
	Tween     GeneratorType = "tween"
	Spring    GeneratorType = "spring"
	Decay     GeneratorType = "decay"
)

// newGenerator selects the strategy constructor. The keyframe
// sequence passed in has already been rewritten by the interpolation
// bridge when the strategy needs a numeric domain.
func newGenerator(t GeneratorType, keyframes []Value, o Options) Generator {
	switch t {
	case Spring:
		from, _ := keyframes[0].(float64)
		to, _ := keyframes[len(keyframes)-1].(float64)
		return newSpringGenerator(from, to, o.Spring)
	case Decay:
		from, _ := keyframes[0].(float64)
		return newDecayGenerator(from, o.Decay)
	default:
		// Keyframes, Tween and anything unrecognised.
		return newKeyframesGenerator(keyframes, o)
	}
}

// needsInterpolation reports whether the strategy can only run on a
// synthetic numeric domain for these endpoint values. The keyframes
// strategy mixes non-numeric values natively; the physical strategies
// are numeric-only.
func needsInterpolation(t GeneratorType, origin, target Value) bool {
	switch t {
	case Spring, Decay:
		return !isNumber(origin) || !isNumber(target)
	default:
		return false
	}
}

func isNumber(v Value) bool {
	_, ok := v.(float64)
	return ok
}
