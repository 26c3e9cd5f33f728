package anim

import (
	"github.com/fogleman/ease"
)

// EasingFunc maps normalised progress to eased progress.
type EasingFunc func(float64) float64

const defaultDuration = 300

// keyframesGenerator tweens through a keyframe sequence over a fixed
// duration, easing each segment independently.
type keyframesGenerator struct {
	offsets  []float64
	easings  []EasingFunc
	mixers   []Mixer
	duration float64
}

func newKeyframesGenerator(values []Value, o Options) *keyframesGenerator {
	g := new(keyframesGenerator)
	g.duration = o.Duration
	if g.duration <= 0 {
		g.duration = defaultDuration
	}

	g.offsets = o.Offsets
	if len(g.offsets) != len(values) {
		g.offsets = evenOffsets(len(values))
	}

	segments := len(values) - 1
	g.easings = make([]EasingFunc, segments)
	for i := range g.easings {
		switch {
		case i < len(o.Easings) && o.Easings[i] != nil:
			g.easings[i] = o.Easings[i]
		case o.Ease != nil:
			g.easings[i] = o.Ease
		default:
			g.easings[i] = ease.InOutQuad
		}
	}

	g.mixers = make([]Mixer, segments)
	for i := range g.mixers {
		g.mixers[i] = Mix(values[i], values[i+1])
	}

	return g
}

// evenOffsets spaces keyframes uniformly across [0, 1].
func evenOffsets(count int) []float64 {
	offsets := make([]float64, count)
	for i := range offsets {
		offsets[i] = float64(i) / float64(count-1)
	}
	return offsets
}

func (g *keyframesGenerator) Next(elapsedMs float64) State {
	p := elapsedMs / g.duration
	done := p >= 1
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	// Scan for the segment containing p; at or past the last offset
	// the final segment applies.
	segment := len(g.mixers) - 1
	for i := 0; i < len(g.mixers); i++ {
		if p < g.offsets[i+1] {
			segment = i
			break
		}
	}

	span := g.offsets[segment+1] - g.offsets[segment]
	local := 1.0
	if span > 0 {
		local = (p - g.offsets[segment]) / span
	}

	return State{Value: g.mixers[segment](g.easings[segment](local)), Done: done}
}
