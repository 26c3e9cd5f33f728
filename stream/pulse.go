package stream

import (
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motion/anim"
)

// A Pulse is an Animation that swells the whole strip between a
// background and a highlight colour.
type Pulse struct {
	level     *anim.Animation
	fore      colorful.Color
	back      colorful.Color
	runtimeMs int64
}

// NewPulse creates an instance of a Pulse object.
func NewPulse(fore, back colorful.Color, runtimeMs int64) *Pulse {
	p := new(Pulse)
	p.fore = fore
	p.back = back
	p.runtimeMs = runtimeMs

	p.level = anim.New(anim.Options{
		Keyframes:   []anim.Value{0.0, 1.0, 0.35, 1.0, 0.0},
		Type:        anim.Tween,
		Duration:    3000,
		Ease:        ease.InOutSine,
		Repeat:      anim.Forever,
		RepeatType:  anim.Loop,
		RepeatDelay: 400,
	})

	return p
}

// CalculateFrame creates a new Frame instance.
func (p *Pulse) CalculateFrame(runtimeMs int64) *Frame {
	delta := float64(runtimeMs - p.runtimeMs)
	p.runtimeMs = runtimeMs

	level, _ := p.level.Sample(delta, true).Value.(float64)

	f := NewFrame()
	f.Fill(p.back.BlendHcl(p.fore, level))
	return f
}
