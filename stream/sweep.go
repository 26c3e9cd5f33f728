package stream

import (
	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motion/anim"
	"github.com/matt-g-everett/motion/util"
)

// A Sweep is an Animation that sweeps a coloured band back and forth
// along the strip while the band colour springs between two gradient
// stops.
type Sweep struct {
	position  *anim.Animation
	colour    *anim.Animation
	lut       []float64
	back      colorful.Color
	runtimeMs int64
}

// NewSweep creates an instance of a Sweep object.
func NewSweep(gradient GradientTable, back colorful.Color, runtimeMs int64) *Sweep {
	s := new(Sweep)
	s.back = back
	s.runtimeMs = runtimeMs
	s.lut = util.GenerateLut(80, ease.InOutQuad)

	s.position = anim.New(anim.Options{
		Keyframes:  []anim.Value{0.0, float64(numPixels - 1)},
		Type:       anim.Tween,
		Duration:   4000,
		Ease:       ease.InOutQuad,
		Repeat:     anim.Forever,
		RepeatType: anim.Reverse,
	})

	saturation := util.RandomiseSaturation(0.7, 1.0)
	c1 := gradient.GetColor(0.1, saturation, 0.5)
	c2 := gradient.GetColor(0.8, saturation, 0.5)
	s.colour = anim.New(anim.Options{
		Keyframes:   []anim.Value{c1, c2},
		Type:        anim.Spring,
		Repeat:      anim.Forever,
		RepeatType:  anim.Mirror,
		RepeatDelay: 250,
	})

	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Sweep) CalculateFrame(runtimeMs int64) *Frame {
	delta := float64(runtimeMs - s.runtimeMs)
	s.runtimeMs = runtimeMs

	pos, _ := s.position.Sample(delta, true).Value.(float64)
	colour, _ := s.colour.Sample(delta, true).Value.(colorful.Color)

	f := NewFrame()
	f.Fill(s.back)

	centre := int(pos)
	half := len(s.lut) / 2
	for i := 0; i < len(s.lut); i++ {
		pixel := centre - half + i
		if pixel < 0 || pixel >= numPixels {
			continue
		}
		f.pixels[pixel] = s.back.BlendHcl(colour, s.lut[i])
	}

	return f
}
