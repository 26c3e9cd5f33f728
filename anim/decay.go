package anim

import (
	"math"
)

// DecayOptions tune the decay strategy.
type DecayOptions struct {
	Velocity     float64 // initial velocity in units per second
	Power        float64 // scales how far the velocity carries the value
	TimeConstant float64 // decay rate in milliseconds
	RestDelta    float64 // distance from target below which decay is done
	ModifyTarget func(float64) float64
}

const (
	defaultDecayPower        = 0.8
	defaultDecayTimeConstant = 350
	defaultDecayRestDelta    = 0.5
)

// decayGenerator eases a value exponentially from its origin toward a
// rest target projected from the initial velocity.
type decayGenerator struct {
	amplitude    float64
	target       float64
	timeConstant float64
	restDelta    float64
}

func newDecayGenerator(from float64, o DecayOptions) *decayGenerator {
	if o.Power <= 0 {
		o.Power = defaultDecayPower
	}
	if o.TimeConstant <= 0 {
		o.TimeConstant = defaultDecayTimeConstant
	}
	if o.RestDelta <= 0 {
		o.RestDelta = defaultDecayRestDelta
	}

	g := new(decayGenerator)
	g.timeConstant = o.TimeConstant
	g.restDelta = o.RestDelta
	g.amplitude = o.Power * o.Velocity

	ideal := from + g.amplitude
	g.target = ideal
	if o.ModifyTarget != nil {
		g.target = o.ModifyTarget(ideal)
		if g.target != ideal {
			g.amplitude = g.target - from
		}
	}

	return g
}

func (g *decayGenerator) Next(elapsedMs float64) State {
	delta := -g.amplitude * math.Exp(-elapsedMs/g.timeConstant)
	done := !(delta > g.restDelta || delta < -g.restDelta)
	value := g.target + delta
	if done {
		value = g.target
	}
	return State{Value: value, Done: done}
}
