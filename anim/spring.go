package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringOptions tune the spring strategy.
type SpringOptions struct {
	FrameRate int     // simulation steps per second
	Frequency float64 // angular frequency; higher is stiffer
	Damping   float64 // damping ratio; 1.0 is critically damped
	Velocity  float64 // initial velocity in units per second
	RestDelta float64 // displacement below which the spring can settle
	RestSpeed float64 // speed below which the spring can settle
}

const (
	defaultSpringRate      = 60
	defaultSpringFrequency = 6.0
	defaultSpringDamping   = 0.7
	defaultRestDelta       = 0.01
	defaultRestSpeed       = 0.1
)

// springGenerator runs a damped spring between two numeric values.
// The simulation advances in fixed steps, so Next is addressable at
// any absolute time: asking for an earlier time than the last call
// deterministically re-runs the simulation from the start.
type springGenerator struct {
	opts     SpringOptions
	spring   harmonica.Spring
	from, to float64
	dt       float64 // seconds per simulation step

	pos, vel float64
	steps    int
	settled  bool
}

func newSpringGenerator(from, to float64, o SpringOptions) *springGenerator {
	if o.FrameRate <= 0 {
		o.FrameRate = defaultSpringRate
	}
	if o.Frequency <= 0 {
		o.Frequency = defaultSpringFrequency
	}
	if o.Damping <= 0 {
		o.Damping = defaultSpringDamping
	}
	if o.RestDelta <= 0 {
		o.RestDelta = defaultRestDelta
	}
	if o.RestSpeed <= 0 {
		o.RestSpeed = defaultRestSpeed
	}

	g := new(springGenerator)
	g.opts = o
	g.from = from
	g.to = to
	g.dt = harmonica.FPS(o.FrameRate)
	g.spring = harmonica.NewSpring(g.dt, o.Frequency, o.Damping)
	g.reset()

	return g
}

func (g *springGenerator) reset() {
	g.pos = g.from
	g.vel = g.opts.Velocity
	g.steps = 0
	g.settled = false
}

func (g *springGenerator) Next(elapsedMs float64) State {
	target := int(elapsedMs / (g.dt * 1000))
	if target < g.steps {
		g.reset()
	}

	for g.steps < target && !g.settled {
		g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.to)
		g.steps++
		if math.Abs(g.to-g.pos) < g.opts.RestDelta && math.Abs(g.vel) < g.opts.RestSpeed {
			// Snap to the target so repeats start from it exactly.
			g.pos = g.to
			g.vel = 0
			g.settled = true
		}
	}
	if g.settled {
		g.steps = target
	}

	return State{Value: g.pos, Done: g.settled}
}

// FlipTarget swaps the endpoints and restarts the simulation, used by
// mirror repeats to run the return journey.
func (g *springGenerator) FlipTarget() {
	g.from, g.to = g.to, g.from
	g.opts.Velocity = -g.opts.Velocity
	g.reset()
}
