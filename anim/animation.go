package anim

import (
	"math"
)

// RepeatType selects how a finished cycle restarts.
type RepeatType string

const (
	// Loop restarts an identical cycle.
	Loop RepeatType = "loop"
	// Reverse alternates playback direction every cycle.
	Reverse RepeatType = "reverse"
	// Mirror swaps the generator's origin and target every cycle.
	Mirror RepeatType = "mirror"
)

// Forever makes an animation repeat until it is stopped.
const Forever = math.MaxInt32

// Options configure an Animation. Keyframes is required with at least
// two entries; everything else has a usable zero value. Malformed
// options are not validated.
type Options struct {
	Keyframes []Value
	Type      GeneratorType

	Duration float64 // fixed cycle duration in ms; 0 means infer it
	Elapsed  float64 // initial elapsed offset in ms

	Repeat      int // number of extra cycles; 0 plays once
	RepeatType  RepeatType
	RepeatDelay float64 // pause between cycles in ms

	Ease    EasingFunc   // easing for every tween segment
	Easings []EasingFunc // per-segment easings, overrides Ease
	Offsets []float64    // keyframe positions on [0, 1]

	Spring SpringOptions
	Decay  DecayOptions

	Driver   DriverFactory
	Autoplay bool

	OnPlay     func()
	OnStop     func()
	OnComplete func()
	OnRepeat   func()
	OnUpdate   func(Value)
}

// bridgeDomain is the synthetic numeric span the interpolation bridge
// runs numeric-only generators over.
const bridgeDomain = 100.0

// An Animation is one playback or sampling session over a keyframe
// sequence. It owns its state exclusively; the driver is the only
// thing expected to call back into it while playing, and it must not
// do so concurrently with itself.
type Animation struct {
	opts   Options
	gen    Generator
	bridge Mixer // set when the generator runs on the synthetic domain

	elapsed        float64
	initialElapsed float64
	repeatCount    int
	duration       float64
	durationSet    bool
	complete       bool
	forward        bool
	state          State

	driver    Driver
	stopped   bool
	completed bool
}

// New creates an Animation session and, if Autoplay is set, starts it
// on its driver immediately.
func New(o Options) *Animation {
	a := new(Animation)
	a.opts = o
	a.elapsed = o.Elapsed
	a.initialElapsed = o.Elapsed
	a.forward = true
	a.duration = o.Duration
	a.durationSet = o.Duration > 0

	keyframes := append([]Value(nil), o.Keyframes...)
	strategy := o.Type
	if len(keyframes) > 2 {
		// Multi-point paths can only be expressed as keyframes.
		strategy = Keyframes
	}

	if len(keyframes) >= 2 && needsInterpolation(strategy, keyframes[0], keyframes[len(keyframes)-1]) {
		a.bridge = Mix(keyframes[0], keyframes[len(keyframes)-1])
		keyframes = []Value{0.0, bridgeDomain}
	}

	a.gen = newGenerator(strategy, keyframes, o)

	a.state = State{Value: keyframes[0]}
	if a.bridge != nil {
		a.state.Value = a.bridge(0)
	}

	if o.Autoplay {
		a.Play()
	}

	return a
}

// tick advances the session by one driver delta and runs the repeat
// state machine.
func (a *Animation) tick(delta float64) {
	if a.stopped {
		return
	}

	if !a.forward {
		delta = -delta
	}
	a.elapsed += delta

	if !a.complete {
		a.state = a.gen.Next(math.Max(0, a.elapsed))
		if a.bridge != nil {
			raw, _ := a.state.Value.(float64)
			a.state.Value = a.bridge(raw / bridgeDomain)
		}
		if a.forward {
			a.complete = a.state.Done
		} else {
			// Reverse playback finishes at the cycle's logical start;
			// the generator is never asked for a negative time.
			a.complete = a.elapsed <= 0
		}
	}

	if a.opts.OnUpdate != nil {
		a.opts.OnUpdate(a.state.Value)
	}

	if !a.complete {
		return
	}

	if a.repeatCount == 0 && !a.durationSet {
		// First natural completion fixes the cycle duration for good.
		a.duration = a.elapsed
		a.durationSet = true
	}

	if a.repeatCount < a.opts.Repeat {
		if hasRepeatDelayElapsed(a.elapsed, a.duration, a.opts.RepeatDelay, a.forward) {
			a.repeatTransition()
		}
		return
	}

	a.terminate()
}

func (a *Animation) repeatTransition() {
	a.repeatCount++

	if a.opts.RepeatType == Reverse {
		a.forward = a.repeatCount%2 == 0
		a.elapsed = reverseElapsed(a.elapsed, a.duration, a.opts.RepeatDelay, a.forward)
	} else {
		a.elapsed = loopElapsed(a.elapsed, a.duration, a.opts.RepeatDelay)
		if a.opts.RepeatType == Mirror {
			if flipper, ok := a.gen.(TargetFlipper); ok {
				flipper.FlipTarget()
			}
		}
	}

	a.complete = false
	if a.opts.OnRepeat != nil {
		a.opts.OnRepeat()
	}
}

func (a *Animation) terminate() {
	a.stopDriver()
	if a.completed {
		return
	}
	a.completed = true
	if a.opts.OnComplete != nil {
		a.opts.OnComplete()
	}
}

// Play attaches the session to its driver and starts receiving ticks.
// Playing twice is a caller error and is not guarded.
func (a *Animation) Play() {
	if a.opts.OnPlay != nil {
		a.opts.OnPlay()
	}

	factory := a.opts.Driver
	if factory == nil {
		factory = DefaultDriver
	}
	a.driver = factory(a.tick)
	a.driver.Start()
}

// Stop detaches the session from its driver. No callbacks fire once
// it has returned.
func (a *Animation) Stop() {
	if a.opts.OnStop != nil {
		a.opts.OnStop()
	}
	a.stopped = true
	a.stopDriver()
}

func (a *Animation) stopDriver() {
	if a.driver != nil {
		a.driver.Stop()
	}
}

// SetTime seeks to an absolute time by replaying one synchronous tick
// from the initial elapsed offset. It exists for instantaneous
// handoff from an external clock, not for scrubbing: repeat and
// completion side effects run as part of the seek.
func (a *Animation) SetTime(t float64) {
	a.elapsed = a.initialElapsed
	a.tick(t)
}

const sampleResolution = 50 // ms

// Sample evaluates the session without a live driver. With controlled
// set, the call is a single tick of delta t on the session's own
// timeline, equivalent to one real frame. Otherwise the session is
// reset and fast-forwarded to t in bounded synthetic ticks; that is
// coarser than real playback and meant for previews and handoff, not
// frame-accurate scrubbing.
func (a *Animation) Sample(t float64, controlled bool) State {
	if controlled {
		a.tick(t)
		return a.state
	}

	a.elapsed = a.initialElapsed
	a.tick(0)

	step := float64(sampleResolution)
	if a.opts.Duration > 0 {
		step = math.Max(a.opts.Duration*0.5, sampleResolution)
	}
	for sampled := 0.0; sampled < t; {
		delta := math.Min(step, t-sampled)
		a.tick(delta)
		sampled += delta
	}

	return a.state
}

// Current returns the last generator output.
func (a *Animation) Current() State {
	return a.state
}

// Duration returns the authoritative cycle duration and whether it is
// known yet; an inferred duration only becomes known once the first
// cycle completes naturally.
func (a *Animation) Duration() (float64, bool) {
	return a.duration, a.durationSet
}

// Forward reports the current playback direction.
func (a *Animation) Forward() bool {
	return a.forward
}

// loopElapsed rolls a finished cycle's elapsed time over into the
// next cycle.
func loopElapsed(elapsed, duration, delay float64) float64 {
	return elapsed - duration - delay
}

// reverseElapsed remaps elapsed time across a direction flip; forward
// is the direction being entered. Applied twice with forward set it
// returns the original elapsed value, the delay terms cancelling, so
// alternating cycles accumulate no drift.
func reverseElapsed(elapsed, duration, delay float64, forward bool) float64 {
	if forward {
		return loopElapsed(duration-elapsed, duration, delay)
	}
	return duration - (elapsed - duration) + delay
}

// hasRepeatDelayElapsed reports whether the pause between repeat
// cycles has passed.
func hasRepeatDelayElapsed(elapsed, duration, delay float64, forward bool) bool {
	if forward {
		return elapsed >= duration+delay
	}
	return elapsed <= -delay
}
