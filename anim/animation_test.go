package anim

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualDriver lets tests hand-feed deltas into an animation.
type manualDriver struct {
	update  func(float64)
	started bool
	stopped bool
}

func (d *manualDriver) factory() DriverFactory {
	return func(update func(float64)) Driver {
		d.update = update
		return d
	}
}

func (d *manualDriver) Start() { d.started = true }
func (d *manualDriver) Stop()  { d.stopped = true }

func (d *manualDriver) step(delta float64) {
	if d.started && !d.stopped {
		d.update(delta)
	}
}

// stubGenerator completes at a fixed duration and records flips.
type stubGenerator struct {
	duration float64
	flips    int
}

func (g *stubGenerator) Next(t float64) State {
	return State{Value: t, Done: t >= g.duration}
}

func (g *stubGenerator) FlipTarget() { g.flips++ }

func TestForwardCompletesOnce(t *testing.T) {
	driver := new(manualDriver)
	completions := 0
	updates := 0

	New(Options{
		Keyframes: []Value{0.0, 100.0},
		Duration:  100,
		Ease:      ease.Linear,
		Driver:    driver.factory(),
		Autoplay:  true,
		OnComplete: func() {
			completions++
		},
		OnUpdate: func(Value) {
			updates++
		},
	})

	require.True(t, driver.started)
	driver.step(50)
	assert.Equal(t, 0, completions, "should not complete mid-cycle")
	driver.step(50)
	assert.Equal(t, 1, completions)
	assert.True(t, driver.stopped, "terminal completion should stop the driver")
	assert.Equal(t, 2, updates)
}

func TestCompletionFollowsGeneratorDone(t *testing.T) {
	a := New(Options{Keyframes: []Value{0.0, 100.0}, Duration: 100, Ease: ease.Linear})

	a.tick(99.9)
	assert.False(t, a.complete)
	a.tick(0.1)
	assert.True(t, a.complete)
}

func TestLoopRepeat(t *testing.T) {
	driver := new(manualDriver)
	var a *Animation
	var elapsedAtRepeat []float64
	repeats := 0
	completions := 0

	a = New(Options{
		Keyframes:   []Value{0.0, 100.0},
		Duration:    100,
		Ease:        ease.Linear,
		Repeat:      2,
		RepeatType:  Loop,
		RepeatDelay: 10,
		Driver:      driver.factory(),
		Autoplay:    true,
		OnRepeat: func() {
			repeats++
			elapsedAtRepeat = append(elapsedAtRepeat, a.elapsed)
		},
		OnComplete: func() {
			completions++
		},
	})

	driver.step(105)
	assert.Equal(t, 0, repeats, "repeat delay has not elapsed yet")
	driver.step(10) // 115 >= 100 + 10
	require.Equal(t, 1, repeats)
	assert.InDelta(t, 5, elapsedAtRepeat[0], 1e-9, "elapsed rolls over by duration + delay")

	driver.step(105) // elapsed 110 >= 110
	require.Equal(t, 2, repeats)
	assert.InDelta(t, 0, elapsedAtRepeat[1], 1e-9)
	assert.Equal(t, 0, completions)

	driver.step(120)
	assert.Equal(t, 2, repeats, "repeat budget is exhausted")
	assert.Equal(t, 1, completions)
	assert.True(t, driver.stopped)
}

func TestRepeatDelayHoldsLastValue(t *testing.T) {
	var latest Value
	a := New(Options{
		Keyframes:   []Value{0.0, 100.0},
		Duration:    100,
		Ease:        ease.Linear,
		Repeat:      1,
		RepeatDelay: 50,
		OnUpdate: func(v Value) {
			latest = v
		},
	})

	a.tick(100)
	assert.Equal(t, 100.0, latest)
	a.tick(30) // inside the delay window
	assert.Equal(t, 100.0, latest, "value holds during the repeat delay")
	assert.True(t, a.complete)
	a.tick(30) // 160 >= 150, repeat fires
	assert.False(t, a.complete)
	assert.InDelta(t, 10, a.elapsed, 1e-9)
}

func TestMirrorFlipsTarget(t *testing.T) {
	gen := &stubGenerator{duration: 100}
	completions := 0
	a := New(Options{
		Keyframes:  []Value{0.0, 1.0},
		Type:       Spring,
		Repeat:     2,
		RepeatType: Mirror,
		OnComplete: func() {
			completions++
		},
	})
	a.gen = gen

	a.tick(100)
	assert.Equal(t, 1, gen.flips)
	a.tick(100)
	assert.Equal(t, 2, gen.flips)
	a.tick(100)
	assert.Equal(t, 2, gen.flips, "no flip on terminal completion")
	assert.Equal(t, 1, completions)

	// Once terminal, further ticks never re-fire completion.
	a.tick(100)
	assert.Equal(t, 1, completions)
}

func TestReverseAlternatesDirection(t *testing.T) {
	a := New(Options{
		Keyframes:  []Value{0.0, 100.0},
		Duration:   100,
		Ease:       ease.Linear,
		Repeat:     3,
		RepeatType: Reverse,
	})

	require.True(t, a.Forward())
	a.tick(100) // cycle 0 done
	assert.False(t, a.Forward())
	assert.InDelta(t, 100, a.elapsed, 1e-9, "reverse cycle starts at the far end")

	a.tick(60)
	assert.InDelta(t, 40, a.elapsed, 1e-9, "deltas run backwards")
	assert.Equal(t, 40.0, a.state.Value)

	a.tick(40) // cycle 1 done at elapsed 0
	assert.True(t, a.Forward())
	assert.InDelta(t, 0, a.elapsed, 1e-9)

	a.tick(100) // cycle 2 done
	assert.False(t, a.Forward())
	a.tick(100) // cycle 3 done, terminal
	assert.True(t, a.completed)
}

func TestReverseElapsedIsSelfInverse(t *testing.T) {
	for _, delay := range []float64{0, 25} {
		for _, elapsed := range []float64{0, 10, 55.5, 100} {
			once := reverseElapsed(elapsed, 100, delay, true)
			twice := reverseElapsed(once, 100, delay, true)
			assert.InDelta(t, elapsed, twice, 1e-9)
		}
	}
}

func TestDurationInference(t *testing.T) {
	a := New(Options{
		Keyframes:  []Value{0.0, 100.0},
		Type:       Spring,
		Repeat:     1,
		RepeatType: Mirror,
	})

	_, known := a.Duration()
	require.False(t, known, "no duration before the first settle")

	var inferred float64
	for i := 0; i < 5000 && inferred == 0; i++ {
		a.tick(16)
		if a.complete {
			d, ok := a.Duration()
			require.True(t, ok)
			assert.InDelta(t, a.elapsed, d, 1e-9, "duration freezes at first completion elapsed")
			inferred = d
		}
	}
	require.NotZero(t, inferred, "spring never settled")

	// Run through the mirror repeat to terminal completion; the
	// inferred duration must not move.
	for i := 0; i < 5000 && !a.completed; i++ {
		a.tick(16)
	}
	require.True(t, a.completed)
	final, _ := a.Duration()
	assert.Equal(t, inferred, final)
}

func TestSampleUncontrolled(t *testing.T) {
	a := New(Options{
		Keyframes: []Value{0.0, 100.0},
		Duration:  1000,
		Ease:      ease.InOutQuad,
	})

	previous := -1.0
	for _, tMs := range []float64{0, 200, 400, 600, 800, 999} {
		state := a.Sample(tMs, false)
		value, ok := state.Value.(float64)
		require.True(t, ok)
		assert.False(t, state.Done)
		assert.Greater(t, value, previous, "value must increase along the cycle")
		previous = value
	}

	for _, tMs := range []float64{1000, 1500, 10000} {
		state := a.Sample(tMs, false)
		assert.True(t, state.Done)
		assert.InDelta(t, 100, state.Value.(float64), 1e-9)
	}
}

func TestControlledSamplingMatchesFastForward(t *testing.T) {
	opts := Options{
		Keyframes: []Value{0.0, 100.0},
		Duration:  1000,
		Ease:      ease.InOutQuad,
	}

	controlled := New(opts)
	s1 := controlled.Sample(500, true)
	s1 = controlled.Sample(500, true)

	oneShot := New(opts)
	s2 := oneShot.Sample(1000, false)

	assert.Equal(t, s2.Done, s1.Done)
	assert.InDelta(t, s2.Value.(float64), s1.Value.(float64), 1e-9)
}

func TestNonNumericKeyframesBridge(t *testing.T) {
	red, _ := colorful.Hex("#c02020")
	blue, _ := colorful.Hex("#2020c0")

	var seen []Value
	a := New(Options{
		Keyframes: []Value{red, blue},
		Type:      Spring,
		OnUpdate: func(v Value) {
			seen = append(seen, v)
		},
	})

	for i := 0; i < 5000 && !a.completed; i++ {
		a.tick(16)
	}
	require.True(t, a.completed)
	require.NotEmpty(t, seen)

	for _, v := range seen {
		_, ok := v.(colorful.Color)
		require.True(t, ok, "bridge must never leak the numeric domain")
	}

	final := seen[len(seen)-1].(colorful.Color)
	assert.InDelta(t, blue.R, final.R, 1e-3)
	assert.InDelta(t, blue.G, final.G, 1e-3)
	assert.InDelta(t, blue.B, final.B, 1e-3)
}

func TestStopPreventsFurtherCallbacks(t *testing.T) {
	driver := new(manualDriver)
	stops := 0
	updates := 0
	completions := 0

	a := New(Options{
		Keyframes: []Value{0.0, 100.0},
		Duration:  1000,
		Driver:    driver.factory(),
		Autoplay:  true,
		OnStop: func() {
			stops++
		},
		OnUpdate: func(Value) {
			updates++
		},
		OnComplete: func() {
			completions++
		},
	})

	driver.step(100)
	require.Equal(t, 1, updates)

	a.Stop()
	assert.Equal(t, 1, stops)
	assert.True(t, driver.stopped)

	// Even a delta that arrives after detach must not mutate state.
	a.tick(5000)
	assert.Equal(t, 1, updates)
	assert.Equal(t, 0, completions)
}

func TestSetTimeSeeksFromInitialElapsed(t *testing.T) {
	a := New(Options{
		Keyframes: []Value{0.0, 100.0},
		Duration:  1000,
		Ease:      ease.Linear,
	})

	a.SetTime(500)
	assert.InDelta(t, 50, a.Current().Value.(float64), 1e-9)

	// A later seek is absolute, not cumulative.
	a.SetTime(250)
	assert.InDelta(t, 25, a.Current().Value.(float64), 1e-9)
}

func TestInitialElapsedOffset(t *testing.T) {
	a := New(Options{
		Keyframes: []Value{0.0, 100.0},
		Duration:  1000,
		Ease:      ease.Linear,
		Elapsed:   500,
	})

	a.tick(250)
	assert.InDelta(t, 75, a.Current().Value.(float64), 1e-9)

	// Uncontrolled sampling resets to the construction offset.
	state := a.Sample(250, false)
	assert.InDelta(t, 75, state.Value.(float64), 1e-9)
}

func TestDispatchRules(t *testing.T) {
	// More than two keyframes always selects the keyframes strategy.
	a := New(Options{
		Keyframes: []Value{0.0, 100.0, 50.0},
		Type:      Spring,
		Duration:  90,
	})
	_, ok := a.gen.(*keyframesGenerator)
	assert.True(t, ok)

	// Unrecognised types fall back to keyframes.
	a = New(Options{Keyframes: []Value{0.0, 1.0}, Type: GeneratorType("wobble")})
	_, ok = a.gen.(*keyframesGenerator)
	assert.True(t, ok)

	a = New(Options{Keyframes: []Value{0.0, 1.0}, Type: Spring})
	_, ok = a.gen.(*springGenerator)
	assert.True(t, ok)

	a = New(Options{Keyframes: []Value{0.0, 1.0}, Type: Decay})
	_, ok = a.gen.(*decayGenerator)
	assert.True(t, ok)
}
