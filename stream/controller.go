package stream

import (
	"log"
	"reflect"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motion/anim"
	"github.com/matt-g-everett/motion/util"
)

// Controller that manages animations.
type Controller struct {
	animation     Animation
	nextAnimation Animation
	transition    *anim.Animation
	flick         *anim.Animation
	control       *Control
	gradient      GradientTable
	animationTime time.Duration
	transitionMs  float64
	easing        anim.EasingFunc
	runtimeMs     int64
}

// NewController creates an instance of a Controller.
func NewController(config Config, runtimeMs int64, control *Control) *Controller {
	c := new(Controller)

	c.control = control
	c.runtimeMs = runtimeMs
	c.animationTime = time.Duration(config.Stream.AnimationSeconds) * time.Second
	if c.animationTime <= 0 {
		c.animationTime = 60 * time.Second
	}
	c.transitionMs = float64(config.Stream.TransitionSeconds) * 1000.0
	if c.transitionMs <= 0 {
		c.transitionMs = 5000.0
	}
	c.easing = util.EasingByName(config.Stream.Easing)

	c.gradient = GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquiose
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}

	backColour, _ := colorful.Hex("#000005")
	c.animation = NewSweep(c.gradient, backColour, runtimeMs)
	c.nextAnimation = nil

	return c
}

func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	delta := float64(runtimeMs - c.runtimeMs)
	c.runtimeMs = runtimeMs

	var f *Frame
	if c.nextAnimation != nil {
		f1 := c.animation.CalculateFrame(runtimeMs)
		f2 := c.nextAnimation.CalculateFrame(runtimeMs)
		state := c.transition.Sample(delta, true)
		point, _ := state.Value.(float64)
		f = f1.InterpolateFrame(f2, point)

		if state.Done {
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.transition = nil
		}
	} else {
		f = c.animation.CalculateFrame(runtimeMs)
	}

	if c.flick != nil {
		state := c.flick.Sample(delta, true)
		gain, _ := state.Value.(float64)
		white, _ := colorful.Hex("#ffffff")
		for i := 0; i < len(f.pixels); i++ {
			f.pixels[i] = f.pixels[i].BlendHcl(white, clamp01(gain/100.0))
		}
		if state.Done {
			c.flick = nil
		}
	}

	return f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}

func (c *Controller) setNextAnimation(a Animation) {
	c.nextAnimation = a
	c.transition = anim.New(anim.Options{
		Keyframes: []anim.Value{0.0, 1.0},
		Type:      anim.Tween,
		Duration:  c.transitionMs,
		Ease:      c.easing,
	})
}

func (c *Controller) cycleAnimation() {
	log.Printf("type: %v", reflect.TypeOf(c.animation).Elem().String())
	backColour, _ := colorful.Hex("#000005")
	if reflect.TypeOf(c.animation).Elem().String() == "stream.Sweep" {
		foreColour, _ := colorful.Hex("#808080")
		c.setNextAnimation(NewPulse(foreColour, backColour, c.runtimeMs))
	} else {
		c.setNextAnimation(NewSweep(c.gradient, backColour, c.runtimeMs))
	}
}

// Flick overlays a momentary white surge that decays away from the
// supplied velocity.
func (c *Controller) Flick(velocity float64) {
	c.flick = anim.New(anim.Options{
		Keyframes: []anim.Value{0.0, 100.0},
		Type:      anim.Decay,
		Decay: anim.DecayOptions{
			Velocity:     velocity,
			TimeConstant: 400,
			RestDelta:    1,
		},
	})
}

func (c *Controller) handleCommand(cmd ControlMessage) {
	switch cmd.Type {
	case "cycle":
		switch cmd.Animation {
		case "sweep":
			backColour, _ := colorful.Hex("#000005")
			c.setNextAnimation(NewSweep(c.gradient, backColour, c.runtimeMs))
		case "pulse":
			foreColour, _ := colorful.Hex("#808080")
			backColour, _ := colorful.Hex("#000005")
			c.setNextAnimation(NewPulse(foreColour, backColour, c.runtimeMs))
		default:
			c.cycleAnimation()
		}
	case "flick":
		c.Flick(cmd.Velocity)
	default:
		log.Printf("Unknown control type %q", cmd.Type)
	}
}

// Run causes the Controller to cycle through animations.
func (c *Controller) Run() {
	cycleTimer := time.NewTicker(c.animationTime)
	for {
		select {
		case <-cycleTimer.C:
			c.cycleAnimation()
		case cmd := <-c.control.Commands:
			c.handleCommand(cmd)
		}
	}
}
