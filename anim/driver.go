package anim

import (
	"sync"
	"time"
)

// A Driver calls back into an animation with elapsed-time deltas
// until it is stopped. It must not invoke the update function
// concurrently with itself.
type Driver interface {
	Start()
	Stop()
}

// A DriverFactory binds a Driver to a per-tick update function that
// takes a delta in milliseconds.
type DriverFactory func(update func(deltaMs float64)) Driver

const defaultFrameInterval = 33 * time.Millisecond

// TickerDriver creates a DriverFactory backed by a time.Ticker at the
// given interval, reporting wall-clock deltas.
func TickerDriver(interval time.Duration) DriverFactory {
	return func(update func(float64)) Driver {
		d := new(tickerDriver)
		d.interval = interval
		d.update = update
		d.done = make(chan struct{})
		return d
	}
}

// DefaultDriver is the DriverFactory used when no driver is
// configured; it ticks at roughly 30fps.
func DefaultDriver(update func(float64)) Driver {
	return TickerDriver(defaultFrameInterval)(update)
}

type tickerDriver struct {
	interval time.Duration
	update   func(float64)
	done     chan struct{}
	stop     sync.Once
}

func (d *tickerDriver) Start() {
	go d.run()
}

func (d *tickerDriver) run() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-d.done:
			return
		case now := <-ticker.C:
			d.update(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now
		}
	}
}

// Stop is safe to call more than once, and from within an update.
func (d *tickerDriver) Stop() {
	d.stop.Do(func() {
		close(d.done)
	})
}
