package state

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"DrawSolutions/internal/logging"
)

const (
	DefaultTickInterval = 50 * time.Millisecond
	DefaultPhaseStep    = 0.05
)

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// NewTickerFunc builds the Ticker for one Running period.
type NewTickerFunc func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// AnimationClock advances the deformation phase while running. Each tick
// adds a fixed step and then calls OnTick with the new phase; the next
// tick is not consumed until OnTick returns.
type AnimationClock struct {
	mu        sync.Mutex
	interval  time.Duration
	step      float64
	phase     float64
	running   bool
	gen       uint64
	stop      chan struct{}
	newTicker NewTickerFunc
	log       *zap.SugaredLogger

	// OnTick runs on the clock goroutine after every phase step.
	OnTick func(phase float64)
}

// ClockOption configures an AnimationClock.
type ClockOption func(*AnimationClock)

// WithTicker replaces the ticker source, mainly for tests.
func WithTicker(f NewTickerFunc) ClockOption {
	return func(c *AnimationClock) { c.newTicker = f }
}

func WithClockLogger(log *zap.SugaredLogger) ClockOption {
	return func(c *AnimationClock) { c.log = log }
}

// NewAnimationClock returns a stopped clock at phase 0. Non-positive
// interval or step fall back to the defaults.
func NewAnimationClock(interval time.Duration, step float64, opts ...ClockOption) *AnimationClock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if step <= 0 {
		step = DefaultPhaseStep
	}
	c := &AnimationClock{
		interval:  interval,
		step:      step,
		newTicker: NewTimeTicker,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logging.OrNop(c.log)
	return c
}

// Phase returns the current phase.
func (c *AnimationClock) Phase() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Running reports whether the clock is ticking.
func (c *AnimationClock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Toggle flips between Running and Stopped and returns the new state.
func (c *AnimationClock) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.stopLocked()
	} else {
		c.startLocked()
	}
	return c.running
}

// Start enters Running. It does nothing if already running.
func (c *AnimationClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		c.startLocked()
	}
}

// Stop enters Stopped and keeps the phase.
func (c *AnimationClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.stopLocked()
	}
}

// Reset stops the clock and sets the phase back to 0.
func (c *AnimationClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		c.stopLocked()
	}
	c.phase = 0
	c.log.Debug("phase reset")
}

func (c *AnimationClock) startLocked() {
	c.running = true
	c.gen++
	c.stop = make(chan struct{})
	go c.run(c.gen, c.newTicker(c.interval), c.stop)
	c.log.Infow("animation started", "phase", c.phase, "interval", c.interval)
}

func (c *AnimationClock) stopLocked() {
	c.running = false
	close(c.stop)
	c.stop = nil
	c.log.Infow("animation stopped", "phase", c.phase)
}

func (c *AnimationClock) run(gen uint64, t Ticker, stop <-chan struct{}) {
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !c.tick(gen) {
				return
			}
		}
	}
}

// tick advances the phase for the Running period gen. A tick that arrives
// after that period ended is dropped.
func (c *AnimationClock) tick(gen uint64) bool {
	c.mu.Lock()
	if !c.running || c.gen != gen {
		c.mu.Unlock()
		return false
	}
	c.phase += c.step
	phase := c.phase
	onTick := c.OnTick
	c.mu.Unlock()

	if onTick != nil {
		onTick(phase)
	}
	return true
}
