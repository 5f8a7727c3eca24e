package chip8

import (
	"context"
	"time"
)

// DefaultCycleRate is the default instruction rate in cycles per second.
const DefaultCycleRate = 500

// timerRate is the fixed timer decrement cadence in Hz.
const timerRate = 60

// Clock drives a machine's two cadences: instruction execution at a
// configurable rate and timer decrement at a fixed 60 Hz. The two are
// independent; an instruction cycle is not the unit of timer decay.
type Clock struct {
	m           *Machine
	cyclePeriod time.Duration
	timerPeriod time.Duration
	maxBurst    int
	lastCycle   time.Time
	lastTimer   time.Time
}

// NewClock creates a clock running m at rate instructions per second.
// A rate of zero or less selects DefaultCycleRate.
func NewClock(m *Machine, rate int) *Clock {
	if rate <= 0 {
		rate = DefaultCycleRate
	}

	maxBurst := rate / 10
	if maxBurst < 1 {
		maxBurst = 1
	}

	return &Clock{
		m:           m,
		cyclePeriod: time.Second / time.Duration(rate),
		timerPeriod: time.Second / timerRate,
		maxBurst:    maxBurst,
	}
}

// Tick advances the machine by every instruction cycle and timer tick
// that has become due at now. Hosts with their own frame loop call this
// once per frame. The first call only primes the timebase.
func (c *Clock) Tick(now time.Time) error {
	if c.lastCycle.IsZero() {
		c.lastCycle = now
		c.lastTimer = now
		return nil
	}

	for now.Sub(c.lastTimer) >= c.timerPeriod {
		c.m.TickTimers()
		c.lastTimer = c.lastTimer.Add(c.timerPeriod)
	}

	due := int(now.Sub(c.lastCycle) / c.cyclePeriod)
	if due > c.maxBurst {
		// A stalled host does not get to unleash its whole backlog at once.
		due = c.maxBurst
		c.lastCycle = now.Add(-time.Duration(due) * c.cyclePeriod)
	}

	for i := 0; i < due; i++ {
		if err := c.m.Step(); err != nil {
			return err
		}
	}
	c.lastCycle = c.lastCycle.Add(time.Duration(due) * c.cyclePeriod)
	return nil
}

// Run drives the machine until ctx is cancelled or a fault occurs.
// Cancellation lands between cycles; no instruction is ever partially
// applied.
func (c *Clock) Run(ctx context.Context) error {
	cycles := time.NewTicker(c.cyclePeriod)
	defer cycles.Stop()

	timers := time.NewTicker(c.timerPeriod)
	defer timers.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timers.C:
			c.m.TickTimers()
		case <-cycles.C:
			if err := c.m.Step(); err != nil {
				return err
			}
		}
	}
}
