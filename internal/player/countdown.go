package player

import (
	"sync"
	"time"
)

// Countdown ticks down a duration, invoking the callback once per interval
// with the seconds remaining. At most one countdown runs at a time; starting
// a new one stops the previous.
type Countdown struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewCountdown creates a countdown ticking at the given interval. An
// interval of zero means one second; tests shrink it to keep runs fast.
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{interval: interval}
}

// Start begins counting down the given number of ticks. tick is called with
// the remaining count after each interval, ending with 0. Any countdown
// already running is stopped first. Start returns immediately; Wait blocks
// until the countdown ends.
func (c *Countdown) Start(ticks int, tick func(remaining int)) {
	c.Stop()

	c.mu.Lock()
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop = stop
	c.done = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		t := time.NewTicker(c.interval)
		defer t.Stop()
		remaining := ticks
		for remaining > 0 {
			select {
			case <-stop:
				return
			case <-t.C:
				remaining--
				tick(remaining)
			}
		}
	}()
}

// Stop cancels a running countdown and waits for it to exit. Stopping an
// idle countdown is a no-op.
func (c *Countdown) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Wait blocks until the current countdown finishes or is stopped.
func (c *Countdown) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}
