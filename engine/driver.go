package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Driver steps a Loop at a fixed rate on the goroutine that calls Run
// Work from other goroutines (input polling) is posted to the same goroutine,
// so loop callbacks, posted work and AfterStep hooks never overlap
type Driver struct {
	loop     *Loop
	interval time.Duration

	inbox     chan func()
	afterStep []func()

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	ticks atomic.Uint64
}

// NewDriver creates a driver targeting fps steps per second
func NewDriver(loop *Loop, fps int) *Driver {
	if fps <= 0 {
		fps = 60
	}
	return &Driver{
		loop:     loop,
		interval: time.Second / time.Duration(fps),
		inbox:    make(chan func(), 128),
		stopChan: make(chan struct{}),
	}
}

// Loop returns the driven loop
func (d *Driver) Loop() *Loop {
	return d.loop
}

// Interval returns the step period
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// AfterStep registers fn to run after every Step, in registration order, must be called before Run
func (d *Driver) AfterStep(fn func()) {
	d.afterStep = append(d.afterStep, fn)
}

// Post queues fn to run on the driver goroutine, returns false once stopped
// Blocks while the inbox is full
func (d *Driver) Post(fn func()) bool {
	select {
	case <-d.stopChan:
		return false
	default:
	}
	select {
	case d.inbox <- fn:
		return true
	case <-d.stopChan:
		return false
	}
}

// Run blocks stepping the loop until Stop is called or ctx is done
// The driver is stopped once Run returns and cannot be restarted
func (d *Driver) Run(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return nil
	}
	defer d.running.Store(false)
	// Any exit counts as stopped so Post never queues work nobody will run
	defer d.Stop()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-d.stopChan:
			return nil

		case fn := <-d.inbox:
			fn()

		case <-ticker.C:
			// Posted work may have stopped the driver within the same wakeup
			select {
			case <-d.stopChan:
				return nil
			default:
			}
			d.loop.Step()
			d.ticks.Add(1)
			for _, fn := range d.afterStep {
				fn()
			}
		}
	}
}

// Stop ends Run, safe to call from any goroutine including loop callbacks
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
	})
}

// Ticks returns the number of steps driven so far
func (d *Driver) Ticks() uint64 {
	return d.ticks.Load()
}
