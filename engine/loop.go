package engine

import (
	"sort"
	"time"
)

// FrameFunc is a per-frame callback receiving the frame timestamp
type FrameFunc func(now time.Time)

// FrameID identifies a pending frame request
type FrameID uint64

// TimerID identifies a pending timer
type TimerID uint64

type frameEntry struct {
	id FrameID
	fn FrameFunc
}

type timerEntry struct {
	id  TimerID
	due time.Time
	fn  func()
}

// Loop is a cooperative frame scheduler with requestAnimationFrame/setTimeout semantics
//
// Architecture:
//   - Step is the display refresh: due timers fire first, then every frame callback queued before the Step
//   - Callbacks requested during a Step run on the next Step, never the current one
//   - Cancel removes a callback even if it is already part of the running batch
//   - Not safe for concurrent use, all calls happen on the goroutine driving Step
type Loop struct {
	clock  Clock
	nextID uint64

	frames  []frameEntry // Queued for the next Step
	running []frameEntry // Batch being executed by the current Step

	timers []timerEntry
	firing []timerEntry

	steps uint64
}

// NewLoop creates a loop reading time from clock
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		clock:  clock,
		frames: make([]frameEntry, 0, 4),
	}
}

// Now returns the loop clock reading
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// RequestFrame queues fn for the next Step
func (l *Loop) RequestFrame(fn FrameFunc) FrameID {
	l.nextID++
	id := FrameID(l.nextID)
	l.frames = append(l.frames, frameEntry{id: id, fn: fn})
	return id
}

// CancelFrame drops a pending frame request, returns false if it already ran or never existed
func (l *Loop) CancelFrame(id FrameID) bool {
	for i := range l.frames {
		if l.frames[i].id == id {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return true
		}
	}
	for i := range l.running {
		if l.running[i].id == id && l.running[i].fn != nil {
			l.running[i].fn = nil
			return true
		}
	}
	return false
}

// AfterFunc schedules fn to fire on the first Step at or after now+d
func (l *Loop) AfterFunc(d time.Duration, fn func()) TimerID {
	l.nextID++
	id := TimerID(l.nextID)
	l.timers = append(l.timers, timerEntry{id: id, due: l.clock.Now().Add(d), fn: fn})
	return id
}

// CancelTimer drops a pending timer, returns false if it already fired or never existed
func (l *Loop) CancelTimer(id TimerID) bool {
	for i := range l.timers {
		if l.timers[i].id == id {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return true
		}
	}
	for i := range l.firing {
		if l.firing[i].id == id && l.firing[i].fn != nil {
			l.firing[i].fn = nil
			return true
		}
	}
	return false
}

// Step runs one refresh and returns the number of frame callbacks executed
func (l *Loop) Step() int {
	now := l.clock.Now()
	l.steps++

	l.fireTimers(now)

	l.running, l.frames = l.frames, l.running[:0]
	ran := 0
	for i := range l.running {
		fn := l.running[i].fn
		if fn == nil {
			continue
		}
		l.running[i].fn = nil
		fn(now)
		ran++
	}
	l.running = l.running[:0]

	return ran
}

// fireTimers runs timers due at now in deadline order, ties broken by scheduling order
func (l *Loop) fireTimers(now time.Time) {
	if len(l.timers) == 0 {
		return
	}

	kept := l.timers[:0]
	for _, t := range l.timers {
		if t.due.After(now) {
			kept = append(kept, t)
		} else {
			l.firing = append(l.firing, t)
		}
	}
	// Clear tail so dropped closures can be collected
	clear(l.timers[len(kept):])
	l.timers = kept

	sort.SliceStable(l.firing, func(i, j int) bool {
		if l.firing[i].due.Equal(l.firing[j].due) {
			return l.firing[i].id < l.firing[j].id
		}
		return l.firing[i].due.Before(l.firing[j].due)
	})

	for i := range l.firing {
		fn := l.firing[i].fn
		if fn == nil {
			continue
		}
		l.firing[i].fn = nil
		fn()
	}
	l.firing = l.firing[:0]
}

// PendingFrames returns the number of frame requests waiting for the next Step
func (l *Loop) PendingFrames() int {
	return len(l.frames)
}

// PendingTimers returns the number of timers not yet fired
func (l *Loop) PendingTimers() int {
	return len(l.timers)
}

// Steps returns the number of Step calls so far
func (l *Loop) Steps() uint64 {
	return l.steps
}
