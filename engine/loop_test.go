package engine

import (
	"testing"
	"time"
)

func newTestLoop() (*Loop, *ManualClock) {
	clock := NewManualClock(time.Unix(1000, 0))
	return NewLoop(clock), clock
}

// TestLoopFrameRunsOnce verifies a frame request runs on exactly one Step
func TestLoopFrameRunsOnce(t *testing.T) {
	loop, _ := newTestLoop()
	calls := 0
	loop.RequestFrame(func(time.Time) { calls++ })

	if ran := loop.Step(); ran != 1 {
		t.Errorf("Expected 1 callback on first step, got %d", ran)
	}
	if ran := loop.Step(); ran != 0 {
		t.Errorf("Expected 0 callbacks on second step, got %d", ran)
	}
	if calls != 1 {
		t.Errorf("Expected callback to run once, ran %d times", calls)
	}
}

// TestLoopRequestDuringStepDefers verifies re-requests land on the following Step
func TestLoopRequestDuringStepDefers(t *testing.T) {
	loop, _ := newTestLoop()
	calls := 0

	var frame FrameFunc
	frame = func(time.Time) {
		calls++
		loop.RequestFrame(frame)
	}
	loop.RequestFrame(frame)

	for i := 0; i < 5; i++ {
		loop.Step()
	}

	if calls != 5 {
		t.Errorf("Expected one callback per step (5), got %d", calls)
	}
	if loop.PendingFrames() != 1 {
		t.Errorf("Expected the chain to keep one pending frame, got %d", loop.PendingFrames())
	}
}

// TestLoopCancelPendingFrame verifies cancellation before Step
func TestLoopCancelPendingFrame(t *testing.T) {
	loop, _ := newTestLoop()
	calls := 0
	id := loop.RequestFrame(func(time.Time) { calls++ })

	if !loop.CancelFrame(id) {
		t.Fatal("Expected cancel of pending frame to succeed")
	}
	loop.Step()

	if calls != 0 {
		t.Errorf("Expected cancelled frame not to run, ran %d times", calls)
	}
	if loop.CancelFrame(id) {
		t.Error("Expected second cancel to report false")
	}
}

// TestLoopCancelWithinBatch verifies a frame cancelled by an earlier callback of the same Step is skipped
func TestLoopCancelWithinBatch(t *testing.T) {
	loop, _ := newTestLoop()
	secondRan := false

	var second FrameID
	loop.RequestFrame(func(time.Time) {
		if !loop.CancelFrame(second) {
			t.Error("Expected cancel of queued batch entry to succeed")
		}
	})
	second = loop.RequestFrame(func(time.Time) { secondRan = true })

	if ran := loop.Step(); ran != 1 {
		t.Errorf("Expected only the first callback to run, got %d", ran)
	}
	if secondRan {
		t.Error("Expected cancelled batch entry to be skipped")
	}
}

// TestLoopFramesReceiveStepTime verifies all callbacks of a Step share a timestamp
func TestLoopFramesReceiveStepTime(t *testing.T) {
	loop, clock := newTestLoop()
	clock.Advance(250 * time.Millisecond)
	want := clock.Now()

	var got []time.Time
	loop.RequestFrame(func(now time.Time) { got = append(got, now) })
	loop.RequestFrame(func(now time.Time) { got = append(got, now) })
	loop.Step()

	if len(got) != 2 {
		t.Fatalf("Expected 2 callbacks, got %d", len(got))
	}
	for i, ts := range got {
		if !ts.Equal(want) {
			t.Errorf("Callback %d: expected %v, got %v", i, want, ts)
		}
	}
}

// TestLoopTimers verifies timers fire only once due, in deadline order
func TestLoopTimers(t *testing.T) {
	loop, clock := newTestLoop()
	var order []string

	loop.AfterFunc(200*time.Millisecond, func() { order = append(order, "late") })
	loop.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })
	loop.AfterFunc(100*time.Millisecond, func() { order = append(order, "early-2") })

	loop.Step()
	if len(order) != 0 {
		t.Fatalf("Expected no timers before deadline, got %v", order)
	}

	clock.Advance(100 * time.Millisecond)
	loop.Step()
	if len(order) != 2 || order[0] != "early" || order[1] != "early-2" {
		t.Fatalf("Expected [early early-2], got %v", order)
	}

	clock.Advance(500 * time.Millisecond)
	loop.Step()
	if len(order) != 3 || order[2] != "late" {
		t.Fatalf("Expected late timer last, got %v", order)
	}
	if loop.PendingTimers() != 0 {
		t.Errorf("Expected no pending timers, got %d", loop.PendingTimers())
	}
}

// TestLoopCancelTimer verifies cancelled timers never fire, including cancellation by a sibling timer
func TestLoopCancelTimer(t *testing.T) {
	loop, clock := newTestLoop()
	fired := 0

	id := loop.AfterFunc(10*time.Millisecond, func() { fired++ })
	if !loop.CancelTimer(id) {
		t.Fatal("Expected cancel to succeed")
	}

	var victim TimerID
	loop.AfterFunc(10*time.Millisecond, func() { loop.CancelTimer(victim) })
	victim = loop.AfterFunc(10*time.Millisecond, func() { fired++ })

	clock.Advance(time.Second)
	loop.Step()

	if fired != 0 {
		t.Errorf("Expected no cancelled timer to fire, fired %d", fired)
	}
}

// TestLoopTimersBeforeFrames verifies timer effects are visible to frames of the same Step
func TestLoopTimersBeforeFrames(t *testing.T) {
	loop, clock := newTestLoop()
	flag := true

	loop.AfterFunc(time.Millisecond, func() { flag = false })
	clock.Advance(time.Millisecond)

	var seen bool
	loop.RequestFrame(func(time.Time) { seen = flag })
	loop.Step()

	if seen {
		t.Error("Expected frame to observe timer side effect")
	}
	if loop.Steps() != 1 {
		t.Errorf("Expected step count 1, got %d", loop.Steps())
	}
}
