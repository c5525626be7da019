package shell

import (
	"time"

	"github.com/lixenwraith/termfolio/engine"
	"github.com/lixenwraith/termfolio/parameter"
)

// Scheduler times the boot sequence, satisfied by *engine.Loop
type Scheduler interface {
	engine.Clock
	AfterFunc(d time.Duration, fn func()) engine.TimerID
	CancelTimer(id engine.TimerID) bool
}

// Shell is an interactive history over an Interpreter
// Not safe for concurrent use, all calls happen on the scheduler goroutine
type Shell struct {
	interp *Interpreter
	sched  Scheduler

	history []Line
	limit   int
	boot    map[engine.TimerID]struct{}
}

// NewShell creates an empty shell, interp nil selects the built-in commands
func NewShell(interp *Interpreter, sched Scheduler) *Shell {
	if interp == nil {
		interp = NewInterpreter(nil, nil)
	}
	return &Shell{
		interp: interp,
		sched:  sched,
		limit:  parameter.ShellHistoryLimit,
		boot:   make(map[engine.TimerID]struct{}),
	}
}

// Boot schedules the startup banner, the greeting is read when Boot is called
func (s *Shell) Boot() {
	greeting := Greet(s.sched)
	for _, bl := range BootSequence {
		text := bl.Text
		if bl.Greet {
			text = greeting + " " + text
		}

		var id engine.TimerID
		id = s.sched.AfterFunc(bl.Delay, func() {
			delete(s.boot, id)
			s.append(Line{Kind: LineOutput, Text: text})
		})
		s.boot[id] = struct{}{}
	}
}

// Booting reports whether banner lines are still pending
func (s *Shell) Booting() bool {
	return len(s.boot) > 0
}

// Exec echoes input behind the prompt and runs it, clear empties the history including the echo
func (s *Shell) Exec(input string) Result {
	s.append(Line{Kind: LineInput, Text: Prompt + input})

	res := s.interp.Exec(input)
	if res.Clear {
		clear(s.history)
		s.history = s.history[:0]
		return res
	}
	s.append(res.Lines...)
	return res
}

func (s *Shell) append(lines ...Line) {
	s.history = append(s.history, lines...)
	if over := len(s.history) - s.limit; s.limit > 0 && over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

// History returns the visible lines, callers must not modify them
func (s *Shell) History() []Line {
	return s.history
}

// Interpreter returns the command dispatcher
func (s *Shell) Interpreter() *Interpreter {
	return s.interp
}

// Close cancels any pending banner lines
func (s *Shell) Close() {
	for id := range s.boot {
		s.sched.CancelTimer(id)
	}
	clear(s.boot)
}
