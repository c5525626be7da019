package shell

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// LineKind is how a history line is styled
type LineKind uint8

const (
	LineInput LineKind = iota
	LineOutput
	LineError
)

// Line is one row of shell history
type Line struct {
	Kind LineKind
	Text string
}

// Result is the outcome of one command
// Command is the canonical name of the matched command, empty for unknown or blank input
type Result struct {
	Command string
	Lines   []Line
	Clear   bool
	Sound   string
}

// Unknown reports whether the input named no command
func (r Result) Unknown() bool {
	return r.Command == "" && len(r.Lines) > 0
}

// Interpreter dispatches command input against a table
// Safe for concurrent use
type Interpreter struct {
	table *Table

	mu  sync.Mutex
	rng *rand.Rand
}

// NewInterpreter creates an interpreter over table, nil values select defaults
func NewInterpreter(table *Table, rng *rand.Rand) *Interpreter {
	if table == nil {
		table = DefaultTable()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Interpreter{table: table, rng: rng}
}

// Table returns the command table
func (in *Interpreter) Table() *Table {
	return in.table
}

func (in *Interpreter) intn(n int) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.rng.Intn(n)
}

// Exec runs input, blank input yields an empty result
func (in *Interpreter) Exec(input string) Result {
	name := normalize(input)
	if name == "" {
		return Result{}
	}

	cmd, ok := in.table.Lookup(name)
	if !ok {
		msg := fmt.Sprintf(notFound[in.intn(len(notFound))], name)
		return Result{Lines: []Line{{Kind: LineError, Text: msg}}}
	}
	if cmd.Clear {
		return Result{Command: cmd.Name, Clear: true, Sound: cmd.Sound}
	}

	lines := make([]Line, len(cmd.Output))
	for i, text := range cmd.Output {
		if text == PickMarker && len(cmd.Pick) > 0 {
			text = cmd.Pick[in.intn(len(cmd.Pick))]
		}
		lines[i] = Line{Kind: LineOutput, Text: text}
	}
	return Result{Command: cmd.Name, Lines: lines, Sound: cmd.Sound}
}
