package shell

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/termfolio/audio"
)

// Command is one shell command with its canned output
type Command struct {
	Name    string   `toml:"name" json:"name"`
	Aliases []string `toml:"aliases" json:"aliases,omitempty"`
	Output  []string `toml:"output" json:"output,omitempty"`
	Pick    []string `toml:"pick" json:"pick,omitempty"`   // Random choices substituted for the PickMarker line
	Clear   bool     `toml:"clear" json:"clear,omitempty"` // Empties the history instead of printing
	Sound   string   `toml:"sound" json:"sound,omitempty"` // Sound played on success, empty selects the default
}

// commandFile is the on-disk layout: an array of [[command]] tables
type commandFile struct {
	Command []Command `toml:"command"`
}

var (
	ErrEmptyTable    = errors.New("command table is empty")
	ErrEmptyName     = errors.New("command name is empty")
	ErrDuplicateName = errors.New("command name already defined")
	ErrNoOutput      = errors.New("command has no output")
	ErrMissingPick   = errors.New("pick choices without a pick marker line")
	ErrUnknownSound  = errors.New("unknown sound")
)

// Table is an immutable ordered command list with an alias index
type Table struct {
	commands []Command
	index    map[string]int
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewTable validates and copies commands, names and aliases are lowercased
func NewTable(commands []Command) (*Table, error) {
	if len(commands) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		commands: make([]Command, len(commands)),
		index:    make(map[string]int, len(commands)),
	}
	for i, c := range commands {
		name := normalize(c.Name)
		if name == "" {
			return nil, fmt.Errorf("command %d: %w", i, ErrEmptyName)
		}
		if !c.Clear && len(c.Output) == 0 {
			return nil, fmt.Errorf("command %q: %w", name, ErrNoOutput)
		}
		if len(c.Pick) > 0 && !slices.Contains(c.Output, PickMarker) {
			return nil, fmt.Errorf("command %q: %w", name, ErrMissingPick)
		}
		if c.Sound != "" {
			if _, ok := audio.ParseSound(c.Sound); !ok {
				return nil, fmt.Errorf("command %q: %w %q", name, ErrUnknownSound, c.Sound)
			}
		}

		keys := []string{name}
		aliases := make([]string, 0, len(c.Aliases))
		for _, a := range c.Aliases {
			if a = normalize(a); a != "" {
				aliases = append(aliases, a)
				keys = append(keys, a)
			}
		}
		for _, k := range keys {
			if _, dup := t.index[k]; dup {
				return nil, fmt.Errorf("command %q: %w", k, ErrDuplicateName)
			}
			t.index[k] = i
		}

		t.commands[i] = Command{
			Name:    name,
			Aliases: aliases,
			Output:  slices.Clone(c.Output),
			Pick:    slices.Clone(c.Pick),
			Clear:   c.Clear,
			Sound:   c.Sound,
		}
	}
	return t, nil
}

// DefaultTable returns the table built from DefaultCommands
func DefaultTable() *Table {
	t, err := NewTable(DefaultCommands())
	if err != nil {
		panic(err)
	}
	return t
}

// ParseCommands decodes a TOML command document
func ParseCommands(data []byte) ([]Command, error) {
	var f commandFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse commands: %w", err)
	}
	return f.Command, nil
}

// LoadTable reads a TOML command file and builds a table from it
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	commands, err := ParseCommands(data)
	if err != nil {
		return nil, err
	}
	return NewTable(commands)
}

// Lookup finds a command by name or alias, input is trimmed and lowercased
func (t *Table) Lookup(name string) (Command, bool) {
	i, ok := t.index[normalize(name)]
	if !ok {
		return Command{}, false
	}
	return t.commands[i], true
}

// Names returns the primary command names in table order
func (t *Table) Names() []string {
	names := make([]string, len(t.commands))
	for i, c := range t.commands {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of commands
func (t *Table) Len() int {
	return len(t.commands)
}
