package app

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termfolio/audio"
	"github.com/lixenwraith/termfolio/chat"
	"github.com/lixenwraith/termfolio/engine"
	"github.com/lixenwraith/termfolio/parameter"
	"github.com/lixenwraith/termfolio/particle"
	"github.com/lixenwraith/termfolio/shell"
)

// MockScreen is a minimal mock for tcell.Screen recording drawn runes
type MockScreen struct {
	tcell.Screen
	mu            sync.Mutex
	width, height int
	cells         map[[2]int]rune
	shows         int
	syncs         int
	mouse         bool
	events        chan tcell.Event
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{
		width:  w,
		height: h,
		cells:  make(map[[2]int]rune),
		events: make(chan tcell.Event, 16),
	}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Init() error      { return nil }
func (m *MockScreen) Fini()            { close(m.events) }
func (m *MockScreen) Clear()           {}
func (m *MockScreen) HideCursor()      {}
func (m *MockScreen) Sync()            { m.syncs++ }

func (m *MockScreen) Show() {
	m.mu.Lock()
	m.shows++
	m.mu.Unlock()
}

func (m *MockScreen) EnableMouse(...tcell.MouseFlags) { m.mouse = true }
func (m *MockScreen) DisableMouse()                   { m.mouse = false }

func (m *MockScreen) PollEvent() tcell.Event {
	ev, ok := <-m.events
	if !ok {
		return nil
	}
	return ev
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.mu.Lock()
	m.cells[[2]int{x, y}] = mainc
	m.mu.Unlock()
}

// row returns the runes drawn on line y as a string
func (m *MockScreen) row(y int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		if r, ok := m.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m *MockScreen) contains(s string) bool {
	for y := 0; y < m.height; y++ {
		if strings.Contains(m.row(y), s) {
			return true
		}
	}
	return false
}

// soundLog records played sounds
type soundLog struct {
	played []audio.Sound
}

func (s *soundLog) Play(snd audio.Sound) bool {
	s.played = append(s.played, snd)
	return true
}

func newTestApp(t *testing.T) (*App, *MockScreen, *soundLog, *engine.ManualClock) {
	t.Helper()
	screen := newMockScreen(80, 24)
	sounds := &soundLog{}
	clock := engine.NewManualClock(time.Unix(0, 0))

	cfg := particle.DefaultConfig()
	cfg.Count = 10
	a := New(screen, Options{
		Field:     cfg,
		Responder: chat.NewResponder(chat.DefaultTable(), rand.New(rand.NewSource(1))),
		Sound:     sounds,
		Clock:     clock,
		Seed:      7,
	})
	a.start()
	return a, screen, sounds, clock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeString(a *App, s string) {
	for _, r := range s {
		a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestStartMountsField(t *testing.T) {
	a, screen, _, _ := newTestApp(t)

	if a.Field().State() != particle.StateRunning {
		t.Fatalf("Expected field running, got %v", a.Field().State())
	}
	if !screen.mouse {
		t.Error("Expected mouse motion reporting enabled")
	}
	w, h := a.Field().Size()
	sw, sh := a.Surface().Size()
	if w != sw || h != sh {
		t.Errorf("Expected field sized to surface %vx%v, got %vx%v", sw, sh, w, h)
	}
	if sw != 80*parameter.SurfaceUnitsPerPixel || sh != 48*parameter.SurfaceUnitsPerPixel {
		t.Errorf("Unexpected surface size %vx%v", sw, sh)
	}
}

func TestDrawFrame(t *testing.T) {
	a, screen, _, _ := newTestApp(t)

	a.Loop().Step()
	a.Draw()

	if a.Field().Ticks() != 1 {
		t.Errorf("Expected one tick, got %d", a.Field().Ticks())
	}
	if screen.shows != 1 {
		t.Errorf("Expected one Show, got %d", screen.shows)
	}
	if !strings.Contains(screen.row(0), strings.TrimSpace(parameter.HeaderText)) {
		t.Errorf("Expected header on first row, got %q", screen.row(0))
	}
	if got := len([]rune(screen.row(5))); got != 80 {
		t.Errorf("Expected every cell of a row drawn, got %d", got)
	}

	m := a.Metrics()
	if m.Gauge("field.particles") != 10 || m.Gauge("field.ticks") != 1 || m.Gauge("driver.steps") != 0 {
		t.Errorf("Expected frame gauges updated, got %v", m.Snapshot())
	}
}

func TestPointerEvents(t *testing.T) {
	a, _, _, clock := newTestApp(t)

	a.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))

	p := a.Field().Pointer()
	wantX, wantY := a.Surface().CellToUnits(10, 5)
	if !p.Active || p.Pos.X != wantX || p.Pos.Y != wantY {
		t.Errorf("Expected active pointer at (%v,%v), got %+v", wantX, wantY, p)
	}

	clock.Advance(parameter.FieldPointerExpiry)
	a.Loop().Step()
	if a.Field().Pointer().Active {
		t.Error("Expected pointer to expire without movement")
	}
}

func TestResizeEvent(t *testing.T) {
	a, screen, _, _ := newTestApp(t)

	a.HandleEvent(tcell.NewEventResize(100, 30))

	w, h := a.Field().Size()
	if w != 100*parameter.SurfaceUnitsPerPixel || h != 60*parameter.SurfaceUnitsPerPixel {
		t.Errorf("Expected field resized, got %vx%v", w, h)
	}
	if screen.syncs != 1 {
		t.Errorf("Expected one Sync, got %d", screen.syncs)
	}

	// Same size is a no-op
	a.HandleEvent(tcell.NewEventResize(100, 30))
	if screen.syncs != 1 {
		t.Errorf("Expected repeated resize ignored, got %d syncs", screen.syncs)
	}
}

func TestQuitKeys(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	if a.HandleEvent(key(tcell.KeyEscape)) {
		t.Error("Expected Esc to quit")
	}
	if a.HandleEvent(key(tcell.KeyCtrlC)) {
		t.Error("Expected Ctrl-C to quit")
	}
}

func TestChatFlow(t *testing.T) {
	a, screen, sounds, clock := newTestApp(t)

	// Keys go to the shell until focus moves
	typeString(a, "ignored")
	if a.Panel().Input() != "" {
		t.Fatalf("Expected no chat input while the shell has focus, got %q", a.Panel().Input())
	}
	a.ShellPanel().Take()

	a.HandleEvent(key(tcell.KeyTab))
	if !a.Panel().Open() || a.ShellPanel().Open() {
		t.Fatal("Expected Tab to swap the shell for the chat panel")
	}

	typeString(a, "helloo")
	a.HandleEvent(key(tcell.KeyBackspace2))
	if a.Panel().Input() != "hello" {
		t.Fatalf("Expected input %q, got %q", "hello", a.Panel().Input())
	}

	a.HandleEvent(key(tcell.KeyEnter))
	if a.Panel().Input() != "" {
		t.Error("Expected input cleared after send")
	}
	if a.Metrics().Count("chat.sent") != 1 {
		t.Error("Expected sent message counted")
	}
	if !a.Conversation().Typing() {
		t.Error("Expected typing indicator after send")
	}

	a.Loop().Step()
	a.Draw()
	if !screen.contains(parameter.ChatTypingIndicator) {
		t.Error("Expected typing indicator drawn")
	}
	if !screen.contains("you: hello") {
		t.Error("Expected user message drawn")
	}

	clock.Advance(parameter.ChatThinkMin + parameter.ChatThinkJitter)
	a.Loop().Step()
	a.Draw()

	if a.Conversation().Typing() {
		t.Error("Expected reply landed")
	}
	if !screen.contains("Hello! I'm here") {
		t.Error("Expected greeting reply drawn")
	}

	want := []audio.Sound{audio.SoundClick, audio.SoundClick, audio.SoundSuccess}
	if len(sounds.played) != len(want) {
		t.Fatalf("Expected sounds %v, got %v", want, sounds.played)
	}
	for i := range want {
		if sounds.played[i] != want[i] {
			t.Errorf("Sound %d: expected %v, got %v", i, want[i], sounds.played[i])
		}
	}
}

func TestBlankSendPlaysError(t *testing.T) {
	a, _, sounds, _ := newTestApp(t)

	a.HandleEvent(key(tcell.KeyTab))
	a.HandleEvent(key(tcell.KeyEnter))

	if len(sounds.played) != 2 || sounds.played[1] != audio.SoundError {
		t.Errorf("Expected click then error, got %v", sounds.played)
	}
	if len(a.Conversation().Messages()) != 1 {
		t.Error("Expected blank input not recorded")
	}
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	screen := newMockScreen(40, 12)
	a := New(screen, Options{Field: particle.Config{Count: 5}, FrameRate: 120, Seed: 3})

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	screen.events <- tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone)
	screen.events <- key(tcell.KeyCtrlC)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Ctrl-C")
	}

	if a.Field().State() != particle.StateStopped {
		t.Error("Expected field torn down after Run")
	}
	if got := a.Metrics().Gauge("driver.steps"); got != float64(a.Steps()) {
		t.Errorf("Expected steps gauge %d, got %v", a.Steps(), got)
	}
	if a.Shell().Booting() {
		t.Error("Expected pending banner lines cancelled after Run")
	}
	screen.Fini()
}

func TestRunContextCancel(t *testing.T) {
	screen := newMockScreen(40, 12)
	a := New(screen, Options{Field: particle.Config{Count: 5}, Seed: 4})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := a.Run(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("Expected deadline error, got %v", err)
	}
	if screen.mouse {
		t.Error("Expected mouse reporting disabled after Run")
	}
	screen.Fini()
}

func TestShellBoots(t *testing.T) {
	a, screen, _, clock := newTestApp(t)

	if a.Focus() != FocusShell || !a.ShellPanel().Open() || a.Panel().Open() {
		t.Fatal("Expected the shell focused at start")
	}
	if !a.Shell().Booting() {
		t.Fatal("Expected banner scheduled by start")
	}

	clock.Advance(3 * time.Second)
	a.Loop().Step()
	a.Draw()

	if a.Shell().Booting() {
		t.Error("Expected banner finished")
	}
	if got := len(a.Shell().History()); got != len(shell.BootSequence) {
		t.Errorf("Expected %d banner lines, got %d", len(shell.BootSequence), got)
	}
	if !screen.contains("[OK] Kubernetes clusters online") {
		t.Error("Expected banner drawn")
	}
}

func TestShellCommands(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		sound   audio.Sound
		drawn   string
		counter string
	}{
		{"Help", "help", audio.SoundClick, "clear     - Clear terminal", "shell.commands"},
		{"Alias", "  FARM ", audio.SoundClick, "getting your hands dirty", "shell.commands"},
		{"CommandSound", "coffee", audio.SoundSuccess, "Coffee is ready!", "shell.commands"},
		{"Unknown", "rm -rf", audio.SoundError, "rm -rf", "shell.unknown"},
		{"Blank", "   ", audio.SoundClick, "$", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, screen, sounds, _ := newTestApp(t)

			typeString(a, tt.input)
			a.HandleEvent(key(tcell.KeyEnter))
			a.Draw()

			if len(sounds.played) != 1 || sounds.played[0] != tt.sound {
				t.Errorf("Expected %v, got %v", tt.sound, sounds.played)
			}
			if !screen.contains(tt.drawn) {
				t.Errorf("Expected %q drawn", tt.drawn)
			}
			if tt.counter != "" && a.Metrics().Count(tt.counter) != 1 {
				t.Errorf("Expected %s counted", tt.counter)
			}
			if a.ShellPanel().Input() != "" {
				t.Error("Expected input cleared after Enter")
			}
		})
	}
}

func TestShellClear(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	typeString(a, "ping")
	a.HandleEvent(key(tcell.KeyEnter))
	if len(a.Shell().History()) == 0 {
		t.Fatal("Expected ping output in history")
	}

	typeString(a, "clear")
	a.HandleEvent(key(tcell.KeyEnter))
	if got := len(a.Shell().History()); got != 0 {
		t.Errorf("Expected empty history after clear, got %d lines", got)
	}
}

func TestFocusCycle(t *testing.T) {
	a, _, sounds, _ := newTestApp(t)

	want := []Focus{FocusChat, FocusNone, FocusShell}
	for i, f := range want {
		a.HandleEvent(key(tcell.KeyTab))
		if a.Focus() != f {
			t.Fatalf("Tab %d: expected focus %d, got %d", i+1, f, a.Focus())
		}
		if a.ShellPanel().Open() != (f == FocusShell) || a.Panel().Open() != (f == FocusChat) {
			t.Errorf("Tab %d: only the focused panel should be open", i+1)
		}
	}
	if len(sounds.played) != len(want) {
		t.Errorf("Expected a click per Tab, got %v", sounds.played)
	}

	// With nothing focused keys are dropped
	a.HandleEvent(key(tcell.KeyTab))
	a.HandleEvent(key(tcell.KeyTab))
	typeString(a, "x")
	a.HandleEvent(key(tcell.KeyEnter))
	if a.ShellPanel().Input() != "" || a.Panel().Input() != "" {
		t.Error("Expected keys ignored without focus")
	}
	if len(sounds.played) != len(want)+2 {
		t.Errorf("Expected Enter silent without focus, got %v", sounds.played)
	}
}
