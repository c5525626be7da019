package app

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termfolio/audio"
	"github.com/lixenwraith/termfolio/chat"
	"github.com/lixenwraith/termfolio/core"
	"github.com/lixenwraith/termfolio/engine"
	"github.com/lixenwraith/termfolio/event"
	"github.com/lixenwraith/termfolio/parameter"
	"github.com/lixenwraith/termfolio/parameter/visual"
	"github.com/lixenwraith/termfolio/particle"
	"github.com/lixenwraith/termfolio/render"
	"github.com/lixenwraith/termfolio/shell"
	"github.com/lixenwraith/termfolio/status"
)

// Options configures the terminal app, zero values select defaults
type Options struct {
	FrameRate     int
	UnitsPerPixel float64
	Field         particle.Config
	Responder     *chat.Responder
	Commands      *shell.Interpreter // nil selects the built-in command table
	Sound         audio.Player       // nil plays nothing
	Metrics       *status.Registry   // nil creates a private registry
	Clock         engine.Clock
	Seed          int64 // 0 seeds from the clock
}

// Focus names the panel receiving keys
type Focus uint8

const (
	FocusShell Focus = iota
	FocusChat
	FocusNone
)

// App hosts the particle background, the shell and the chat panel on a tcell screen
// Every method except Run runs on the driver goroutine
type App struct {
	screen tcell.Screen
	opts   Options

	loop    *engine.Loop
	driver  *engine.Driver
	bus     *event.Bus
	surface *render.CellSurface
	field   *particle.Field
	conv    *chat.Conversation
	panel   *Panel
	sh      *shell.Shell
	shPanel *Panel
	focus   Focus

	headerColor render.RGB
	started     bool
}

// New wires an app around an initialized screen
func New(screen tcell.Screen, opts Options) *App {
	if opts.FrameRate <= 0 {
		opts.FrameRate = parameter.DefaultFrameRate
	}
	if opts.UnitsPerPixel <= 0 {
		opts.UnitsPerPixel = parameter.SurfaceUnitsPerPixel
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	loop := engine.NewLoop(opts.Clock)
	responder := opts.Responder
	if responder == nil {
		responder = chat.NewResponder(chat.DefaultTable(), rand.New(rand.NewSource(rng.Int63())))
	}
	commands := opts.Commands
	if commands == nil {
		commands = shell.NewInterpreter(nil, rand.New(rand.NewSource(rng.Int63())))
	}

	a := &App{
		screen:      screen,
		opts:        opts,
		loop:        loop,
		driver:      engine.NewDriver(loop, opts.FrameRate),
		bus:         event.NewBus(),
		surface:     render.NewCellSurface(0, 0, opts.UnitsPerPixel),
		field:       particle.NewField(opts.Field, rand.New(rand.NewSource(rng.Int63()))),
		panel:       NewPanel(),
		sh:          shell.NewShell(commands, loop),
		shPanel:     NewShellPanel(),
		headerColor: render.MustHex(visual.HeaderHex),
	}
	a.surface.SetBackdrop(render.MustHexAll(visual.BackdropStops))
	a.conv = chat.NewConversation(responder, loop, rand.New(rand.NewSource(rng.Int63())))
	a.conv.OnReply(func(chat.Message) { a.play(audio.SoundSuccess) })
	a.driver.AfterStep(a.Draw)
	a.setFocus(FocusShell)
	return a
}

// Run shows the app until the user quits or ctx ends
func (a *App) Run(ctx context.Context) error {
	a.start()
	defer a.stop()

	core.Go(a.pollEvents)

	err := a.driver.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// start sizes the surface and mounts the field
func (a *App) start() {
	if a.started {
		return
	}
	a.started = true

	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.HideCursor()
	a.screen.Clear()

	cols, rows := a.screen.Size()
	a.surface.Resize(cols, rows)
	w, h := a.surface.Size()
	if !a.field.Mount(a.surface, w, h, a.bus, a.loop) {
		log.Printf("app: particle field not mounted")
	}
	a.sh.Boot()
}

func (a *App) stop() {
	a.field.Teardown()
	a.conv.Close()
	a.sh.Close()
	a.screen.DisableMouse()
}

// pollEvents forwards screen events to the driver goroutine until the screen is finalized or the driver stops
func (a *App) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.driver.Post(func() {
			if !a.HandleEvent(ev) {
				a.driver.Stop()
			}
		}) {
			return
		}
	}
}

// HandleEvent applies one screen event, returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.surface.CellToUnits(col, row)
		a.bus.EmitPointerMove(x, y)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.resize(cols, rows)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyTab:
		a.setFocus((a.focus + 1) % (FocusNone + 1))
		a.play(audio.SoundClick)

	case tcell.KeyEnter:
		switch a.focus {
		case FocusShell:
			a.execShell()
		case FocusChat:
			a.sendChat()
		}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p := a.focused(); p != nil {
			p.Backspace()
		}

	case tcell.KeyRune:
		if p := a.focused(); p != nil {
			p.Type(ev.Rune())
		}
	}
	return true
}

// setFocus opens the focused panel and closes the other
func (a *App) setFocus(f Focus) {
	a.focus = f
	a.shPanel.SetOpen(f == FocusShell)
	a.panel.SetOpen(f == FocusChat)
}

func (a *App) focused() *Panel {
	switch a.focus {
	case FocusShell:
		return a.shPanel
	case FocusChat:
		return a.panel
	}
	return nil
}

func (a *App) sendChat() {
	if _, ok := a.conv.Send(a.panel.Take()); ok {
		a.opts.Metrics.Inc("chat.sent")
		a.play(audio.SoundClick)
	} else {
		a.play(audio.SoundError)
	}
}

// execShell runs the input line, a command sound overrides the click
func (a *App) execShell() {
	res := a.sh.Exec(a.shPanel.Take())
	m := a.opts.Metrics
	switch {
	case res.Unknown():
		m.Inc("shell.unknown")
		a.play(audio.SoundError)
	case res.Command == "":
		a.play(audio.SoundClick)
	default:
		m.Inc("shell.commands")
		if s, ok := audio.ParseSound(res.Sound); ok {
			a.play(s)
		} else {
			a.play(audio.SoundClick)
		}
	}
}

// resize matches the surface to the terminal and notifies the field
func (a *App) resize(cols, rows int) {
	if c, r := a.surface.Cells(); c == cols && r == rows {
		return
	}
	a.surface.Resize(cols, rows)
	a.bus.EmitResize(a.surface.Size())
	a.screen.Sync()
}

// Draw flushes the surface, header and panel to the screen, called after every loop step
func (a *App) Draw() {
	x, y := a.surface.CellToUnits(0, 0)
	a.surface.FillText(x, y, parameter.HeaderText, a.headerColor, 1)
	a.surface.Present(a.screen)

	cols, rows := a.surface.Cells()
	a.shPanel.DrawShell(a.screen, cols, rows, a.sh.History())
	a.panel.DrawChat(a.screen, cols, rows, a.conv.Messages(), a.conv.Typing())
	a.screen.Show()

	m := a.opts.Metrics
	m.Set("field.particles", float64(len(a.field.Particles())))
	m.Set("field.links", float64(len(a.field.Links())))
	m.Set("field.ticks", float64(a.field.Ticks()))
	m.Set("driver.steps", float64(a.driver.Ticks()))
}

func (a *App) play(s audio.Sound) {
	if a.opts.Sound != nil {
		a.opts.Sound.Play(s)
	}
}

// Metrics returns the registry frame statistics are written to
func (a *App) Metrics() *status.Registry {
	return a.opts.Metrics
}

// Loop returns the frame loop
func (a *App) Loop() *engine.Loop {
	return a.loop
}

// Field returns the particle field
func (a *App) Field() *particle.Field {
	return a.field
}

// Conversation returns the chat transcript
func (a *App) Conversation() *chat.Conversation {
	return a.conv
}

// Panel returns the chat overlay
func (a *App) Panel() *Panel {
	return a.panel
}

// Shell returns the command shell
func (a *App) Shell() *shell.Shell {
	return a.sh
}

// ShellPanel returns the shell overlay
func (a *App) ShellPanel() *Panel {
	return a.shPanel
}

// Focus returns the panel receiving keys
func (a *App) Focus() Focus {
	return a.focus
}

// Steps returns how many loop steps the driver has run
func (a *App) Steps() uint64 {
	return a.driver.Ticks()
}

// Surface returns the raster surface
func (a *App) Surface() *render.CellSurface {
	return a.surface
}
