package particle

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/termfolio/engine"
	"github.com/lixenwraith/termfolio/event"
	"github.com/lixenwraith/termfolio/parameter"
	"github.com/lixenwraith/termfolio/render"
	"github.com/lixenwraith/termfolio/vmath"
)

// State is the field lifecycle state
type State uint8

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Scheduler is the frame and timer source a mounted field runs on, satisfied by *engine.Loop
type Scheduler interface {
	RequestFrame(fn engine.FrameFunc) engine.FrameID
	CancelFrame(id engine.FrameID) bool
	AfterFunc(d time.Duration, fn func()) engine.TimerID
	CancelTimer(id engine.TimerID) bool
}

// Environment delivers host events, satisfied by *event.Bus
type Environment interface {
	OnResize(fn event.ResizeFunc) (remove func())
	OnPointerMove(fn event.PointerFunc) (remove func())
}

// Config tunes a field, zero values select defaults
type Config struct {
	Count         int
	Palette       []render.RGB
	Glyphs        []string // Floating code fragments, nil disables the layer
	Index         IndexMode
	PointerExpiry time.Duration
}

// DefaultConfig returns the stock particle field settings
func DefaultConfig() Config {
	return Config{
		Count:         parameter.FieldParticleCount,
		Palette:       render.MustHexAll(parameter.FieldPalette),
		Index:         IndexAuto,
		PointerExpiry: parameter.FieldPointerExpiry,
	}
}

// Pointer is the last known pointer position and whether it moved within the expiry window
type Pointer struct {
	Pos    vmath.Vec2F
	Active bool
}

// Field owns a particle pool, the pointer state and the surface it draws to
// All methods run on the scheduler goroutine
type Field struct {
	cfg Config
	rng *rand.Rand

	particles     []Particle
	width, height float64
	pointer       Pointer

	surface render.Surface
	sched   Scheduler

	state    State
	frameID  engine.FrameID
	hasFrame bool
	expiry   engine.TimerID
	hasTimer bool
	removers []func()

	links     []Link
	grid      *Grid
	glyphTime float64
	ticks     uint64

	linkColor    render.RGB
	pointerColor render.RGB
	glyphColor   render.RGB
}

// NewField creates a stopped field, rng nil seeds from the clock
func NewField(cfg Config, rng *rand.Rand) *Field {
	def := DefaultConfig()
	if cfg.Count <= 0 {
		cfg.Count = def.Count
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = def.Palette
	}
	if cfg.PointerExpiry <= 0 {
		cfg.PointerExpiry = def.PointerExpiry
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Field{
		cfg:          cfg,
		rng:          rng,
		surface:      render.Discard,
		grid:         NewGrid(parameter.FieldLinkDistance),
		linkColor:    render.MustHex(parameter.FieldLinkColor),
		pointerColor: render.MustHex(parameter.FieldPointerColor),
		glyphColor:   render.MustHex(parameter.FieldGlyphColor),
	}
}

// ===== LIFECYCLE =====

// Mount initializes the pool on surface and starts scheduling frames
// Returns false without side effects when surface is nil or the field is already running
func (f *Field) Mount(surface render.Surface, width, height float64, env Environment, sched Scheduler) bool {
	if surface == nil || sched == nil {
		log.Printf("particle: no drawing surface, background disabled")
		return false
	}
	if f.state == StateRunning {
		return false
	}

	f.surface = surface
	f.sched = sched
	f.Initialize(width, height, f.cfg.Count)

	if env != nil {
		f.removers = append(f.removers,
			env.OnResize(f.Resize),
			env.OnPointerMove(f.OnPointerMove),
		)
	}

	f.state = StateRunning
	f.requestFrame()
	return true
}

// Teardown stops scheduling, removes every registered listener and discards the pool
func (f *Field) Teardown() {
	if f.state != StateRunning {
		return
	}
	f.state = StateStopped

	if f.hasFrame {
		f.sched.CancelFrame(f.frameID)
		f.hasFrame = false
	}
	if f.hasTimer {
		f.sched.CancelTimer(f.expiry)
		f.hasTimer = false
	}
	for _, remove := range f.removers {
		remove()
	}
	f.removers = nil

	f.particles = nil
	f.links = f.links[:0]
	f.pointer = Pointer{}
	f.surface = render.Discard
	f.sched = nil
}

func (f *Field) requestFrame() {
	f.frameID = f.sched.RequestFrame(f.frame)
	f.hasFrame = true
}

// frame is the scheduled callback: one tick, then re-request while running
func (f *Field) frame(time.Time) {
	f.hasFrame = false
	if f.state != StateRunning {
		return
	}
	f.Tick()
	if f.state == StateRunning {
		f.requestFrame()
	}
}

// ===== MODEL OPERATIONS =====

// Initialize replaces the pool with count fresh particles inside width×height
// count <= 0 selects the configured pool size
func (f *Field) Initialize(width, height float64, count int) {
	if count <= 0 {
		count = f.cfg.Count
	}
	f.Resize(width, height)
	w, h := f.bounds()

	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = Particle{
			Pos: vmath.Vec2F{X: f.rng.Float64() * w, Y: f.rng.Float64() * h},
			Vel: vmath.Vec2F{
				X: (f.rng.Float64() - 0.5) * parameter.FieldSpeedRange,
				Y: (f.rng.Float64() - 0.5) * parameter.FieldSpeedRange,
			},
			Radius: parameter.FieldRadiusMin + f.rng.Float64()*parameter.FieldRadiusSpan,
			Color:  f.cfg.Palette[f.rng.Intn(len(f.cfg.Palette))],
		}
	}
	f.links = make([]Link, 0, count)
	f.glyphTime = 0
}

// Resize stores new surface dimensions, particles are pulled inside on their next integration
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

// OnPointerMove records the pointer and re-arms the activity expiry
func (f *Field) OnPointerMove(x, y float64) {
	f.pointer.Pos = vmath.Vec2F{X: x, Y: y}
	f.pointer.Active = true

	if f.sched == nil {
		return
	}
	if f.hasTimer {
		f.sched.CancelTimer(f.expiry)
	}
	f.expiry = f.sched.AfterFunc(f.cfg.PointerExpiry, f.expirePointer)
	f.hasTimer = true
}

func (f *Field) expirePointer() {
	f.hasTimer = false
	f.pointer.Active = false
}

// bounds returns the integration box, degenerate dimensions collapse to 1
func (f *Field) bounds() (w, h float64) {
	return math.Max(f.width, 1), math.Max(f.height, 1)
}

// Tick advances and renders one frame
// Phases run strictly in order: fade, pairwise links (read-only), pointer forces, integrate and draw
func (f *Field) Tick() {
	w, h := f.bounds()
	s := f.surface
	f.ticks++

	// 1. Fade for motion trails
	s.FillRect(0, 0, w, h, render.RGBBlack, parameter.FieldFadeAlpha)

	// 2. Links
	f.links = f.collectLinks(f.links[:0], w, h)
	for _, l := range f.links {
		a, b := f.particles[l.A].Pos, f.particles[l.B].Pos
		s.StrokeLine(a.X, a.Y, b.X, b.Y, f.linkColor, l.Alpha, parameter.FieldLinkWidth)
	}

	// 3. Pointer attraction
	if f.pointer.Active {
		f.applyPointer()
	}

	// 4. Integrate and draw
	for i := range f.particles {
		p := &f.particles[i]
		p.integrate(w, h)
		p.Phase += parameter.FieldPulseStep
		f.drawParticle(p)
	}

	// 5. Floating code glyphs
	if len(f.cfg.Glyphs) > 0 {
		f.drawGlyphs(w, h)
	}
}

func (f *Field) collectLinks(dst []Link, w, h float64) []Link {
	useGrid := f.cfg.Index == IndexGrid ||
		(f.cfg.Index == IndexAuto && len(f.particles) > parameter.FieldGridThreshold)
	if !useGrid {
		return bruteLinks(f.particles, dst)
	}
	f.grid.Build(f.particles, w, h)
	return f.grid.Links(f.particles, dst)
}

func (f *Field) applyPointer() {
	ptr := f.pointer.Pos
	for i := range f.particles {
		p := &f.particles[i]
		d := vmath.V2FSub(ptr, p.Pos)
		dist := vmath.V2FMag(d)
		force := PointerForce(dist)
		if force <= 0 {
			continue
		}
		// Coincident pointer has no direction, line is still drawn
		if dist > 0 {
			p.Vel = vmath.V2FAdd(p.Vel, vmath.V2FScale(d, force*parameter.FieldPointerForce/dist))
		}
		f.surface.StrokeLine(p.Pos.X, p.Pos.Y, ptr.X, ptr.Y, f.pointerColor,
			parameter.FieldPointerAlpha*force, parameter.FieldPointerWidth)
	}
}

func (f *Field) drawParticle(p *Particle) {
	r := p.PulseRadius()
	stops := [3]render.GradientStop{
		{Offset: 0, Color: p.Color, Alpha: 1},
		{Offset: 0.5, Color: p.Color, Alpha: 0.5},
		{Offset: 1, Color: p.Color, Alpha: 0},
	}
	f.surface.FillRadial(p.Pos.X, p.Pos.Y, r*parameter.FieldGlowScale, stops[:])
	f.surface.FillCircle(p.Pos.X, p.Pos.Y, r, p.Color, 1)
}

func (f *Field) drawGlyphs(w, h float64) {
	f.glyphTime += parameter.GlyphTimeStep
	t := f.glyphTime
	for i, code := range f.cfg.Glyphs {
		fi := float64(i)
		x := w*parameter.GlyphSpacing + fi*w*parameter.GlyphSpacing + math.Sin(t+fi)*parameter.GlyphSwayX
		y := h*parameter.GlyphBaseline + math.Sin(t*0.5+fi*0.5)*parameter.GlyphSwayY
		f.surface.FillText(x, y, code, f.glyphColor, parameter.GlyphAlpha)
	}
}

// ===== INSPECTION =====

// State returns the lifecycle state
func (f *Field) State() State {
	return f.state
}

// Particles returns the live pool, callers must not retain it across ticks
func (f *Field) Particles() []Particle {
	return f.particles
}

// Links returns the connections computed by the last Tick
func (f *Field) Links() []Link {
	return f.links
}

// Pointer returns the current pointer state
func (f *Field) Pointer() Pointer {
	return f.pointer
}

// Size returns the stored surface dimensions
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Ticks returns the number of frames simulated since creation
func (f *Field) Ticks() uint64 {
	return f.ticks
}
