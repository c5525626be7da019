package particle

import (
	"math"

	"github.com/lixenwraith/termfolio/parameter"
	"github.com/lixenwraith/termfolio/render"
	"github.com/lixenwraith/termfolio/vmath"
)

// Particle is one simulated point
type Particle struct {
	Pos    vmath.Vec2F
	Vel    vmath.Vec2F
	Radius float64 // Base radius, > 0, fixed at creation
	Color  render.RGB
	Phase  float64 // Pulse phase in radians, grows every frame
}

// PulseRadius returns the rendered radius for the current phase
func (p *Particle) PulseRadius() float64 {
	return p.Radius * (1 + parameter.FieldPulseAmplitude*math.Sin(p.Phase))
}

// integrate advances position by velocity and reflects off the [0,w]×[0,h] box
// Velocity direction is forced inward rather than negated, so a particle left outside
// by a shrinking resize cannot jitter across the edge
func (p *Particle) integrate(w, h float64) {
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y

	if p.Pos.X < 0 {
		p.Vel.X = math.Abs(p.Vel.X)
	} else if p.Pos.X > w {
		p.Vel.X = -math.Abs(p.Vel.X)
	}
	if p.Pos.Y < 0 {
		p.Vel.Y = math.Abs(p.Vel.Y)
	} else if p.Pos.Y > h {
		p.Vel.Y = -math.Abs(p.Vel.Y)
	}

	p.Pos.X = vmath.ClampF(p.Pos.X, 0, w)
	p.Pos.Y = vmath.ClampF(p.Pos.Y, 0, h)
}

// ConnectionAlpha returns the particle-particle link alpha for distance d, 0 at or beyond the threshold
func ConnectionAlpha(d float64) float64 {
	if d >= parameter.FieldLinkDistance || d < 0 {
		return 0
	}
	return parameter.FieldLinkAlpha * (1 - d/parameter.FieldLinkDistance)
}

// PointerForce returns the normalized attraction for distance d to the pointer, 0 at or beyond the radius
func PointerForce(d float64) float64 {
	if d >= parameter.FieldPointerDistance || d < 0 {
		return 0
	}
	return (parameter.FieldPointerDistance - d) / parameter.FieldPointerDistance
}
