package parameter

import (
	"time"
)

// Particle Field
const (
	// FieldParticleCount is the default pool size, fixed for the lifetime of a mount
	FieldParticleCount = 50

	// FieldSpeedRange is the width of the initial velocity range per axis, centered on zero (units/frame)
	FieldSpeedRange = 0.5

	// FieldRadiusMin/FieldRadiusSpan give the base radius range [min, min+span)
	FieldRadiusMin  = 1.0
	FieldRadiusSpan = 2.0

	// FieldPulseStep is the phase advance per frame (radians)
	FieldPulseStep = 0.02
	// FieldPulseAmplitude scales sin(phase) into the radius multiplier
	FieldPulseAmplitude = 0.3
	// FieldGlowScale is the glow radius as a multiple of the current radius
	FieldGlowScale = 4.0

	// FieldFadeAlpha is the opacity of the black layer composited each frame (motion trails)
	FieldFadeAlpha = 0.05

	// FieldLinkDistance is the particle-particle connection threshold (units)
	FieldLinkDistance = 150.0
	// FieldLinkAlpha is the connection alpha at zero distance
	FieldLinkAlpha = 0.2
	// FieldLinkWidth is the connection stroke width
	FieldLinkWidth = 0.5

	// FieldPointerDistance is the pointer attraction radius (units)
	FieldPointerDistance = 200.0
	// FieldPointerForce scales the normalized attraction into velocity per frame
	FieldPointerForce = 0.02
	// FieldPointerAlpha is the pointer line alpha at full force
	FieldPointerAlpha = 0.3
	// FieldPointerWidth is the pointer line stroke width
	FieldPointerWidth = 1.0
	// FieldPointerExpiry is how long the pointer counts as moving after the last event
	FieldPointerExpiry = 100 * time.Millisecond

	// FieldGridThreshold is the pool size above which IndexAuto switches to grid bucketing
	FieldGridThreshold = 200
)

// Floating code glyphs
const (
	// GlyphTimeStep is the glyph clock advance per frame
	GlyphTimeStep = 0.01
	// GlyphSwayX is the horizontal sway amplitude (units)
	GlyphSwayX = 20.0
	// GlyphSwayY is the vertical sway amplitude (units)
	GlyphSwayY = 50.0
	// GlyphBaseline is the vertical anchor as a fraction of surface height
	GlyphBaseline = 0.8
	// GlyphSpacing is the horizontal step between glyphs as a fraction of surface width
	GlyphSpacing = 0.1
	// GlyphAlpha is the glyph opacity
	GlyphAlpha = 0.1
)

// FieldPalette is the particle color set, chosen uniformly per particle
var FieldPalette = []string{"#60a5fa", "#818cf8", "#a78bfa", "#c084fc", "#e879f9"}

// FieldGlyphs are the floating code fragments drawn along the lower band
var FieldGlyphs = []string{"</", "{}", "()", "[]", "=>", "&&", "||", "==="}

// Link colors
const (
	FieldLinkColor    = "#60a5fa"
	FieldPointerColor = "#8b5cf6"
	FieldGlyphColor   = "#818cf8"
)
