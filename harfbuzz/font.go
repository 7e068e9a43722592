package harfbuzz

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// Font binds a parsed font.Face to the scale, variation coordinates and
// point size a particular shaping call wants, and caches the GSUB/GPOS
// lookup accelerators built for it. It is the runtime counterpart of
// font.Font, which only carries the font's own design-unit data: Font
// additionally knows how to convert design units into the caller's
// chosen scale (XScale/YScale) and answers the handful of per-glyph
// queries (advances, origins, contour points) shapers need while
// running, mirroring hb_font_t's split from hb_face_t.
type Font struct {
	face *font.Face

	// XScale/YScale convert font design units (XPpem-independent) to
	// the caller's requested units; NewFont sets both to the face's
	// UnitsPerEm (unscaled), matching hb_font_set_scale's default. A
	// scale of 0 maps every value to 0.
	XScale, YScale int32

	// Ptem is the nominal point size shaping is requested at, used by
	// AAT 'trak' tracking (which is defined in terms of point size,
	// not scaled units).
	Ptem float32

	coords []float32

	gsubAccels []otLayoutLookupAccelerator
	gposAccels []otLayoutLookupAccelerator
}

// NewFont wraps face for shaping at the given variation coordinates
// (nil for a non-variable instance), with scale defaulting to the
// face's UnitsPerEm (i.e. unscaled design units) until SetScale is
// called.
func NewFont(face *font.Face, coords []float32) *Font {
	upem := int32(face.Upem())
	f := &Font{
		face:   face,
		XScale: upem,
		YScale: upem,
		coords: coords,
	}
	f.buildAccelerators()
	return f
}

func (f *Font) buildAccelerators() {
	gsub := face2FontGSUB(f.face)
	f.gsubAccels = make([]otLayoutLookupAccelerator, len(gsub))
	for i, lookup := range gsub {
		f.gsubAccels[i].init(lookup)
	}

	gpos := face2FontGPOS(f.face)
	f.gposAccels = make([]otLayoutLookupAccelerator, len(gpos))
	for i, lookup := range gpos {
		f.gposAccels[i].init(lookup)
	}
}

// face2FontGSUB/face2FontGPOS adapt the face's typed GSUB/GPOS lookup
// lists to the layoutLookup interface the accelerator and apply
// machinery operate on.
func face2FontGSUB(face *font.Face) []layoutLookup {
	ls := face.GSUB.Lookups
	out := make([]layoutLookup, len(ls))
	for i, l := range ls {
		out[i] = lookupGSUB(l)
	}
	return out
}

func face2FontGPOS(face *font.Face) []layoutLookup {
	ls := face.GPOS.Lookups
	out := make([]layoutLookup, len(ls))
	for i, l := range ls {
		out[i] = lookupGPOS(l)
	}
	return out
}

// SetScale sets the scale Position values are reported in, in units
// per em, for the horizontal and vertical axes respectively.
func (f *Font) SetScale(xScale, yScale int32) { f.XScale, f.YScale = xScale, yScale }

func (f *Font) upem() int32 { return int32(f.face.Upem()) }

// emScaleX/emScaleY convert a design-unit int16 (as stored directly in
// font tables) to the caller's requested scale.
func (f *Font) emScaleX(v int16) Position { return f.emScaleDim(float32(v), f.XScale) }
func (f *Font) emScaleY(v int16) Position { return f.emScaleDim(float32(v), f.YScale) }

// emScalefX/emScalefY are emScaleX/emScaleY's float32-input counterparts,
// used for values already computed in floating point (e.g. AAT tracking).
func (f *Font) emScalefX(v float32) Position { return f.emScaleDim(v, f.XScale) }
func (f *Font) emScalefY(v float32) Position { return f.emScaleDim(v, f.YScale) }

// emFscaleX/emFscaleY return the scaled value as a float32, used where
// further floating-point math follows (anchor resolution).
func (f *Font) emFscaleX(v float32) float32 { return f.emFscaleDim(v, f.XScale) }
func (f *Font) emFscaleY(v float32) float32 { return f.emFscaleDim(v, f.YScale) }

func (f *Font) emScaleDim(v float32, scale int32) Position {
	return Position(f.emFscaleDim(v, scale))
}

func (f *Font) emFscaleDim(v float32, scale int32) float32 {
	upem := f.upem()
	if upem == 0 {
		return 0
	}
	return v * float32(scale) / float32(upem)
}

func (f *Font) varCoords() []float32 { return f.coords }

// varCoordsAsTables re-exposes Font's variation coordinates as the
// []tables.Coord slice FindVariationIndex and LoadGlyph expect
// (font/cff/charstring.go threads the same normalized-coordinate type
// through its variable CFF2 outlines); nil coords convert to a nil
// slice, which FindVariationIndex treats as "no variation instance
// selected" the same as for a non-variable font.
func (f *Font) varCoordsAsTables() []tables.Coord {
	if len(f.coords) == 0 {
		return nil
	}
	out := make([]tables.Coord, len(f.coords))
	for i, c := range f.coords {
		out[i] = tables.Coord(c)
	}
	return out
}

// hasGlyph reports whether the face maps r to any glyph at all.
func (f *Font) hasGlyph(r rune) bool {
	_, ok := f.face.Font.NominalGlyph(r)
	return ok
}

// GlyphHAdvance returns the horizontal advance of glyph, in the font's
// current scale.
func (f *Font) GlyphHAdvance(glyph GID) Position {
	return f.emScaleDim(f.face.Font.HorizontalAdvance(glyph, f.coords), f.XScale)
}

// getGlyphVAdvance returns the vertical advance of glyph, in the
// font's current scale; fonts without vertical metrics fall back to
// one em, matching hb_font_t's default vertical advance.
func (f *Font) getGlyphVAdvance(glyph GID) Position {
	adv := f.face.Font.VerticalAdvance(glyph, f.coords)
	if adv == 0 {
		return -f.upem() * f.YScale / f.upem()
	}
	return f.emScaleDim(adv, f.YScale)
}

// subtractGlyphHOrigin/subtractGlyphVOrigin and addGlyphHOrigin move a
// glyph position between the font's native origin (top-left for
// vertical text, baseline-left for horizontal) and the shaping-time
// pen position, the way hb_font_t::guess_v_origin_minus_h_origin does
// for fonts without an explicit vertical origin table.
func (f *Font) subtractGlyphHOrigin(glyph GID, x, y Position) (Position, Position) {
	ox, oy := f.glyphHOrigin(glyph)
	return x - ox, y - oy
}

func (f *Font) addGlyphHOrigin(glyph GID, x, y Position) (Position, Position) {
	ox, oy := f.glyphHOrigin(glyph)
	return x + ox, y + oy
}

func (f *Font) subtractGlyphVOrigin(glyph GID, x, y Position) (Position, Position) {
	ox, oy := f.glyphVOrigin(glyph)
	return x - ox, y - oy
}

func (f *Font) glyphHOrigin(GID) (Position, Position) { return 0, 0 }

func (f *Font) glyphVOrigin(glyph GID) (Position, Position) {
	adv := f.GlyphHAdvance(glyph)
	return adv / 2, f.emScaleDim(float32(f.upem()), f.YScale)
}

// getGlyphContourPointForOrigin resolves an AAT anchor point index
// against the glyph's outline, used by the 'kerx'/'ankr' cursive and
// mark-attachment actions; fonts this module shapes via go-text's
// outline-free metrics-only Face never have contour data available, so
// this always reports failure, matching hb_font_t's stub
// get_glyph_contour_point for fonts lacking outline access.
func (f *Font) getGlyphContourPointForOrigin(GID, uint16, Direction) (x, y Position, ok bool) {
	return 0, 0, false
}

// getXDelta/getYDelta resolve a GPOS Device/VariationIndex table against
// the font's ppem (Device subtable) or variation coordinates
// (VariationIndex subtable) to a position delta.
//
// TODO: wire Device-subtable hinting deltas and ItemVarStore variation
// deltas once the parsed representations are threaded through from
// font/opentype/tables; ppem-specific hinting adjustments and
// variable-font Device/VariationIndex deltas are not applied yet, so
// GPOS anchors land at their default-instance position.
func (f *Font) getXDelta(varStore tables.ItemVarStore, device tables.DeviceTable) Position {
	return 0
}

func (f *Font) getYDelta(varStore tables.ItemVarStore, device tables.DeviceTable) Position {
	return 0
}
