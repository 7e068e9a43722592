package harfbuzz

import (
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/go-text/typesetting/language"
)

// otComplexShaper is the per-script plug-in point the main shaping
// loop (ot_shaper.go) drives at each stage: feature selection, mask
// setup, pre/post-processing around GSUB/GPOS, and the rune-level
// decompose/compose/mark-reordering hooks otShapeNormalize calls
// before GSUB runs. This mirrors hb-ot-shaper.hh's hb_ot_shaper_t
// vtable; categorizeComplex below is the dispatcher that picks which
// implementation a SegmentProperties' script gets.
type otComplexShaper interface {
	collectFeatures(plan *otShapePlanner)
	overrideFeatures(plan *otShapePlanner)
	dataCreate(plan *otShapePlan)
	setupMasks(plan *otShapePlan, buffer *Buffer, font *Font)
	preprocessText(plan *otShapePlan, buffer *Buffer, font *Font)
	postprocessGlyphs(plan *otShapePlan, buffer *Buffer, font *Font)
	decompose(c *otNormalizeContext, ab rune) (a, b rune, ok bool)
	compose(c *otNormalizeContext, a, b rune) (ab rune, ok bool)
	marksBehavior() (zeroWidthMarks, bool)
	normalizationPreference() normalizationMode
	gposTag() tables.Tag
	reorderMarks(plan *otShapePlan, buffer *Buffer, start, end int)
}

// zeroWidthMarks controls whether/when combining marks positioned by
// GDEF-categorized mark attachment get their advance zeroed, matching
// hb_ot_shape_zero_width_marks_type_t.
type zeroWidthMarks uint8

const (
	zeroWidthMarksNone zeroWidthMarks = iota
	zeroWidthMarksByGdefEarly
	zeroWidthMarksByGdefLate
)

// normalizationMode selects how aggressively otShapeNormalize
// decomposes/recomposes the input before GSUB runs, matching
// hb_ot_shape_normalization_mode_t.
type normalizationMode uint8

const (
	nmNone normalizationMode = iota
	nmDecomposed
	nmComposedDiacritics
	nmComposedDiacriticsNoShortCircuit
	nmAuto
)

// complexShaperNil implements every otComplexShaper method as a no-op
// (falling back to plain Unicode decomposition/composition), so a
// per-script shaper can embed it and only override what it actually
// customizes, the way complexShaperIndic/complexShaperUSE do for the
// handful of methods neither needs to specialize.
type complexShaperNil struct{}

func (complexShaperNil) collectFeatures(*otShapePlanner)                  {}
func (complexShaperNil) overrideFeatures(*otShapePlanner)                 {}
func (complexShaperNil) dataCreate(*otShapePlan)                         {}
func (complexShaperNil) setupMasks(*otShapePlan, *Buffer, *Font)         {}
func (complexShaperNil) preprocessText(*otShapePlan, *Buffer, *Font)     {}
func (complexShaperNil) postprocessGlyphs(*otShapePlan, *Buffer, *Font)  {}
func (complexShaperNil) reorderMarks(*otShapePlan, *Buffer, int, int)    {}
func (complexShaperNil) gposTag() tables.Tag                             { return 0 }

func (complexShaperNil) decompose(_ *otNormalizeContext, ab rune) (rune, rune, bool) {
	return uni.decompose(ab)
}

func (complexShaperNil) compose(_ *otNormalizeContext, a, b rune) (rune, bool) {
	return uni.compose(a, b)
}

func (complexShaperNil) marksBehavior() (zeroWidthMarks, bool) {
	return zeroWidthMarksByGdefLate, true
}

func (complexShaperNil) normalizationPreference() normalizationMode {
	return nmAuto
}

var _ otComplexShaper = complexShaperDefault{}

// complexShaperDefault is used for every script without a dedicated
// complex shaper (most Latin-script text, and any script run under a
// morx-only font, via the dumb flag), matching
// hb-ot-shape-complex-default.cc: it customizes nothing beyond the
// common/horizontal features collectFeatures in ot_shaper.go already
// adds.
type complexShaperDefault struct {
	complexShaperNil

	// dumb disables even the small amount of per-script customization
	// complexShaperDefault would otherwise apply, used for fonts shaped
	// through AAT morx where HarfBuzz intentionally suppresses OT-style
	// complex shaping (see the ot_shaper.go comment on issue #1528).
	dumb bool
}

// categorizeComplex picks the otComplexShaper for the planner's script,
// mirroring hb-ot-shaper.cc's hb_ot_shaper_categorize: a handful of
// scripts (Arabic-joining, Hangul, Thai/Lao Sara Am, Hebrew, and the
// three shapers already ported from the teacher's own Khmer/Indic/USE
// work) get a dedicated shaper; everything else gets the default.
func (planner *otShapePlanner) categorizeComplex() otComplexShaper {
	script := planner.props.Script

	switch scriptIndicCategory(script) {
	case indicCategoryIndic:
		return &complexShaperIndic{}
	case indicCategoryKhmer:
		return &complexShaperKhmer{}
	case indicCategoryUSE:
		return &complexShaperUSE{}
	}

	if hasArabicJoining(script) {
		return newComplexShaperArabic()
	}

	switch script {
	case language.Hangul:
		return &complexShaperHangul{}
	case language.Thai, language.Lao:
		return &complexShaperThai{}
	case language.Hebrew:
		return &complexShaperHebrew{}
	}

	return complexShaperDefault{}
}

// indic/khmer/USE script-category dispatch, split out of
// categorizeComplex so the three "Indic-family" shapers can share the
// same script-to-bucket lookup complexShaperUSE's own data tables
// drive for every other script in that cluster.
type indicCategory uint8

const (
	indicCategoryNone indicCategory = iota
	indicCategoryIndic
	indicCategoryKhmer
	indicCategoryUSE
)

func scriptIndicCategory(script language.Script) indicCategory {
	switch script {
	case language.Devanagari, language.Bengali, language.Gurmukhi, language.Gujarati,
		language.Oriya, language.Tamil, language.Telugu, language.Kannada, language.Malayalam:
		return indicCategoryIndic
	case language.Khmer:
		return indicCategoryKhmer
	case language.Myanmar, language.Tibetan, language.Mongolian, language.Sundanese,
		language.Syloti_Nagri, language.Kayah_Li, language.Rejang:
		return indicCategoryUSE
	}
	return indicCategoryNone
}
