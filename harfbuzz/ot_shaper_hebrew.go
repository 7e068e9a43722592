package harfbuzz

import "github.com/go-text/typesetting/font/opentype/tables"

var _ otComplexShaper = complexShaperHebrew{}

// complexShaperHebrew matches hb-ot-shaper-hebrew.cc: Hebrew needs no
// feature/mask customization of its own (biblical points are plain
// GDEF marks), but overrides compose to keep a handful of
// points+letter sequences that already have a dedicated Hebrew
// presentation-forms codepoint (U+FB1D..U+FB4F) from being silently
// recomposed by otShapeNormalize, since most text fonts carry glyphs
// for the decomposed sequence but not the rarer presentation form.
type complexShaperHebrew struct {
	complexShaperNil
}

// hebrewPrecomposedExclusions lists the canonical-composition pairs
// Unicode maps onto an Alphabetic Presentation Forms-B codepoint that
// HarfBuzz blocks from recomposing, keyed by (a, b).
var hebrewPrecomposedExclusions = map[[2]rune]bool{
	{0x05D0, 0x05B7}: true, // ALEF, PATAH -> FB2E
	{0x05D0, 0x05B8}: true, // ALEF, QAMATS -> FB2F
	{0x05D0, 0x05BC}: true, // ALEF, DAGESH -> FB30
	{0x05D1, 0x05BC}: true, // BET, DAGESH -> FB31
	{0x05D2, 0x05BC}: true, // GIMEL, DAGESH -> FB32
	{0x05D3, 0x05BC}: true, // DALET, DAGESH -> FB33
	{0x05D4, 0x05BC}: true, // HE, DAGESH -> FB34
	{0x05D5, 0x05BC}: true, // VAV, DAGESH -> FB35
	{0x05D6, 0x05BC}: true, // ZAYIN, DAGESH -> FB36
	{0x05D8, 0x05BC}: true, // TET, DAGESH -> FB38
	{0x05D9, 0x05BC}: true, // YOD, DAGESH -> FB39
	{0x05DB, 0x05BC}: true, // KAF, DAGESH -> FB3B
	{0x05DC, 0x05BC}: true, // LAMED, DAGESH -> FB3C
	{0x05DE, 0x05BC}: true, // MEM, DAGESH -> FB3E
	{0x05E0, 0x05BC}: true, // NUN, DAGESH -> FB40
	{0x05E1, 0x05BC}: true, // SAMEKH, DAGESH -> FB41
	{0x05E3, 0x05BC}: true, // FINAL PE, DAGESH -> FB43
	{0x05E4, 0x05BC}: true, // PE, DAGESH -> FB44
	{0x05E6, 0x05BC}: true, // TSADI, DAGESH -> FB46
	{0x05E7, 0x05BC}: true, // QOF, DAGESH -> FB47
	{0x05E8, 0x05BC}: true, // RESH, DAGESH -> FB48
	{0x05E9, 0x05BC}: true, // SHIN, DAGESH -> FB49
	{0x05EA, 0x05BC}: true, // TAV, DAGESH -> FB4A
	{0x05D5, 0x05B9}: true, // VAV, HOLAM -> FB4B
	{0x05D1, 0x05BF}: true, // BET, RAFE -> FB4C
	{0x05DB, 0x05BF}: true, // KAF, RAFE -> FB4D
	{0x05E4, 0x05BF}: true, // PE, RAFE -> FB4E
}

func (complexShaperHebrew) compose(_ *otNormalizeContext, a, b rune) (rune, bool) {
	if hebrewPrecomposedExclusions[[2]rune{a, b}] {
		return 0, false
	}
	return uni.compose(a, b)
}

func (complexShaperHebrew) marksBehavior() (zeroWidthMarks, bool) {
	return zeroWidthMarksByGdefLate, true
}

func (complexShaperHebrew) normalizationPreference() normalizationMode {
	return nmAuto
}

func (complexShaperHebrew) gposTag() tables.Tag { return 0 }
