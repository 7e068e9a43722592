package harfbuzz

import "github.com/go-text/typesetting/font/opentype/tables"

var _ otComplexShaper = complexShaperThai{}

// complexShaperThai covers Thai and Lao, matching
// hb-ot-shaper-thai.cc. Both scripts' SARA AM vowel sign (Thai U+0E33,
// Lao U+0EB3) has no Unicode canonical decomposition of its own even
// though visually and combining-class-wise it behaves like a
// NIKHAHIT+vowel sequence, so otShapeNormalize's decompose pass never
// splits it on its own; decompose below special-cases exactly those two
// codepoints the way HarfBuzz's thai_decompose does, letting GDEF mark
// attachment and the subsequent reordering pass treat the two pieces
// like any other base+mark pair.
//
// The further "Thai PUA" reordering HarfBuzz applies for legacy fonts
// that pre-compose SARA AM with a preceding tone mark is specific to a
// small set of 1990s Thai fonts and is not implemented here.
type complexShaperThai struct {
	complexShaperNil
}

func (complexShaperThai) decompose(_ *otNormalizeContext, ab rune) (rune, rune, bool) {
	switch ab {
	case 0x0E33: // THAI CHARACTER SARA AM
		return 0x0E4D, 0x0E32, true
	case 0x0EB3: // LAO VOWEL SIGN AM
		return 0x0ECD, 0x0EB2, true
	}
	return uni.decompose(ab)
}

func (complexShaperThai) compose(_ *otNormalizeContext, a, b rune) (rune, bool) {
	// never recompose SARA AM: fonts expect the split NIKHAHIT+vowel
	// sequence at the GSUB stage.
	switch {
	case a == 0x0E4D && b == 0x0E32:
		return 0, false
	case a == 0x0ECD && b == 0x0EB2:
		return 0, false
	}
	return uni.compose(a, b)
}

func (complexShaperThai) marksBehavior() (zeroWidthMarks, bool) {
	return zeroWidthMarksByGdefLate, false
}

func (complexShaperThai) normalizationPreference() normalizationMode {
	return nmComposedDiacritics
}

func (complexShaperThai) gposTag() tables.Tag { return 0 }
