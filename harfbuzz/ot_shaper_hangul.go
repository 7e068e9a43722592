package harfbuzz

import (
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// Hangul syllable arithmetic, matching Unicode 3.12's algorithm and
// hb-ot-shaper-hangul.cc's constants.
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

func isHangulLVT(u rune) bool {
	return hangulSBase <= u && u < hangulSBase+hangulSCount
}

var _ otComplexShaper = complexShaperHangul{}

// complexShaperHangul registers the 'ljmo'/'vjmo'/'tjmo' GSUB features
// fonts use to reshape isolated Jamo into the precomposed syllable's
// component forms, mirroring hb-ot-shaper-hangul.cc. They are added as
// non-global features and this shaper sets none of their mask bits
// itself. Unlike the Indic family, Hangul syllables are
// algorithmically decomposable/composable, so decompose/compose below
// do the Jamo arithmetic directly instead of consulting Unicode's
// decomposition tables.
type complexShaperHangul struct {
	complexShaperNil
}

var tagLjmo = ot.NewTag('l', 'j', 'm', 'o')
var tagVjmo = ot.NewTag('v', 'j', 'm', 'o')
var tagTjmo = ot.NewTag('t', 'j', 'm', 'o')

func (complexShaperHangul) collectFeatures(plan *otShapePlanner) {
	map_ := &plan.map_
	map_.addFeature(tagLjmo)
	map_.addFeature(tagVjmo)
	map_.addFeature(tagTjmo)
}

func (complexShaperHangul) decompose(_ *otNormalizeContext, ab rune) (rune, rune, bool) {
	if !isHangulLVT(ab) {
		return uni.decompose(ab)
	}
	sIndex := ab - hangulSBase
	if sIndex%hangulTCount != 0 {
		// LVT: left composed; the syllable reaches GSUB as a single
		// character.
		return 0, 0, false
	}
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	return rune(l), rune(v), true
}

func (complexShaperHangul) compose(_ *otNormalizeContext, a, b rune) (rune, bool) {
	// Compose LV
	if hangulLBase <= a && a < hangulLBase+hangulLCount &&
		hangulVBase <= b && b < hangulVBase+hangulVCount {
		lIndex := a - hangulLBase
		vIndex := b - hangulVBase
		return hangulSBase + (lIndex*hangulVCount+vIndex)*hangulTCount, true
	}
	// Compose LV,T
	if isHangulLVT(a) && (a-hangulSBase)%hangulTCount == 0 &&
		hangulTBase < b && b < hangulTBase+hangulTCount {
		tIndex := b - hangulTBase
		return a + tIndex, true
	}
	return 0, false
}

func (complexShaperHangul) marksBehavior() (zeroWidthMarks, bool) {
	return zeroWidthMarksNone, false
}

func (complexShaperHangul) normalizationPreference() normalizationMode {
	return nmComposedDiacriticsNoShortCircuit
}

func (complexShaperHangul) gposTag() tables.Tag { return 0 }
