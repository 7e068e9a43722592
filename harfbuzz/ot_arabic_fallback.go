package harfbuzz

import (
	"sort"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// arabicFallbackSynthesizeLookupSingle builds a SingleSubs lookup
// mapping each base Arabic letter this font has a glyph for to its
// init/medi/fina/isol presentation-form glyph, for fonts that carry
// those glyphs (frequently true of legacy/presentation-forms-encoded
// fonts) but not the 'init'/'medi'/'fina'/'isol' GSUB features that
// would normally select them. Mirrors
// hb-ot-shaper-arabic-fallback.hh's arabic_fallback_synthesize_lookup_single.
func arabicFallbackSynthesizeLookupSingle(ft *Font, featureIndex int) *lookupGSUB {
	var glyphs, substitutes []gID

	for u := rune(firstArabicShape); u <= lastArabicShape; u++ {
		s := arabicShapingFormAt(u, featureIndex)
		if s == 0 {
			continue
		}
		uGlyph, hasU := ft.face.Font.NominalGlyph(u)
		sGlyph, hasS := ft.face.Font.NominalGlyph(s)
		if !hasU || !hasS || uGlyph == sGlyph {
			continue
		}

		glyphs = append(glyphs, gID(uGlyph))
		substitutes = append(substitutes, gID(sGlyph))
	}

	if len(glyphs) == 0 {
		return nil
	}

	sort.Stable(jointGlyphs{glyphs: glyphs, substitutes: substitutes})

	return &lookupGSUB{
		LookupOptions: font.LookupOptions{Flag: otIgnoreMarks},
		Subtables: []tables.GSUBLookup{
			tables.SingleSubs{Data: tables.SingleSubstData2{
				Coverage:           tables.Coverage1{Glyphs: glyphs},
				SubstituteGlyphIDs: substitutes,
			}},
		},
	}
}

// jointGlyphs sorts glyphs and substitutes together by ascending glyph
// ID, the order Coverage1 requires.
type jointGlyphs struct {
	glyphs, substitutes []gID
}

func (a jointGlyphs) Len() int      { return len(a.glyphs) }
func (a jointGlyphs) Less(i, j int) bool { return a.glyphs[i] < a.glyphs[j] }
func (a jointGlyphs) Swap(i, j int) {
	a.glyphs[i], a.glyphs[j] = a.glyphs[j], a.glyphs[i]
	a.substitutes[i], a.substitutes[j] = a.substitutes[j], a.substitutes[i]
}

// arabicFallbackSynthesizeLookup builds the fallback lookup for one of
// arabicFallbackFeatures' slots. Slots 0-3 (init/medi/fina/isol) are
// synthesized from arabicShapingForms. Slots 4-6 are HarfBuzz's three
// rlig lam-alef/lam-lam/mark ligature tables; this package doesn't
// carry those generated ligature tables (they exist only to approximate
// shaping for fonts with no GSUB at all, an increasingly rare case), so
// those slots are left unsynthesized — initUnicode below simply finds
// no lookup for them and skips that mask, rather than panicking.
func arabicFallbackSynthesizeLookup(font *Font, featureIndex int) *lookupGSUB {
	switch featureIndex {
	case 0, 1, 2, 3:
		return arabicFallbackSynthesizeLookupSingle(font, featureIndex)
	default:
		return nil
	}
}

// arabicFallbackPlan replays the init/medi/fina/isol/rlig features a
// conformant Arabic font's own GSUB would have applied, for fonts
// lacking them, matching hb-ot-shaper-arabic-fallback.hh's
// arabic_fallback_plan_t.
type arabicFallbackPlan struct {
	accelArray [arabicFallbackMaxLookups]otLayoutLookupAccelerator
	numLookups int
	maskArray  [arabicFallbackMaxLookups]GlyphMask
}

func (fbPlan *arabicFallbackPlan) initUnicode(featureMasks [arabicFallbackMaxLookups]GlyphMask, font *Font) bool {
	var j int
	for i := range arabicFallbackFeatures {
		mask := featureMasks[i]
		if mask == 0 {
			continue
		}
		lk := arabicFallbackSynthesizeLookup(font, i)
		if lk == nil {
			continue
		}
		fbPlan.maskArray[j] = mask
		fbPlan.accelArray[j].init(*lk)
		j++
	}
	fbPlan.numLookups = j
	return j > 0
}

func newArabicFallbackPlan(featureMasks [arabicFallbackMaxLookups]GlyphMask, font *Font) *arabicFallbackPlan {
	var fbPlan arabicFallbackPlan
	if fbPlan.initUnicode(featureMasks, font) {
		return &fbPlan
	}
	return &arabicFallbackPlan{}
}

func (fbPlan *arabicFallbackPlan) shape(font *Font, buffer *Buffer) {
	var c otApplyContext
	c.reset(0, font, buffer)
	for i := 0; i < fbPlan.numLookups; i++ {
		if fbPlan.accelArray[i].lookup != nil {
			c.setLookupMask(fbPlan.maskArray[i])
			c.substituteLookup(&fbPlan.accelArray[i])
		}
	}
}
