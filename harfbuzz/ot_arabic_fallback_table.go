package harfbuzz

// arabicPresentationForm holds the Arabic Presentation Forms-B
// (U+FE70-FEFC) isolated/final/initial/medial codepoints HarfBuzz's
// generated arabic-table.hh ties to each joining base letter, used to
// synthesize a fallback GSUB when a font is missing 'isol'/'fina'/'medi'/'init'
// features of its own. Zero means the base letter has no glyph in that
// position (e.g. right-joining letters have no medial/initial form).
type arabicPresentationForm struct {
	isol, fina, init, medi rune
}

// arabicShapingForms is keyed by the base letter, and the fallback
// synthesis walks it from firstArabicShape to lastArabicShape; it covers
// the joining Arabic letters in the core Arabic block. HarfBuzz's own
// table additionally carries Arabic Supplement and Extended-A letters;
// those are rarer in practice and are left for the font's own GSUB
// (fonts covering those ranges overwhelmingly ship 'isol'/'fina'/etc.
// themselves), so a missing entry here simply skips fallback synthesis
// for that letter rather than producing incorrect glyphs.
const (
	firstArabicShape = 0x0621
	lastArabicShape  = 0x064A
)

var arabicShapingForms = map[rune]arabicPresentationForm{
	0x0621: {0xFE80, 0, 0, 0},
	0x0622: {0xFE81, 0xFE82, 0, 0},
	0x0623: {0xFE83, 0xFE84, 0, 0},
	0x0624: {0xFE85, 0xFE86, 0, 0},
	0x0625: {0xFE87, 0xFE88, 0, 0},
	0x0626: {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C},
	0x0627: {0xFE8D, 0xFE8E, 0, 0},
	0x0628: {0xFE8F, 0xFE90, 0xFE91, 0xFE92},
	0x0629: {0xFE93, 0xFE94, 0, 0},
	0x062A: {0xFE95, 0xFE96, 0xFE97, 0xFE98},
	0x062B: {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C},
	0x062C: {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0},
	0x062D: {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4},
	0x062E: {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8},
	0x062F: {0xFEA9, 0xFEAA, 0, 0},
	0x0630: {0xFEAB, 0xFEAC, 0, 0},
	0x0631: {0xFEAD, 0xFEAE, 0, 0},
	0x0632: {0xFEAF, 0xFEB0, 0, 0},
	0x0633: {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4},
	0x0634: {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8},
	0x0635: {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC},
	0x0636: {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0},
	0x0637: {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4},
	0x0638: {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8},
	0x0639: {0xFEC9, 0xFECA, 0xFECB, 0xFECC},
	0x063A: {0xFECD, 0xFECE, 0xFECF, 0xFED0},
	0x0641: {0xFED1, 0xFED2, 0xFED3, 0xFED4},
	0x0642: {0xFED5, 0xFED6, 0xFED7, 0xFED8},
	0x0643: {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC},
	0x0644: {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0},
	0x0645: {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4},
	0x0646: {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8},
	0x0647: {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC},
	0x0648: {0xFEED, 0xFEEE, 0, 0},
	0x0649: {0xFEEF, 0xFEF0, 0, 0},
	0x064A: {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4},
}

// arabicShapingFormAt returns the presentation form for featureIndex
// (0=init,1=medi,2=fina,3=isol, matching arabicFallbackFeatures' order)
// for the given base letter, or 0 if that base/position combination has
// no dedicated glyph.
func arabicShapingFormAt(base rune, featureIndex int) rune {
	forms, ok := arabicShapingForms[base]
	if !ok {
		return 0
	}
	switch featureIndex {
	case 0:
		return forms.init
	case 1:
		return forms.medi
	case 2:
		return forms.fina
	case 3:
		return forms.isol
	}
	return 0
}
