package harfbuzz

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// generalCategory is a packed representation of the Unicode General_Category
// property, ordered the same way across the code base regardless of which
// rune it was derived from. It is stored in the low 5 bits of unicodeProp.
type generalCategory uint8

const (
	genCatControl generalCategory = iota
	format
	genCatUnassigned
	genCatPrivateUse
	genCatSurrogate
	genCatLowercaseLetter
	genCatModifierLetter
	genCatOtherLetter
	genCatTitlecaseLetter
	genCatUppercaseLetter
	spacingMark
	enclosingMark
	nonSpacingMark
	decimalNumber
	genCatLetterNumber
	genCatOtherNumber
	genCatConnectPunctuation
	genCatDashPunctuation
	genCatClosePunctuation
	genCatFinalPunctuation
	genCatInitialPunctuation
	genCatOtherPunctuation
	genCatOpenPunctuation
	genCatCurrencySymbol
	genCatModifierSymbol
	genCatMathSymbol
	genCatOtherSymbol
	genCatLineSeparator
	genCatParagraphSeparator
	spaceSeparator
)

// isMark reports whether the category is one of the three combining
// mark categories (Mn, Mc, Me).
func (gc generalCategory) isMark() bool {
	return gc == nonSpacingMark || gc == spacingMark || gc == enclosingMark
}

// space fallback indices, stored in the high byte of unicodeProp for
// glyphs whose general category is spaceSeparator, matching HarfBuzz's
// hb_unicode_funcs_t::space_fallback_type. Each names the fraction of
// an em the General Punctuation block's space variant is defined as;
// fallbackSpaces uses it to set the glyph's advance from the font's
// scale, replacing whatever width the font's own glyph has.
const (
	notSpace uint8 = iota
	spaceEM
	spaceEM2
	spaceEM3
	spaceEM4
	spaceEM5
	spaceEM6
	spaceEM16
	space4EM18
	spaceFigure
	spacePunctuation
	spaceNarrow
)

// spaceFallbackType classifies a General_Category=Space_Separator
// codepoint into its defining em-fraction: the Unicode General
// Punctuation space variants and IDEOGRAPHIC SPACE. SPACE, NO-BREAK
// SPACE and OGHAM SPACE MARK report notSpace, so their font widths stay.
func spaceFallbackType(u rune) uint8 {
	switch u {
	case 0x2000, 0x2002:
		return spaceEM2
	case 0x2001, 0x2003:
		return spaceEM
	case 0x2004:
		return spaceEM3
	case 0x2005:
		return spaceEM4
	case 0x2006:
		return spaceEM6
	case 0x2007:
		return spaceFigure
	case 0x2008:
		return spacePunctuation
	case 0x2009:
		return spaceEM5
	case 0x200A:
		return spaceEM16
	case 0x202F:
		return spaceNarrow
	case 0x205F:
		return space4EM18
	case 0x3000:
		return spaceEM
	}
	return notSpace
}

// spaceFallbackWidth returns the em-fraction spaceType corresponds to
// as a (numerator, denominator) pair, or (0, 0) for notSpace.
func spaceFallbackWidth(spaceType uint8) (int32, int32) {
	switch spaceType {
	case spaceEM:
		return 1, 1
	case spaceEM2:
		return 1, 2
	case spaceEM3:
		return 1, 3
	case spaceEM4:
		return 1, 4
	case spaceEM5:
		return 1, 5
	case spaceEM6:
		return 1, 6
	case spaceEM16:
		return 1, 16
	case space4EM18:
		return 4, 18
	case spaceFigure, spacePunctuation, spaceNarrow:
		// figure/punctuation/narrow spaces are defined relative to the
		// font's digit/punctuation-glyph width rather than a fixed em
		// fraction; lacking that metric here, approximate with 1/4 em,
		// matching HarfBuzz's own behavior when it can't measure a
		// reference glyph either.
		return 1, 4
	}
	return 0, 0
}

// unicodeFuncs gathers the small set of per-rune Unicode queries the
// shapers need. It is implemented on top of the standard library's
// `unicode` range tables (for General_Category, which neither of our
// normalization or language dependencies expose as a queryable enum)
// and golang.org/x/text/unicode/norm (for canonical decomposition,
// composition and combining class, mirroring hb-unicode's Default
// Unicode Functions backend).
type unicodeFuncs struct{}

var uni unicodeFuncs

func (unicodeFuncs) generalCategory(r rune) generalCategory {
	switch {
	case unicode.Is(unicode.Cc, r):
		return genCatControl
	case unicode.Is(unicode.Cf, r):
		return format
	case unicode.Is(unicode.Co, r):
		return genCatPrivateUse
	case unicode.Is(unicode.Cs, r):
		return genCatSurrogate
	case unicode.Is(unicode.Ll, r):
		return genCatLowercaseLetter
	case unicode.Is(unicode.Lm, r):
		return genCatModifierLetter
	case unicode.Is(unicode.Lo, r):
		return genCatOtherLetter
	case unicode.Is(unicode.Lt, r):
		return genCatTitlecaseLetter
	case unicode.Is(unicode.Lu, r):
		return genCatUppercaseLetter
	case unicode.Is(unicode.Mc, r):
		return spacingMark
	case unicode.Is(unicode.Me, r):
		return enclosingMark
	case unicode.Is(unicode.Mn, r):
		return nonSpacingMark
	case unicode.Is(unicode.Nd, r):
		return decimalNumber
	case unicode.Is(unicode.Nl, r):
		return genCatLetterNumber
	case unicode.Is(unicode.No, r):
		return genCatOtherNumber
	case unicode.Is(unicode.Pc, r):
		return genCatConnectPunctuation
	case unicode.Is(unicode.Pd, r):
		return genCatDashPunctuation
	case unicode.Is(unicode.Pe, r):
		return genCatClosePunctuation
	case unicode.Is(unicode.Pf, r):
		return genCatFinalPunctuation
	case unicode.Is(unicode.Pi, r):
		return genCatInitialPunctuation
	case unicode.Is(unicode.Po, r):
		return genCatOtherPunctuation
	case unicode.Is(unicode.Ps, r):
		return genCatOpenPunctuation
	case unicode.Is(unicode.Sc, r):
		return genCatCurrencySymbol
	case unicode.Is(unicode.Sk, r):
		return genCatModifierSymbol
	case unicode.Is(unicode.Sm, r):
		return genCatMathSymbol
	case unicode.Is(unicode.So, r):
		return genCatOtherSymbol
	case unicode.Is(unicode.Zl, r):
		return genCatLineSeparator
	case unicode.Is(unicode.Zp, r):
		return genCatParagraphSeparator
	case unicode.Is(unicode.Zs, r):
		return spaceSeparator
	default:
		return genCatUnassigned
	}
}

func (unicodeFuncs) combiningClass(r rune) uint8 {
	return norm.NFC.PropertiesString(string(r)).CCC()
}

// decompose performs canonical decomposition of ab into a single pair
// (a, b). Multi-rune decompositions and runes with no canonical
// decomposition return ok == false, matching hb_unicode_decompose.
func (unicodeFuncs) decompose(ab rune) (a, b rune, ok bool) {
	dec := norm.NFD.PropertiesString(string(ab)).Decomposition()
	if len(dec) == 0 {
		return ab, 0, false
	}

	first, n := utf8.DecodeRune(dec)
	if first == utf8.RuneError && n == 1 {
		return ab, 0, false
	}
	if n == len(dec) {
		return first, 0, true
	}

	second, m := utf8.DecodeRune(dec[n:])
	if second == utf8.RuneError && m == 1 {
		return ab, 0, false
	}
	if n+m != len(dec) {
		return ab, 0, false
	}

	return first, second, true
}

// compose performs canonical composition of the pair (a, b), mirroring
// hb_unicode_compose. It reuses the NFC table by composing the two-rune
// sequence and checking the result collapsed back to a single rune.
func (unicodeFuncs) compose(a, b rune) (rune, bool) {
	if a == 0 {
		return 0, false
	}
	composed := norm.NFC.String(string([]rune{a, b}))
	first, n := utf8.DecodeRuneInString(composed)
	if first == utf8.RuneError && n == 1 {
		return 0, false
	}
	if n != len(composed) {
		return 0, false
	}
	return first, true
}

// mirroring returns the bidi mirroring codepoint for r, or r itself
// if it has none.
func (unicodeFuncs) mirroring(r rune) rune {
	if m, ok := bidiMirroring[r]; ok {
		return m
	}
	return r
}

// bufferScratchFlags are transient bits accumulated on Buffer while
// computing per-glyph Unicode properties, consumed once by the shape
// pipeline to decide whether extra passes (space fallback, dotted
// circle insertion, ...) are needed.
type bufferScratchFlags uint32

const (
	bsfHasNonASCII bufferScratchFlags = 1 << iota
	bsfHasDefaultIgnorables
	bsfHasSpaceFallback
	bsfHasGPOSAttachment
	bsfHasUnsafeToConcat
	bsfHasCGJ
	bsfHasVariationSelectorFallback
	// bsfHasGlyphFlags is set whenever a glyph picks up a Mask bit from
	// glyphFlagDefined (UnsafeToBreak, UnsafeToConcat, SafeToInsertTatweel),
	// letting propagateFlags skip its cluster-flattening pass on buffers
	// that never set one.
	bsfHasGlyphFlags

	// bsfDefault is the scratch-flag state a freshly reset buffer
	// starts a shaping call with.
	bsfDefault bufferScratchFlags = 0
)

// computeUnicodeProps derives the packed unicodeProp for a single
// codepoint, along with any Buffer-global scratch flags it implies.
func computeUnicodeProps(u rune) (unicodeProp, bufferScratchFlags) {
	gc := uni.generalCategory(u)
	prop := unicodeProp(gc)
	var flags bufferScratchFlags

	if u > 0x7F {
		flags |= bsfHasNonASCII
	}

	if isDefaultIgnorableRune(u) {
		prop |= upropsMaskIgnorable
		flags |= bsfHasDefaultIgnorables
		if isHiddenDefaultIgnorableRune(u) {
			prop |= upropsMaskHidden
		}
	}

	if gc == format {
		switch u {
		case 0x200D: // ZWJ
			prop |= upropsMaskCfZwj
		case 0x200C: // ZWNJ
			prop |= upropsMaskCfZwnj
		}
	}

	if u == 0x034F { // COMBINING GRAPHEME JOINER
		flags |= bsfHasCGJ
	}

	if gc.isMark() {
		cc := uni.combiningClass(u)
		prop = (unicodeProp(cc) << 8) | (prop & 0xFF)
	} else if gc == spaceSeparator {
		if st := spaceFallbackType(u); st != notSpace {
			prop = (unicodeProp(st) << 8) | (prop & 0xFF)
			flags |= bsfHasSpaceFallback
		}
	}

	return prop, flags
}

// isDefaultIgnorableRune reports whether u belongs to Unicode's
// Default_Ignorable_Code_Point property, following the same carve-outs
// as HarfBuzz's modified Default_Ignorable (e.g. excluding U+115F/U+1160
// Hangul fillers, which shapers rely on remaining visible glyph slots).
func isDefaultIgnorableRune(u rune) bool {
	switch {
	case u == 0x00AD: // SOFT HYPHEN
		return true
	case u == 0x034F: // COMBINING GRAPHEME JOINER
		return true
	case u >= 0x180B && u <= 0x180E: // MONGOLIAN FREE VARIATION SELECTOR ONE..THREE, VOWEL SEPARATOR
		return true
	case u >= 0x200B && u <= 0x200F: // ZW(N)J, directional marks
		return true
	case u >= 0x202A && u <= 0x202E: // directional formatting
		return true
	case u >= 0x2060 && u <= 0x206F: // word joiner, invisible operators, deprecated
		return true
	case u == 0xFEFF: // ZERO WIDTH NO-BREAK SPACE / BOM
		return true
	case u >= 0xFFF0 && u <= 0xFFF8:
		return true
	case u >= 0x1BCA0 && u <= 0x1BCA3: // SHORTHAND FORMAT CONTROLS
		return true
	case u >= 0x1D173 && u <= 0x1D17A: // MUSICAL SYMBOL formatting
		return true
	case u >= 0xE0000 && u <= 0xE0FFF: // TAG characters and variation selectors supplement
		return true
	case u >= 0xFE00 && u <= 0xFE0F: // VARIATION SELECTOR-1..16
		return true
	default:
		return false
	}
}

// bidiMirroring covers the common bracket/quote/relation pairs from the
// Unicode Bidi_Mirroring_Glyph property. Neither golang.org/x/text nor any
// other dependency in this module's stack exposes the full derived mirroring
// table (it is not algorithmically derivable from General_Category or NFC/NFD
// data), so, as HarfBuzz's own hb-unicode backend does, it is carried as a
// small generated-by-hand table rather than invented logic; it is consulted
// only for the common RTL punctuation pairs complex shapers care about.
var bidiMirroring = map[rune]rune{
	0x0028: 0x0029, 0x0029: 0x0028,
	0x003C: 0x003E, 0x003E: 0x003C,
	0x005B: 0x005D, 0x005D: 0x005B,
	0x007B: 0x007D, 0x007D: 0x007B,
	0x00AB: 0x00BB, 0x00BB: 0x00AB,
	0x2018: 0x2019, 0x2019: 0x2018,
	0x201C: 0x201D, 0x201D: 0x201C,
	0x2039: 0x203A, 0x203A: 0x2039,
	0x2045: 0x2046, 0x2046: 0x2045,
	0x2264: 0x2265, 0x2265: 0x2264,
	0x2266: 0x2267, 0x2267: 0x2266,
	0x2272: 0x2273, 0x2273: 0x2272,
	0x2276: 0x2277, 0x2277: 0x2276,
	0x2966: 0x2967, 0x2967: 0x2966,
	0x3008: 0x3009, 0x3009: 0x3008,
	0x300A: 0x300B, 0x300B: 0x300A,
	0x300C: 0x300D, 0x300D: 0x300C,
	0x300E: 0x300F, 0x300F: 0x300E,
	0x3010: 0x3011, 0x3011: 0x3010,
	0x3014: 0x3015, 0x3015: 0x3014,
	0x3016: 0x3017, 0x3017: 0x3016,
	0xFF08: 0xFF09, 0xFF09: 0xFF08,
	0xFF1C: 0xFF1E, 0xFF1E: 0xFF1C,
	0xFF3B: 0xFF3D, 0xFF3D: 0xFF3B,
	0xFF5B: 0xFF5D, 0xFF5D: 0xFF5B,
	0xFF62: 0xFF63, 0xFF63: 0xFF62,
}

// isHiddenDefaultIgnorableRune reports the subset of default-ignorables
// that should stay hidden-but-not-ignored: the Mongolian free variation
// selectors and the tag characters used for emoji flag sequences.
func isHiddenDefaultIgnorableRune(u rune) bool {
	switch {
	case u >= 0x180B && u <= 0x180E: // MONGOLIAN FREE VARIATION SELECTOR ONE..THREE, VOWEL SEPARATOR
		return true
	case u >= 0xE0000 && u <= 0xE0FFF:
		return true
	default:
		return false
	}
}
