package harfbuzz

// ported in the style of hb-ot-shaper-indic.cc's generated indic_table;
// that table maps every codepoint used by the nine parallel Brahmic
// scripts Unicode mirrors structurally (Devanagari, Bengali, Gurmukhi,
// Gujarati, Oriya, Tamil, Telugu, Kannada, Malayalam) to an
// indic_category_t and, for matra (dependent vowel sign) codepoints, a
// matra_position_t. It is machine-generated upstream from UCD
// Indic_Syllabic_Category/Indic_Positional_Category data, which isn't
// reproduced in this package's source tree; the classification below
// instead derives the same two values arithmetically from each script's
// offset from its block base, exploiting the fact Unicode deliberately
// laid the "North Indic" family (Devanagari through Oriya) out
// byte-for-byte in parallel. Tamil/Telugu/Kannada/Malayalam share the
// broad vowel/consonant/matra/virama structure but not the exact
// per-slot layout, so they get the coarser of the two classifications
// below; in particular no script outside the North Indic family
// classifies a consonant as Ra (reph formation), and CS/RS/Repha/MPst/
// CM never fire for any script — all four are rare script-specific
// refinements, and the syllable-reordering logic in ot_indic.go
// degrades gracefully to its plain-consonant/plain-matra path without
// them.

const (
	indSM_ex_X = iota
	indSM_ex_C
	indSM_ex_V
	indSM_ex_N
	indSM_ex_H
	indSM_ex_ZWNJ
	indSM_ex_ZWJ
	indSM_ex_M
	indSM_ex_SM
	indSM_ex_CM
	indSM_ex_CS
	indSM_ex_Repha
	indSM_ex_Ra
	indSM_ex_MPst
	indSM_ex_RS
	indSM_ex_DOTTEDCIRCLE
	indSM_ex_PLACEHOLDER
)

// indicScriptBlock is one of the nine parallel Brahmic blocks this
// table covers; northIndic blocks share byte-identical internal layout
// (per Unicode's design) so Ra/Repha detection is only meaningful there.
type indicScriptBlock struct {
	base      rune
	northIndic bool
}

var indicScriptBlocks = [...]indicScriptBlock{
	{0x0900, true},  // Devanagari
	{0x0980, true},  // Bengali
	{0x0A00, true},  // Gurmukhi
	{0x0A80, true},  // Gujarati
	{0x0B00, true},  // Oriya
	{0x0B80, false}, // Tamil
	{0x0C00, false}, // Telugu
	{0x0C80, false}, // Kannada
	{0x0D00, false}, // Malayalam
}

func indicBlockForRune(u rune) (indicScriptBlock, rune, bool) {
	for _, b := range indicScriptBlocks {
		if u >= b.base && u < b.base+0x80 {
			return b, u - b.base, true
		}
	}
	return indicScriptBlock{}, 0, false
}

// indicGetCategories packs (category, matra position) for u the way
// ot_indic.go's setIndicProperties expects: category in the low byte,
// position in the high byte.
func indicGetCategories(u rune) uint16 {
	if u == 0x200C {
		return uint16(indSM_ex_ZWNJ)
	}
	if u == 0x200D {
		return uint16(indSM_ex_ZWJ)
	}
	if u == 0x25CC { // DOTTED CIRCLE
		return uint16(indSM_ex_DOTTEDCIRCLE)
	}

	block, offset, ok := indicBlockForRune(u)
	if !ok {
		return uint16(indSM_ex_X)
	}

	cat, pos := indicRelativeCategory(offset, block.northIndic)
	return uint16(cat) | uint16(pos)<<8
}

// indicRelativeCategory classifies a codepoint by its offset into a
// Brahmic block, following the layout Devanagari through Oriya share
// exactly and the Dravidian scripts approximate (their vowel/matra
// slots shift a little to accommodate extra long-vowel letters, which
// this coarse ranged classification tolerates since it only needs
// vowel/consonant/matra/mark, not the exact letter identity).
func indicRelativeCategory(offset rune, northIndic bool) (uint8, uint8) {
	switch {
	case offset == 0x00:
		return indSM_ex_X, posEnd
	case offset >= 0x01 && offset <= 0x03: // candrabindu, anusvara, visarga
		return indSM_ex_SM, posSmvd
	case offset >= 0x04 && offset <= 0x14: // independent vowels
		return indSM_ex_V, posEnd
	case offset >= 0x15 && offset <= 0x39: // consonants
		if northIndic && offset == 0x30 { // RA
			return indSM_ex_Ra, posEnd
		}
		return indSM_ex_C, posEnd
	case offset == 0x3C: // nukta
		return indSM_ex_N, posEnd
	case offset == 0x3D: // avagraha
		return indSM_ex_PLACEHOLDER, posEnd
	case offset == 0x3E: // vowel sign AA - post-base
		return indSM_ex_M, posPostC
	case offset == 0x3F: // vowel sign I - pre-base
		return indSM_ex_M, posPreM
	case offset == 0x40: // vowel sign II - post-base
		return indSM_ex_M, posPostC
	case offset >= 0x41 && offset <= 0x44: // U, UU, vocalic R/RR - below-base
		return indSM_ex_M, posBelowC
	case offset >= 0x45 && offset <= 0x48: // candra/short/E/AI - above-base
		return indSM_ex_M, posAboveC
	case offset >= 0x49 && offset <= 0x4C: // candra/short O, O, AU - post-base
		return indSM_ex_M, posPostC
	case offset == 0x4D: // virama
		return indSM_ex_H, posEnd
	case offset >= 0x55 && offset <= 0x57: // additional length marks
		return indSM_ex_M, posAboveC
	case offset >= 0x58 && offset <= 0x5F: // additional consonants (often nukta-composed)
		return indSM_ex_C, posEnd
	case offset >= 0x60 && offset <= 0x61: // vocalic RR/LL letters
		return indSM_ex_V, posEnd
	case offset >= 0x62 && offset <= 0x63: // vocalic RR/LL vowel signs
		return indSM_ex_M, posBelowC
	}
	return indSM_ex_X, posEnd
}
