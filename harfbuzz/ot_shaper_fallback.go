package harfbuzz

import "github.com/go-text/typesetting/font/opentype/tables"

// ported in the style of ot_layout_gpos.go's positionStartGPOS/
// positionFinishOffsetsGPOS, covering the handful of generic (non-font-
// backed) passes hb-ot-shape-fallback.cc and hb-ot-layout.cc run around
// substitution and positioning: default glyph-class synthesis entry
// points, the legacy tombstone-compaction helper, mark reordering when
// a font has no GDEF mark-attachment classes to drive it, and
// synthetic spacing for the Unicode General Punctuation space variants.

// otLayoutDeleteGlyphsInplace is the package-level entry point
// ot_shaper.go calls into, forwarding to Buffer's own implementation
// (kept on Buffer since it already owns Info/Pos compaction for the
// AAT deletion-tombstone passes).
func otLayoutDeleteGlyphsInplace(buffer *Buffer, filter func(*GlyphInfo) bool) {
	buffer.deleteGlyphsInplace(filter)
}

// layoutSubstituteStart seeds every glyph's GDEF glyph-class bits
// before GSUB runs, matching hb_ot_layout_substitute_start. A font
// without a GDEF glyph-class table leaves every glyphProps zero here;
// synthesizeGlyphClasses (driven by plan.fallbackGlyphClasses) fills
// that gap from Unicode general categories right afterward.
func layoutSubstituteStart(font *Font, buffer *Buffer) {
	gdef := font.face.GDEF
	if gdef.GlyphClassDef == nil {
		return
	}
	for i := range buffer.Info {
		buffer.Info[i].glyphProps = gdef.GlyphProps(gID(buffer.Info[i].Glyph))
	}
}

// otLayoutPositionStart/otLayoutPositionFinishOffsets bracket GPOS (and
// AAT 'kerx'/'morx' mark attachment, which also writes attachChain/
// attachType) the way hb_ot_layout_position_start/_finish_offsets do:
// reset the attachment-chain bookkeeping before positioning starts, and
// resolve it into absolute offsets once every lookup has run.
func otLayoutPositionStart(font *Font, buffer *Buffer) {
	positionStartGPOS(buffer)
}

func otLayoutPositionFinishOffsets(font *Font, buffer *Buffer) {
	positionFinishOffsetsGPOS(buffer)
}

// fallbackMarkPositionRecategorizeMarks re-derives glyphProps' GDEF
// mark/base bits from Unicode alone, used when plan.fallbackMarkPosi-
// tioning is set (no GDEF mark-attachment classes at all) so the later
// fallback positioning pass can still tell which glyphs are marks,
// matching _hb_ot_shape_fallback_mark_position_recategorize_marks.
func fallbackMarkPositionRecategorizeMarks(buffer *Buffer) {
	info := buffer.Info
	for i := range info {
		if info[i].unicode.generalCategory() == nonSpacingMark {
			if info[i].isDefaultIgnorable() {
				continue
			}
			// a mark only gets attached to what precedes it; the very
			// first glyph in the buffer has nothing to attach to, so
			// HarfBuzz leaves it classified as a base instead.
			if i != 0 {
				info[i].glyphProps = tables.GPMark
				continue
			}
		}
		if info[i].glyphProps&(tables.GPMark|tables.GPLigature|tables.GPBaseGlyph) == 0 {
			info[i].glyphProps = tables.GPBaseGlyph
		}
	}
}

// fallbackMarkPosition places every run of marks after a base glyph
// purely from advance widths (no font anchor data involved): each mark
// takes the base's offsets, is moved back along the writing direction
// by the summed advances of the marks since the base (its own
// included), and gets a zero advance; with adjustOffsetsWhenZeroing its
// offset also moves back by its own advance before that. Marks are not
// centered over the base and not stacked vertically, and marks before
// the first base are left as they are.
func fallbackMarkPosition(plan *otShapePlan, font *Font, buffer *Buffer, adjustOffsetsWhenZeroing bool) {
	info := buffer.Info
	pos := buffer.Pos
	horizontal := buffer.Props.Direction.isHorizontal()

	base := -1
	var clusterAdvance Position
	for i := range info {
		if !info[i].isMark() {
			base = i
			clusterAdvance = 0
			continue
		}
		if base == -1 {
			continue
		}

		if horizontal {
			clusterAdvance += pos[i].XAdvance
			pos[i].XOffset += pos[base].XOffset - clusterAdvance
			pos[i].YOffset += pos[base].YOffset
		} else {
			clusterAdvance += pos[i].YAdvance
			pos[i].YOffset += pos[base].YOffset - clusterAdvance
			pos[i].XOffset += pos[base].XOffset
		}

		if adjustOffsetsWhenZeroing {
			pos[i].XOffset -= pos[i].XAdvance
			pos[i].YOffset -= pos[i].YAdvance
		}
		pos[i].XAdvance, pos[i].YAdvance = 0, 0
	}
}

// fallbackSpaces synthesizes an advance for the Unicode space variants
// (en/em/thin/hair/figure/punctuation/narrow space, see
// spaceFallbackType) from the font's scale, matching
// _hb_ot_shape_fallback_spaces: a font's own glyph for these almost
// always carries a correct advance already, so this only overrides it
// when the codepoint is a recognized fallback space, leaving plain
// ASCII SPACE's font-provided width untouched by returning early via
// getUnicodeSpaceFallbackType's notSpace result for anything else.
func fallbackSpaces(font *Font, buffer *Buffer) {
	info := buffer.Info
	pos := buffer.Pos
	horizontal := buffer.Props.Direction.isHorizontal()

	for i := range info {
		spaceType := info[i].getUnicodeSpaceFallbackType()
		if spaceType == notSpace {
			continue
		}
		num, den := spaceFallbackWidth(spaceType)
		if den == 0 {
			continue
		}
		width := Position(float32(font.XScale) * float32(num) / float32(den))
		if horizontal {
			pos[i].XAdvance = width
		} else {
			pos[i].YAdvance = -width
		}
		info[i].glyphProps = tables.GPBaseGlyph
	}
}
