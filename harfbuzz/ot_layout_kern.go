package harfbuzz

// ported in the style of ot_layout_gpos.go, covering the pair-kerning
// AAT/TT subtable formats (0, 2, 3, 6) both the legacy 'kern' table and
// the modern 'kerx' table share; format 1 and 4 are state-table driven
// and go through driverContextKerx1/4 in ot_aat_layout.go instead.

// kernPairLookup is the common shape a simple pair/class/compact
// kerning subtable exposes: a signed FUnit adjustment for a given
// ordered glyph pair, 0 when the pair isn't listed. Declared locally
// rather than imported since the four concrete formats (font.Kern0,
// Kern2, Kern3, Kern6) don't share a named interface upstream; a format
// whose concrete type doesn't satisfy this at runtime simply
// contributes no kerning instead of panicking.
type kernPairLookup interface {
	KernPair(left, right GID) int16
}

// kern applies data's pair kerning across the buffer, mirroring
// hb-aat-layout-kerx-table.hh's per-format apply: walk adjacent
// (non-skipped) glyphs, add the pair's value to XAdvance (or YAdvance
// for cross-stream subtables, which kern vertically instead of
// horizontally), and mark the pair unsafe-to-break since removing
// either glyph changes the pair that would be looked up.
func kern(data interface{}, crossStream bool, font *Font, buffer *Buffer, mask GlyphMask, autoZWJJoiners bool) {
	lookup, ok := data.(kernPairLookup)
	if !ok {
		return
	}

	info := buffer.Info
	pos := buffer.Pos
	for i := 0; i+1 < len(info); i++ {
		if mask != 0 && info[i+1].Mask&mask == 0 {
			continue
		}
		if autoZWJJoiners && (info[i].isZwj() || info[i+1].isZwj()) {
			continue
		}

		value := lookup.KernPair(gID(info[i].Glyph), gID(info[i+1].Glyph))
		if value == 0 {
			continue
		}

		buffer.unsafeToBreak(i, i+2)
		if crossStream {
			pos[i].YAdvance += Position(value)
		} else if buffer.Props.Direction.isForward() {
			pos[i].XAdvance += Position(value)
		} else {
			pos[i+1].XAdvance += Position(value)
			pos[i+1].XOffset += Position(value)
		}
	}
}

// otLayoutKern applies the legacy TrueType 'kern' table the same way
// aatLayoutPosition's applyKernx does for 'kerx'. compile() in
// ot_shaper.go picks applyKern when the font carries 'kern' but no
// 'kerx', and GPOS is either not applied or has no 'kern' feature.
func (sp *otShapePlan) otLayoutKern(font *Font, buffer *Buffer) {
	for _, st := range font.face.Kern {
		if buffer.Props.Direction.isHorizontal() != st.IsHorizontal() {
			continue
		}
		kern(st.Data, st.IsCrossStream(), font, buffer, sp.kernMask, true)
	}
}

// otApplyFallbackKern is the kerning step for a font with no GPOS, no
// AAT kerning table, and no legacy 'kern' table at all
// (plan.applyFallbackKern in ot_shaper.go); it changes nothing. HarfBuzz's own fallback
// here is a no-op for every shaper except a handful of legacy Hebrew/CJK
// special cases it no longer ships by default, so this package leaves
// it a no-op too rather than invent spacing heuristics no font backs.
func (sp *otShapePlan) otApplyFallbackKern(font *Font, buffer *Buffer) {}
