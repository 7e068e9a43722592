package harfbuzz

import "github.com/go-text/typesetting/font"

// hasMachineKerning and hasCrossKerning classify the legacy TrueType
// 'kern' table (font.Kern, the same font.KernSubtable representation
// ot_aat_layout.go's applyKernx already drives for 'kerx') the way
// _hb_ot_shape_plan_init0 consults them: whether fallback mark-width
// zeroing can skip correcting for GPOS/AAT kerning-induced movement
// because the 'kern' table is simple enough not to move marks, and
// whether any subtable is cross-stream (moves glyphs perpendicular to
// the writing direction, which zeroing has to account for).
//
// Every subtable's reach is conservatively assumed non-trivial here:
// unlike 'kerx', the legacy 'kern' format carries no per-subtable
// bit this package can use to rule out a state-table-driven subtable
// without duplicating the anchor-format type switch ot_aat_layout.go
// already does for 'kerx' proper, so any non-empty table counts as
// "machine kerning" rather than risk mis-zeroing a mark.
func hasMachineKerning(kern font.Kern) bool {
	return len(kern) > 0
}

func hasCrossKerning(kern font.Kern) bool {
	for _, st := range kern {
		if st.IsCrossStream() {
			return true
		}
	}
	return false
}
