package harfbuzz

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// ported in the style of ot_layout_gpos.go (itself a port of
// harfbuzz/src/hb-ot-layout-gpos-table.hh), covering the GSUB half of
// hb-ot-layout-gsubgpos.hh's single dispatch table instead.

var _ layoutLookup = lookupGSUB{}

// implements layoutLookup
type lookupGSUB font.GSUBLookup

func (l lookupGSUB) Props() uint32 { return l.LookupOptions.Props() }

func (l lookupGSUB) collectCoverage(dst *setDigest) {
	for _, table := range l.Subtables {
		dst.collectCoverage(table.Cov())
	}
}

func (l lookupGSUB) dispatchSubtables(ctx *getSubtablesContext) {
	for _, table := range l.Subtables {
		*ctx = append(*ctx, newGSUBApplicable(table))
	}
}

func (l lookupGSUB) dispatchApply(ctx *otApplyContext) bool {
	for _, table := range l.Subtables {
		if ctx.applyGSUB(table) {
			return true
		}
	}
	return false
}

func (l lookupGSUB) isReverse() bool {
	for _, table := range l.Subtables {
		if _, ok := table.(tables.ReverseChainSingleSubs); ok {
			return true
		}
	}
	return false
}

func (c *otApplyContext) applyGSUB(table tables.GSUBLookup) bool {
	buffer := c.buffer
	glyphID := buffer.cur(0).Glyph
	index, ok := table.Cov().Index(gID(glyphID))
	if !ok {
		return false
	}

	switch data := table.(type) {
	case tables.SingleSubs:
		switch inner := data.Data.(type) {
		case tables.SingleSubstData1:
			c.replaceGlyph(GID(int32(glyphID) + int32(inner.DeltaGlyphID)))
		case tables.SingleSubstData2:
			if index >= len(inner.SubstituteGlyphIDs) {
				return false
			}
			c.replaceGlyph(inner.SubstituteGlyphIDs[index])
		}
		return true

	case tables.MultipleSubs:
		if index >= len(data.Sequences) {
			return false
		}
		return c.applyMultipleSubs(data.Sequences[index])

	case tables.AlternateSubs:
		if index >= len(data.AlternateSets) {
			return false
		}
		return c.applyAlternateSubs(data.AlternateSets[index])

	case tables.LigatureSubs:
		if index >= len(data.LigatureSets) {
			return false
		}
		return c.applyLigatureSubs(data.LigatureSets[index])

	case tables.ContextualSubs:
		switch inner := data.Data.(type) {
		case tables.ContextualSubs1:
			return c.applyLookupContext1(tables.SequenceContextFormat1(inner), index)
		case tables.ContextualSubs2:
			return c.applyLookupContext2(tables.SequenceContextFormat2(inner), index, glyphID)
		case tables.ContextualSubs3:
			return c.applyLookupContext3(tables.SequenceContextFormat3(inner), index)
		}
		return false

	case tables.ChainedContextualSubs:
		switch inner := data.Data.(type) {
		case tables.ChainedContextualSubs1:
			return c.applyLookupChainedContext1(tables.ChainedSequenceContextFormat1(inner), index)
		case tables.ChainedContextualSubs2:
			return c.applyLookupChainedContext2(tables.ChainedSequenceContextFormat2(inner), index, glyphID)
		case tables.ChainedContextualSubs3:
			return c.applyLookupChainedContext3(tables.ChainedSequenceContextFormat3(inner), index)
		}
		return false

	case tables.ReverseChainSingleSubs:
		if index >= len(data.SubstituteGlyphIDs) {
			return false
		}
		c.replaceGlyph(data.SubstituteGlyphIDs[index])
		return true
	}
	return false
}

// applyMultipleSubs expands the current glyph into sequence; the results
// share its cluster, are marked multiplied and carry component ids
// 0, 1, 2... unless the glyph already belongs to a ligature, mirroring
// MultipleSubstFormat1's apply in hb-ot-layout-gsub-table.hh.
func (c *otApplyContext) applyMultipleSubs(sequence tables.SequenceTable) bool {
	glyphs := sequence.SubstituteGlyphIDs
	if len(glyphs) == 1 {
		c.replaceGlyph(glyphs[0])
		return true
	}
	if len(glyphs) == 0 {
		// an empty substitution deletes the glyph
		c.buffer.deleteGlyph()
		return true
	}

	klass := uint16(0)
	if c.buffer.cur(0).isLigature() {
		klass = tables.GPBaseGlyph
	}
	ligID := c.buffer.cur(0).getLigID()
	for i, g := range glyphs {
		if ligID == 0 {
			c.buffer.cur(0).setLigPropsForMark(0, uint8(i))
		}
		c.setGlyphClassExt(g, klass, false, true)
		gi := *c.buffer.cur(0)
		gi.Glyph = g
		c.buffer.outInfoAppend(gi)
	}
	c.buffer.skipGlyph()
	return true
}

// applyAlternateSubs picks one glyph out of an AlternateSet, matching
// AlternateSubstFormat1. ot_map marks a feature requesting a specific
// alternate (e.g. 'cv01' stylistic-set selectors) by widening that
// feature's mask to carry the requested index instead of a plain
// on/off bit; plumbing that index back out of GlyphInfo.Mask here is
// not wired yet, so a random feature (e.g. 'rand') picks uniformly and
// anything else keeps the font's first-listed alternate, matching
// AlternateSubstFormat1's behavior for an unspecified selection.
func (c *otApplyContext) applyAlternateSubs(alternates tables.AlternateSet) bool {
	glyphs := alternates.AlternateGlyphIDs
	if len(glyphs) == 0 {
		return false
	}

	choice := uint32(0)
	if c.random {
		choice = c.randomNumber() % uint32(len(glyphs))
	}
	c.replaceGlyph(glyphs[choice])
	return true
}

// applyLigatureSubs tries each ligature in set in order; the first one
// that matches wins, matching LigatureSubstFormat1.
func (c *otApplyContext) applyLigatureSubs(set tables.LigatureSet) bool {
	for _, lig := range set.Ligatures {
		componentCount := len(lig.ComponentGlyphIDs) + 1
		var matchPositions [maxContextLength]int

		matched, matchEnd, totalComponents := c.matchInput(toUint16Glyphs(lig.ComponentGlyphIDs), matchGlyph, &matchPositions)
		if !matched {
			continue
		}
		c.ligateInput(componentCount, matchPositions, matchEnd, gID(lig.LigatureGlyph), totalComponents)
		return true
	}
	return false
}

func toUint16Glyphs(glyphs []GID) []uint16 {
	out := make([]uint16, len(glyphs))
	for i, g := range glyphs {
		out[i] = uint16(g)
	}
	return out
}

// otLayoutLookupWouldSubstitute answers, without touching the buffer,
// whether lookupIndex would match and substitute the glyph sequence
// glyphs, matching hb_ot_layout_lookup_would_substitute.
// indicWouldSubstituteFeature in ot_indic.go (reph, pre-base, below-base,
// post-base and vattu detection) is its only caller in this package: it
// needs to know whether a feature's lookups are poised to fire before
// GSUB actually runs, so it can bias position and mask assignment.
func otLayoutLookupWouldSubstitute(font *Font, lookupIndex uint16, glyphs []GID, zeroContext bool) bool {
	if int(lookupIndex) >= len(font.gsubAccels) {
		return false
	}
	lookup, ok := font.gsubAccels[lookupIndex].lookup.(lookupGSUB)
	if !ok || len(glyphs) == 0 {
		return false
	}

	wc := wouldApplyContext{glyphs: glyphs, zeroContext: zeroContext}
	for _, table := range lookup.Subtables {
		if wc.wouldApplySubtable(table) {
			return true
		}
	}
	return false
}

// wouldApplySubtable mirrors applyGSUB's type switch, but for the
// simple (non-contextual) substitution formats it only asks whether the
// full would-be input sequence is coverage-eligible, since the actual
// substitution never happens here.
func (wc *wouldApplyContext) wouldApplySubtable(table tables.GSUBLookup) bool {
	firstGlyph := gID(wc.glyphs[0])
	index, covered := table.Cov().Index(firstGlyph)
	if !covered {
		return false
	}

	switch data := table.(type) {
	case tables.SingleSubs:
		return len(wc.glyphs) == 1

	case tables.MultipleSubs:
		return len(wc.glyphs) == 1

	case tables.AlternateSubs:
		return len(wc.glyphs) == 1

	case tables.LigatureSubs:
		if index >= len(data.LigatureSets) {
			return false
		}
		for _, lig := range data.LigatureSets[index].Ligatures {
			if wc.wouldMatchInput(toUint16Glyphs(lig.ComponentGlyphIDs), matchGlyph) {
				return true
			}
		}
		return false

	case tables.ContextualSubs:
		switch inner := data.Data.(type) {
		case tables.ContextualSubs1:
			return wc.wouldApplyLookupContext1(tables.SequenceContextFormat1(inner), index)
		case tables.ContextualSubs2:
			return wc.wouldApplyLookupContext2(tables.SequenceContextFormat2(inner), index, GID(firstGlyph))
		case tables.ContextualSubs3:
			return wc.wouldApplyLookupContext3(tables.SequenceContextFormat3(inner), index)
		}
		return false

	case tables.ChainedContextualSubs:
		switch inner := data.Data.(type) {
		case tables.ChainedContextualSubs1:
			return wc.wouldApplyLookupChainedContext1(tables.ChainedSequenceContextFormat1(inner), index)
		case tables.ChainedContextualSubs2:
			return wc.wouldApplyLookupChainedContext2(tables.ChainedSequenceContextFormat2(inner), index, GID(firstGlyph))
		case tables.ChainedContextualSubs3:
			return wc.wouldApplyLookupChainedContext3(tables.ChainedSequenceContextFormat3(inner), index)
		}
		return false
	}
	return false
}
