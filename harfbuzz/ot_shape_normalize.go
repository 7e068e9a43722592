package harfbuzz

// ported in the style of ot_shaper.go (itself a port of
// hb-ot-shape-normalize.cc): decides, per cluster, whether to keep the
// input codepoints composed or decompose them before GSUB, maps every
// final codepoint to its nominal glyph, and lets the complex shaper
// reorder combining marks within a cluster once their positions are
// settled.

// otNormalizeContext bundles the state a complex shaper's decompose/
// compose hook might need beyond the two runes it's asked about,
// mirroring hb_ot_shape_normalize_context_t. None of the shapers in
// this package currently read its fields, but the hook signatures
// (ot_shape_complex.go) take it so a future shaper can consult the
// plan/font without changing every implementation's signature.
type otNormalizeContext struct {
	plan   *otShapePlan
	buffer *Buffer
	font   *Font
}

func (c *otNormalizeContext) decompose(ab rune) (a, b rune, ok bool) {
	return c.plan.shaper.decompose(c, ab)
}

func (c *otNormalizeContext) compose(a, b rune) (rune, bool) {
	// Only asks the shaper whether the pair composes; which characters
	// may still combine with a starter (the canonical blocking rule) is
	// decided by recomposeCluster.
	return c.plan.shaper.compose(c, a, b)
}

// otShapeNormalize runs the decompose / mark-reorder / recompose
// pipeline that turns a buffer's raw input codepoints into the
// sequence of nominal glyphs GSUB will operate on, matching
// _hb_ot_shape_normalize.
func otShapeNormalize(plan *otShapePlan, buffer *Buffer, font *Font) {
	if len(buffer.Info) == 0 {
		return
	}

	mode := plan.shaper.normalizationPreference()
	if mode == nmAuto {
		if plan.hasGposMark {
			mode = nmComposedDiacritics
		} else {
			mode = nmComposedDiacriticsNoShortCircuit
		}
	}
	shortCircuit := mode != nmDecomposed && mode != nmComposedDiacriticsNoShortCircuit

	c := otNormalizeContext{plan: plan, buffer: buffer, font: font}

	decomposeCluster(&c, shortCircuit)

	reorderMarksPass(plan, buffer)

	if mode == nmComposedDiacritics || mode == nmComposedDiacriticsNoShortCircuit {
		recomposeCluster(&c)
	}

	// map every remaining codepoint to its nominal glyph; anything the
	// font lacks falls back to glyph 0 (.notdef), same as an
	// undecomposable, ungraphable codepoint would in HarfBuzz.
	for i := range buffer.Info {
		info := &buffer.Info[i]
		glyph, _ := font.face.Font.NominalGlyph(info.codepoint)
		info.Glyph = glyph
	}
}

// decomposeCluster walks the buffer, recursively decomposing any
// codepoint the font has no glyph for (or, when shortCircuit is false,
// every decomposable codepoint regardless) via the complex shaper's
// decompose hook, and appending the resulting sequence to outInfo.
func decomposeCluster(c *otNormalizeContext, shortCircuit bool) {
	buffer := c.buffer
	buffer.clearOutput()
	for buffer.idx < len(buffer.Info) {
		info := *buffer.cur(0)
		u := info.codepoint

		if shortCircuit {
			if _, ok := c.font.face.Font.NominalGlyph(u); ok {
				buffer.nextGlyph()
				continue
			}
		}

		decomposeOne(c, info, info.codepoint, &buffer.outInfo, &buffer.outLen)
		buffer.idx++
	}
	buffer.swapBuffers()
}

// decomposeOne recursively decomposes u (a piece of base's expansion,
// possibly base.codepoint itself) via the complex shaper's decompose
// hook, appending each irreducible piece to out inheriting base's
// cluster/mask, matching decompose_one_cluster/decompose_current_character.
func decomposeOne(c *otNormalizeContext, base GlyphInfo, u rune, out *[]GlyphInfo, outLen *int) {
	a, b, ok := c.decompose(u)
	if !ok {
		appendNormalized(base, u, out, outLen)
		return
	}
	decomposeOne(c, base, a, out, outLen)
	if b != 0 {
		decomposeOne(c, base, b, out, outLen)
	}
}

// appendNormalized appends a GlyphInfo for codepoint u inheriting
// base's cluster/mask, recomputing its Unicode properties.
func appendNormalized(base GlyphInfo, u rune, out *[]GlyphInfo, outLen *int) {
	gi := base
	gi.codepoint = u
	props, _ := computeUnicodeProps(u)
	gi.unicode = props
	if *outLen < len(*out) {
		(*out)[*outLen] = gi
	} else {
		*out = append(*out, gi)
	}
	*outLen++
}

// reorderMarksPass stably reorders runs of combining marks by modified
// combining class within each cluster, then lets the complex shaper
// apply any further script-specific adjustment (e.g. Arabic's modifier
// combining marks), matching _hb_ot_shape_normalize's generic
// canonical-order pass followed by shaper->reorder_marks.
func reorderMarksPass(plan *otShapePlan, buffer *Buffer) {
	iter, count := buffer.clusterIterator()
	for start, end := iter.next(); start < count; start, end = iter.next() {
		buffer.sort(start, end, func(a, b *GlyphInfo) bool {
			return a.getModifiedCombiningClass() < b.getModifiedCombiningClass()
		})
		plan.shaper.reorderMarks(plan, buffer, start, end)
	}
}

// recomposeCluster walks each cluster and recombines its starter with
// each following character that is not blocked from it (by a character
// in between whose combining class is not lower than its own), when the
// font can represent the result as a single precomposed glyph: the
// inverse of decomposeCluster, matching hb_ot_shape_normalize's
// recompose pass in non-decomposed modes. The first character of a
// cluster is its first starter; a later one becomes the starter only if
// its combining class is 0.
func recomposeCluster(c *otNormalizeContext) {
	buffer := c.buffer
	buffer.clearOutput()
	for buffer.idx < len(buffer.Info) {
		starter := *buffer.cur(0)
		buffer.outInfoAppend(starter)
		starterIdx := buffer.outLen - 1
		buffer.idx++

		for buffer.idx < len(buffer.Info) && buffer.cur(0).Cluster == starter.Cluster {
			cand := *buffer.cur(0)
			blocked := starterIdx != buffer.outLen-1 &&
				buffer.outInfo[buffer.outLen-1].getModifiedCombiningClass() >= cand.getModifiedCombiningClass()
			composed, ok := c.compose(starter.codepoint, cand.codepoint)
			if ok && !blocked {
				if _, hasGlyph := c.font.face.Font.NominalGlyph(composed); hasGlyph {
					starter.codepoint = composed
					props, _ := computeUnicodeProps(composed)
					starter.unicode = props
					buffer.outInfo[starterIdx] = starter
					buffer.idx++
					continue
				}
			}
			buffer.outInfoAppend(cand)
			buffer.idx++
			if cand.getModifiedCombiningClass() == 0 {
				starter = cand
				starterIdx = buffer.outLen - 1
			}
		}
	}
	buffer.swapBuffers()
}
