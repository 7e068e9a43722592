package harfbuzz

import "github.com/go-text/typesetting/language"

// Buffer holds the input characters and output glyphs for shaping, as
// well as the intermediate state needed while the shape pipeline runs.
//
// Shaping is a destructive, streaming rewrite: Info/Pos start out holding
// one GlyphInfo/GlyphPosition per input codepoint, and every GSUB/GPOS
// lookup or complex-shaper pass can delete, insert, split or merge glyphs
// in place. To make that rewrite efficient without constant slice
// splicing, the buffer keeps two arrays and a cursor (idx): everything
// before idx in Info has already been fully processed for the current
// pass and is considered "out", everything from idx onward is still "in"
// and yet to be visited. GSUB lookups call nextGlyph/replaceGlyphs/
// copyGlyph/skipGlyph to advance idx while appending to outInfo, and
// swapBuffers flips outInfo back into Info once a pass completes.
type Buffer struct {
	// Info holds the (input or, mid-pipeline, partially shaped) glyph
	// records, indexed in parallel with Pos.
	Info []GlyphInfo
	// Pos holds the glyph positions resulting from GPOS (or font
	// fallback advances before GPOS runs), indexed in parallel with Info.
	Pos []GlyphPosition

	// Props describes the script/language/direction resolved for this
	// run of text; see setupProperties.
	Props SegmentProperties

	// Flags are the user-controllable BufferFlags for this buffer.
	Flags BufferFlags

	// ClusterLevel controls how Cluster values are merged across the
	// pipeline; see the ClusterLevel documentation.
	ClusterLevel ClusterLevel

	// Invisible is the glyph substituted in place of default-ignorable
	// characters after shaping, when RemoveDefaultIgnorables is not set.
	// Zero means the font's glyph for U+0020 SPACE; if the font has no
	// such glyph either, the characters are removed instead.
	Invisible GID

	// Replacement is the glyph substituted in place of a character
	// the font lacks entirely. Zero keeps the .notdef behavior.
	Replacement GID

	// outInfo/outPos hold the growing "out" buffer a pass writes into;
	// once the pass finishes, swapBuffers moves them into Info/Pos.
	outInfo []GlyphInfo
	outPos  []GlyphPosition

	// idx is the read cursor into Info/Pos during a pass: [0, idx) has
	// already been appended to outInfo, [idx, len(Info)) is unvisited.
	idx int

	// outLen tracks how many entries of outInfo/outPos are valid,
	// since those slices are over-allocated and reused across passes.
	outLen int

	// havingOutput records whether outInfo is the active write target;
	// false while a pass is only scanning Info without rewriting it.
	havingOutput bool

	scratchFlags bufferScratchFlags

	// maxLen/maxOps bound runaway lookups (e.g. pathological ligature or
	// contextual chains) the way hb_buffer_t's MAX_LEN_FACTOR/MAX_LEN_MIN
	// and MAX_OPS_FACTOR/MAX_OPS_MIN do: proportional to input length,
	// floored so tiny buffers still get headroom.
	maxLen int
	maxOps int

	// serial is bumped on every ligature formation, used to produce
	// unique lig_id values distinguishing separate ligatures that
	// might otherwise collide mod 2^3.
	serial uint8

	// digestVal is accumulated across a shaping call so
	// GSUB can cheaply reject lookups that cannot possibly match.
	digestVal setDigest
}

const (
	maxLenFactor = 64
	maxLenMin    = 16384
	maxOpsFactor = 1024
	maxOpsMin    = 16384
	// maxOpsDefault is the budget a buffer is left with once a shaping
	// call finishes, matching HB_BUFFER_MAX_OPS_DEFAULT: large enough
	// that a caller appending more text before the next full shape call
	// doesn't immediately trip the runaway-lookup guard.
	maxOpsDefault = 0x1FFFFFFF
)

// NewBuffer allocates an empty Buffer ready to receive input via
// AddRune/AddRunes/AddString.
func NewBuffer() *Buffer {
	return &Buffer{ClusterLevel: MonotoneGraphemes}
}

// Clear resets the buffer to a pristine state, ready to shape new text,
// while keeping the allocated backing arrays for reuse.
func (b *Buffer) Clear() {
	b.Info = b.Info[:0]
	b.Pos = b.Pos[:0]
	b.outInfo = b.outInfo[:0]
	b.idx = 0
	b.outLen = 0
	b.havingOutput = false
	b.scratchFlags = 0
	b.serial = 0
	b.Props = SegmentProperties{}
}

// AddRune appends a single codepoint, with the given cluster value
// (typically the rune's byte or rune offset in the original text).
func (b *Buffer) AddRune(r rune, cluster int) {
	b.Info = append(b.Info, GlyphInfo{codepoint: r, Cluster: cluster})
	b.Pos = append(b.Pos, GlyphPosition{})
}

// AddRunes appends a slice of runes, assigning sequential cluster values
// starting at clusterStart.
func (b *Buffer) AddRunes(text []rune, clusterStart int) {
	for i, r := range text {
		b.AddRune(r, clusterStart+i)
	}
}

// AddString appends a Go string rune-by-rune, using rune indices into s
// as cluster values.
func (b *Buffer) AddString(s string) {
	i := 0
	for _, r := range s {
		b.AddRune(r, i)
		i++
	}
}

// PreAllocate reserves capacity for at least size glyphs, to avoid
// reallocation while shaping grows or shrinks glyph count.
func (b *Buffer) PreAllocate(size int) {
	if cap(b.Info) < size {
		info := make([]GlyphInfo, len(b.Info), size)
		copy(info, b.Info)
		b.Info = info
		pos := make([]GlyphPosition, len(b.Pos), size)
		copy(pos, b.Pos)
		b.Pos = pos
	}
}

func (b *Buffer) computeMaxOps() {
	n := len(b.Info)
	b.maxLen = maxOf(n*maxLenFactor, maxLenMin)
	b.maxOps = maxOf(n*maxOpsFactor, maxOpsMin)
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (b *Buffer) decrementMaxOps() bool {
	b.maxOps--
	return b.maxOps > 0
}

// guessSegmentProperties fills in any of Direction/Script/Language that
// the caller left unset, by inspecting the first character with a
// strong script in Info, mirroring hb_buffer_guess_segment_properties.
func (b *Buffer) guessSegmentProperties() {
	if b.Props.Script == 0 || b.Props.Script == language.Common {
		for _, info := range b.Info {
			script := scriptForRune(info.codepoint)
			if script != 0 && script != language.Common && script != language.Inherited {
				b.Props.Script = script
				break
			}
		}
	}
	if !b.Props.Direction.isValid() {
		b.Props.Direction = scriptHorizontalDirection(b.Props.Script)
		if b.Props.Direction == DirectionInvalid {
			b.Props.Direction = LeftToRight
		}
	}
	if b.Props.Language == "" {
		b.Props.Language = language.DefaultLanguage()
	}
}

// setUnicodeProps computes per-glyph Unicode properties for every
// codepoint in Info and marks every ZWJ and every combining mark (other
// than at index 0) as a continuation, so later cluster merging treats
// them as part of the preceding cluster; ZWNJ is not a continuation.
func (b *Buffer) setUnicodeProps() {
	info := b.Info
	for i := range info {
		info[i].setUnicodeProps(b)
		if i > 0 && (info[i].isZwj() || (info[i].isUnicodeMark() && i > 0)) {
			info[i].setContinuation()
		}
	}
}

// resetMasks sets every glyph's Mask to the given value, clearing any
// per-feature masks set by a previous plan; called once per shape() call
// before otMap.substitute/position carve out feature-specific bits.
func (b *Buffer) resetMasks(mask GlyphMask) {
	for i := range b.Info {
		b.Info[i].Mask = mask
	}
}

// setMasks replaces the bits selected by mask with (value&mask) in Mask
// for every glyph whose Cluster lies in [clusterStart, clusterEnd),
// leaving glyphs outside the range untouched; used to apply a user
// Feature's value over its codepoint range.
func (b *Buffer) setMasks(value, mask GlyphMask, clusterStart, clusterEnd int) {
	notMask := ^mask
	value &= mask

	if mask == 0 {
		return
	}

	if clusterStart == 0 && clusterEnd == maxClusterEnd {
		for i := range b.Info {
			b.Info[i].Mask = (b.Info[i].Mask & notMask) | value
		}
		return
	}

	for i := range b.Info {
		c := b.Info[i].Cluster
		if clusterStart <= c && c < clusterEnd {
			b.Info[i].Mask = (b.Info[i].Mask & notMask) | value
		}
	}
}

const maxClusterEnd = int(^uint(0) >> 1)

// mergeClusters merges the Cluster values of glyphs in [start, end) in
// the "in" (not yet consumed) array to all equal the minimum cluster in
// that range, so later breaking cannot split a single source character's
// resulting glyphs across a line; see the ClusterLevel docs.
func (b *Buffer) mergeClusters(start, end int) {
	if end-start < 2 {
		return
	}
	if b.ClusterLevel == Characters {
		return
	}

	cluster := b.Info[start].Cluster
	for i := start + 1; i < end; i++ {
		if b.Info[i].Cluster < cluster {
			cluster = b.Info[i].Cluster
		}
	}
	// extend backward/forward over continuations belonging to this range
	for start != 0 && b.Info[start].Cluster == b.Info[start-1].Cluster {
		start--
	}
	for end < len(b.Info) && b.Info[end].Cluster == b.Info[end-1].Cluster {
		end++
	}
	for i := start; i < end; i++ {
		if b.Info[i].Cluster != cluster {
			b.scratchFlags |= bsfHasUnsafeToConcat
			b.Info[i].setCluster(cluster, 0)
		}
	}
}

// mergeOutClusters is mergeClusters' counterpart operating on the
// already-produced outInfo array (used by AAT engines, which write
// directly to outInfo rather than going through the GSUB cursor protocol).
func (b *Buffer) mergeOutClusters(start, end int) {
	if end-start < 2 {
		return
	}
	if b.ClusterLevel == Characters {
		return
	}

	cluster := b.outInfo[start].Cluster
	for i := start + 1; i < end; i++ {
		if b.outInfo[i].Cluster < cluster {
			cluster = b.outInfo[i].Cluster
		}
	}
	for start != 0 && b.outInfo[start].Cluster == b.outInfo[start-1].Cluster {
		start--
	}
	for end < len(b.outInfo) && end < b.outLen && b.outInfo[end].Cluster == b.outInfo[end-1].Cluster {
		end++
	}
	for i := start; i < end; i++ {
		if b.outInfo[i].Cluster != cluster {
			b.outInfo[i].setCluster(cluster, 0)
		}
	}
}

// unsafeToBreak marks with GlyphUnsafeToBreak every glyph in [start, end)
// of the "in" array whose cluster differs from the smallest cluster in
// the range, so a range lying within a single cluster is left unmarked,
// matching hb_buffer_t::unsafe_to_break.
func (b *Buffer) unsafeToBreak(start, end int) {
	if end-start < 2 {
		return
	}
	b.unsafeToBreakImpl(b.Info, start, end)
}

func (b *Buffer) unsafeToBreakImpl(info []GlyphInfo, start, end int) {
	cluster := info[start].Cluster
	for i := start + 1; i < end; i++ {
		if info[i].Cluster != cluster {
			cluster = minInt(cluster, info[i].Cluster)
		}
	}
	for i := start; i < end; i++ {
		if info[i].Cluster != cluster {
			info[i].Mask |= GlyphUnsafeToBreak | GlyphUnsafeToConcat
		}
	}
	b.scratchFlags |= bsfHasGlyphFlags
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// unsafeToConcat is the weaker counterpart of unsafeToBreak: it only
// forbids splicing two independently-shaped runs together at this
// boundary, not re-shaping a line break here.
func (b *Buffer) unsafeToConcat(start, end int) {
	if b.Flags&ProduceUnsafeToConcat == 0 {
		return
	}
	if end-start < 1 {
		return
	}
	for i := start; i < end; i++ {
		b.Info[i].Mask |= GlyphUnsafeToConcat
	}
	b.scratchFlags |= bsfHasGlyphFlags
}

// unsafeToBreakFromOutbuffer/unsafeToConcatFromOutbuffer mark a range
// spanning both the already-produced outInfo tail and the unconsumed
// Info head, used by lookups that match backward into already-emitted
// glyphs (e.g. backtrack context in chained contextual lookups).
func (b *Buffer) unsafeToBreakFromOutbuffer(start, end int) {
	if start >= b.outLen {
		b.unsafeToBreak(start-b.outLen+b.idx, end-b.outLen+b.idx)
		return
	}
	if end <= b.outLen {
		b.unsafeToBreakImpl(b.outInfo[:b.outLen], start, end)
		return
	}
	for i := start; i < b.outLen; i++ {
		b.outInfo[i].Mask |= GlyphUnsafeToBreak | GlyphUnsafeToConcat
	}
	for i := b.idx; i < end-b.outLen+b.idx; i++ {
		b.Info[i].Mask |= GlyphUnsafeToBreak | GlyphUnsafeToConcat
	}
	b.scratchFlags |= bsfHasGlyphFlags
}

func (b *Buffer) unsafeToConcatFromOutbuffer(start, end int) {
	if b.Flags&ProduceUnsafeToConcat == 0 {
		return
	}
	if start >= b.outLen {
		b.unsafeToConcat(start-b.outLen+b.idx, end-b.outLen+b.idx)
		return
	}
	if end <= b.outLen {
		for i := start; i < end; i++ {
			b.outInfo[i].Mask |= GlyphUnsafeToConcat
		}
		b.scratchFlags |= bsfHasGlyphFlags
		return
	}
	for i := start; i < b.outLen; i++ {
		b.outInfo[i].Mask |= GlyphUnsafeToConcat
	}
	for i := b.idx; i < end-b.outLen+b.idx; i++ {
		b.Info[i].Mask |= GlyphUnsafeToConcat
	}
	b.scratchFlags |= bsfHasGlyphFlags
}

// clearOutput resets the write side of the in/out protocol, ready for a
// fresh GSUB or normalization pass over the current Info.
func (b *Buffer) clearOutput() {
	b.havingOutput = true
	b.idx = 0
	b.outLen = 0
	if cap(b.outInfo) < len(b.Info) {
		b.outInfo = make([]GlyphInfo, 0, len(b.Info)+32)
	} else {
		b.outInfo = b.outInfo[:0]
	}
}

// clearPositions zeroes every glyph position, used before GPOS runs so
// fallback positioning only has to add to (rather than reset) Pos.
func (b *Buffer) clearPositions() {
	for i := range b.Pos {
		b.Pos[i] = GlyphPosition{}
	}
}

// cur returns a pointer to the glyph `offset` positions after the
// current cursor in the "in" array (offset 0 is the glyph about to be
// consumed).
func (b *Buffer) cur(offset int) *GlyphInfo {
	return &b.Info[b.idx+offset]
}

// curPos is cur's positional counterpart.
func (b *Buffer) curPos(offset int) *GlyphPosition {
	return &b.Pos[b.idx+offset]
}

// prev returns the last glyph written to outInfo; when nothing has been
// written yet it returns the first slot of outInfo, whatever it holds.
func (b *Buffer) prev() *GlyphInfo {
	i := b.outLen - 1
	if i < 0 {
		i = 0
	}
	return &b.outInfo[i]
}

// backtrackLen returns the number of glyphs already appended to outInfo.
func (b *Buffer) backtrackLen() int { return b.outLen }

// lookaheadLen returns the number of unconsumed glyphs remaining in Info.
func (b *Buffer) lookaheadLen() int { return len(b.Info) - b.idx }

// outInfoAppend appends gi to outInfo, growing it if needed, and bumps outLen.
func (b *Buffer) outInfoAppend(gi GlyphInfo) {
	if b.outLen < len(b.outInfo) {
		b.outInfo[b.outLen] = gi
	} else {
		b.outInfo = append(b.outInfo, gi)
	}
	b.outLen++
}

// replaceGlyphIndex overwrites the glyph id of the current "in" glyph,
// without advancing idx or touching outInfo; used when a single
// substitution leaves cluster/position bookkeeping untouched.
func (b *Buffer) replaceGlyphIndex(glyphIndex GID) {
	b.Info[b.idx].Glyph = glyphIndex
}

// nextGlyph copies the current "in" glyph to outInfo unchanged and
// advances idx, the GSUB equivalent of "no lookup matched here".
func (b *Buffer) nextGlyph() {
	if b.havingOutput {
		b.outInfoAppend(b.Info[b.idx])
	}
	b.idx++
}

// nextGlyphs is nextGlyph copying n glyphs at once.
func (b *Buffer) nextGlyphs(n int) {
	if b.havingOutput {
		for i := 0; i < n; i++ {
			b.outInfoAppend(b.Info[b.idx+i])
		}
	}
	b.idx += n
}

// skipGlyph advances idx without copying the current glyph to outInfo,
// used by the context-matching "skippy iterator" to pass over
// marks/ligature-components that a lookup ignores.
func (b *Buffer) skipGlyph() { b.idx++ }

// copyGlyph appends the current "in" glyph to outInfo without advancing
// idx, used when an AAT rule needs to duplicate a glyph in place.
func (b *Buffer) copyGlyph() {
	b.outInfoAppend(b.Info[b.idx])
}

// replaceGlyphs performs a GSUB multiple/ligature substitution: it
// consumes numIn glyphs from Info starting at idx, and emits
// glyphData as the replacement, merging their clusters appropriately,
// then advances idx past the consumed input.
func (b *Buffer) replaceGlyphs(numIn int, clusterSources []GlyphInfo, glyphData []GID) {
	b.mergeClusters(b.idx, b.idx+numIn)

	origInfo := b.Info[b.idx]
	for _, g := range glyphData {
		gi := origInfo
		gi.Glyph = g
		if clusterSources != nil {
			// unused by current callers; kept for API symmetry with hb.
		}
		b.outInfoAppend(gi)
	}
	b.idx += numIn
}

// deleteGlyph removes the current "in" glyph entirely (neither copying
// it to outInfo, nor leaving a tombstone), merging its cluster into its
// neighbors first so Cluster bookkeeping stays consistent.
func (b *Buffer) deleteGlyph() {
	cluster := b.Info[b.idx].Cluster
	if b.outLen != 0 && cluster == b.outInfo[b.outLen-1].Cluster {
		// merges away silently: cluster already represented in output
	} else if b.idx+1 < len(b.Info) && cluster == b.Info[b.idx+1].Cluster {
		// next glyph carries the same cluster forward
	} else if b.outLen != 0 {
		// merge cluster backward into the glyphs already output
		if cluster < b.outInfo[b.outLen-1].Cluster {
			mask := b.Info[b.idx].Mask
			oldCluster := b.outInfo[b.outLen-1].Cluster
			for i := b.outLen; i != 0 && b.outInfo[i-1].Cluster == oldCluster; i-- {
				b.outInfo[i-1].setCluster(cluster, mask)
			}
		}
	} else if b.idx+1 < len(b.Info) {
		// merge cluster forward into the next glyph
		b.mergeClusters(b.idx, b.idx+2)
	}
	b.idx++
}

// deleteGlyphsInplace removes every glyph for which filter returns true,
// compacting Info/Pos in place, used by AAT engines after writing
// deletion tombstones (glyph id 0xFFFF) during a pass.
func (b *Buffer) deleteGlyphsInplace(filter func(*GlyphInfo) bool) {
	info := b.Info
	pos := b.Pos
	j := 0
	for i := range info {
		if filter(&info[i]) {
			if j != 0 {
				b.mergeClustersImpl(info, j-1, j+1)
			}
			continue
		}
		if i != j {
			info[j] = info[i]
			pos[j] = pos[i]
		}
		j++
	}
	b.Info = info[:j]
	b.Pos = pos[:j]
}

func (b *Buffer) mergeClustersImpl(info []GlyphInfo, start, end int) {
	if end > len(info) {
		end = len(info)
	}
	if end-start < 2 {
		return
	}
	cluster := info[start].Cluster
	for i := start + 1; i < end; i++ {
		if info[i].Cluster < cluster {
			cluster = info[i].Cluster
		}
	}
	for i := start; i < end; i++ {
		info[i].Cluster = cluster
	}
}

// swapBuffers finishes a GSUB/normalize pass: it truncates outInfo to
// outLen, swaps it with Info (and a freshly sized Pos), and resets idx.
func (b *Buffer) swapBuffers() {
	if !b.havingOutput {
		return
	}
	b.outInfo = b.outInfo[:b.outLen]
	b.Info, b.outInfo = b.outInfo, b.Info
	if cap(b.Pos) < len(b.Info) {
		b.Pos = make([]GlyphPosition, len(b.Info))
	} else {
		b.Pos = b.Pos[:len(b.Info)]
		for i := range b.Pos {
			b.Pos[i] = GlyphPosition{}
		}
	}
	b.idx = 0
	b.outLen = 0
	b.havingOutput = false
}

// moveTo repositions the cursor to point at the in-array index i,
// flushing or replaying glyphs between the current idx and i through
// outInfo so the in/out invariant is preserved; used by AAT rule
// actions that jump the cursor non-sequentially (e.g. to a ligature's
// start after consuming its components).
func (b *Buffer) moveTo(i int) {
	if !b.havingOutput {
		b.idx = i
		return
	}
	if i < b.outLen {
		// rewinding: drop the tail of outInfo back to i
		b.outLen = i
		b.idx = i
		return
	}
	for b.idx < i && b.idx < len(b.Info) {
		b.nextGlyph()
	}
}

// reverseRange reverses the glyph order (Info, Pos) in [start, end).
func (b *Buffer) reverseRange(start, end int) {
	for start < end {
		end--
		b.Info[start], b.Info[end] = b.Info[end], b.Info[start]
		b.Pos[start], b.Pos[end] = b.Pos[end], b.Pos[start]
		start++
	}
}

// Reverse reverses the whole buffer; used to bring RTL/BTT runs back to
// logical order (or to visual order, depending on call site) around
// complex-shaper reordering passes.
func (b *Buffer) Reverse() { b.reverseRange(0, len(b.Info)) }

// reverseClusters reverses cluster order while keeping each cluster's
// internal glyph order intact, matching hb_buffer_t::reverse_clusters,
// used for the final RTL output reordering where merged clusters (e.g.
// ligatures) must not be internally flipped.
func (b *Buffer) reverseClusters() {
	if len(b.Info) == 0 {
		return
	}
	iter, count := b.clusterIterator()
	type span struct{ start, end int }
	var spans []span
	for start, end := iter.next(); start < count; start, end = iter.next() {
		spans = append(spans, span{start, end})
	}
	for i, j := 0, len(spans)-1; i < j; i, j = i+1, j-1 {
		spans[i], spans[j] = spans[j], spans[i]
	}
	newInfo := make([]GlyphInfo, 0, len(b.Info))
	newPos := make([]GlyphPosition, 0, len(b.Pos))
	for _, s := range spans {
		newInfo = append(newInfo, b.Info[s.start:s.end]...)
		newPos = append(newPos, b.Pos[s.start:s.end]...)
	}
	copy(b.Info, newInfo)
	copy(b.Pos, newPos)
}

// sort stably reorders [start, end) of Info/Pos using less, fixing up
// Cluster-merge invariants the way hb_buffer_t::sort does (used by
// complex shapers needing a custom tie-broken ordering, e.g. Khmer/USE
// reordering of repositioned marks).
func (b *Buffer) sort(start, end int, less func(a, b *GlyphInfo) bool) {
	for i := start + 1; i < end; i++ {
		j := i
		for j > start && less(&b.Info[i], &b.Info[j-1]) {
			j--
		}
		if i == j {
			continue
		}
		// move item i to position j, merging the clusters it moves across
		b.mergeClusters(j, i+1)
		t, tp := b.Info[i], b.Pos[i]
		copy(b.Info[j+1:i+1], b.Info[j:i])
		copy(b.Pos[j+1:i+1], b.Pos[j:i])
		b.Info[j], b.Pos[j] = t, tp
	}
}

// ensureNativeDirection flips the buffer so its glyph order matches the
// font's native (left-to-right internal storage) direction before
// GSUB/GPOS lookups run. Nothing is recorded here: position() reverses
// the buffer again for backward directions once positioning is done.
func (b *Buffer) ensureNativeDirection() {
	direction := b.Props.Direction
	horizontal := direction.isHorizontal()

	if (horizontal && direction == RightToLeft) || (!horizontal && direction == BottomToTop) {
		if len(b.Info) == 1 {
			return
		}
		b.Reverse()
	}
}

// allocateLigID hands out the next small (3-bit, non-zero, never equal
// to an adjacent previous value) ligature id used to group a ligature
// glyph with the marks attached to its components.
func (b *Buffer) allocateLigID() uint8 {
	b.serial++
	ligID := b.serial & 0x07
	if ligID == 0 {
		b.serial++
		ligID = b.serial & 0x07
	}
	return ligID
}

// digest returns a Bloom-style coverage filter over every glyph id
// currently present in Info, used to let GSUB/GPOS quickly skip lookups
// that cannot possibly apply to this buffer.
func (b *Buffer) digest() setDigest {
	var sd setDigest
	for _, info := range b.Info {
		sd.add(info.Glyph)
	}
	return sd
}

// insertDottedCircle inserts a U+25CC DOTTED CIRCLE glyph at the start
// of the buffer when the text begins with a mark with no preceding
// base, so the font can render the orphaned mark legibly, unless the
// caller opted out via DoNotInsertDottedCircle.
func (b *Buffer) insertDottedCircle(font *Font) {
	if b.Flags&DoNotInsertDottedCircle != 0 {
		return
	}
	if len(b.Info) == 0 || !b.Info[0].isUnicodeMark() {
		return
	}
	if font == nil || !font.hasGlyph(0x25CC) {
		return
	}

	dottedCircle := GlyphInfo{codepoint: 0x25CC, Cluster: b.Info[0].Cluster}
	dottedCircle.setUnicodeProps(b)

	b.Info = append(b.Info, GlyphInfo{})
	copy(b.Info[1:], b.Info[:len(b.Info)-1])
	b.Info[0] = dottedCircle

	b.Pos = append(b.Pos, GlyphPosition{})
	copy(b.Pos[1:], b.Pos[:len(b.Pos)-1])
	b.Pos[0] = GlyphPosition{}
}

// formClusters recomputes cluster grouping from scratch at
// MonotoneGraphemes level: it walks grapheme-cluster boundaries over the
// original text and merges every glyph produced from the same grapheme
// into a single cluster, the way hb_buffer_t::form_clusters does before
// complex shapers run.
func (b *Buffer) formClusters() {
	if b.ClusterLevel != MonotoneGraphemes {
		return
	}
	info := b.Info
	if len(info) == 0 {
		return
	}
	for i := 1; i < len(info); i++ {
		if info[i].isContinuation() {
			b.mergeClusters(i-1, i+1)
		}
	}
}

// rangeIterator walks disjoint, contiguous [start, end) spans of Info
// grouped by a caller-supplied equivalence (same cluster, same syllable
// byte, same grapheme-cluster), mirroring hb_buffer_t::cluster_iterator.
type rangeIterator struct {
	info    []GlyphInfo
	idx     int
	sameRun func(a, b *GlyphInfo) bool
}

// next returns the next [start, end) span, or (count, count) once
// exhausted, so `for start, end := iter.next(); start < count; ...`
// terminates cleanly.
func (it *rangeIterator) next() (start, end int) {
	n := len(it.info)
	if it.idx >= n {
		return n, n
	}
	start = it.idx
	end = start + 1
	for end < n && it.sameRun(&it.info[start], &it.info[end]) {
		end++
	}
	it.idx = end
	return start, end
}

func (b *Buffer) clusterIterator() (rangeIterator, int) {
	return rangeIterator{
		info: b.Info,
		sameRun: func(a, c *GlyphInfo) bool {
			return a.Cluster == c.Cluster
		},
	}, len(b.Info)
}

func (b *Buffer) syllableIterator() (rangeIterator, int) {
	return rangeIterator{
		info: b.Info,
		sameRun: func(a, c *GlyphInfo) bool {
			return a.syllable == c.syllable
		},
	}, len(b.Info)
}

func (b *Buffer) graphemesIterator() (rangeIterator, int) {
	return rangeIterator{
		info: b.Info,
		sameRun: func(a, c *GlyphInfo) bool {
			return c.isContinuation()
		},
	}, len(b.Info)
}
