package harfbuzz

import (
	"fmt"
	"strings"
)

// ported in the style of ot_shaper.go's internal shaperOpentype, this
// file is the package's public entry point (spec.md §6 External
// Interfaces): where ot_shaper.go's shape() method is the engine,
// Shaper/Shape are what a caller outside this package actually uses.

// Shaper binds a Font to the shaping entry point, mirroring
// hb_shape_t's role: construct one per font, then call Shape for each
// run of text that needs glyph positions. Shaper holds no per-call
// state itself; ShaperData-equivalent caches (the GSUB/GPOS lookup
// accelerators) already live on Font and are built once in NewFont,
// so a Shaper is cheap to create and safe to share across goroutines
// provided each call is given its own Buffer (spec.md §5).
type Shaper struct {
	font *Font
}

// NewShaper returns a Shaper bound to font.
func NewShaper(font *Font) *Shaper {
	return &Shaper{font: font}
}

// Shape runs the full shaping pipeline (spec.md §4.8) over buffer and
// returns it, now holding the shaped glyph sequence (cmap-resolved
// glyph ids, GSUB/AAT morx-substituted, GPOS/AAT kerx|kern|trak-
// positioned). See the package-level Shape for the details; Shaper
// exists only to pair a Font with the call the way callers juggling
// several fonts expect.
func (s *Shaper) Shape(buffer *Buffer, features []Feature) *Buffer {
	return Shape(s.font, buffer, features)
}

// Shape is the package-level shaping entry point: given a Font and a
// Buffer already populated via AddRune/AddRunes/AddString, it resolves
// any unset segment properties, compiles a Shape Plan for the chosen
// script/language/direction, then substitutes and positions buffer in
// place (spec.md §4.8 steps 1-9). The returned Buffer is the same
// value, now safe to read as a GlyphBuffer (spec.md §3's Lifecycle:
// shape "consumes [the buffer] and returns a GlyphBuffer read-only
// view").
//
// If font carries variation coordinates (set via NewFont), each of
// GSUB/GPOS is resolved against its own FeatureVariations table
// (spec.md §4.5) through shaperOpentype.init/varCoordsAsTables, so a
// variable font picks up the lookup substitutions its design-space
// position selects rather than always shaping at the default
// instance.
func Shape(font *Font, buffer *Buffer, features []Feature) *Buffer {
	if len(buffer.Info) == 0 {
		buffer.scratchFlags = bsfDefault
		return buffer
	}

	buffer.guessSegmentProperties()

	var sh shaperOpentype
	sh.init(font.face.Font, font.varCoordsAsTables())
	sh.compile(buffer.Props, features)
	sh.shape(font, buffer, features)

	return buffer
}

// UnicodeBuffer and GlyphBuffer are spec.md's pre- and post-shape
// buffer views (§3 Lifecycle, §6 External Interfaces). This module
// realizes both as the same Buffer type: Buffer's dual in/out array
// model (spec.md §9) already tracks every bit of state a separate
// read-only GlyphBuffer wrapper would duplicate, and nothing in this
// package ever hands a caller a Buffer mid-pass, so the "read-only
// view" guarantee holds without a distinct type.
type UnicodeBuffer = Buffer
type GlyphBuffer = Buffer

// SerializeFlags controls which fields GlyphBuffer.Serialize emits,
// mirroring spec.md §6's serializer grammar.
type SerializeFlags uint16

const (
	SerializeNoGlyphNames SerializeFlags = 1 << iota
	SerializeNoClusters
	SerializeNoPositions
	SerializeNoAdvances
	SerializeGlyphFlags
)

// Serialize renders buffer's shaped contents as a pipe-separated
// `glyph(=cluster)?(@x,y)?(+xAdv(,yAdv)?)?(#flags)?` per position.
// Glyph names are never available from this package's Font (the
// go-text/typesetting Face this module shapes against exposes no
// 'post'-table name lookup), so glyphs are always rendered by numeric
// id regardless of SerializeNoGlyphNames — the flag is still accepted
// (and a no-op) so callers porting a HarfBuzz-style flag set don't
// need a special case for this shaper.
func (b *Buffer) Serialize(flags SerializeFlags) string {
	var sb strings.Builder
	for i := range b.Info {
		if i > 0 {
			sb.WriteByte('|')
		}
		info := &b.Info[i]
		fmt.Fprintf(&sb, "%d", info.Glyph)

		if flags&SerializeNoClusters == 0 {
			fmt.Fprintf(&sb, "=%d", info.Cluster)
		}
		if flags&SerializeNoPositions == 0 {
			pos := &b.Pos[i]
			fmt.Fprintf(&sb, "@%d,%d", pos.XOffset, pos.YOffset)
		}
		if flags&SerializeNoAdvances == 0 {
			pos := &b.Pos[i]
			if pos.YAdvance != 0 {
				fmt.Fprintf(&sb, "+%d,%d", pos.XAdvance, pos.YAdvance)
			} else {
				fmt.Fprintf(&sb, "+%d", pos.XAdvance)
			}
		}
		if flags&SerializeGlyphFlags != 0 && info.Mask&(GlyphUnsafeToBreak|GlyphUnsafeToConcat) != 0 {
			sb.WriteString("#")
			if info.Mask&GlyphUnsafeToBreak != 0 {
				sb.WriteByte('B')
			}
			if info.Mask&GlyphUnsafeToConcat != 0 {
				sb.WriteByte('C')
			}
		}
	}
	return sb.String()
}
