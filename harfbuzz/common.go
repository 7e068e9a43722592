package harfbuzz

import (
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/go-text/typesetting/language"
)

// GID is a glyph index, as used by a font.
type GID = tables.GlyphID

// gID is the lowercase-internal alias layout-matching code uses when
// indexing coverage/class tables, mirroring the exported/internal
// naming split HarfBuzz itself keeps between hb_codepoint_t call sites.
type gID = tables.GlyphID

// Direction is the text flow direction of the buffer. Requests can be set
// using explicit values, when setup_properties is called, direction will
// be set to the one of LeftToRight, RightToLeft, TopToBottom, or
// BottomToTop.
type Direction uint8

const (
	DirectionInvalid Direction = iota
	LeftToRight
	RightToLeft
	TopToBottom
	BottomToTop
)

func (d Direction) isValid() bool      { return d != DirectionInvalid }
func (d Direction) isHorizontal() bool { return d == LeftToRight || d == RightToLeft }
func (d Direction) isVertical() bool   { return d == TopToBottom || d == BottomToTop }
func (d Direction) isForward() bool    { return d == LeftToRight || d == TopToBottom }
func (d Direction) isBackward() bool   { return d == RightToLeft || d == BottomToTop }

func (d Direction) reverse() Direction {
	switch d {
	case LeftToRight:
		return RightToLeft
	case RightToLeft:
		return LeftToRight
	case TopToBottom:
		return BottomToTop
	case BottomToTop:
		return TopToBottom
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LTR"
	case RightToLeft:
		return "RTL"
	case TopToBottom:
		return "TTB"
	case BottomToTop:
		return "BTT"
	default:
		return "invalid"
	}
}

// SegmentProperties holds the set of properties that define the
// segment of text to shape: its direction, script and language.
// It is resolved once at the start of shaping (from user-provided
// values, and, where missing, guessed from the buffer content) and
// stays fixed for the entire shaping plan.
type SegmentProperties struct {
	Direction Direction
	Script    language.Script
	Language  language.Language
}

// BufferFlags are flags controlling how the buffer should behave,
// set by the user before shaping.
type BufferFlags uint16

const (
	// Buffer flags set automatically by the layer.
	BeginningOfText BufferFlags = 1 << iota
	EndOfText
	// flag indicating that special handling of the default ignorable
	// marks is done, so that it is not done again by the caller.
	PreserveDefaultIgnorables
	RemoveDefaultIgnorables
	// flag indicating that a dotted circle should not be inserted in
	// the rendering of incorrect character sequences (such as when a
	// mark glyph is not expected base).
	DoNotInsertDottedCircle
	// flag indicating that the shaper needs to produce
	// GlyphUnsafeToConcat flags.
	ProduceUnsafeToConcat
)

// ClusterLevel controls how Cluster values are derived from the
// source text and thereafter manipulated by shaping. See the
// individual level documentation for exact semantics.
type ClusterLevel uint8

const (
	// Return cluster values grouped by graphemes, reordering
	// graphemes for RTL/BTT buffers to be in logical order,
	// merging clusters into monotone order: this is the default.
	MonotoneGraphemes ClusterLevel = iota
	// Return cluster values grouped into monotone order, but
	// not necessarily by graphemes.
	MonotoneCharacters
	// Return cluster values as they are, without any merging.
	Characters
)

// Feature holds information about requested feature application.
// The feature will be applied with the given value to all the
// characters in the range [Start, End); the range is interpreted
// as a 0-based codepoint index, not byte index, in the original
// buffer text.
type Feature struct {
	// Tag is the feature tag, as in the font's GSUB/GPOS feature list.
	Tag tables.Tag
	// Value is the value of the feature. 0 disables the feature,
	// non-zero (usually 1) enables the feature. For features
	// implemented as lookup alternates, Value is the alternate index.
	Value uint32
	// Start is the first rune index that this feature applies to.
	Start int
	// End is the first rune index after Start that this feature
	// does not apply to.
	End int
}

// Variation specifies the value of a single font-variation axis, by
// its tag, for a variable font.
type Variation struct {
	Tag   tables.Tag
	Value float32
}
