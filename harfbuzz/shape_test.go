package harfbuzz

import "testing"

func TestSerializeDefaultFlags(t *testing.T) {
	b := &Buffer{
		Info: []GlyphInfo{
			{Glyph: 3, Cluster: 0},
			{Glyph: 7, Cluster: 1},
		},
		Pos: []GlyphPosition{
			{XAdvance: 10},
			{XAdvance: 12, YOffset: -2},
		},
	}

	got := b.Serialize(0)
	want := "3=0@0,0+10|7=1@0,-2+12"
	if got != want {
		t.Fatalf("Serialize(0) = %q, want %q", got, want)
	}
}

func TestSerializeSuppressesFields(t *testing.T) {
	b := &Buffer{
		Info: []GlyphInfo{{Glyph: 5, Cluster: 2}},
		Pos:  []GlyphPosition{{XAdvance: 9}},
	}

	got := b.Serialize(SerializeNoClusters | SerializeNoPositions | SerializeNoAdvances)
	if got != "5" {
		t.Fatalf("Serialize with all optional fields suppressed = %q, want %q", got, "5")
	}
}

func TestSerializeGlyphFlags(t *testing.T) {
	b := &Buffer{
		Info: []GlyphInfo{{Glyph: 1, Mask: GlyphUnsafeToBreak | GlyphUnsafeToConcat}},
		Pos:  []GlyphPosition{{}},
	}

	got := b.Serialize(SerializeGlyphFlags)
	want := "1=0@0,0+0#BC"
	if got != want {
		t.Fatalf("Serialize(SerializeGlyphFlags) = %q, want %q", got, want)
	}
}

func TestSerializeEmptyBuffer(t *testing.T) {
	b := &Buffer{}
	if got := b.Serialize(0); got != "" {
		t.Fatalf("Serialize of an empty buffer = %q, want empty string", got)
	}
}

func TestShapeEmptyBufferIsNoop(t *testing.T) {
	b := &Buffer{}
	b.scratchFlags = bsfHasNonASCII // any non-default value

	out := Shape(nil, b, nil)
	if out != b {
		t.Fatal("Shape must return the same buffer value it was given")
	}
	if out.scratchFlags != bsfDefault {
		t.Fatalf("scratchFlags = %v, want bsfDefault on an empty buffer", out.scratchFlags)
	}
}

func TestVarCoordsAsTablesNilForUnset(t *testing.T) {
	f := &Font{}
	if got := f.varCoordsAsTables(); got != nil {
		t.Fatalf("varCoordsAsTables() on a non-variable Font = %v, want nil", got)
	}
}

func TestVarCoordsAsTablesConvertsEachAxis(t *testing.T) {
	f := &Font{coords: []float32{0.5, -1}}
	got := f.varCoordsAsTables()
	if len(got) != 2 || got[0] != 0.5 || got[1] != -1 {
		t.Fatalf("varCoordsAsTables() = %v, want [0.5 -1]", got)
	}
}
