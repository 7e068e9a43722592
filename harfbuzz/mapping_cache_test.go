package harfbuzz

import "testing"

func TestMappingCacheHitMiss(t *testing.T) {
	c := newMappingCache()

	if _, ok := c.get(42); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.set(42, 7)
	v, ok := c.get(42)
	if !ok || v != 7 {
		t.Fatalf("got (%d, %v), want (7, true)", v, ok)
	}

	// a different key is still a miss even after a sibling slot is set.
	if _, ok := c.get(43); ok {
		t.Fatal("expected miss for unset key")
	}
}

func TestMappingCacheOverwidthValueIgnored(t *testing.T) {
	c := newMappingCache()
	c.set(1, mappingValueMask+1)
	if _, ok := c.get(1); ok {
		t.Fatal("over-width value should not have been cached")
	}
}

func TestMappingCacheKeyCollisionIsDetected(t *testing.T) {
	c := newMappingCache()
	// two keys that hash to the same slot but differ outside the
	// slot-index bits must not be confused with one another.
	other := uint16(1) + mappingCacheSize
	c.set(1, 5)
	if v, ok := c.get(other); ok {
		t.Fatalf("collided key falsely hit with value %d", v)
	}
}
