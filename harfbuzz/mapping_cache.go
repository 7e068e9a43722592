package harfbuzz

import "sync/atomic"

// ported in the style of set_digest.go's bit-packed HarfBuzz port,
// covering hb-ot-layout.hh's hb_cache_t: a small, fixed-capacity,
// open-addressed cache used to memoize a single-glyph-key lookup
// (coverage index, GDEF mark-attachment class, or a pair-pos class)
// during one shaping call, so repeated queries for the same glyph
// inside a lookup's hot loop don't re-walk the font table each time.

// mappingCacheBits/mappingCacheSize fix the cache at 512 slots (keys
// modulo 512, a 9-bit slot index) storing a 6-bit value alongside a
// verification tag, the
// same shape hb_cache_t uses for its default instantiation
// (cache_bits=8, the table's class/coverage caches never need more
// than a handful of distinct small values).
const (
	mappingCacheBits  = 9 // log2(CACHE_SIZE)
	mappingCacheSize  = 1 << mappingCacheBits
	mappingValueBits  = 6
	mappingValueMask  = 1<<mappingValueBits - 1
	mappingInvalidTag = 0xFFFFFFFF
)

// mappingCache maps a 16-bit glyph id to a small value (at most
// mappingValueBits wide). Each slot packs `(key << VALUE_BITS) |
// value` into a uint32 (the whole key serves as the verification tag),
// atomically, so a cache built once per apply
// context can be queried from the engine's single-threaded hot loop
// without extra locking, matching spec.md §4.2 and §5's "relaxed
// atomics, content-addressed and lossy" requirement.
type mappingCache struct {
	slots [mappingCacheSize]uint32
}

func newMappingCache() *mappingCache {
	c := &mappingCache{}
	for i := range c.slots {
		c.slots[i] = mappingInvalidTag
	}
	return c
}

func (c *mappingCache) slotIndex(key uint16) uint16 {
	return key & (mappingCacheSize - 1)
}

// get returns the cached value for key and true on a hit; a miss
// (never set, or a different key hashed to the same slot) returns
// false and the caller falls back to the real lookup.
func (c *mappingCache) get(key uint16) (uint8, bool) {
	slot := c.slotIndex(key)
	packed := atomic.LoadUint32(&c.slots[slot])
	if packed == mappingInvalidTag {
		return 0, false
	}
	keyHigh := packed >> mappingValueBits
	if uint16(keyHigh) != key {
		return 0, false
	}
	return uint8(packed & mappingValueMask), true
}

// set stores value for key, silently doing nothing if value doesn't
// fit mappingValueBits (spec.md §4.2: "silently ignores over-wide
// keys/values").
func (c *mappingCache) set(key uint16, value uint8) {
	if value > mappingValueMask {
		return
	}
	slot := c.slotIndex(key)
	packed := (uint32(key) << mappingValueBits) | uint32(value)
	atomic.StoreUint32(&c.slots[slot], packed)
}
