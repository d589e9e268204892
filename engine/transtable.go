package engine

import (
	"sync/atomic"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// Bound types, matching the teacher's Lower/Upper/Exact convention.
const (
	BoundLower = 1
	BoundUpper = 2
	BoundExact = BoundLower | BoundUpper
)

// bucketSlots is the number of lockless slots sharing one hash bucket:
// a depth/generation-preferred replacement scheme needs at least two
// candidates to choose a victim from, per spec section 4.E.
const bucketSlots = 2

// ttData packs everything an entry stores except the position key into
// one 64-bit word: 18 bits for the Move, 16 for the score (offset so
// it's never negative), 8 for depth, 2 for the bound type, 8 for the
// search generation the entry was written in.
type ttData uint64

func packTTData(move c.Move, score, depth, bound, generation int) ttData {
	return ttData(uint64(move)&0x3FFFF |
		uint64(uint16(score+32768))<<18 |
		uint64(uint8(depth))<<34 |
		uint64(bound&3)<<42 |
		uint64(uint8(generation))<<44)
}

func (d ttData) move() c.Move      { return c.Move(d & 0x3FFFF) }
func (d ttData) score() int        { return int(uint16(d>>18)) - 32768 }
func (d ttData) depth() int        { return int(uint8(d >> 34)) }
func (d ttData) bound() int        { return int((d >> 42) & 3) }
func (d ttData) generation() int   { return int(uint8(d >> 44)) }

// ttSlot is one lockless-hashing slot: key stores hash^data, data
// stores data. A correctly paired read reconstructs the wanted hash as
// key^data; readers never block writers and writers never block
// readers, at the cost of an occasional false miss under a concurrent
// write to the same slot, the standard trade-off this scheme makes
// (and the one the teacher's pkg/engine/transtable.go CAS-gated tables
// exist to avoid by serializing access instead — this module needs the
// wait-free property for the root-split search's worker pool, so it
// takes the XOR scheme over the teacher's gate).
type ttSlot struct {
	key  atomic.Uint64
	data atomic.Uint64
}

// ttBucket groups bucketSlots lockless slots under one hash index, so
// Store can pick a victim instead of always overwriting the one entry
// a hash maps to.
type ttBucket struct {
	slots [bucketSlots]ttSlot
}

// TransTable is a fixed-size, lockless transposition table shared by
// every search worker. Replacement within a bucket prefers a slot left
// over from an older search generation; failing that, it keeps
// whichever entry is deeper, per spec section 4.E.
type TransTable struct {
	buckets    []ttBucket
	mask       uint64
	generation atomic.Uint32
}

// NewTransTable builds a table sized to the nearest power of two
// number of buckets fitting in megabytes MB.
func NewTransTable(megabytes int) *TransTable {
	bucketBytes := bucketSlots * 16
	size := roundPowerOfTwo(1024 * 1024 * megabytes / bucketBytes)
	if size < 1 {
		size = 1
	}
	return &TransTable{
		buckets: make([]ttBucket, size),
		mask:    uint64(size - 1),
	}
}

func roundPowerOfTwo(size int) int {
	x := 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

// Clear resets every slot, discarding all stored entries.
func (tt *TransTable) Clear() {
	for i := range tt.buckets {
		for j := range tt.buckets[i].slots {
			tt.buckets[i].slots[j].key.Store(0)
			tt.buckets[i].slots[j].data.Store(0)
		}
	}
	tt.generation.Store(0)
}

// Megabytes reports the table's configured size.
func (tt *TransTable) Megabytes() int {
	return len(tt.buckets) * bucketSlots * 16 / (1024 * 1024)
}

// NewSearch bumps the table's generation counter. The engine calls this
// once per search so Store can tell a bucket's leftover entries from a
// previous search apart from entries this search has already written,
// and prefer to evict the former.
func (tt *TransTable) NewSearch() {
	tt.generation.Add(1)
}

// Probe looks up hash across every slot in its bucket. ok is false on a
// miss or a torn concurrent read.
func (tt *TransTable) Probe(hash uint64) (move c.Move, score, depth, bound int, ok bool) {
	bucket := &tt.buckets[hash&tt.mask]
	for i := range bucket.slots {
		key := bucket.slots[i].key.Load()
		data := bucket.slots[i].data.Load()
		if data == 0 {
			continue
		}
		if key^data == hash {
			d := ttData(data)
			return d.move(), d.score(), d.depth(), d.bound(), true
		}
	}
	return c.MoveEmpty, 0, 0, 0, false
}

// Store records an entry for hash, picking a victim slot in hash's
// bucket: an empty slot first, then a slot left over from an older
// generation, then the shallower of the bucket's entries — and only if
// that victim is itself from an older generation or no deeper than the
// new entry, so a deep same-generation entry already in the table
// survives a shallower Store.
//
// Writing data before key means a racing reader that catches the table
// mid-update sees a key^data that does not equal hash and correctly
// reports a miss rather than corrupted data.
func (tt *TransTable) Store(hash uint64, move c.Move, score, depth, bound int) {
	bucket := &tt.buckets[hash&tt.mask]
	currentGen := int(tt.generation.Load())

	victim := 0
	victimData := ttData(0)
	haveVictim := false
	for i := range bucket.slots {
		raw := bucket.slots[i].data.Load()
		if raw == 0 {
			victim, victimData, haveVictim = i, 0, true
			break
		}
		existing := ttData(raw)
		if !haveVictim {
			victim, victimData, haveVictim = i, existing, true
			continue
		}
		if replaces(existing, victimData, currentGen) {
			victim, victimData = i, existing
		}
	}

	if haveVictim && victimData != 0 && victimData.generation() == currentGen && depth < victimData.depth() {
		return
	}

	data := packTTData(move, score, depth, bound, currentGen)
	bucket.slots[victim].data.Store(uint64(data))
	bucket.slots[victim].key.Store(hash ^ uint64(data))
}

// replaces reports whether candidate is a better eviction target than
// incumbent: older-generation entries go first, then the shallower one.
func replaces(candidate, incumbent ttData, currentGen int) bool {
	candidateStale := candidate.generation() != currentGen
	incumbentStale := incumbent.generation() != currentGen
	if candidateStale != incumbentStale {
		return candidateStale
	}
	return candidate.depth() < incumbent.depth()
}
