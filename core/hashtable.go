package core

import (
	"github.com/spaolacci/murmur3"
)

// DefaultHashTableRange is the default slot count used when a table is
// created with range=0 (spec.md §4.B "Hash table").
const DefaultHashTableRange = 100

// HashKey is either an integer key (fitting 64 bits) or a string key,
// discriminated by the table's configured key kind (spec.md §3.1: "Key
// type is stored once in the table (key_runtime_ty)").
type HashKey struct {
	IsString bool
	Int      uint64
	Str      string
}

// IntKey builds an integer HashKey.
func IntKey(v uint64) HashKey { return HashKey{Int: v} }

// StrKey builds a string HashKey.
func StrKey(s string) HashKey { return HashKey{IsString: true, Str: s} }

func (k HashKey) equal(o HashKey) bool {
	if k.IsString != o.IsString {
		return false
	}
	if k.IsString {
		return len(k.Str) == len(o.Str) && k.Str == o.Str
	}
	return k.Int == o.Int
}

type hashEntry struct {
	key      HashKey
	hash     uint32
	value    []byte
	hasValue bool
}

// HashTable is the separate-chaining hash table of spec.md §3.1/§4.B.
// Integer keys hash by value modulo the slot count; string keys hash by
// MurmurHash3-32 (github.com/spaolacci/murmur3, see DESIGN.md). Each
// slot is a singly linked chain; insertion is newest-first per slot, so
// iteration visits entries in insertion-adjacent order within a slot.
type HashTable struct {
	keyKind Kind // the key_runtime_ty this table was created for
	slots   [][]*hashEntry
	count   int
}

// NewHashTable creates a table with the given slot count (0 selects
// DefaultHashTableRange) for keys of the given discriminator.
func NewHashTable(slotCount int, keyKind Kind) *HashTable {
	if slotCount <= 0 {
		slotCount = DefaultHashTableRange
	}
	return &HashTable{
		keyKind: keyKind,
		slots:   make([][]*hashEntry, slotCount),
	}
}

func (t *HashTable) hashOf(key HashKey) uint32 {
	if key.IsString {
		return murmur3.Sum32([]byte(key.Str))
	}
	return uint32(key.Int % uint64(len(t.slots)))
}

func (t *HashTable) slotIndex(h uint32, key HashKey) int {
	if key.IsString {
		return int(h) % len(t.slots)
	}
	return int(h)
}

// Put duplicates value's bytes and stores them under key, replacing any
// existing entry's value (freeing the old copy) or prepending a new
// entry to the slot chain.
func (t *HashTable) Put(key HashKey, value []byte) {
	h := t.hashOf(key)
	idx := t.slotIndex(h, key)
	for _, e := range t.slots[idx] {
		if e.hash == h && e.key.equal(key) {
			e.value = append([]byte(nil), value...)
			e.hasValue = true
			return
		}
	}
	entry := &hashEntry{key: key, hash: h, value: append([]byte(nil), value...), hasValue: true}
	t.slots[idx] = append([]*hashEntry{entry}, t.slots[idx]...)
	t.count++
}

// Get returns the value stored under key, or ok=false if absent.
func (t *HashTable) Get(key HashKey) (value []byte, ok bool) {
	h := t.hashOf(key)
	idx := t.slotIndex(h, key)
	for _, e := range t.slots[idx] {
		if e.hash == h && e.key.equal(key) {
			return append([]byte(nil), e.value...), true
		}
	}
	return nil, false
}

// Remove unlinks and frees the entry stored under key, if any.
func (t *HashTable) Remove(key HashKey) bool {
	h := t.hashOf(key)
	idx := t.slotIndex(h, key)
	chain := t.slots[idx]
	for i, e := range chain {
		if e.hash == h && e.key.equal(key) {
			t.slots[idx] = append(chain[:i], chain[i+1:]...)
			t.count--
			return true
		}
	}
	return false
}

// Size returns the number of distinct keys currently stored.
func (t *HashTable) Size() int { return t.count }

// HashCursor is the caller-owned iterator cursor of spec.md §4.B
// "getnext": its zero value means "start from the beginning". newmem is
// mandatory only when deletion during iteration is expected, per the
// spec; this implementation always returns an independent value copy,
// so newmem has no observable effect here (same rationale as
// Vector.GetAt).
type HashCursor struct {
	slot  int
	index int
	done  bool
}

// GetNext walks slot 0..range, enumerating each chain in
// insertion-adjacent (newest-first) order.
func (t *HashTable) GetNext(cur *HashCursor, newmem bool) (key HashKey, value []byte, ok bool) {
	if cur.done {
		return HashKey{}, nil, false
	}
	for cur.slot < len(t.slots) {
		chain := t.slots[cur.slot]
		if cur.index < len(chain) {
			e := chain[cur.index]
			cur.index++
			return e.key, append([]byte(nil), e.value...), true
		}
		cur.slot++
		cur.index = 0
	}
	cur.done = true
	return HashKey{}, nil, false
}

// KeyKind returns the discriminator this table's keys were created for.
func (t *HashTable) KeyKind() Kind { return t.keyKind }
