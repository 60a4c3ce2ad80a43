package core

// ByteVector is the primary string/bytes container of spec.md §3.1: a
// (len, cap, data) triple whose data buffer is owned heap storage
// allocated through an Arena, always kept one byte larger than len so a
// trailing NUL can be maintained at data[len] for C-string-consuming
// host calls.
type ByteVector struct {
	arena *Arena
	data  Addr
	len   uint32
	cap   uint32
}

// NewByteVector allocates a ByteVector seeded with the given bytes (which
// may be nil for an empty vector).
func NewByteVector(arena *Arena, initial []byte) *ByteVector {
	n := uint32(len(initial))
	v := &ByteVector{arena: arena}
	v.growCap(n + 1)
	v.len = n
	if n > 0 {
		arena.WriteBytes(v.data, initial)
	}
	v.writeNUL()
	return v
}

// growCap ensures capacity is at least want, doubling from 1 as needed.
func (v *ByteVector) growCap(want uint32) {
	if v.cap >= want {
		return
	}
	newCap := v.cap
	if newCap == 0 {
		newCap = 1
	}
	for newCap < want {
		newCap *= 2
	}
	newData := v.arena.Alloc(newCap)
	if v.cap > 0 {
		v.arena.WriteBytes(newData, v.arena.ReadBytes(v.data, v.len))
		v.arena.Free(v.data)
	}
	v.data = newData
	v.cap = newCap
}

func (v *ByteVector) writeNUL() {
	if v.cap > v.len {
		v.arena.WriteBytes(v.data+Addr(v.len), []byte{0})
	}
}

// Len returns the number of bytes in the vector (excluding the trailing NUL).
func (v *ByteVector) Len() uint32 { return v.len }

// Cap returns the vector's current capacity.
func (v *ByteVector) Cap() uint32 { return v.cap }

// Bytes returns a fresh copy of the vector's content.
func (v *ByteVector) Bytes() []byte {
	if v.len == 0 {
		return nil
	}
	return v.arena.ReadBytes(v.data, v.len)
}

// Free releases the vector's backing storage. The ByteVector must not be
// used afterwards.
func (v *ByteVector) Free() {
	if v.cap > 0 {
		v.arena.Free(v.data)
		v.data, v.cap, v.len = 0, 0, 0
	}
}

// Copy returns a fresh, independently owned ByteVector with the same content.
func (v *ByteVector) Copy() *ByteVector {
	return NewByteVector(v.arena, v.Bytes())
}

// Append extends the vector with more bytes, doubling capacity as needed
// (spec.md §4.B "append (extends capacity by doubling until >= required+1)").
func (v *ByteVector) Append(more []byte) {
	if len(more) == 0 {
		return
	}
	v.growCap(v.len + uint32(len(more)) + 1)
	v.arena.WriteBytes(v.data+Addr(v.len), more)
	v.len += uint32(len(more))
	v.writeNUL()
}

// Concat returns a new ByteVector holding v's bytes followed by other's.
func (v *ByteVector) Concat(other *ByteVector) *ByteVector {
	out := NewByteVector(v.arena, v.Bytes())
	out.Append(other.Bytes())
	return out
}

// InsertMode selects where InsertAt places new bytes relative to pos.
type InsertMode int

const (
	InsertBefore InsertMode = iota
	InsertAfter
	InsertInside
)

// InsertAt inserts data at byte position pos according to mode.
// InsertBefore and InsertInside both place data starting at pos;
// InsertAfter places it starting at pos+1. pos is clamped to [0, len].
func (v *ByteVector) InsertAt(pos uint32, mode InsertMode, data []byte) {
	if mode == InsertAfter {
		pos++
	}
	if pos > v.len {
		pos = v.len
	}
	cur := v.Bytes()
	out := make([]byte, 0, len(cur)+len(data))
	out = append(out, cur[:pos]...)
	out = append(out, data...)
	out = append(out, cur[pos:]...)
	v.Free()
	*v = *NewByteVector(v.arena, out)
}

// Substr returns a fresh ByteVector containing the bytes in [begin, end),
// clamped to the vector's bounds.
func (v *ByteVector) Substr(begin, end int) *ByteVector {
	b := clampIndex(begin, int(v.len))
	e := clampIndex(end, int(v.len))
	if e < b {
		e = b
	}
	return NewByteVector(v.arena, v.Bytes()[b:e])
}

func clampIndex(i, length int) int {
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i
}

// JoinByteVectors concatenates items separated by sep.
func JoinByteVectors(arena *Arena, sep []byte, items []*ByteVector) *ByteVector {
	out := NewByteVector(arena, nil)
	for i, item := range items {
		if i > 0 {
			out.Append(sep)
		}
		out.Append(item.Bytes())
	}
	return out
}

// ReplaceByteVector returns a fresh ByteVector with up to count
// occurrences of old replaced by new (spec.md §4.B, §4.C): count < 0
// means unbounded, and an empty old interleaves new between every byte.
func ReplaceByteVector(arena *Arena, v *ByteVector, old, new []byte, count int) *ByteVector {
	src := v.Bytes()
	if len(old) == 0 {
		var out []byte
		n := 0
		for i := 0; i <= len(src); i++ {
			if count >= 0 && n >= count {
				out = append(out, src[i:]...)
				break
			}
			out = append(out, new...)
			n++
			if i < len(src) {
				out = append(out, src[i])
			}
		}
		return NewByteVector(arena, out)
	}

	var out []byte
	n := 0
	for {
		if count >= 0 && n >= count {
			out = append(out, src...)
			break
		}
		idx := indexOf(src, old)
		if idx < 0 {
			out = append(out, src...)
			break
		}
		out = append(out, src[:idx]...)
		out = append(out, new...)
		src = src[idx+len(old):]
		n++
	}
	return NewByteVector(arena, out)
}

func indexOf(hay, needle []byte) int {
	if len(needle) == 0 || len(needle) > len(hay) {
		return -1
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
