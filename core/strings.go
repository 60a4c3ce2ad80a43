package core

// This file implements the byte-indexed, Unicode-unaware string
// algorithms of spec.md §4.C, cross-checked against
// original_source/smart_ir/src/runtime/stdlib/qstring.c for exact
// edge-case behaviour (empty separator aborts split, negative replace
// count means unbounded, empty-old replace interleaves).

// Count returns the number of non-overlapping occurrences of sub within
// [begin, end) of v's bytes, clamped to bounds.
func Count(v *ByteVector, sub []byte, begin, end int) int {
	b, e := clampRange(v, begin, end)
	data := v.Bytes()[b:e]
	if len(sub) == 0 {
		return e - b + 1
	}
	n := 0
	for i := 0; i+len(sub) <= len(data); {
		if matchAt(data, i, sub) {
			n++
			i += len(sub)
		} else {
			i++
		}
	}
	return n
}

// Find returns the byte index of the first occurrence of sub within
// [begin, end), or -1 if absent.
func Find(v *ByteVector, sub []byte, begin, end int) int {
	b, e := clampRange(v, begin, end)
	data := v.Bytes()[b:e]
	idx := indexOf(data, sub)
	if idx < 0 {
		return -1
	}
	return b + idx
}

func clampRange(v *ByteVector, begin, end int) (int, int) {
	length := int(v.Len())
	b := clampIndex(begin, length)
	e := clampIndex(end, length)
	if e < b {
		e = b
	}
	return b, e
}

func matchAt(data []byte, i int, sub []byte) bool {
	if i+len(sub) > len(data) {
		return false
	}
	for j := range sub {
		if data[i+j] != sub[j] {
			return false
		}
	}
	return true
}

// StartsWith reports whether v's bytes in [begin, end) start with prefix.
func StartsWith(v *ByteVector, prefix []byte, begin, end int) bool {
	b, e := clampRange(v, begin, end)
	data := v.Bytes()[b:e]
	return matchAt(data, 0, prefix)
}

// EndsWith reports whether v's bytes in [begin, end) end with suffix.
func EndsWith(v *ByteVector, suffix []byte, begin, end int) bool {
	b, e := clampRange(v, begin, end)
	data := v.Bytes()[b:e]
	if len(suffix) > len(data) {
		return false
	}
	return matchAt(data, len(data)-len(suffix), suffix)
}

func isInSet(b byte, set []byte) bool {
	for _, s := range set {
		if b == s {
			return true
		}
	}
	return false
}

// LStrip removes leading bytes found in cutset.
func LStrip(arena *Arena, v *ByteVector, cutset []byte) *ByteVector {
	data := v.Bytes()
	i := 0
	for i < len(data) && isInSet(data[i], cutset) {
		i++
	}
	return NewByteVector(arena, data[i:])
}

// RStrip removes trailing bytes found in cutset.
func RStrip(arena *Arena, v *ByteVector, cutset []byte) *ByteVector {
	data := v.Bytes()
	j := len(data)
	for j > 0 && isInSet(data[j-1], cutset) {
		j--
	}
	return NewByteVector(arena, data[:j])
}

// Strip removes leading and trailing bytes found in cutset.
func Strip(arena *Arena, v *ByteVector, cutset []byte) *ByteVector {
	data := v.Bytes()
	i := 0
	for i < len(data) && isInSet(data[i], cutset) {
		i++
	}
	j := len(data)
	for j > i && isInSet(data[j-1], cutset) {
		j--
	}
	return NewByteVector(arena, data[i:j])
}

// Split splits v on the literal byte sequence sep (not a regex, despite
// the name the original stdlib uses). An empty separator aborts with
// ValueError, matching qstring.c.
func Split(arena *Arena, v *ByteVector, sep []byte) []*ByteVector {
	if len(sep) == 0 {
		Abort(CallerContext(), "ValueError: empty separator")
	}
	data := v.Bytes()
	var out []*ByteVector
	for {
		idx := indexOf(data, sep)
		if idx < 0 {
			out = append(out, NewByteVector(arena, data))
			break
		}
		out = append(out, NewByteVector(arena, data[:idx]))
		data = data[idx+len(sep):]
	}
	return out
}

// Join is the string-algorithm entry point for joining; it delegates to
// JoinByteVectors (§4.B) since both are specified together in spec.md.
func Join(arena *Arena, sep []byte, items []*ByteVector) *ByteVector {
	return JoinByteVectors(arena, sep, items)
}

// Replace delegates to ReplaceByteVector (§4.B).
func Replace(arena *Arena, v *ByteVector, old, new []byte, count int) *ByteVector {
	return ReplaceByteVector(arena, v, old, new, count)
}

func isDigitByte(b byte) bool  { return b >= '0' && b <= '9' }
func isLowerByte(b byte) bool  { return b >= 'a' && b <= 'z' }
func isUpperByte(b byte) bool  { return b >= 'A' && b <= 'Z' }
func isAlphaByte(b byte) bool  { return isLowerByte(b) || isUpperByte(b) }
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// IsAlnum, IsAlpha, IsDigit, IsLower, IsUpper and IsSpace are the
// classifier predicates of spec.md §4.C. All return false on an empty
// vector; IsLower/IsUpper additionally require at least one cased byte.
func IsAlnum(v *ByteVector) bool  { return classifyAll(v, func(b byte) bool { return isAlphaByte(b) || isDigitByte(b) }) }
func IsAlpha(v *ByteVector) bool  { return classifyAll(v, isAlphaByte) }
func IsDigit(v *ByteVector) bool  { return classifyAll(v, isDigitByte) }
func IsSpace(v *ByteVector) bool  { return classifyAll(v, isSpaceByte) }

func classifyAll(v *ByteVector, pred func(byte) bool) bool {
	data := v.Bytes()
	if len(data) == 0 {
		return false
	}
	for _, b := range data {
		if !pred(b) {
			return false
		}
	}
	return true
}

// IsLower reports whether every cased byte is lowercase and at least one
// cased byte is present.
func IsLower(v *ByteVector) bool {
	data := v.Bytes()
	if len(data) == 0 {
		return false
	}
	sawCased := false
	for _, b := range data {
		if isUpperByte(b) {
			return false
		}
		if isLowerByte(b) {
			sawCased = true
		}
	}
	return sawCased
}

// IsUpper reports whether every cased byte is uppercase and at least one
// cased byte is present.
func IsUpper(v *ByteVector) bool {
	data := v.Bytes()
	if len(data) == 0 {
		return false
	}
	sawCased := false
	for _, b := range data {
		if isLowerByte(b) {
			return false
		}
		if isUpperByte(b) {
			sawCased = true
		}
	}
	return sawCased
}

func toUpperByte(b byte) byte {
	if isLowerByte(b) {
		return b - 'a' + 'A'
	}
	return b
}

func toLowerByte(b byte) byte {
	if isUpperByte(b) {
		return b - 'A' + 'a'
	}
	return b
}

// ToUpper returns a fresh ByteVector with every ASCII letter upper-cased.
func ToUpper(arena *Arena, v *ByteVector) *ByteVector {
	data := append([]byte(nil), v.Bytes()...)
	for i, b := range data {
		data[i] = toUpperByte(b)
	}
	return NewByteVector(arena, data)
}

// ToLower returns a fresh ByteVector with every ASCII letter lower-cased.
func ToLower(arena *Arena, v *ByteVector) *ByteVector {
	data := append([]byte(nil), v.Bytes()...)
	for i, b := range data {
		data[i] = toLowerByte(b)
	}
	return NewByteVector(arena, data)
}
