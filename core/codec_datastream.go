package core

import (
	"math/big"

	"github.com/multiformats/go-varint"
)

// This file implements the data-stream codec of spec.md §4.E. Unlike the
// SSZ/RLP/JSON codecs, this codec is not a fully general recursive codec
// over arbitrary nested types: original_source/smart_ir/src/runtime/
// stdlib/data_stream.h exposes one encode/decode function pair per
// scalar width, one pair for byte/string vectors, one pair per
// primitive-array width, and one pair per primitive-valued string-keyed
// map width. EncodeValue/DecodeValue below preserve that closed surface
// by aborting on STRUCT/ASSET and on ARRAY/MAP whose element or value
// type is a pointer kind other than STR, rather than silently recursing
// into them.

// EncodeUvarint appends x ULEB128-framed (github.com/multiformats/go-varint,
// see DESIGN.md).
func EncodeUvarint(s *ByteStream, x uint64) {
	s.WriteBytes(varint.ToUvarint(x))
}

// DecodeUvarint reads one ULEB128-framed value from the stream's current
// read position, advancing the cursor past it.
func DecodeUvarint(s *ByteStream) uint64 {
	rest := s.buf[s.readOffset:]
	x, n, err := varint.FromUvarint(rest)
	if err != nil {
		Abort(CallerContext(), "DataStreamDecodeError: malformed varint")
	}
	s.Advance(n)
	return x
}

func putLE(buf []byte, v uint64, width int) {
	for i := 0; i < width; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}

func getLE(buf []byte) uint64 {
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * uint(i))
	}
	return v
}

// EncodeScalarBits writes an inline scalar (bool or integer kind <= 64
// bits wide) in width little-endian bytes.
func EncodeScalarBits(s *ByteStream, bits uint64, width int) {
	buf := make([]byte, width)
	putLE(buf, bits, width)
	s.WriteBytes(buf)
}

// DecodeScalarBits reads width little-endian bytes back into a bit
// pattern.
func DecodeScalarBits(s *ByteStream, width int) uint64 {
	return getLE(s.ReadBytes(width))
}

// EncodeBig writes a 128/256-bit integer as width little-endian bytes,
// two's complement for signed kinds.
func EncodeBig(s *ByteStream, v *big.Int, width int, signed bool) {
	buf := make([]byte, width)
	mag := new(big.Int).Set(v)
	if signed && v.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
		mag.Add(mod, v)
	}
	b := mag.Bytes() // big-endian
	for i := 0; i < len(b) && i < width; i++ {
		buf[i] = b[len(b)-1-i]
	}
	s.WriteBytes(buf)
}

// DecodeBig reads width little-endian bytes back into a big.Int,
// interpreting the top bit as a sign when signed is true.
func DecodeBig(s *ByteStream, width int, signed bool) *big.Int {
	buf := s.ReadBytes(width)
	be := make([]byte, width)
	for i, b := range buf {
		be[width-1-i] = b
	}
	v := new(big.Int).SetBytes(be)
	if signed && width > 0 && buf[width-1]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
		v.Sub(v, mod)
	}
	return v
}

func scalarWidth(k Kind) (int, bool) {
	switch k {
	case KindBool, KindU8, KindI8:
		return 1, true
	case KindU16, KindI16:
		return 2, true
	case KindU32, KindI32:
		return 4, true
	case KindU64, KindI64:
		return 8, true
	case KindU128, KindI128:
		return 16, true
	case KindU256, KindI256:
		return 32, true
	default:
		return 0, false
	}
}

// EncodeBytes writes a ULEB128 length prefix followed by the raw bytes
// (data_stream_encode_str / data_stream_encode_vec).
func EncodeBytes(s *ByteStream, data []byte) {
	EncodeUvarint(s, uint64(len(data)))
	s.WriteBytes(data)
}

// DecodeBytes reads a length-prefixed byte run.
func DecodeBytes(s *ByteStream) []byte {
	n := DecodeUvarint(s)
	return s.ReadBytes(int(n))
}

// EncodeValue dispatches by runtime kind to the matching per-width
// encode function, matching the closed set of operations
// original_source's data_stream.h exposes. STRUCT and ASSET are never
// supported by this codec; ARRAY and MAP are supported only when their
// element/value type is non-pointer or STR.
func EncodeValue(d *Descriptors, s *ByteStream, ty TypeRef, v *Value) {
	desc := d.Get(ty)
	switch desc.Kind {
	case KindStr:
		EncodeBytes(s, v.Str.Bytes())
	case KindArray:
		encodeArray(d, s, desc, v)
	case KindMap:
		encodeMap(d, s, desc, v)
	case KindStruct, KindAsset:
		Abort(CallerContext(), "DataStreamEncodeError: struct/asset values are not supported")
	default:
		encodeScalar(s, desc.Kind, v)
	}
}

func encodeScalar(s *ByteStream, k Kind, v *Value) {
	if width, ok := scalarWidth(k); ok && width <= 8 {
		EncodeScalarBits(s, v.Bits, width)
		return
	}
	width, _ := scalarWidth(k)
	EncodeBig(s, v.Big, width, IsSignedKind(k))
}

func requirePrimitiveElem(d *Descriptors, elemTy TypeRef) Kind {
	elemDesc := d.Get(elemTy)
	if IsPointerKind(elemDesc.Kind) && elemDesc.Kind != KindStr {
		Abort(CallerContext(), "DataStreamEncodeError: only primitive or string array/map elements are supported")
	}
	return elemDesc.Kind
}

func encodeArray(d *Descriptors, s *ByteStream, desc *TypeDescriptor, v *Value) {
	requirePrimitiveElem(d, desc.ArrayItemTy)
	n := v.Elems.Size()
	EncodeUvarint(s, uint64(n))
	for i := 0; i < n; i++ {
		EncodeValue(d, s, desc.ArrayItemTy, v.Elems.GetAt(i, false))
	}
}

func encodeMap(d *Descriptors, s *ByteStream, desc *TypeDescriptor, v *Value) {
	keyDesc := d.Get(desc.MapKeyTy)
	if keyDesc.Kind != KindStr {
		Abort(CallerContext(), "DataStreamEncodeError: only string-keyed maps are supported")
	}
	requirePrimitiveElem(d, desc.MapValueTy)

	m := v.Map.Table()
	EncodeUvarint(s, uint64(m.Size()))
	cur := &HashCursor{}
	for {
		key, _, ok := m.GetNext(cur, false)
		if !ok {
			break
		}
		EncodeBytes(s, []byte(key.Str))
		val, _ := m.Get(key)
		EncodeBytes(s, val)
	}
}

// DecodeValue is the inverse of EncodeValue, constructing a fresh Value
// from the stream.
func DecodeValue(d *Descriptors, arena *Arena, s *ByteStream, ty TypeRef) *Value {
	desc := d.Get(ty)
	switch desc.Kind {
	case KindStr:
		return NewStrValue(ty, NewByteVector(arena, DecodeBytes(s)))
	case KindArray:
		return decodeArray(d, arena, s, ty, desc)
	case KindMap:
		return decodeMap(d, arena, s, ty, desc)
	case KindStruct, KindAsset:
		Abort(CallerContext(), "DataStreamDecodeError: struct/asset values are not supported")
		return nil
	default:
		return decodeScalar(s, ty, desc.Kind)
	}
}

func decodeScalar(s *ByteStream, ty TypeRef, k Kind) *Value {
	width, _ := scalarWidth(k)
	if width <= 8 {
		return NewIntValue(ty, DecodeScalarBits(s, width))
	}
	return NewBigValue(ty, DecodeBig(s, width, IsSignedKind(k)))
}

func decodeArray(d *Descriptors, arena *Arena, s *ByteStream, ty TypeRef, desc *TypeDescriptor) *Value {
	requirePrimitiveElem(d, desc.ArrayItemTy)
	n := int(DecodeUvarint(s))
	elems := NewVector[*Value](n, VectorDoubleOnGrow)
	for i := 0; i < n; i++ {
		elems.AddLast(DecodeValue(d, arena, s, desc.ArrayItemTy))
	}
	return NewArrayValue(ty, elems)
}

// PutMapValue encodes sub and stores it under key in m, using the same
// per-width encoding EncodeValue/DecodeValue use for map entries
// elsewhere, so a map built via PutMapValue round-trips through the
// data-stream and JSON codecs. The SSZ and RLP codecs do not support
// MAP and abort on it.
func PutMapValue(d *Descriptors, m *IRMap, key HashKey, sub *Value) {
	s := NewByteStream()
	EncodeValue(d, s, m.ValueTy(), sub)
	m.Table().Put(key, s.Bytes())
}

// GetMapValue decodes the value stored under key in m, if present.
func GetMapValue(d *Descriptors, arena *Arena, m *IRMap, key HashKey) (*Value, bool) {
	raw, ok := m.Table().Get(key)
	if !ok {
		return nil, false
	}
	s := NewByteStreamFromBytes(raw)
	return DecodeValue(d, arena, s, m.ValueTy()), true
}

func decodeMap(d *Descriptors, arena *Arena, s *ByteStream, ty TypeRef, desc *TypeDescriptor) *Value {
	keyDesc := d.Get(desc.MapKeyTy)
	if keyDesc.Kind != KindStr {
		Abort(CallerContext(), "DataStreamDecodeError: only string-keyed maps are supported")
	}
	requirePrimitiveElem(d, desc.MapValueTy)

	n := int(DecodeUvarint(s))
	m := NewIRMap(keyDesc.Kind, desc.MapValueTy)
	for i := 0; i < n; i++ {
		key := string(DecodeBytes(s))
		val := DecodeBytes(s)
		m.Table().Put(StrKey(key), val)
	}
	return NewMapValue(ty, m)
}
