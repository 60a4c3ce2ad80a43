package core

import "encoding/binary"

// This file implements the SSZ-like offset-framed codec of spec.md §4.F:
// a schema-driven codec with a "fixed-len vs variable-len" classification
// that determines whether a struct/array field is laid out inline or
// referenced through a 4-byte little-endian offset. Recursion depth is
// capped per spec.md §9 "Recursive value walking" (suggested cap 64).

const maxSSZDepth = 64

func sszDepthGuard(depth int) {
	if depth > maxSSZDepth {
		Abort(CallerContext(), "ssz decode error: recursion depth exceeded")
	}
}

// IsSSZFixedLen reports whether every leaf reachable under ty has a size
// known purely from the schema.
func IsSSZFixedLen(d *Descriptors, ty TypeRef) bool {
	return isSSZFixedLen(d, ty, 0)
}

func isSSZFixedLen(d *Descriptors, ty TypeRef, depth int) bool {
	sszDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindStr, KindMap:
		return false
	case KindStruct, KindAsset:
		for _, f := range desc.StructFields {
			if !isSSZFixedLen(d, f, depth+1) {
				return false
			}
		}
		return true
	case KindArray:
		if desc.ArraySize == 0 {
			return false
		}
		return isSSZFixedLen(d, desc.ArrayItemTy, depth+1)
	default:
		return true
	}
}

// SSZFixLen returns the byte length of a fixed-len type, per
// ssz_fix_ty_length.
func SSZFixLen(d *Descriptors, ty TypeRef) uint32 {
	return sszFixLen(d, ty, 0)
}

func sszFixLen(d *Descriptors, ty TypeRef, depth int) uint32 {
	sszDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindStruct, KindAsset:
		var total uint32
		for _, f := range desc.StructFields {
			total += sszFixLen(d, f, depth+1)
		}
		return total
	case KindArray:
		return desc.ArraySize * sszFixLen(d, desc.ArrayItemTy, depth+1)
	default:
		width, _ := scalarWidth(desc.Kind)
		return uint32(width)
	}
}

// SSZEncodeLen computes the total encoded length of v under ty by walking
// the value and schema together (ssz_encode_len).
func SSZEncodeLen(d *Descriptors, ty TypeRef, v *Value) uint32 {
	return sszEncodeLen(d, ty, v, 0)
}

func sszEncodeLen(d *Descriptors, ty TypeRef, v *Value, depth int) uint32 {
	sszDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindStr:
		return v.Str.Len()
	case KindMap:
		Abort(CallerContext(), "unknown ir runtime type in ssz type")
		return 0
	case KindStruct, KindAsset:
		var total uint32
		for i, f := range desc.StructFields {
			if isSSZFixedLen(d, f, depth+1) {
				total += sszFixLen(d, f, depth+1)
			} else {
				total += 4 + sszEncodeLen(d, f, v.Fields[i], depth+1)
			}
		}
		return total
	case KindArray:
		elemTy := desc.ArrayItemTy
		elemDesc := d.Get(elemTy)
		n := uint32(v.Elems.Size())
		if elemDesc.Kind == KindU8 || elemDesc.Kind == KindI8 {
			return n
		}
		if isSSZFixedLen(d, elemTy, depth+1) {
			return n * sszFixLen(d, elemTy, depth+1)
		}
		var total uint32 = n * 4
		for i := 0; i < int(n); i++ {
			total += sszEncodeLen(d, elemTy, v.Elems.GetAt(i, false), depth+1)
		}
		return total
	default:
		width, _ := scalarWidth(desc.Kind)
		return uint32(width)
	}
}

func sszScalarBytes(k Kind, v *Value) []byte {
	s := NewByteStream()
	width, _ := scalarWidth(k)
	if width <= 8 {
		EncodeScalarBits(s, v.Bits, width)
	} else {
		EncodeBig(s, v.Big, width, IsSignedKind(k))
	}
	return s.Bytes()
}

// EncodeSSZ encodes v (of type ty) per spec.md §4.F.
func EncodeSSZ(d *Descriptors, ty TypeRef, v *Value) []byte {
	return encodeSSZ(d, ty, v, 0)
}

func encodeSSZ(d *Descriptors, ty TypeRef, v *Value, depth int) []byte {
	sszDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindStr:
		return v.Str.Bytes()
	case KindStruct, KindAsset:
		return encodeSSZStruct(d, desc, v, depth)
	case KindArray:
		return encodeSSZArray(d, desc, v, depth)
	case KindMap:
		Abort(CallerContext(), "unknown ir runtime type in ssz type")
		return nil
	default:
		return sszScalarBytes(desc.Kind, v)
	}
}

func encodeSSZStruct(d *Descriptors, desc *TypeDescriptor, v *Value, depth int) []byte {
	type varPart struct {
		bytes []byte
	}
	hdr := make([]byte, 0, 64)
	var parts []varPart
	offset := uint32(0)
	for _, f := range desc.StructFields {
		if isSSZFixedLen(d, f, depth+1) {
			offset += sszFixLen(d, f, depth+1)
		} else {
			offset += 4
		}
	}
	fixedEnd := offset
	cursor := fixedEnd
	for i, f := range desc.StructFields {
		if isSSZFixedLen(d, f, depth+1) {
			hdr = append(hdr, encodeSSZ(d, f, v.Fields[i], depth+1)...)
		} else {
			off := make([]byte, 4)
			binary.LittleEndian.PutUint32(off, cursor)
			hdr = append(hdr, off...)
			enc := encodeSSZ(d, f, v.Fields[i], depth+1)
			cursor += uint32(len(enc))
			parts = append(parts, varPart{enc})
		}
	}
	out := append([]byte(nil), hdr...)
	for _, p := range parts {
		out = append(out, p.bytes...)
	}
	return out
}

func encodeSSZArray(d *Descriptors, desc *TypeDescriptor, v *Value, depth int) []byte {
	elemTy := desc.ArrayItemTy
	elemDesc := d.Get(elemTy)
	n := v.Elems.Size()
	if elemDesc.Kind == KindU8 || elemDesc.Kind == KindI8 {
		out := make([]byte, n)
		for i := 0; i < n; i++ {
			out[i] = byte(v.Elems.GetAt(i, false).Bits)
		}
		return out
	}
	if isSSZFixedLen(d, elemTy, depth+1) {
		var out []byte
		for i := 0; i < n; i++ {
			out = append(out, encodeSSZ(d, elemTy, v.Elems.GetAt(i, false), depth+1)...)
		}
		return out
	}
	hdr := make([]byte, 0, n*4)
	var tail []byte
	cursor := uint32(n * 4)
	for i := 0; i < n; i++ {
		off := make([]byte, 4)
		binary.LittleEndian.PutUint32(off, cursor)
		hdr = append(hdr, off...)
		enc := encodeSSZ(d, elemTy, v.Elems.GetAt(i, false), depth+1)
		cursor += uint32(len(enc))
		tail = append(tail, enc...)
	}
	return append(hdr, tail...)
}

// DecodeSSZ decodes bytes into a value of type ty. If allowEmptyObject is
// true and bytes is empty, a zero value is returned instead of aborting
// (spec.md §4.F "Empty-object tolerance").
func DecodeSSZ(d *Descriptors, arena *Arena, ty TypeRef, data []byte, allowEmptyObject bool) *Value {
	if len(data) == 0 {
		if allowEmptyObject {
			return ZeroValue(d, arena, ty)
		}
		Abort(CallerContext(), "ssz decode empty bytes failed")
	}
	return decodeSSZ(d, arena, ty, data, 0)
}

func decodeSSZ(d *Descriptors, arena *Arena, ty TypeRef, data []byte, depth int) *Value {
	sszDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindStr:
		return NewStrValue(ty, NewByteVector(arena, data))
	case KindStruct, KindAsset:
		return decodeSSZStruct(d, arena, ty, desc, data, depth)
	case KindArray:
		return decodeSSZArray(d, arena, ty, desc, data, depth)
	case KindMap:
		Abort(CallerContext(), "unknown ir runtime type in ssz type")
		return nil
	default:
		return decodeSSZScalar(ty, desc.Kind, data)
	}
}

func decodeSSZScalar(ty TypeRef, k Kind, data []byte) *Value {
	width, _ := scalarWidth(k)
	s := NewByteStreamFromBytes(data)
	if width <= 8 {
		return NewIntValue(ty, DecodeScalarBits(s, width))
	}
	return NewBigValue(ty, DecodeBig(s, width, IsSignedKind(k)))
}

func decodeSSZStruct(d *Descriptors, arena *Arena, ty TypeRef, desc *TypeDescriptor, data []byte, depth int) *Value {
	n := len(desc.StructFields)
	type span struct {
		offset, length int
		fixed          bool
	}
	spans := make([]span, n)
	cursor := 0
	var varIndices []int
	for i, f := range desc.StructFields {
		if isSSZFixedLen(d, f, depth+1) {
			fl := int(sszFixLen(d, f, depth+1))
			spans[i] = span{offset: cursor, length: fl, fixed: true}
			cursor += fl
		} else {
			off := int(binary.LittleEndian.Uint32(data[cursor : cursor+4]))
			spans[i] = span{offset: off, fixed: false}
			cursor += 4
			varIndices = append(varIndices, i)
		}
	}
	for j, i := range varIndices {
		end := len(data)
		if j+1 < len(varIndices) {
			end = spans[varIndices[j+1]].offset
		}
		spans[i].length = end - spans[i].offset
	}
	fields := make([]*Value, n)
	for i, f := range desc.StructFields {
		sp := spans[i]
		fields[i] = decodeSSZ(d, arena, f, data[sp.offset:sp.offset+sp.length], depth+1)
	}
	return NewStructValue(ty, fields)
}

func decodeSSZArray(d *Descriptors, arena *Arena, ty TypeRef, desc *TypeDescriptor, data []byte, depth int) *Value {
	elemTy := desc.ArrayItemTy
	elemDesc := d.Get(elemTy)
	elems := NewVector[*Value](0, VectorDoubleOnGrow)
	if elemDesc.Kind == KindU8 || elemDesc.Kind == KindI8 {
		for _, b := range data {
			elems.AddLast(NewIntValue(elemTy, uint64(b)))
		}
		return NewArrayValue(ty, elems)
	}
	if isSSZFixedLen(d, elemTy, depth+1) {
		fl := int(sszFixLen(d, elemTy, depth+1))
		if fl == 0 {
			return NewArrayValue(ty, elems)
		}
		count := len(data) / fl
		for i := 0; i < count; i++ {
			elems.AddLast(decodeSSZ(d, arena, elemTy, data[i*fl:(i+1)*fl], depth+1))
		}
		return NewArrayValue(ty, elems)
	}
	if len(data) == 0 {
		return NewArrayValue(ty, elems)
	}
	firstOffset := int(binary.LittleEndian.Uint32(data[0:4]))
	count := firstOffset / 4
	offsets := make([]int, count)
	for i := 0; i < count; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(data[i*4 : i*4+4]))
	}
	for i := 0; i < count; i++ {
		end := len(data)
		if i+1 < count {
			end = offsets[i+1]
		}
		elems.AddLast(decodeSSZ(d, arena, elemTy, data[offsets[i]:end], depth+1))
	}
	return NewArrayValue(ty, elems)
}

// VersionedSSZGetDataPtr implements versioned_ssz_get_data_ptr: when
// isVersioned, it strips the leading versionSize bytes.
func VersionedSSZGetDataPtr(data []byte, isVersioned bool, versionSize int) []byte {
	if !isVersioned {
		return data
	}
	if versionSize > len(data) {
		return nil
	}
	return data[versionSize:]
}
