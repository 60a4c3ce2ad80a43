package core

import "math/big"

// This file implements the Ethereum RLP codec of spec.md §4.G, bit-exact
// with go-ethereum's own `rlp` package rules, schema-driven over
// TypeDescriptor/Value instead of Go struct reflection (see DESIGN.md
// "RLP codec" for why go-ethereum/rlp itself cannot be reused directly).

const maxRLPDepth = 64

func rlpDepthGuard(depth int) {
	if depth > maxRLPDepth {
		Abort(CallerContext(), "rlp decode error: recursion depth exceeded")
	}
}

// rlpEncodeBigEndianMinimal strips leading zero bytes; the empty slice
// represents zero.
func rlpEncodeBigEndianMinimal(v *big.Int) []byte {
	if v.Sign() == 0 {
		return nil
	}
	return v.Bytes()
}

// EncodeRLPBytes wraps a raw byte string in the RLP byte-string header.
func EncodeRLPBytes(data []byte) []byte {
	if len(data) == 1 && data[0] < 0x80 {
		return data
	}
	return append(rlpLengthPrefix(0x80, 0xb7, len(data)), data...)
}

// EncodeRLPList wraps an already-concatenated list payload in the RLP
// list header.
func EncodeRLPList(payload []byte) []byte {
	return append(rlpLengthPrefix(0xc0, 0xf7, len(payload)), payload...)
}

func rlpLengthPrefix(shortBase, longBase byte, l int) []byte {
	if l < 56 {
		return []byte{shortBase + byte(l)}
	}
	be := beMinimal(uint64(l))
	out := make([]byte, 0, 1+len(be))
	out = append(out, longBase+byte(len(be)))
	out = append(out, be...)
	return out
}

func beMinimal(x uint64) []byte {
	if x == 0 {
		return []byte{0}
	}
	var buf [8]byte
	n := 0
	for i := 7; i >= 0; i-- {
		b := byte(x >> (8 * uint(i)))
		if b != 0 || n > 0 {
			buf[n] = b
			n++
		}
	}
	return buf[:n]
}

// EncodeRLP encodes v (of type ty) per spec.md §4.G's schema-driven
// dispatch: integers/BOOL as minimal big-endian byte strings, STR as a
// byte string, STRUCT as a list of field encodings, [U8]/[I8] as a byte
// string, any other array as a list. ASSET and MAP abort.
func EncodeRLP(d *Descriptors, ty TypeRef, v *Value) []byte {
	return encodeRLP(d, ty, v, 0)
}

func encodeRLP(d *Descriptors, ty TypeRef, v *Value, depth int) []byte {
	rlpDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindBool:
		if v.AsBool() {
			return EncodeRLPBytes([]byte{1})
		}
		return EncodeRLPBytes(nil)
	case KindStr:
		return EncodeRLPBytes(v.Str.Bytes())
	case KindAsset:
		Abort(CallerContext(), "asset not supported in ir rlp")
		return nil
	case KindMap:
		Abort(CallerContext(), "map type not supported in ir rlp")
		return nil
	case KindStruct:
		var payload []byte
		for i, f := range desc.StructFields {
			payload = append(payload, encodeRLP(d, f, v.Fields[i], depth+1)...)
		}
		return EncodeRLPList(payload)
	case KindArray:
		return encodeRLPArray(d, desc, v, depth)
	default:
		return EncodeRLPBytes(rlpEncodeBigEndianMinimal(rlpValueAsBig(desc.Kind, v)))
	}
}

func rlpValueAsBig(k Kind, v *Value) *big.Int {
	if v.Big != nil {
		return new(big.Int).Set(v.Big)
	}
	if IsSignedKind(k) {
		return big.NewInt(v.AsInt64())
	}
	return new(big.Int).SetUint64(v.AsUint64())
}

func encodeRLPArray(d *Descriptors, desc *TypeDescriptor, v *Value, depth int) []byte {
	elemDesc := d.Get(desc.ArrayItemTy)
	n := v.Elems.Size()
	if elemDesc.Kind == KindU8 || elemDesc.Kind == KindI8 {
		buf := make([]byte, n)
		for i := 0; i < n; i++ {
			buf[i] = byte(v.Elems.GetAt(i, false).Bits)
		}
		return EncodeRLPBytes(buf)
	}
	var payload []byte
	for i := 0; i < n; i++ {
		payload = append(payload, encodeRLP(d, desc.ArrayItemTy, v.Elems.GetAt(i, false), depth+1)...)
	}
	return EncodeRLPList(payload)
}

// rlpNode is the preliminary decode result of spec.md §4.G: either a
// byte string or a list of nested nodes (rlp_decode).
type rlpNode struct {
	isList   bool
	bytes    []byte
	children []rlpNode
}

// DecodeRLPNode parses the preliminary byte-string-or-list structure
// without schema knowledge (rlp_decode).
func DecodeRLPNode(data []byte) (rlpNode, int) {
	if len(data) == 0 {
		Abort(CallerContext(), "rlp decode empty bytes")
	}
	b0 := data[0]
	switch {
	case b0 < 0x80:
		return rlpNode{bytes: []byte{b0}}, 1
	case b0 <= 0xb7:
		l := int(b0 - 0x80)
		return rlpNode{bytes: append([]byte(nil), data[1:1+l]...)}, 1 + l
	case b0 <= 0xbf:
		lenOfLen := int(b0 - 0xb7)
		l := int(beDecode(data[1 : 1+lenOfLen]))
		start := 1 + lenOfLen
		return rlpNode{bytes: append([]byte(nil), data[start:start+l]...)}, start + l
	case b0 <= 0xf7:
		l := int(b0 - 0xc0)
		children, _ := decodeRLPChildren(data[1 : 1+l])
		return rlpNode{isList: true, children: children}, 1 + l
	default:
		lenOfLen := int(b0 - 0xf7)
		l := int(beDecode(data[1 : 1+lenOfLen]))
		start := 1 + lenOfLen
		children, _ := decodeRLPChildren(data[start : start+l])
		return rlpNode{isList: true, children: children}, start + l
	}
}

func decodeRLPChildren(payload []byte) ([]rlpNode, int) {
	var out []rlpNode
	off := 0
	for off < len(payload) {
		child, n := DecodeRLPNode(payload[off:])
		out = append(out, child)
		off += n
	}
	return out, off
}

func beDecode(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// DecodeRLP is common_rlp_decode: it dispatches on the schema, walking
// the preliminary node tree and the descriptor together.
func DecodeRLP(d *Descriptors, arena *Arena, ty TypeRef, data []byte) *Value {
	node, _ := DecodeRLPNode(data)
	return decodeRLPValue(d, arena, ty, node, 0)
}

func decodeRLPValue(d *Descriptors, arena *Arena, ty TypeRef, node rlpNode, depth int) *Value {
	rlpDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindBool:
		return NewBoolValue(ty, len(node.bytes) == 1 && node.bytes[0] == 1)
	case KindStr:
		return NewStrValue(ty, NewByteVector(arena, node.bytes))
	case KindAsset:
		Abort(CallerContext(), "asset not supported in ir rlp")
		return nil
	case KindMap:
		Abort(CallerContext(), "map type not supported in ir rlp")
		return nil
	case KindStruct:
		fields := make([]*Value, len(desc.StructFields))
		for i, f := range desc.StructFields {
			fields[i] = decodeRLPValue(d, arena, f, node.children[i], depth+1)
		}
		return NewStructValue(ty, fields)
	case KindArray:
		return decodeRLPArray(d, arena, ty, desc, node, depth)
	default:
		return decodeRLPInt(ty, desc.Kind, node.bytes)
	}
}

func decodeRLPInt(ty TypeRef, k Kind, b []byte) *Value {
	mag := new(big.Int).SetBytes(b)
	width, _ := scalarWidth(k)
	if width <= 8 {
		return NewIntValue(ty, mag.Uint64())
	}
	return NewBigValue(ty, mag)
}

// decodeRLPArray follows Open Question 2 (spec.md §9): a fixed-length
// byte array's decoded length is not checked against the descriptor's
// declared array_size.
func decodeRLPArray(d *Descriptors, arena *Arena, ty TypeRef, desc *TypeDescriptor, node rlpNode, depth int) *Value {
	elemDesc := d.Get(desc.ArrayItemTy)
	elems := NewVector[*Value](0, VectorDoubleOnGrow)
	if elemDesc.Kind == KindU8 || elemDesc.Kind == KindI8 {
		for _, b := range node.bytes {
			elems.AddLast(NewIntValue(desc.ArrayItemTy, uint64(b)))
		}
		return NewArrayValue(ty, elems)
	}
	for _, child := range node.children {
		elems.AddLast(decodeRLPValue(d, arena, desc.ArrayItemTy, child, depth+1))
	}
	return NewArrayValue(ty, elems)
}
