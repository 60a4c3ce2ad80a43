package core

import "math/big"

// Value is the runtime representation of an IR value: either an inline
// scalar (integer, bool) or a pointer to a heap object (STR, ASSET,
// STRUCT, ARRAY, MAP), tagged by the TypeRef it was built from. See
// DESIGN.md "Value model" for why composite values are realized
// as single-owner Go objects rather than raw arena bytes.
type Value struct {
	Ty TypeRef

	// Inline scalar storage. Bits holds bool (0/1) and any integer kind
	// whose natural width is <= 64 bits, in its two's-complement bit
	// pattern. Big holds U128/I128/U256/I256 values.
	Bits uint64
	Big  *big.Int

	Str    *ByteVector // KindStr
	Fields []*Value    // KindStruct / KindAsset, ordered per descriptor
	Elems  *Vector[*Value]
	Map    *IRMap
}

// IRMap is the typed layer over HashTable (component B) used for IR MAP
// values: it additionally remembers the map's declared value type so
// codecs can interpret the raw bytes HashTable stores.
//
// Per DESIGN.md / spec.md §9 Open Question 4, decoders must use the
// map's own declared MapValueTy when sizing/decoding entries, not the
// enclosing struct's type — the original ir_builtin_json_decode_map used
// the parent class by mistake; this implementation does not repeat that.
type IRMap struct {
	table    *HashTable
	valueTy  TypeRef
}

// NewIRMap creates an empty IRMap for the given key discriminator and
// declared value type.
func NewIRMap(keyKind Kind, valueTy TypeRef) *IRMap {
	return &IRMap{table: NewHashTable(0, keyKind), valueTy: valueTy}
}

// Table returns the underlying HashTable.
func (m *IRMap) Table() *HashTable { return m.table }

// ValueTy returns the map's declared value type.
func (m *IRMap) ValueTy() TypeRef { return m.valueTy }

// NewBoolValue builds an inline bool value.
func NewBoolValue(ty TypeRef, b bool) *Value {
	v := &Value{Ty: ty}
	if b {
		v.Bits = 1
	}
	return v
}

// NewIntValue builds an inline integer value from a uint64 bit pattern
// (two's complement for signed kinds <= 64 bits wide).
func NewIntValue(ty TypeRef, bits uint64) *Value {
	return &Value{Ty: ty, Bits: bits}
}

// NewBigValue builds a wide (128/256-bit) integer value.
func NewBigValue(ty TypeRef, v *big.Int) *Value {
	return &Value{Ty: ty, Big: new(big.Int).Set(v)}
}

// NewStrValue builds a STR value from a ByteVector.
func NewStrValue(ty TypeRef, s *ByteVector) *Value {
	return &Value{Ty: ty, Str: s}
}

// NewStructValue builds a STRUCT/ASSET value from field values, which
// must already be in declared-field order.
func NewStructValue(ty TypeRef, fields []*Value) *Value {
	return &Value{Ty: ty, Fields: fields}
}

// NewArrayValue builds an ARRAY value around an element vector.
func NewArrayValue(ty TypeRef, elems *Vector[*Value]) *Value {
	return &Value{Ty: ty, Elems: elems}
}

// NewMapValue builds a MAP value around an IRMap.
func NewMapValue(ty TypeRef, m *IRMap) *Value {
	return &Value{Ty: ty, Map: m}
}

// AsBool interprets an inline value's bit pattern as a bool.
func (v *Value) AsBool() bool { return v.Bits != 0 }

// AsUint64 interprets an inline value's bit pattern as an unsigned
// 64-bit integer.
func (v *Value) AsUint64() uint64 { return v.Bits }

// AsInt64 interprets an inline value's bit pattern as a signed 64-bit
// integer.
func (v *Value) AsInt64() int64 { return int64(v.Bits) }

// StructField returns the value stored at the given field index
// (get_data_ptr_of_ptr_value / get_ptr_of_ptr_value in spec.md §4.D,
// realized here as direct slice indexing since struct fields are held
// as typed Go values rather than raw bytes).
func (v *Value) StructField(i int) *Value { return v.Fields[i] }

// SetStructField overwrites the value stored at the given field index.
func (v *Value) SetStructField(i int, fv *Value) { v.Fields[i] = fv }

// ZeroValue builds a zero-initialized value of the given type, per
// spec.md §4.D "Zero-value construction":
//   - integer, bool: in-register zero, no heap allocation;
//   - U128/I128/U256/I256: a zeroed big.Int;
//   - STR: an empty ByteVector;
//   - STRUCT/ASSET: each field's zero value, in order;
//   - ARRAY: an empty element vector with double-on-grow;
//   - MAP: an empty IRMap parameterized by the key descriptor's kind.
func ZeroValue(d *Descriptors, arena *Arena, ty TypeRef) *Value {
	desc := d.Get(ty)
	switch desc.Kind {
	case KindBool:
		return NewBoolValue(ty, false)
	case KindU128, KindI128, KindU256, KindI256:
		return NewBigValue(ty, big.NewInt(0))
	case KindStr:
		return NewStrValue(ty, NewByteVector(arena, nil))
	case KindStruct, KindAsset:
		fields := make([]*Value, len(desc.StructFields))
		for i, fref := range desc.StructFields {
			fields[i] = ZeroValue(d, arena, fref)
		}
		return NewStructValue(ty, fields)
	case KindArray:
		return NewArrayValue(ty, NewVector[*Value](0, VectorDoubleOnGrow))
	case KindMap:
		keyDesc := d.Get(desc.MapKeyTy)
		return NewMapValue(ty, NewIRMap(keyDesc.Kind, desc.MapValueTy))
	default:
		// all remaining kinds are integer kinds <= 64 bits wide.
		return NewIntValue(ty, 0)
	}
}
