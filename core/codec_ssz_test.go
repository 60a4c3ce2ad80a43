package core

import "testing"

// sszAccountFixture builds the same struct shape and account value
// as spec.md §8 end-to-end scenario 7: version u16, owner str,
// address str, status u8, role u8, privilege u64, access_pk str,
// recovery_pk str, last_recovery_block u64, control_flag u8, balance u64,
// with role=2 and address="\x01\x02\x03", everything else zero.
func sszAccountFixture() (*Descriptors, TypeRef, *Arena, *Value) {
	const (
		refU8 TypeRef = iota
		refU16
		refU64
		refStr
		refAccount
	)
	table := make([]TypeDescriptor, refAccount+1)
	table[refU8] = TypeDescriptor{Kind: KindU8}
	table[refU16] = TypeDescriptor{Kind: KindU16}
	table[refU64] = TypeDescriptor{Kind: KindU64}
	table[refStr] = TypeDescriptor{Kind: KindStr}
	table[refAccount] = TypeDescriptor{
		Kind: KindStruct,
		StructFields: []TypeRef{
			refU16, refStr, refStr, refU8, refU8, refU64, refStr, refStr, refU64, refU8, refU64,
		},
		StructFieldNames: []string{
			"version", "owner", "address", "status", "role", "privilege",
			"access_pk", "recovery_pk", "last_recovery_block", "control_flag", "balance",
		},
	}
	d := NewDescriptors(table)
	arena := NewArena()
	v := ZeroValue(d, arena, refAccount)
	desc := d.Get(refAccount)
	for i, name := range desc.StructFieldNames {
		switch name {
		case "address":
			v.SetStructField(i, NewStrValue(desc.StructFields[i], NewByteVector(arena, []byte{0x01, 0x02, 0x03})))
		case "role":
			v.SetStructField(i, NewIntValue(desc.StructFields[i], 2))
		}
	}
	return d, refAccount, arena, v
}

func TestEncodeSSZAccountMatchesKnownFixture(t *testing.T) {
	d, ty, _, v := sszAccountFixture()
	got := EncodeHex(EncodeSSZ(d, ty, v))
	want := "00002d0000002d0000000002000000000000000030000000300000000000000000000000000000000000000000010203"
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestDecodeSSZAccountRoundTrip(t *testing.T) {
	d, ty, arena, v := sszAccountFixture()
	encoded := EncodeSSZ(d, ty, v)
	decoded := DecodeSSZ(d, arena, ty, encoded, false)
	reEncoded := EncodeSSZ(d, ty, decoded)
	if string(reEncoded) != string(encoded) {
		t.Fatalf("round-trip mismatch")
	}
	desc := d.Get(ty)
	for i, name := range desc.StructFieldNames {
		if name == "address" {
			if string(decoded.StructField(i).Str.Bytes()) != "\x01\x02\x03" {
				t.Fatalf("decoded address = %x, want 010203", decoded.StructField(i).Str.Bytes())
			}
		}
		if name == "role" {
			if decoded.StructField(i).AsUint64() != 2 {
				t.Fatalf("decoded role = %d, want 2", decoded.StructField(i).AsUint64())
			}
		}
	}
}

func TestDecodeSSZEmptyBytesTolerance(t *testing.T) {
	d, ty, arena, _ := sszAccountFixture()
	v := DecodeSSZ(d, arena, ty, nil, true)
	if v == nil {
		t.Fatal("expected a zero value, got nil")
	}
}

func TestDecodeSSZEmptyBytesAbortsWithoutTolerance(t *testing.T) {
	d, ty, arena, _ := sszAccountFixture()
	defer func() {
		if recover() == nil {
			t.Fatal("expected abort decoding empty bytes without allowEmptyObject")
		}
	}()
	DecodeSSZ(d, arena, ty, nil, false)
}

func TestIsSSZFixedLenStrIsFalse(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{{Kind: KindStr}})
	if IsSSZFixedLen(d, 0) {
		t.Fatal("str should not be SSZ fixed-len")
	}
}

func TestIsSSZFixedLenFixedArrayOfScalars(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{{Kind: KindU32}, {Kind: KindArray, ArrayItemTy: 0, ArraySize: 4}})
	if !IsSSZFixedLen(d, 1) {
		t.Fatal("fixed-size array of scalars should be SSZ fixed-len")
	}
}

func TestSSZByteArrayRoundTrip(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{{Kind: KindU8}, {Kind: KindArray, ArrayItemTy: 0}})
	arena := NewArena()
	elems := NewVector[*Value](0, VectorDoubleOnGrow)
	for _, b := range []uint64{10, 20, 30} {
		elems.AddLast(NewIntValue(0, b))
	}
	v := NewArrayValue(1, elems)
	encoded := EncodeSSZ(d, 1, v)
	if string(encoded) != "\x0a\x14\x1e" {
		t.Fatalf("got %x, want 0a141e", encoded)
	}
	decoded := DecodeSSZ(d, arena, 1, encoded, false)
	if decoded.Elems.Size() != 3 {
		t.Fatalf("got %d elements, want 3", decoded.Elems.Size())
	}
}
