package core

import "testing"

func TestIsIntegerKind(t *testing.T) {
	for _, k := range []Kind{KindU8, KindU16, KindU32, KindU64, KindU128, KindI8, KindI16, KindI32, KindI64, KindI128, KindU256, KindI256} {
		if !IsIntegerKind(k) {
			t.Fatalf("%v should be an integer kind", k)
		}
	}
	for _, k := range []Kind{KindBool, KindStr, KindAsset, KindStruct, KindArray, KindMap} {
		if IsIntegerKind(k) {
			t.Fatalf("%v should not be an integer kind", k)
		}
	}
}

func TestIsPointerKind(t *testing.T) {
	for _, k := range []Kind{KindStr, KindAsset, KindStruct, KindArray, KindMap} {
		if !IsPointerKind(k) {
			t.Fatalf("%v should be a pointer kind", k)
		}
	}
	if IsPointerKind(KindU64) {
		t.Fatal("u64 should not be a pointer kind")
	}
}

func TestSizeOfScalars(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{{Kind: KindU8}, {Kind: KindU64}, {Kind: KindStr}})
	if got := SizeOf(d, 0); got != 1 {
		t.Fatalf("u8 SizeOf = %d, want 1", got)
	}
	if got := SizeOf(d, 1); got != 8 {
		t.Fatalf("u64 SizeOf = %d, want 8", got)
	}
	if got := SizeOf(d, 2); got != AddrSize {
		t.Fatalf("str SizeOf = %d, want %d", got, AddrSize)
	}
}

func TestSizeOfStructFlooredAtFour(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{
		{Kind: KindU8},
		{Kind: KindStruct, StructFields: []TypeRef{0}, StructFieldNames: []string{"a"}},
	})
	if got := SizeOf(d, 1); got != 4 {
		t.Fatalf("1-byte struct SizeOf = %d, want floored to 4", got)
	}
}

func TestFieldOffsetsPackedNoPadding(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{
		{Kind: KindU8},
		{Kind: KindU32},
		{Kind: KindU64},
		{Kind: KindStruct, StructFields: []TypeRef{0, 1, 2}, StructFieldNames: []string{"a", "b", "c"}},
	})
	offsets := FieldOffsets(d, 3)
	want := []uint32{0, 1, 5}
	for i, o := range offsets {
		if o != want[i] {
			t.Fatalf("offset[%d] = %d, want %d", i, o, want[i])
		}
	}
}

func TestGetOutOfRangeAborts(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{{Kind: KindU8}})
	defer func() {
		if recover() == nil {
			t.Fatal("expected abort on out-of-range TypeRef")
		}
	}()
	d.Get(5)
}

func TestPrintTypeWalksStructArrayMap(t *testing.T) {
	d := NewDescriptors([]TypeDescriptor{
		{Kind: KindU8},                                          // 0
		{Kind: KindU64},                                         // 1
		{Kind: KindArray, ArrayItemTy: 1, ArraySize: 3},          // 2: fixed array of u64
		{Kind: KindMap, MapKeyTy: 0, MapValueTy: 1},              // 3: u8 -> u64
		{Kind: KindStruct, StructFields: []TypeRef{2, 3}, StructFieldNames: []string{"arr", "m"}}, // 4
	})
	h := NewLocalHost()
	PrintType(d, h, 4)

	if len(h.Printed) == 0 {
		t.Fatal("expected PrintType to print at least one line")
	}
	if h.Printed[0] != "struct" {
		t.Fatalf("first line = %q, want %q", h.Printed[0], "struct")
	}
	joined := ""
	for _, l := range h.Printed {
		joined += l + "\n"
	}
	for _, want := range []string{"fields:", "arr", "array", "size:", "m", "map", "key:", "value:"} {
		found := false
		for _, l := range h.Printed {
			if l == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected a line %q in output:\n%s", want, joined)
		}
	}
}
