// Package core implements the typed runtime value layer that compiled
// smart-contract IR links against at execution time: the runtime type
// descriptor table, the value model and containers, the type-directed
// codecs, and the deterministic allocator and host-boundary primitives.
package core

import "fmt"

// Kind is the runtime type discriminator. Order matters: any Kind <=
// KindI128, plus KindU256 and KindI256, denotes an integer type (see
// IsIntegerKind). This mirrors the closed discriminator set of spec.md
// §3.1 and the TABLE_KEY_IS_INT resolution recorded in DESIGN.md.
type Kind uint32

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindBool
	KindStr
	KindAsset
	KindStruct
	KindArray
	KindMap
	KindU256
	KindI256
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindU128:
		return "u128"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindI128:
		return "i128"
	case KindBool:
		return "bool"
	case KindStr:
		return "str"
	case KindAsset:
		return "asset"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindU256:
		return "u256"
	case KindI256:
		return "i256"
	default:
		return fmt.Sprintf("kind(%d)", uint32(k))
	}
}

// IsIntegerKind reports whether k is one of the integer discriminators.
// Per the Open Question in spec.md §9 (recorded in DESIGN.md "Runtime
// type table"),
// TABLE_KEY_IS_INT(t) is treated as t ∈ {U8..I128, U256, I256}.
func IsIntegerKind(k Kind) bool {
	return k <= KindI128 || k == KindU256 || k == KindI256
}

// IsSignedKind reports whether k is a signed integer discriminator.
func IsSignedKind(k Kind) bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindI128, KindI256:
		return true
	default:
		return false
	}
}

// IsPointerKind answers the spec's is_pointer_ir_type predicate: STR,
// ASSET, STRUCT, ARRAY and MAP values live on the heap and are addressed
// by a handle; every other kind is stored inline in its parent's slot.
func IsPointerKind(k Kind) bool {
	switch k {
	case KindStr, KindAsset, KindStruct, KindArray, KindMap:
		return true
	default:
		return false
	}
}

// TypeRef addresses a descriptor inside a Descriptors table. It is the
// Go-safe analogue of the byte-offset references used by the original C
// descriptor blob (spec.md §3.1, §9: "well-suited to a read-only slice
// parameter"). InvalidTypeRef marks an absent reference (e.g. a scalar
// type's StructFields, or a non-array type's ArrayItemTy).
type TypeRef uint32

// InvalidTypeRef is the sentinel "no such reference" value.
const InvalidTypeRef TypeRef = ^TypeRef(0)

// TypeDescriptor is the fixed-shape record describing one IR type, per
// spec.md §3.1.
type TypeDescriptor struct {
	Kind Kind

	// STRUCT / ASSET
	StructFields     []TypeRef
	StructFieldNames []string

	// ARRAY
	ArrayItemTy TypeRef
	ArraySize   uint32 // 0 => variable-length, N => fixed-length N

	// MAP
	MapKeyTy   TypeRef
	MapValueTy TypeRef
}

// intWidthBytes returns the natural in-register width, in bytes, of an
// integer or bool discriminator.
func intWidthBytes(k Kind) uint32 {
	switch k {
	case KindU8, KindI8, KindBool:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32:
		return 4
	case KindU64, KindI64:
		return 8
	case KindU128, KindI128:
		return 16
	case KindU256, KindI256:
		return 32
	default:
		return 0
	}
}

// AddrSize is the size in bytes of a pointer-type field's in-parent slot.
// The spec parameterizes this between the 32-bit sandbox target (4 bytes)
// and a native test target; this implementation targets the 32-bit
// sandbox ABI unconditionally since that is the wire-compatible contract
// compiled contracts expect (see spec.md §3.2).
const AddrSize = 4

// Descriptors is the process-wide immutable table of runtime type
// descriptors (spec.md §3.1 "Descriptor table"). It is bootstrapped once
// and is read-only thereafter (Invariant C).
type Descriptors struct {
	table []TypeDescriptor
}

// NewDescriptors builds a descriptor table from a slice of descriptors.
// Index i in table is addressed by TypeRef(i).
func NewDescriptors(table []TypeDescriptor) *Descriptors {
	cp := make([]TypeDescriptor, len(table))
	copy(cp, table)
	return &Descriptors{table: cp}
}

// Get resolves a TypeRef to its descriptor. It aborts via panic(*AbortError)
// if ref is out of range, mirroring the non-recoverable abort contract of
// spec.md §7.
func (d *Descriptors) Get(ref TypeRef) *TypeDescriptor {
	if d == nil || int(ref) < 0 || int(ref) >= len(d.table) {
		Abort(CallerContext(), fmt.Sprintf("runtime type table: offset out of range: %d", ref))
	}
	return &d.table[ref]
}

// Len returns the number of descriptors in the table.
func (d *Descriptors) Len() int { return len(d.table) }

var globalDescriptors *Descriptors

// SetAllRuntimesClassesAddress bootstraps the process-wide descriptor
// table. It corresponds to
// ir_builtin_set_all_runtimes_classes_address(base) in spec.md §6. It may
// be called more than once across independent invocations run
// sequentially in a test process (spec.md §3.3: "set once per
// invocation"), but concurrent calls are not supported (single-threaded
// cooperative execution, spec.md §5).
func SetAllRuntimesClassesAddress(d *Descriptors) {
	globalDescriptors = d
}

// CurrentDescriptors returns the bootstrapped descriptor table, or nil if
// none has been set yet.
func CurrentDescriptors() *Descriptors { return globalDescriptors }

// InParentSize returns the number of bytes a value of type ref occupies
// inside its parent struct's field slot (spec.md §3.2): the natural
// integer width for inline types, AddrSize for pointer types.
func InParentSize(d *Descriptors, ref TypeRef) uint32 {
	desc := d.Get(ref)
	if IsPointerKind(desc.Kind) {
		return AddrSize
	}
	return intWidthBytes(desc.Kind)
}

// SizeOf computes the in-memory size of a value of the given type
// (calculate_ir_type_size in the original stdlib): for structs/assets,
// the packed sum of per-field in-parent sizes floored at 4 bytes
// (Invariant A); for everything else, the same value as InParentSize.
func SizeOf(d *Descriptors, ref TypeRef) uint32 {
	desc := d.Get(ref)
	switch desc.Kind {
	case KindStruct, KindAsset:
		var total uint32
		for _, f := range desc.StructFields {
			total += InParentSize(d, f)
		}
		if total < 4 {
			total = 4
		}
		return total
	default:
		return InParentSize(d, ref)
	}
}

// PrintType implements ir_builtin_print_type (original_source/ir_type.c):
// recursively print a human-readable description of ref's shape via the
// host's Println, one line per fact (kind, field names, nested element
// types), walking struct/asset fields, array element types, and map
// key/value types the same way the original does.
func PrintType(d *Descriptors, h Host, ref TypeRef) {
	desc := d.Get(ref)
	switch desc.Kind {
	case KindStruct, KindAsset:
		h.Println([]byte(desc.Kind.String()))
		h.Println([]byte("fields:"))
		for i, f := range desc.StructFields {
			h.Println([]byte(desc.StructFieldNames[i]))
			PrintType(d, h, f)
		}
	case KindArray:
		if desc.ArraySize != 0 {
			h.Println([]byte("array"))
			h.Println([]byte("size:"))
			h.Println([]byte(ScalarItoa(uint64(desc.ArraySize), 4, false, 10)))
		} else {
			h.Println([]byte("vector"))
		}
		h.Println([]byte("element:"))
		PrintType(d, h, desc.ArrayItemTy)
	case KindMap:
		h.Println([]byte("map"))
		h.Println([]byte("key:"))
		PrintType(d, h, desc.MapKeyTy)
		h.Println([]byte("value:"))
		PrintType(d, h, desc.MapValueTy)
	default:
		h.Println([]byte(desc.Kind.String()))
	}
}

// FieldOffsets returns the byte offset of each field within a struct's
// packed layout (Invariant A: no padding, declared order).
func FieldOffsets(d *Descriptors, ref TypeRef) []uint32 {
	desc := d.Get(ref)
	offsets := make([]uint32, len(desc.StructFields))
	var cursor uint32
	for i, f := range desc.StructFields {
		offsets[i] = cursor
		cursor += InParentSize(d, f)
	}
	return offsets
}
