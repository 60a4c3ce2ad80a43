package main

import (
	"github.com/AntChainOpenLabs/Smart-Intermediate-Representation/core"
)

// demoAccountDescriptors builds the fixed descriptor table for the
// "account" struct used by spec.md §8 end-to-end scenario 7 (SSZ
// account struct): version u16, owner str, address str, status u8,
// role u8, privilege u64, access_pk str, recovery_pk str,
// last_recovery_block u64, control_flag u8, balance u64. Field order is
// significant (it drives the packed struct layout and the SSZ fixed/
// varying split).
func demoAccountDescriptors() (*core.Descriptors, core.TypeRef) {
	const (
		refU8 core.TypeRef = iota
		refU16
		refU64
		refStr
		refAccount
	)
	table := make([]core.TypeDescriptor, refAccount+1)
	table[refU8] = core.TypeDescriptor{Kind: core.KindU8}
	table[refU16] = core.TypeDescriptor{Kind: core.KindU16}
	table[refU64] = core.TypeDescriptor{Kind: core.KindU64}
	table[refStr] = core.TypeDescriptor{Kind: core.KindStr}
	table[refAccount] = core.TypeDescriptor{
		Kind: core.KindStruct,
		StructFields: []core.TypeRef{
			refU16, refStr, refStr, refU8, refU8, refU64, refStr, refStr, refU64, refU8, refU64,
		},
		StructFieldNames: []string{
			"version", "owner", "address", "status", "role", "privilege",
			"access_pk", "recovery_pk", "last_recovery_block", "control_flag", "balance",
		},
	}
	return core.NewDescriptors(table), refAccount
}

// demoAccountValue builds the scenario-7 account value: role=2,
// address="\x01\x02\x03", every other field zeroed.
func demoAccountValue(d *core.Descriptors, arena *core.Arena, ty core.TypeRef) *core.Value {
	v := core.ZeroValue(d, arena, ty)
	desc := d.Get(ty)
	for i, name := range desc.StructFieldNames {
		switch name {
		case "address":
			v.SetStructField(i, core.NewStrValue(desc.StructFields[i], core.NewByteVector(arena, []byte{0x01, 0x02, 0x03})))
		case "role":
			v.SetStructField(i, core.NewIntValue(desc.StructFields[i], 2))
		}
	}
	return v
}
