package core

import (
	"math/big"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// This file implements the schema-driven JSON codec of spec.md §4.H,
// built on the object model in jsonmodel.go.

const maxJSONDepth = 64

func jsonDepthGuard(depth int) {
	if depth > maxJSONDepth {
		Abort(CallerContext(), "json decode error: recursion depth exceeded")
	}
}

// EncodeJSON encodes v (of type ty) as a JSON document, mirroring the
// schema: integers -> number, BOOL -> bool, STR -> string, ARRAY ->
// array, STRUCT/ASSET -> object keyed by field name, MAP -> object keyed
// by stringified key (integer keys in base 10 via strconv.FormatInt /
// FormatUint).
func EncodeJSON(d *Descriptors, arena *Arena, ty TypeRef, v *Value) []byte {
	return Print(jsonEncodeNode(d, arena, ty, v, 0))
}

func jsonEncodeNode(d *Descriptors, arena *Arena, ty TypeRef, v *Value, depth int) any {
	jsonDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindBool:
		return CreateBool(v.AsBool())
	case KindStr:
		return CreateString(string(v.Str.Bytes()))
	case KindStruct, KindAsset:
		obj := CreateObject()
		for i, f := range desc.StructFields {
			AddItemToObject(obj, desc.StructFieldNames[i], jsonEncodeNode(d, arena, f, v.Fields[i], depth+1))
		}
		return obj
	case KindArray:
		arr := CreateArray()
		n := v.Elems.Size()
		for i := 0; i < n; i++ {
			AddItemToArray(arr, jsonEncodeNode(d, arena, desc.ArrayItemTy, v.Elems.GetAt(i, false), depth+1))
		}
		return arr
	case KindMap:
		return jsonEncodeMap(d, arena, desc, v, depth)
	default:
		if IsSignedKind(desc.Kind) {
			if v.Big != nil {
				return jsoniter.RawMessage(v.Big.String())
			}
			return CreateNumber(v.AsInt64())
		}
		if v.Big != nil {
			return jsoniter.RawMessage(v.Big.String())
		}
		return CreateUNumber(v.AsUint64())
	}
}

func jsonEncodeMap(d *Descriptors, arena *Arena, desc *TypeDescriptor, v *Value, depth int) *jsonObject {
	obj := CreateObject()
	keyDesc := d.Get(desc.MapKeyTy)
	cur := &HashCursor{}
	m := v.Map.Table()
	for {
		key, _, ok := m.GetNext(cur, false)
		if !ok {
			break
		}
		var keyStr string
		if keyDesc.Kind == KindStr {
			keyStr = key.Str
		} else if IsSignedKind(keyDesc.Kind) {
			keyStr = strconv.FormatInt(int64(key.Int), 10)
		} else {
			keyStr = strconv.FormatUint(key.Int, 10)
		}
		sub, ok := GetMapValue(d, arena, v.Map, key)
		if !ok {
			continue
		}
		AddItemToObject(obj, keyStr, jsonEncodeNode(d, arena, desc.MapValueTy, sub, depth+1))
	}
	return obj
}

// DecodeJSON decodes data into a value of type ty, checking each node's
// JSON type against the schema (spec.md §7 error strings).
func DecodeJSON(d *Descriptors, arena *Arena, ty TypeRef, data []byte) *Value {
	node := Parse(data)
	return jsonDecodeNode(d, arena, ty, node, 0)
}

func jsonDecodeNode(d *Descriptors, arena *Arena, ty TypeRef, node jsoniter.Any, depth int) *Value {
	jsonDepthGuard(depth)
	desc := d.Get(ty)
	switch desc.Kind {
	case KindBool:
		if !IsBool(node) {
			Abort(CallerContext(), "json decode error: not a valid bool")
		}
		return NewBoolValue(ty, node.ToBool())
	case KindStr:
		if !IsString(node) {
			Abort(CallerContext(), "json decode error: not a valid string")
		}
		return NewStrValue(ty, NewByteVector(arena, []byte(node.ToString())))
	case KindStruct, KindAsset:
		return jsonDecodeStruct(d, arena, ty, desc, node, depth)
	case KindArray:
		return jsonDecodeArray(d, arena, ty, desc, node, depth)
	case KindMap:
		return jsonDecodeMap(d, arena, ty, desc, node, depth)
	default:
		if !IsNumber(node) {
			Abort(CallerContext(), "json decode error: not a valid number")
		}
		return jsonDecodeNumber(ty, desc.Kind, node)
	}
}

func jsonDecodeNumber(ty TypeRef, k Kind, node jsoniter.Any) *Value {
	width, _ := scalarWidth(k)
	if width <= 8 {
		if IsSignedKind(k) {
			return NewIntValue(ty, uint64(node.ToInt64()))
		}
		return NewIntValue(ty, node.ToUint64())
	}
	s := node.ToString()
	big, ok := new(big.Int).SetString(s, 10)
	if !ok {
		Abort(CallerContext(), "json decode error: not a valid number")
	}
	return NewBigValue(ty, big)
}

func jsonDecodeStruct(d *Descriptors, arena *Arena, ty TypeRef, desc *TypeDescriptor, node jsoniter.Any, depth int) *Value {
	fields := make([]*Value, len(desc.StructFields))
	for i, f := range desc.StructFields {
		name := desc.StructFieldNames[i]
		item := GetObjectItem(node, name)
		if item.ValueType() == jsoniter.InvalidValue {
			Abort(CallerContext(), "struct field name not match")
		}
		fields[i] = jsonDecodeNode(d, arena, f, item, depth+1)
	}
	return NewStructValue(ty, fields)
}

func jsonDecodeArray(d *Descriptors, arena *Arena, ty TypeRef, desc *TypeDescriptor, node jsoniter.Any, depth int) *Value {
	if !IsArray(node) {
		Abort(CallerContext(), "json decode error: not a valid array")
	}
	elems := NewVector[*Value](0, VectorDoubleOnGrow)
	n := GetArraySize(node)
	for i := 0; i < n; i++ {
		elems.AddLast(jsonDecodeNode(d, arena, desc.ArrayItemTy, GetArrayItem(node, i), depth+1))
	}
	return NewArrayValue(ty, elems)
}

// jsonDecodeMap follows Open Question 4's resolution (spec.md §9): uses
// the map's own declared map_value_ty, not the enclosing parent class,
// when sizing/decoding each entry.
func jsonDecodeMap(d *Descriptors, arena *Arena, ty TypeRef, desc *TypeDescriptor, node jsoniter.Any, depth int) *Value {
	keyDesc := d.Get(desc.MapKeyTy)
	m := NewIRMap(keyDesc.Kind, desc.MapValueTy)
	node.ToString() // force materialization for key enumeration below via GetInterface
	raw, ok := node.GetInterface().(map[string]interface{})
	if !ok {
		return NewMapValue(ty, m)
	}
	for k := range raw {
		item := GetObjectItem(node, k)
		sub := jsonDecodeNode(d, arena, desc.MapValueTy, item, depth+1)
		var key HashKey
		if keyDesc.Kind == KindStr {
			key = StrKey(k)
		} else if IsSignedKind(keyDesc.Kind) {
			n, err := strconv.ParseInt(k, 10, 64)
			if err != nil {
				Abort(CallerContext(), "json decode error: not a valid number")
			}
			key = IntKey(uint64(n))
		} else {
			n, err := strconv.ParseUint(k, 10, 64)
			if err != nil {
				Abort(CallerContext(), "json decode error: not a valid number")
			}
			key = IntKey(n)
		}
		PutMapValue(d, m, key, sub)
	}
	return NewMapValue(ty, m)
}
