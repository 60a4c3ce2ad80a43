package core

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// jsonObject and jsonArray are an order-preserving JSON object model,
// adapted from rpcpool-yellowstone-faithful/jsonbuilder/builder.go's
// OrderedJSONObject/ArrayBuilder (see DESIGN.md "JSON codec"): the
// builder side of spec.md §4.H's external object model contract
// (CreateObject/AddItemToObject/CreateArray/AddItemToArray).
type jsonObject struct {
	keys   []string
	values []any
}

type jsonArray struct {
	values []any
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// CreateObject implements spec.md §4.H's CreateObject.
func CreateObject() *jsonObject { return &jsonObject{} }

// CreateArray implements CreateArray.
func CreateArray() *jsonArray { return &jsonArray{} }

// CreateNumber implements CreateNumber for a signed integer value.
func CreateNumber(v int64) any { return v }

// CreateUNumber implements CreateNumber for an unsigned integer value.
func CreateUNumber(v uint64) any { return v }

// CreateBool implements CreateBool.
func CreateBool(v bool) any { return v }

// CreateString implements CreateString.
func CreateString(v string) any { return v }

// AddItemToObject implements AddItemToObject, preserving insertion order.
func AddItemToObject(o *jsonObject, key string, value any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

// AddItemToArray implements AddItemToArray.
func AddItemToArray(a *jsonArray, value any) {
	a.values = append(a.values, value)
}

func (o *jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := jsonAPI.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := jsonAPI.Marshal(o.values[i])
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *jsonArray) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(a.values)
}

// Print implements Print, serializing the built object model to bytes.
func Print(v any) []byte {
	b, err := jsonAPI.Marshal(v)
	if err != nil {
		Abortf(CallerContext(), "json encode error: %v", err)
	}
	return b
}

// Parse implements Parse, returning a query handle over raw JSON bytes.
func Parse(data []byte) jsoniter.Any {
	return jsoniter.Get(data)
}

// IsNumber, IsBool, IsString, IsArray implement the corresponding
// spec.md §4.H predicates over a parsed node.
func IsNumber(n jsoniter.Any) bool { return n.ValueType() == jsoniter.NumberValue }
func IsBool(n jsoniter.Any) bool   { return n.ValueType() == jsoniter.BoolValue }
func IsString(n jsoniter.Any) bool { return n.ValueType() == jsoniter.StringValue }
func IsArray(n jsoniter.Any) bool  { return n.ValueType() == jsoniter.ArrayValue }
func IsObject(n jsoniter.Any) bool { return n.ValueType() == jsoniter.ObjectValue }

// GetNumberValue implements GetNumberValue.
func GetNumberValue(n jsoniter.Any) float64 { return n.ToFloat64() }

// GetStringValue implements GetStringValue.
func GetStringValue(n jsoniter.Any) string { return n.ToString() }

// GetArraySize implements GetArraySize.
func GetArraySize(n jsoniter.Any) int { return n.Size() }

// GetArrayItem implements GetArrayItem.
func GetArrayItem(n jsoniter.Any, i int) jsoniter.Any { return n.Get(i) }

// ArrayForEach implements ArrayForEach.
func ArrayForEach(n jsoniter.Any, fn func(i int, item jsoniter.Any)) {
	size := n.Size()
	for i := 0; i < size; i++ {
		fn(i, n.Get(i))
	}
}

// GetObjectItem resolves a named field on an object node.
func GetObjectItem(n jsoniter.Any, key string) jsoniter.Any { return n.Get(key) }
