package core

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestPrintScalars(t *testing.T) {
	if got := string(Print(CreateUNumber(42))); got != "42" {
		t.Fatalf("got %q, want 42", got)
	}
	if got := string(Print(CreateBool(false))); got != "false" {
		t.Fatalf("got %q, want false", got)
	}
	if got := string(Print(CreateString("hi"))); got != `"hi"` {
		t.Fatalf("got %q", got)
	}
}

func TestObjectAndArrayBuildersRoundTripThroughParse(t *testing.T) {
	obj := CreateObject()
	AddItemToObject(obj, "a", CreateUNumber(1))
	AddItemToObject(obj, "b", CreateString("x"))
	encoded := Print(obj)

	node := Parse(encoded)
	if !IsObject(node) {
		t.Fatal("expected an object")
	}
	a := GetObjectItem(node, "a")
	if !IsNumber(a) || GetNumberValue(a) != 1 {
		t.Fatalf("a = %v, want 1", a)
	}
	b := GetObjectItem(node, "b")
	if !IsString(b) || GetStringValue(b) != "x" {
		t.Fatalf("b = %v, want x", b)
	}
}

func TestArrayForEach(t *testing.T) {
	arr := CreateArray()
	AddItemToArray(arr, CreateUNumber(1))
	AddItemToArray(arr, CreateUNumber(2))
	AddItemToArray(arr, CreateUNumber(3))
	encoded := Print(arr)

	node := Parse(encoded)
	if !IsArray(node) {
		t.Fatal("expected an array")
	}
	if GetArraySize(node) != 3 {
		t.Fatalf("size = %d, want 3", GetArraySize(node))
	}
	var total float64
	ArrayForEach(node, func(i int, item jsoniter.Any) {
		total += item.ToFloat64()
	})
	if total != 6 {
		t.Fatalf("total = %v, want 6", total)
	}
}

func TestGetObjectItemMissingKeyIsInvalidValue(t *testing.T) {
	obj := CreateObject()
	AddItemToObject(obj, "a", CreateUNumber(1))
	node := Parse(Print(obj))
	item := GetObjectItem(node, "missing")
	if item.ValueType() != jsoniter.InvalidValue {
		t.Fatalf("expected InvalidValue for a missing key, got %v", item.ValueType())
	}
}

func TestPrintNestedStructure(t *testing.T) {
	obj := CreateObject()
	arr := CreateArray()
	AddItemToArray(arr, CreateUNumber(1))
	AddItemToArray(arr, CreateUNumber(2))
	AddItemToObject(obj, "items", arr)
	encoded := string(Print(obj))
	if !strings.Contains(encoded, `"items":[1,2]`) {
		t.Fatalf("got %q", encoded)
	}
}
