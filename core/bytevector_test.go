package core

import "testing"

func TestByteVectorAppendGrowsAndNULTerminates(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("hi"))
	v.Append([]byte(" there"))
	if string(v.Bytes()) != "hi there" {
		t.Fatalf("got %q", v.Bytes())
	}
	if v.Cap() <= v.Len() {
		t.Fatalf("capacity %d must exceed length %d for the trailing NUL", v.Cap(), v.Len())
	}
}

func TestByteVectorConcat(t *testing.T) {
	a := NewArena()
	x := NewByteVector(a, []byte("foo"))
	y := NewByteVector(a, []byte("bar"))
	z := x.Concat(y)
	if string(z.Bytes()) != "foobar" {
		t.Fatalf("got %q", z.Bytes())
	}
}

func TestByteVectorInsertAt(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("ace"))
	v.InsertAt(1, InsertBefore, []byte("b"))
	if string(v.Bytes()) != "abce" {
		t.Fatalf("got %q", v.Bytes())
	}
}

func TestByteVectorSubstr(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("hello world"))
	sub := v.Substr(6, 11)
	if string(sub.Bytes()) != "world" {
		t.Fatalf("got %q", sub.Bytes())
	}
}

func TestJoinByteVectors(t *testing.T) {
	a := NewArena()
	items := []*ByteVector{NewByteVector(a, []byte("a")), NewByteVector(a, []byte("b")), NewByteVector(a, []byte("c"))}
	got := JoinByteVectors(a, []byte(","), items)
	if string(got.Bytes()) != "a,b,c" {
		t.Fatalf("got %q", got.Bytes())
	}
}

func TestReplaceByteVector(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("ababab"))
	got := ReplaceByteVector(a, v, []byte("ab"), []byte("X"), -1)
	if string(got.Bytes()) != "XXX" {
		t.Fatalf("got %q", got.Bytes())
	}
	got2 := ReplaceByteVector(a, v, []byte("ab"), []byte("X"), 1)
	if string(got2.Bytes()) != "Xabab" {
		t.Fatalf("got %q", got2.Bytes())
	}
}

func TestByteVectorFreeThenReallocReusesArenaBlock(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("1234567"))
	addr := v.data
	v.Free()
	v2 := NewByteVector(a, []byte("abcdefg"))
	if v2.data != addr {
		t.Fatalf("expected freed block to be reused at %d, got %d", addr, v2.data)
	}
}
