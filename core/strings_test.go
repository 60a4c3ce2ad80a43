package core

import "testing"

func TestCountNonOverlapping(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("aaaa"))
	if got := Count(v, []byte("aa"), 0, 4); got != 2 {
		t.Fatalf("got %d, want 2 (non-overlapping)", got)
	}
}

func TestFindAbsent(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("hello"))
	if got := Find(v, []byte("xyz"), 0, 5); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
	if got := Find(v, []byte("llo"), 0, 5); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestStartsWithEndsWith(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("hello world"))
	if !StartsWith(v, []byte("hello"), 0, 11) {
		t.Fatal("expected StartsWith true")
	}
	if !EndsWith(v, []byte("world"), 0, 11) {
		t.Fatal("expected EndsWith true")
	}
	if StartsWith(v, []byte("world"), 0, 11) {
		t.Fatal("expected StartsWith false")
	}
}

func TestStripVariants(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("  hi  "))
	if got := string(LStrip(a, v, []byte(" ")).Bytes()); got != "hi  " {
		t.Fatalf("LStrip got %q", got)
	}
	if got := string(RStrip(a, v, []byte(" ")).Bytes()); got != "  hi" {
		t.Fatalf("RStrip got %q", got)
	}
	if got := string(Strip(a, v, []byte(" ")).Bytes()); got != "hi" {
		t.Fatalf("Strip got %q", got)
	}
}

func TestSplitOnLiteralSeparator(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("a,b,,c"))
	parts := Split(a, v, []byte(","))
	want := []string{"a", "b", "", "c"}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts, want %d", len(parts), len(want))
	}
	for i, p := range parts {
		if string(p.Bytes()) != want[i] {
			t.Fatalf("part %d = %q, want %q", i, p.Bytes(), want[i])
		}
	}
}

func TestSplitEmptySeparatorAborts(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("abc"))
	defer func() {
		if recover() == nil {
			t.Fatal("expected abort on empty separator")
		}
	}()
	Split(a, v, []byte{})
}

func TestClassifiers(t *testing.T) {
	a := NewArena()
	if !IsAlpha(NewByteVector(a, []byte("Hello"))) {
		t.Fatal("IsAlpha(Hello) should be true")
	}
	if IsAlpha(NewByteVector(a, []byte("Hello1"))) {
		t.Fatal("IsAlpha(Hello1) should be false")
	}
	if !IsDigit(NewByteVector(a, []byte("12345"))) {
		t.Fatal("IsDigit(12345) should be true")
	}
	if IsDigit(NewByteVector(a, []byte(""))) {
		t.Fatal("IsDigit(\"\") should be false")
	}
	if !IsLower(NewByteVector(a, []byte("abc"))) {
		t.Fatal("IsLower(abc) should be true")
	}
	if IsLower(NewByteVector(a, []byte(""))) {
		t.Fatal("IsLower(\"\") should be false")
	}
	if !IsUpper(NewByteVector(a, []byte("ABC"))) {
		t.Fatal("IsUpper(ABC) should be true")
	}
	if !IsSpace(NewByteVector(a, []byte(" \t\n"))) {
		t.Fatal("IsSpace should be true for whitespace-only")
	}
}

func TestToUpperToLower(t *testing.T) {
	a := NewArena()
	v := NewByteVector(a, []byte("Hello123"))
	if got := string(ToUpper(a, v).Bytes()); got != "HELLO123" {
		t.Fatalf("ToUpper got %q", got)
	}
	if got := string(ToLower(a, v).Bytes()); got != "hello123" {
		t.Fatalf("ToLower got %q", got)
	}
}
