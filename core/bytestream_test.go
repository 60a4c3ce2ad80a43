package core

import "testing"

func TestByteStreamWriteReadRoundTrip(t *testing.T) {
	s := NewByteStream()
	s.WriteByte(0x01)
	s.WriteBytes([]byte("hello"))
	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}
	r := NewByteStreamFromBytes(s.Bytes())
	if got := r.ReadBytes(1); got[0] != 0x01 {
		t.Fatalf("got %x, want 01", got)
	}
	if got := r.ReadBytes(5); string(got) != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
	if r.ReadRemainingLength() != 0 {
		t.Fatalf("ReadRemainingLength() = %d, want 0", r.ReadRemainingLength())
	}
}

func TestByteStreamAdvanceAndSeekTo(t *testing.T) {
	s := NewByteStreamFromBytes([]byte("0123456789"))
	s.Advance(3)
	if s.ReadOffset() != 3 {
		t.Fatalf("ReadOffset() = %d, want 3", s.ReadOffset())
	}
	got := s.ReadBytes(2)
	if string(got) != "34" {
		t.Fatalf("got %q, want %q", got, "34")
	}
	s.SeekTo(0)
	if string(s.ReadBytes(1)) != "0" {
		t.Fatal("SeekTo did not rewind cursor")
	}
}

func TestByteStreamReadBytesButNotConsumeDoesNotAdvance(t *testing.T) {
	s := NewByteStreamFromBytes([]byte("abcdef"))
	peek := s.ReadBytesButNotConsume(0, 3)
	if string(peek) != "abc" {
		t.Fatalf("got %q, want %q", peek, "abc")
	}
	if s.ReadOffset() != 0 {
		t.Fatalf("ReadOffset() = %d, want 0 (peek must not move cursor)", s.ReadOffset())
	}
}

func TestByteStreamReadBytesOutOfRangeAborts(t *testing.T) {
	s := NewByteStreamFromBytes([]byte("ab"))
	defer func() {
		if recover() == nil {
			t.Fatal("expected abort when reading past end of stream")
		}
	}()
	s.ReadBytes(10)
}
