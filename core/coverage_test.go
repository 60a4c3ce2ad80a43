package core

import (
	"strings"
	"testing"
)

func TestAddCoverageCounterGrowsAndCounts(t *testing.T) {
	c := NewCoverageCounters()
	c.AddCoverageCounter(0)
	c.AddCoverageCounter(3)
	c.AddCoverageCounter(3)
	counters := c.GetCoverageCounters()
	if counters.Size() < 4 {
		t.Fatalf("counters did not grow to cover bb id 3: size=%d", counters.Size())
	}
	if got := counters.GetAt(0, false); got != 1 {
		t.Fatalf("bb0 count = %d, want 1", got)
	}
	if got := counters.GetAt(3, false); got != 2 {
		t.Fatalf("bb3 count = %d, want 2", got)
	}
	if got := counters.GetAt(1, false); got != 0 {
		t.Fatalf("bb1 count = %d, want 0 (gap must be zero-filled)", got)
	}
}

func TestAddCoverageCounterNegativeAborts(t *testing.T) {
	c := NewCoverageCounters()
	defer func() {
		if recover() == nil {
			t.Fatal("expected abort on negative bb id")
		}
	}()
	c.AddCoverageCounter(-1)
}

func TestCallCoverageLogEmitsSparseJSON(t *testing.T) {
	c := NewCoverageCounters()
	c.AddCoverageCounter(5)
	c.AddCoverageCounter(5)
	c.AddCoverageCounter(0)
	h := NewLocalHost()
	c.CallCoverageLog(h, "MyCoverage")

	if len(h.Logged) != 1 {
		t.Fatalf("expected exactly one log event, got %d", len(h.Logged))
	}
	event := h.Logged[0]
	if len(event.Topics) != 1 {
		t.Fatalf("expected one topic, got %d", len(event.Topics))
	}
	decoded := DecodeBytes(NewByteStreamFromBytes(event.Topics[0]))
	if string(decoded) != "MyCoverage" {
		t.Fatalf("topic = %q, want %q", decoded, "MyCoverage")
	}
	body := string(event.Desc)
	if !strings.Contains(body, `"version":"0.1.0"`) {
		t.Fatalf("missing version field: %s", body)
	}
	if !strings.Contains(body, `"5":2`) {
		t.Fatalf("missing bb5 count: %s", body)
	}
	if !strings.Contains(body, `"0":1`) {
		t.Fatalf("missing bb0 count: %s", body)
	}
	if strings.Contains(body, `"1":`) {
		t.Fatalf("zero counters must not be serialized: %s", body)
	}
}
