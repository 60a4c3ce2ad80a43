package core

// This file implements the coverage counters of spec.md §4.K, grounded
// on original_source/mycov.c's global_counters qvector and its
// dump_counters_to_mygcna JSON serialization.

// CoverageCounters holds one element vector of 32-bit counts, indexed by
// basic-block id (the counterpart of mycov.c's get_singleton_counters).
// A fresh CLI invocation or test gets its own instance rather than a
// package-level global, so concurrent tests don't share state.
type CoverageCounters struct {
	counters *Vector[uint32]
}

func NewCoverageCounters() *CoverageCounters {
	return &CoverageCounters{counters: NewVector[uint32](1, VectorDoubleOnGrow)}
}

// AddCoverageCounter implements ir_builtin_add_coverage_counter: grow
// the vector as needed (capacity doubles, gap zero-filled), then bump
// counters[id].
func (c *CoverageCounters) AddCoverageCounter(bbID int32) {
	if bbID < 0 {
		Abort(CallerContext(), "invalid cov bb id(< 0)")
	}
	id := int(bbID)
	for c.counters.Size() <= id {
		c.counters.AddLast(0)
	}
	c.counters.SetAt(id, c.counters.GetAt(id, false)+1)
}

// GetCoverageCounters implements ir_builtin_get_coverage_counters: the
// raw counter vector.
func (c *CoverageCounters) GetCoverageCounters() *Vector[uint32] {
	return c.counters
}

// CallCoverageLog implements ir_builtin_call_coverage_log: serialize the
// sparse non-zero portion of the counters as a small JSON document (the
// mygcna format) and emit it via the host log API under topic (the
// original hard-codes "MyCoverage"; this runtime loads it from
// pkg/config so an embedder can rename it).
func (c *CoverageCounters) CallCoverageLog(h Host, topic string) {
	countersObj := CreateObject()
	n := c.counters.Size()
	for i := 0; i < n; i++ {
		count := c.counters.GetAt(i, false)
		if count == 0 {
			continue
		}
		AddItemToObject(countersObj, ScalarItoa(uint64(i), 4, false, 10), CreateUNumber(uint64(count)))
	}
	doc := CreateObject()
	AddItemToObject(doc, "version", CreateString("0.1.0"))
	AddItemToObject(doc, "counters", countersObj)

	s := NewByteStream()
	EncodeBytes(s, []byte(topic))
	EmitLog(h, [][]byte{s.Bytes()}, Print(doc))
}
