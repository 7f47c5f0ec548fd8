package sketch_test

import (
	"bytes"
	"testing"

	"github.com/sketchgraph/boruvka/sketch"
)

const testN = 4096

func TestQuery_FreshSketchIsAllZero(t *testing.T) {
	s := sketch.New(testN, 1, 4.0)
	if _, err := s.Query(); err != sketch.ErrAllZero {
		t.Fatalf("expected ErrAllZero, got %v", err)
	}
}

func TestQuery_SingletonRecovery(t *testing.T) {
	for _, i := range []uint64{0, 1, 17, testN - 1} {
		s := sketch.New(testN, 7, 4.0)
		if err := s.Update(i); err != nil {
			t.Fatalf("Update(%d): %v", i, err)
		}
		got, err := s.Query()
		if err != nil {
			t.Fatalf("Query() after Update(%d): %v", i, err)
		}
		if got != i {
			t.Fatalf("Query() = %d, want %d", got, i)
		}
	}
}

func TestQuery_OneShot(t *testing.T) {
	s := sketch.New(testN, 3, 4.0)
	_ = s.Update(5)
	if _, err := s.Query(); err != nil {
		t.Fatalf("first Query: %v", err)
	}
	if _, err := s.Query(); err != sketch.ErrRepeatedQuery {
		t.Fatalf("second Query: expected ErrRepeatedQuery, got %v", err)
	}
}

func TestUpdate_Involution(t *testing.T) {
	s := sketch.New(testN, 9, 4.0)
	before := s.Clone()
	if err := s.Update(123); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	if err := s.Update(123); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if !s.Equal(before) {
		t.Fatalf("two Update(123) calls should cancel out and leave state unchanged")
	}
}

func TestUpdate_OutOfRange(t *testing.T) {
	s := sketch.New(testN, 1, 4.0)
	if err := s.Update(testN); err != sketch.ErrIndexOutOfRange {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestMerge_Linearity(t *testing.T) {
	// s1 holds updates M and s2 is empty. Merging them and then applying
	// M again must give the same accumulators as merging two fresh
	// sketches that each received M separately (both cancel to zero).
	const seed, f = uint64(11), 4.0
	updates := []uint64{1, 2, 3, 17, 4095}

	s1 := sketch.New(testN, seed, f)
	s2 := sketch.New(testN, seed, f)
	for _, u := range updates {
		_ = s1.Update(u)
	}
	merged := s1.Clone()
	if err := merged.Merge(s2); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	for _, u := range updates {
		if err := merged.Update(u); err != nil {
			t.Fatalf("Update on merged: %v", err)
		}
	}

	separateA := sketch.New(testN, seed, f)
	separateB := sketch.New(testN, seed, f)
	for _, u := range updates {
		_ = separateA.Update(u)
	}
	for _, u := range updates {
		_ = separateB.Update(u)
	}
	separateMerged := separateA.Clone()
	if err := separateMerged.Merge(separateB); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if !merged.Equal(separateMerged) {
		t.Fatalf("linearity violated: merge-then-update != update-then-merge")
	}
}

func TestMerge_CancelsInternalEdges(t *testing.T) {
	// Two sketches that received the same single update should cancel to
	// all-zero when merged — the boundary-cancellation property the
	// registry relies on for sampling within a super-node.
	s1 := sketch.New(testN, 5, 4.0)
	s2 := sketch.New(testN, 5, 4.0)
	_ = s1.Update(42)
	_ = s2.Update(42)

	merged := s1.Clone()
	if err := merged.Merge(s2); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if _, err := merged.Query(); err != sketch.ErrAllZero {
		t.Fatalf("expected ErrAllZero after self-cancelling merge, got %v", err)
	}
}

func TestMerge_ParamMismatch(t *testing.T) {
	s1 := sketch.New(testN, 1, 4.0)
	s2 := sketch.New(testN+1, 1, 4.0)
	if err := s1.Merge(s2); err != sketch.ErrParamMismatch {
		t.Fatalf("expected ErrParamMismatch for differing N, got %v", err)
	}

	s3 := sketch.New(testN, 2, 4.0)
	if err := s1.Merge(s3); err != sketch.ErrParamMismatch {
		t.Fatalf("expected ErrParamMismatch for differing seed, got %v", err)
	}

	s4 := sketch.New(testN, 1, 8.0)
	if err := s1.Merge(s4); err != sketch.ErrParamMismatch {
		t.Fatalf("expected ErrParamMismatch for differing f, got %v", err)
	}
}

func TestRoundTrip_BinaryLayout(t *testing.T) {
	s := sketch.New(testN, 123, 4.0)
	for _, u := range []uint64{0, 5, 99, 4094} {
		_ = s.Update(u)
	}

	data, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	got, err := sketch.ReadBinary(bytes.NewReader(data), testN, 123)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}
	if !s.Equal(got) {
		t.Fatalf("round-tripped sketch does not equal original")
	}
}

func TestRoundTrip_UnmarshalBinary(t *testing.T) {
	s := sketch.New(testN, 55, 4.0)
	_ = s.Update(7)
	data, err := s.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	loaded := sketch.New(testN, 55, 4.0)
	if err := loaded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if !s.Equal(loaded) {
		t.Fatalf("UnmarshalBinary result does not equal original")
	}
	if loaded.Queried() {
		t.Fatalf("freshly unmarshaled sketch should not be marked queried")
	}
}
