package helpers

import "testing"

func TestFindFloorIndexExactMatch(t *testing.T) {
	values := []int64{100, 250, 500, 1000}

	idx, ok := FindFloorIndex(values, 250)
	if !ok {
		t.Fatalf("expected a floor index for 250")
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
}

func TestFindFloorIndexBetweenValues(t *testing.T) {
	values := []int64{100, 250, 500, 1000}

	idx, ok := FindFloorIndex(values, 300)
	if !ok {
		t.Fatalf("expected a floor index for 300")
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
}

func TestFindFloorIndexBelowMinimum(t *testing.T) {
	values := []int64{100, 250, 500}

	if _, ok := FindFloorIndex(values, 99); ok {
		t.Errorf("expected no floor index for 99")
	}
}

func TestFindFloorIndexAboveMaximum(t *testing.T) {
	values := []int64{100, 250, 500}

	idx, ok := FindFloorIndex(values, 12345)
	if !ok {
		t.Fatalf("expected a floor index for 12345")
	}
	if idx != 2 {
		t.Errorf("idx = %d, want 2", idx)
	}
}

func TestFindFloorIndexEmpty(t *testing.T) {
	if _, ok := FindFloorIndex(nil, 0); ok {
		t.Errorf("expected no floor index for an empty table")
	}
}
