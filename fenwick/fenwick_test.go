package fenwick

import (
	"testing"

	"github.com/ntkit/numth/ring"
)

func mi(v int64) ring.ModInt { return ring.ModInt{M: 1_000_000_007}.FromInt(v) }

func TestAddAndSum(t *testing.T) {
	f := New(10, mi(0))
	vals := []int64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	for i, v := range vals {
		f.Add(i+1, mi(v))
	}
	want := int64(0)
	for i, v := range vals {
		want += v
		if got := f.Sum(i + 1); got.V != uint64(want) {
			t.Errorf("Sum(%d) = %d, want %d", i+1, got.V, want)
		}
	}
}

func TestRange(t *testing.T) {
	f := New(5, mi(0))
	for i, v := range []int64{1, 2, 3, 4, 5} {
		f.Add(i+1, mi(v))
	}
	if got := f.Range(2, 4); got.V != 9 {
		t.Errorf("Range(2,4) = %d, want 9", got.V)
	}
	if got := f.Range(1, 5); got.V != 15 {
		t.Errorf("Range(1,5) = %d, want 15", got.V)
	}
}

func TestSumZero(t *testing.T) {
	f := New(5, mi(0))
	if got := f.Sum(0); got.V != 0 {
		t.Errorf("Sum(0) = %d, want 0", got.V)
	}
}
