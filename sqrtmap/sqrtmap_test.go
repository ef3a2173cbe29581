package sqrtmap

import (
	"errors"
	"testing"
)

func TestSmallAndLargeRoundtrip(t *testing.T) {
	const n = int64(100)
	const u = int64(11) // > ceil(sqrt(100)) = 10
	m := New[int64](u, n)

	for k := int64(0); k < u; k++ {
		m.Set(k, k*k)
	}
	for _, i := range []int64{1, 2, 3, 5, 7} {
		k := n / i
		m.Set(k, k+1000)
	}

	for k := int64(0); k < u; k++ {
		if got := m.Get(k); got != k*k {
			t.Errorf("Get(%d) = %d, want %d", k, got, k*k)
		}
	}
	for _, i := range []int64{1, 2, 3, 5, 7} {
		k := n / i
		if got := m.Get(k); got != k+1000 {
			t.Errorf("Get(%d) = %d, want %d", k, got, k+1000)
		}
	}
}

func TestContains(t *testing.T) {
	m := New[int](11, 100)
	if m.Contains(50) {
		t.Errorf("expected unset breakpoint to report Contains=false")
	}
	m.Set(50, 7)
	if !m.Contains(50) {
		t.Errorf("expected Set key to report Contains=true")
	}
	if m.Contains(49) {
		t.Errorf("49 is not a breakpoint of 100 and should never be representable")
	}
}

func TestBadKeyPanics(t *testing.T) {
	m := New[int](11, 100)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on invalid key")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrBadKey) {
			t.Fatalf("expected ErrBadKey, got %v", r)
		}
	}()
	m.Set(49, 1)
}

func TestGetUnsetPanics(t *testing.T) {
	m := New[int](11, 100)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on read of unset key")
		}
	}()
	m.Get(50)
}

func TestResetMax(t *testing.T) {
	m := New[int64](11, 100)
	m.Set(50, 1)
	m.ResetMax(64)
	if m.N() != 64 {
		t.Fatalf("N() = %d, want 64", m.N())
	}
	if m.Contains(32) {
		t.Errorf("breakpoint 32 under the old ceiling should not carry over")
	}
	m.Set(32, 9)
	if got := m.Get(32); got != 9 {
		t.Errorf("Get(32) = %d, want 9", got)
	}

	m.ResetMax(100)
	if m.Contains(50) {
		t.Errorf("raising the ceiling back up should not resurrect stale large entries")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic raising past the original construction ceiling")
		}
	}()
	m.ResetMax(101)
}

func TestFromFunc(t *testing.T) {
	const n = int64(50)
	tbl := FromFunc(func(k int64) int64 { return k * (k + 1) / 2 }, n, 0)
	if tbl.N() != n {
		t.Fatalf("N() = %d, want %d", tbl.N(), n)
	}
	for _, i := range []int64{1, 2, 3, 4, 7, 50} {
		k := n / i
		want := k * (k + 1) / 2
		if got := tbl.Get(k); got != want {
			t.Errorf("Get(n/%d=%d) = %d, want %d", i, k, got, want)
		}
	}
	if got := tbl.Get(0); got != 0 {
		t.Errorf("Get(0) = %d, want 0", got)
	}
}
