package universe

import "testing"

func TestBitsetAcrossWordBoundaries(t *testing.T) {
	b := newBitset(130)
	if b.len() != 130 {
		t.Fatalf("len = %d, want 130", b.len())
	}
	for _, i := range []int{0, 63, 64, 127, 128, 129} {
		b.set(i, true)
		if !b.get(i) {
			t.Fatalf("bit %d not set", i)
		}
	}
	if b.count() != 6 {
		t.Fatalf("count = %d, want 6", b.count())
	}

	b.set(64, false)
	if b.get(64) || b.count() != 5 {
		t.Fatalf("after unset: get(64)=%v count=%d", b.get(64), b.count())
	}

	b.set(0, true)
	if b.count() != 5 {
		t.Fatalf("re-setting a bit changed count to %d", b.count())
	}

	b.clear()
	if b.count() != 0 {
		t.Fatalf("count after clear = %d", b.count())
	}
}

func TestBitsetZeroAndNegativeSizes(t *testing.T) {
	if n := newBitset(0).len(); n != 0 {
		t.Fatalf("len of empty bitset = %d", n)
	}
	if n := newBitset(-5).len(); n != 0 {
		t.Fatalf("len of negative-size bitset = %d", n)
	}
}
