package universe

import "math/bits"

const wordBits = 64

// bitset is a fixed-size packed bit store. Bits are addressed 0..n-1 and
// start out zero; the backing slice never grows after allocation.
type bitset struct {
	n     int
	words []uint64
}

func newBitset(n int) bitset {
	if n < 0 {
		n = 0
	}
	return bitset{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

func (b bitset) len() int { return b.n }

func (b bitset) get(i int) bool {
	return b.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

func (b bitset) set(i int, v bool) {
	if v {
		b.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		b.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

func (b bitset) clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// count returns the number of set bits.
func (b bitset) count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}
	return total
}
