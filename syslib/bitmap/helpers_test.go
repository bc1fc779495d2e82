// Doost!

package bitmap

import (
	"math/rand"
	"testing"
)

// randomBits returns a bit sequence of length n made of runs of 0s, runs
// of 1s, and random stretches, so that both tiles and fills occur.
func randomBits(rnd *rand.Rand, n int) []bool {
	var bits = make([]bool, 0, n)
	for len(bits) < n {
		m := min(rnd.Intn(LiteralBits*4)+1, n-len(bits))
		switch rnd.Intn(3) {
		case 0:
			bits = append(bits, make([]bool, m)...)
		case 1:
			for i := 0; i < m; i++ {
				bits = append(bits, true)
			}
		default:
			for i := 0; i < m; i++ {
				bits = append(bits, rnd.Intn(2) == 1)
			}
		}
	}
	return bits
}

type boolOp func(a, b bool) bool

var (
	andBits boolOp = func(a, b bool) bool { return a && b }
	orBits  boolOp = func(a, b bool) bool { return a || b }
	xorBits boolOp = func(a, b bool) bool { return a != b }
)

// refBitwise applies op to a and b, the shorter extended with ext to the
// longer length.
func refBitwise(op boolOp, ext bool, a, b []bool) []bool {
	var res = make([]bool, max(len(a), len(b)))
	for i := range res {
		var x, y = ext, ext
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		res[i] = op(x, y)
	}
	return res
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// verifyCanonical asserts the structural invariants of w:
//   - no fill block of run-length < 2
//   - adjacent fills of the same value only after a full fill
//   - block words sum to the cached word count, which agrees with the bit length
//   - pad bits of the final word are 0
func verifyCanonical(t *testing.T, info string, w *Wahl) {
	t.Helper()
	var nwords int
	var prev Element
	for i, e := range w.Elements() {
		if e.IsRun() {
			if e.rlen() < 2 {
				t.Fatalf("%s: block %d: %s has run-length %d", info, i, e, e.rlen())
			}
			if i > 0 && prev.IsRun() && prev.fval() == e.fval() && prev.rlen() != MaxRunLength {
				t.Fatalf("%s: block %d: unmerged fills %s %s", info, i, prev, e)
			}
		}
		nwords += e.Words()
		prev = e
	}
	if nwords != w.Words() {
		t.Fatalf("%s: block words %d - cached words %d", info, nwords, w.Words())
	}
	if expect := (w.BitLen() + LiteralBits - 1) / LiteralBits; nwords != expect {
		t.Fatalf("%s: %d words for %d bits - expected %d", info, nwords, w.BitLen(), expect)
	}
	if r := uint(w.BitLen() % LiteralBits); r != 0 && prev.Word()&^lowMask(r) != 0 {
		t.Fatalf("%s: pad bits set in final block %s", info, prev)
	}
}

func mapArray(a []int) map[int]bool {
	a_map := make(map[int]bool)
	for _, v := range a {
		a_map[v] = true
	}
	return a_map
}

// asserts maps are identical: have same length and same content
func compareMaps(t *testing.T, info string, a, b map[int]bool) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("%s - %d != %d", info, len(a), len(b))
	}
	for k := range a {
		if !b[k] {
			t.Fatalf("%s - k:%d", info, k)
		}
	}
}
