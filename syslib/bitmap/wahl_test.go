// Doost!

package bitmap

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"testing/quick"

	"github.com/alphazero/wahl/syslib/errors"
)

// test func NewWahl() *Wahl
// must:
//   - not return nil
//   - have bit length 0
//   - have len 0
//   - have Bits() []int{}
//   - be appendable
func TestNewWahl(t *testing.T) {
	var w = NewWahl()
	if w == nil {
		t.Fatal("NewWahl returned nil")
	}
	if n := w.BitLen(); n != 0 {
		t.Errorf("NewWahl().BitLen: %d - expected:%d", n, 0)
	}
	if wlen := w.Len(); wlen != 0 {
		t.Errorf("NewWahl().Len: %d - expected:%d", wlen, 0)
	}
	if bits := []int(w.Bits()); bits == nil || len(bits) > 0 {
		t.Errorf("NewWahl().Bits() returned %v", bits)
	}
	if _, ok := w.Iterator().Next(); ok {
		t.Error("NewWahl().Iterator().Next() returned a word")
	}
	w.AppendBit(true)
	if w.BitLen() != 1 || w.Count() != 1 || w.String() != "1" {
		t.Errorf("NewWahl().AppendBit(true): %s", w)
	}
}

func TestNewWahlInit(t *testing.T) {
	test := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		var bits []uint
		for i := rnd.Intn(200); i >= 0; i-- {
			bits = append(bits, uint(rnd.Intn(1<<12)))
		}
		w := NewWahlInit(bits...)
		verifyCanonical(t, "NewWahlInit", w)
		wmap := mapArray(w.Bits())
		for _, bit := range bits {
			if !wmap[int(bit)] {
				return false
			}
			if set, _ := w.Get(int(bit)); !set {
				return false
			}
		}
		return len(wmap) == w.Count()
	}
	if e := quick.Check(test, nil); e != nil {
		t.Error(e)
	}

	// duplicates and order are irrelevant
	var w = NewWahlInit(64, 3, 3, 0)
	if w.BitLen() != 65 || w.Count() != 3 {
		t.Errorf("BitLen: %d Count: %d", w.BitLen(), w.Count())
	}
}

func TestWahlGet(t *testing.T) {
	var w, _ = FromString("0110_0000")
	for i, expect := range []bool{false, true, true, false, false, false, false, false} {
		if have, e := w.Get(i); e != nil || have != expect {
			t.Errorf("Get(%d): %t %v - expected %t", i, have, e, expect)
		}
	}
	if _, e := w.Get(8); !errors.Is(e, errors.ErrRange) {
		t.Errorf("Get(8): %v - expected ErrRange", e)
	}
	if _, e := w.Get(-1); !errors.Is(e, errors.ErrRange) {
		t.Errorf("Get(-1): %v - expected ErrRange", e)
	}

	w = NewWahl()
	w.AppendBits(false, 100*LiteralBits)
	w.AppendBits(true, 3)
	if set, _ := w.Get(100 * LiteralBits); !set {
		t.Errorf("Get(%d) past fill: false", 100*LiteralBits)
	}
	if set, _ := w.Get(100*LiteralBits - 1); set {
		t.Errorf("Get(%d) in fill-0: true", 100*LiteralBits-1)
	}
}

func TestFromString(t *testing.T) {
	if _, e := FromString("01x"); !errors.Is(e, errors.ErrInvalidArg) {
		t.Errorf("FromString(01x): %v - expected ErrInvalidArg", e)
	}
	var s = strings.Repeat("1", 70) + "0101"
	w, e := FromString(s)
	if e != nil {
		t.Fatalf("FromString: %v", e)
	}
	if w.String() != s {
		t.Errorf("String: %s\n expected: %s", w, s)
	}
}

// iterators are restartable and do not modify the bitmap
func TestIterator(t *testing.T) {
	var b = NewBuilder()
	_ = b.AppendWords(0x3, 0x3)
	_ = b.AppendRun(1, 5)
	_ = b.AppendWord(0)
	var w = b.Wahl()
	var expect = []uint32{0x3, 0x3, LiteralMask, LiteralMask, LiteralMask, LiteralMask, LiteralMask, 0}
	for round := 0; round < 2; round++ {
		var words []uint32
		for it := w.Iterator(); ; {
			word, ok := it.Next()
			if !ok {
				break
			}
			words = append(words, word)
		}
		if len(words) != len(expect) {
			t.Fatalf("round %d: words %x - expected %x", round, words, expect)
		}
		for i := range expect {
			if words[i] != expect[i] {
				t.Fatalf("round %d: words %x - expected %x", round, words, expect)
			}
		}
	}
}

// Remaining counts down the words of the current block.
func TestIteratorRemaining(t *testing.T) {
	var b = NewBuilder()
	_ = b.AppendWord(0x3)
	_ = b.AppendRun(1, 5)
	var it = b.Wahl().Iterator()
	for _, expect := range []int{1, 5, 4, 3, 2, 1, 0} {
		if n := it.Remaining(); n != expect {
			t.Fatalf("Remaining: %d - expected: %d", n, expect)
		}
		it.Next()
	}
	if _, ok := it.Next(); ok || it.Remaining() != 0 {
		t.Errorf("drained iterator: Next ok:%t Remaining:%d", ok, it.Remaining())
	}
}

func TestWahlClone(t *testing.T) {
	var w = NewWahlInit(1, 2, 300)
	var c = w.Clone()
	c.AppendBits(true, 40)
	if w.BitLen() != 301 || c.BitLen() != 341 {
		t.Errorf("BitLen w:%d clone:%d", w.BitLen(), c.BitLen())
	}
	var elems = w.Elements()
	elems[0] = 0
	if w.Elements()[0] == 0 {
		t.Error("Elements returned the bitmap's blocks")
	}
}

func TestWahlBitmap(t *testing.T) {
	test := func(seed int64) bool {
		rnd := rand.New(rand.NewSource(seed))
		w := NewRandomWahl(rnd, uint(rnd.Intn(1<<12)))
		bm, e := w.Bitmap()
		if e != nil || bm.Count() != w.Count() {
			return false
		}
		w2, e := FromBitmap(bm, w.BitLen())
		return e == nil && w2.Equal(w)
	}
	if e := quick.Check(test, nil); e != nil {
		t.Error(e)
	}

	var w = NewWahlInit(5, 77)
	bm, _ := w.Bitmap()
	if _, e := FromBitmap(bm, 77); !errors.Is(e, errors.ErrRange) {
		t.Errorf("FromBitmap(bm, 77): %v - expected ErrRange", e)
	}
}

func TestWahlPrint(t *testing.T) {
	var b = NewBuilder()
	_ = b.AppendRun(0, 4)
	_ = b.AppendWord(0x1)
	var buf bytes.Buffer
	b.Wahl().Print(&buf)
	var s = buf.String()
	if !strings.Contains(s, "fill-0") || !strings.Contains(s, "tile") {
		t.Errorf("Print:\n%s", s)
	}
	if !strings.Contains(s, "(124, 154)") {
		t.Errorf("Print: missing tile bit range:\n%s", s)
	}
	if !strings.HasSuffix(s, "bits:155 words:5 blocks:2\n") {
		t.Errorf("Print: unexpected summary:\n%s", s)
	}
}
