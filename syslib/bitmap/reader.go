// Doost!

package bitmap

import (
	"github.com/alphazero/wahl/syslib/errors"
)

/// wahl reader ////////////////////////////////////////////////////////////////

// wahlReader is a sequential reader of the bitmap blocks, presenting each
// block as a 31-bit word with the run-length remaining. Tiles have a
// run-length of 1. A drained reader has rlen 0 and word 0.
type wahlReader struct {
	arr  []uint32
	i    int    // index of next block
	rlen int    // remaining run length for word
	word uint32 // 31-bit encoded word of rlen run length.
}

func (w *Wahl) getReader() *wahlReader {
	var r = &wahlReader{arr: w.arr}
	r.loadWord()
	return r
}

// if index is past the block array, we're done.
// Otherwise, read the next block and update reader state.
func (r *wahlReader) loadWord() {
	if r.i >= len(r.arr) {
		r.word = 0
		r.rlen = 0
		return
	}
	var v = r.arr[r.i]
	switch {
	case v>>31 == 0:
		r.word = v
		r.rlen = 1
	default:
		r.rlen = int(v & rlenMask)
		r.word = 0
		if v&fillValBit != 0 {
			r.word = LiteralMask
		}
		if r.rlen == 0 {
			panic(errors.For("wahlReader").Invariant("block %d: fill with 0 run-length", r.i))
		}
	}
	r.i++
}

// advanceN consumes n words of the current run.
// panics if n exceeds run-length.
func (r *wahlReader) advanceN(n int) {
	r.rlen -= n
	switch {
	case r.rlen == 0:
		r.loadWord()
	case r.rlen < 0:
		panic(errors.For("wahlReader.advanceN").Invariant("n exceeds rlen by %d", -r.rlen))
	}
}

/// π Iterator π ///////////////////////////////////////////////////////////////

// Iterator is a forward-only sequence of the bitmap's decompressed 31-bit
// words. Fill blocks are expanded lazily. A new Iterator may be obtained
// from the bitmap at any time; iterators do not modify the bitmap.
type Iterator struct {
	r wahlReader
}

// Iterator returns a new word iterator positioned at the first word.
func (w *Wahl) Iterator() *Iterator {
	return &Iterator{r: *w.getReader()}
}

// Next returns the next word, or false if the sequence is done.
// Pad bits of a partial final word are 0.
func (it *Iterator) Next() (uint32, bool) {
	if it.r.rlen == 0 {
		return 0, false
	}
	var word = it.r.word
	it.r.advanceN(1)
	return word, true
}

// Remaining returns the number of words left in the current block.
func (it *Iterator) Remaining() int { return it.r.rlen }
