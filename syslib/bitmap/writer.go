// Doost!

package bitmap

import (
	"github.com/alphazero/wahl/syslib/errors"
)

/// wahl writer ////////////////////////////////////////////////////////////////

// wahlWriter emits canonical Wahl blocks from a stream of (word, run-length)
// pairs. The last word written is held pending (open) until a different word
// arrives; only uniform words (all 0, all 1) accumulate a run-length.
//
// Canonical form: a pending run of 1 word is emitted as a tile, and runs
// longer than MaxRunLength are split into full fill blocks followed by the
// remainder.
type wahlWriter struct {
	arr    []uint32 // finalized blocks
	word   uint32   // pending word
	rlen   int      // pending run-length. 0 if none pending.
	nwords int      // words written, including pending
}

func newWriter(capacity int) *wahlWriter {
	return &wahlWriter{arr: make([]uint32, 0, capacity)}
}

func isFill(word uint32) bool { return word == 0 || word == LiteralMask }

// writeN writes n (>0) copies of the 31-bit word.
func (p *wahlWriter) writeN(word uint32, n int) {
	p.nwords += n

	// update rlen of pending FILL word if new word is same
	if p.rlen > 0 && p.word == word && isFill(word) {
		p.rlen += n
		return
	}

	p.flush()
	if !isFill(word) {
		// tiles never merge: all but the last are final
		for i := 1; i < n; i++ {
			p.arr = append(p.arr, word)
		}
		n = 1
	}
	p.word = word
	p.rlen = n
}

// flush finalizes the pending word, if any.
func (p *wahlWriter) flush() {
	if p.rlen == 0 {
		return
	}
	p.arr = appendBlocks(p.arr, p.word, p.rlen)
	p.rlen = 0
}

// appendBlocks encodes rlen copies of word in canonical form.
func appendBlocks(arr []uint32, word uint32, rlen int) []uint32 {
	if !isFill(word) || rlen == 1 {
		return append(arr, word)
	}
	var tag = fillTag
	if word == LiteralMask {
		tag = fillOneTag
	}
	for rlen > MaxRunLength {
		arr = append(arr, tag|rlenMask)
		rlen -= MaxRunLength
	}
	if rlen == 1 {
		return append(arr, word)
	}
	return append(arr, tag|uint32(rlen))
}

// reopen pops the last finalized block back into the pending slot.
// Nothing pending is a precondition.
func (p *wahlWriter) reopen() {
	var n = len(p.arr)
	if n == 0 {
		return
	}
	if p.rlen != 0 {
		panic(errors.For("wahlWriter.reopen").Invariant("pending word (rlen:%d)", p.rlen))
	}
	var e = Element(p.arr[n-1])
	p.arr = p.arr[:n-1]
	p.word = e.Word()
	p.rlen = e.Words()
	if p.rlen == 0 {
		panic(errors.For("wahlWriter.reopen").Invariant("fill block with 0 run-length"))
	}
}

// unwrite removes the last word written and returns it.
func (p *wahlWriter) unwrite() uint32 {
	if p.rlen == 0 {
		p.reopen()
	}
	var word = p.word
	p.rlen--
	p.nwords--
	if p.rlen == 0 {
		p.reopen()
	}
	return word
}

// blocks returns a copy of the finalized blocks plus the pending word.
// Writer state is not modified.
func (p *wahlWriter) blocks() []uint32 {
	var arr = make([]uint32, len(p.arr), len(p.arr)+1)
	copy(arr, p.arr)
	if p.rlen > 0 {
		arr = appendBlocks(arr, p.word, p.rlen)
	}
	return arr
}

// done flushes and returns the finalized blocks.
func (p *wahlWriter) done() []uint32 {
	p.flush()
	return p.arr
}

/// π Builder π ////////////////////////////////////////////////////////////////

// Builder incrementally builds a Wahl bitmap from bits, 31-bit words, and
// fill runs. Bits are buffered until a full word is available. A Builder
// must not be shared between goroutines.
type Builder struct {
	w        wahlWriter
	partial  uint32 // buffered bits of the (incomplete) next word
	npartial uint   // number of bits buffered
	nbits    int
}

func NewBuilder() *Builder { return &Builder{} }

// resume returns a builder continuing the given bitmap. The builder takes
// ownership of the bitmap's block array.
func resume(w *Wahl) *Builder {
	var b = &Builder{
		w:     wahlWriter{arr: w.arr, nwords: w.nwords},
		nbits: w.nbits,
	}
	b.w.reopen()
	if r := uint(w.nbits % LiteralBits); r != 0 {
		b.partial = b.w.unwrite() & lowMask(r)
		b.npartial = r
	}
	return b
}

// BitLen returns the number of bits appended so far.
func (b *Builder) BitLen() int { return b.nbits }

func (b *Builder) AppendBit(bit bool) {
	if bit {
		b.partial |= 1 << b.npartial
	}
	b.npartial++
	b.nbits++
	if b.npartial == LiteralBits {
		b.w.writeN(b.partial, 1)
		b.partial, b.npartial = 0, 0
	}
}

// AppendBits appends n copies of bit. Whole words are appended as fills.
func (b *Builder) AppendBits(bit bool, n int) {
	for ; n > 0 && b.npartial != 0; n-- {
		b.AppendBit(bit)
	}
	if nw := n / LiteralBits; nw > 0 {
		var fill uint
		if bit {
			fill = 1
		}
		b.appendRun(fill, nw)
		n -= nw * LiteralBits
	}
	for ; n > 0; n-- {
		b.AppendBit(bit)
	}
}

// AppendWord appends the 31 bits of word, LSB first.
// Returns a range error if word has bit 31 set.
func (b *Builder) AppendWord(word uint32) error {
	if word&^LiteralMask != 0 {
		return errors.For("Builder.AppendWord").Range("word %#x exceeds %d bits", word, LiteralBits)
	}
	b.appendWord(word, 1)
	return nil
}

// AppendWords appends the given words in order. Words preceding an invalid
// word are retained.
func (b *Builder) AppendWords(words ...uint32) error {
	for _, word := range words {
		if e := b.AppendWord(word); e != nil {
			return e
		}
	}
	return nil
}

// AppendRun appends nwords words of all 'fill' bits.
func (b *Builder) AppendRun(fill uint, nwords int) error {
	var fn = errors.For("Builder.AppendRun")
	if fill > 1 {
		return fn.Range("fill value %d", fill)
	}
	if nwords < 0 {
		return fn.Range("nwords %d", nwords)
	}
	b.appendRun(fill, nwords)
	return nil
}

func (b *Builder) appendRun(fill uint, nwords int) {
	if nwords == 0 {
		return
	}
	var word uint32
	if fill == 1 {
		word = LiteralMask
	}
	b.appendWord(word, nwords)
}

// appendWord writes n copies of the word, shifted across the partial word
// boundary if bits are buffered.
func (b *Builder) appendWord(word uint32, n int) {
	b.nbits += n * LiteralBits
	if b.npartial == 0 {
		b.w.writeN(word, n)
		return
	}
	var shift = LiteralBits - b.npartial
	b.w.writeN((b.partial|word<<b.npartial)&LiteralMask, 1)
	if n > 1 {
		// a shifted uniform word is itself
		b.w.writeN((word>>shift|word<<b.npartial)&LiteralMask, n-1)
	}
	b.partial = word >> shift
}

// Wahl returns the bitmap built so far. The builder remains usable and the
// returned bitmap does not share state with it.
func (b *Builder) Wahl() *Wahl {
	var w = wahlWriter{
		arr:    b.w.blocks(),
		nwords: b.w.nwords,
	}
	if b.npartial > 0 {
		w.reopen()
		w.writeN(b.partial, 1)
	}
	return &Wahl{arr: w.done(), nbits: b.nbits, nwords: w.nwords}
}

// finish writes the partial word and transfers the blocks to w.
// The builder must not be used afterwards.
func (b *Builder) finish(w *Wahl) {
	if b.npartial > 0 {
		b.w.writeN(b.partial, 1)
	}
	w.arr = b.w.done()
	w.nbits = b.nbits
	w.nwords = b.w.nwords
}

// lowMask returns the mask of the n low bits.
func lowMask(n uint) uint32 { return (uint32(1) << n) - 1 }
