// Doost!

package bitmap

import (
	"github.com/alphazero/wahl/syslib/debug"
	"github.com/alphazero/wahl/syslib/errors"
)

/// Bitwise ops ////////////////////////////////////////////////////////////////

// And applies the logical AND operation to the given bitmaps, returning
// the resulting bitmap. The input args are not modified.
//
// Returns nil, error if pair-wise Wahl.And returns any error.
func And(bitmaps ...*Wahl) (*Wahl, error) {
	return bitwise(AndOp, bitmaps...)
}

// Or applies the logical OR operation to the given bitmaps, returning
// the resulting bitmap. The input args are not modified.
//
// Returns nil, error if pair-wise Wahl.Or returns any error.
func Or(bitmaps ...*Wahl) (*Wahl, error) {
	return bitwise(OrOp, bitmaps...)
}

// Xor applies the logical XOR operation to the given bitmaps, returning
// the resulting bitmap. The input args are not modified.
//
// Returns nil, error if pair-wise Wahl.Xor returns any error.
func Xor(bitmaps ...*Wahl) (*Wahl, error) {
	return bitwise(XorOp, bitmaps...)
}

func bitwise(op bitwiseOp, bitmaps ...*Wahl) (*Wahl, error) {
	if len(bitmaps) == 0 {
		return NewWahl(), nil
	}
	if bitmaps[0] == nil {
		return nil, errors.For(op.String()).InvalidArg("bitmap 0 is nil")
	}

	var resmap = bitmaps[0]
	var e error
	for _, bmap := range bitmaps[1:] {
		resmap, e = resmap.bitwise(op, bmap)
		if e != nil {
			return nil, e
		}
	}
	if len(bitmaps) == 1 {
		return resmap.Clone(), nil
	}
	return resmap, nil
}

// Not returns a new bitmap that is the logical NOT of the receiver.
// The new bitmap has the same bit length.
// A nil receiver is read as the empty bitmap.
func (w *Wahl) Not() *Wahl {
	if w == nil {
		return NewWahl()
	}
	var ri = newWriter(len(w.arr))
	var r = w.getReader()
	var tail = uint(w.nbits % LiteralBits)
	for r.rlen > 0 {
		var n = r.rlen
		var word = ^r.word & LiteralMask
		if tail != 0 && ri.nwords+n == w.nwords {
			// pad bits of the final word stay 0
			if n > 1 {
				ri.writeN(word, n-1)
			}
			ri.writeN(word&lowMask(tail), 1)
		} else {
			ri.writeN(word, n)
		}
		r.advanceN(n)
	}
	return &Wahl{arr: ri.done(), nbits: w.nbits, nwords: ri.nwords}
}

// And applies the bitwise logical AND, returns result in a newly allocated bitmap.
// The shorter bitmap is extended with 1s, so bits past its length are the
// bits of the longer. Returns ErrInvalidArg if either bitmap is nil.
func (w *Wahl) And(other *Wahl) (*Wahl, error) {
	return w.bitwise(AndOp, other)
}

// Or applies the bitwise logical OR, returns result in a newly allocated bitmap.
// Returns ErrInvalidArg if either bitmap is nil.
func (w *Wahl) Or(other *Wahl) (*Wahl, error) {
	return w.bitwise(OrOp, other)
}

// Xor applies the bitwise logical XOR, returns result in a newly allocated bitmap.
// Returns ErrInvalidArg if either bitmap is nil.
func (w *Wahl) Xor(other *Wahl) (*Wahl, error) {
	return w.bitwise(XorOp, other)
}

type bitwiseOp byte

const (
	_ bitwiseOp = iota
	AndOp
	OrOp
	XorOp
)

func (op bitwiseOp) String() string {
	return [...]string{"nop", "And", "Or", "Xor"}[op]
}

var bitwiseFn = []func(uint32, uint32) uint32{
	func(a, b uint32) uint32 { panic(errors.For("bitwiseFn").Bug("illegal state - nop bitwise op")) },
	func(a, b uint32) uint32 { return a & b },
	func(a, b uint32) uint32 { return a | b },
	func(a, b uint32) uint32 { return a ^ b },
}

// identity returns the word an exhausted operand reads as: the identity
// of op. AND extends the shorter bitmap with 1s, OR and XOR with 0s.
func (op bitwiseOp) identity() uint32 {
	if op == AndOp {
		return LiteralMask
	}
	return 0
}

// operand reads a bitwise operand as a word sequence extended past its end.
// Pad bits of a partial final word are read as the extension word, and the
// final word is always its own span so the pad can be applied.
type operand struct {
	r      *wahlReader
	nwords int    // words remaining, including the current run
	pad    uint32 // or'd into the final word
	ext    uint32 // word read once drained
}

// newOperand reads w as an operand of a result of nbits bits.
func newOperand(w *Wahl, nbits int, ext uint32) *operand {
	var p = &operand{r: w.getReader(), nwords: w.nwords, ext: ext}
	if r := uint(w.nbits % LiteralBits); r != 0 && w.nbits < nbits {
		p.pad = ext &^ lowMask(r)
	}
	return p
}

// span returns the run length of the current word. 0 if drained.
func (p *operand) span() int {
	var n = p.r.rlen
	if p.pad != 0 && n > 1 && n == p.nwords {
		return n - 1
	}
	return n
}

func (p *operand) word() uint32 {
	switch p.nwords {
	case 0:
		return p.ext
	case 1:
		return p.r.word | p.pad
	}
	return p.r.word
}

func (p *operand) skip(n int) {
	if p.nwords > 0 {
		p.r.advanceN(n)
		p.nwords -= n
	}
}

// bitwise walks both bitmaps in lock-step, a run of words at a time. The
// span of each step is the shorter of the two current runs, so fill-fill
// overlaps produce a single fill and any tile narrows the span to 1 word.
// The result has the bit length of the longer bitmap, and the shorter is
// extended with the identity word of op. The pad bits of the result are
// those of the longer bitmap (0) combined with the identity, so stay 0.
func (w *Wahl) bitwise(op bitwiseOp, x *Wahl) (*Wahl, error) {
	var fname = "Wahl." + op.String()
	var fn = errors.For(fname)
	if w == nil {
		return nil, fn.InvalidArg("receiver is nil")
	}
	if x == nil {
		return nil, fn.InvalidArg("other is nil")
	}
	var nbits = max(w.nbits, x.nbits)
	var ri = newWriter(len(w.arr) + len(x.arr))
	var i0 = newOperand(w, nbits, op.identity())
	var ix = newOperand(x, nbits, op.identity())
	var bitfn = bitwiseFn[op]

	for i0.nwords > 0 || ix.nwords > 0 {
		// min of non-drained spans
		var n0, nx = i0.span(), ix.span()
		var n = n0
		if n == 0 || (nx > 0 && nx < n) {
			n = nx
		}
		ri.writeN(bitfn(i0.word(), ix.word()), n)
		i0.skip(n)
		ix.skip(n)
	}

	var res = &Wahl{arr: ri.done(), nbits: nbits, nwords: ri.nwords}
	if debug.Enabled() {
		debug.For(fname).Printf("blocks (%d %d) -> %d", len(w.arr), len(x.arr), len(res.arr))
	}
	return res, nil
}
