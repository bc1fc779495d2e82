// Doost!
//
//	                      ~ π ~ W A H L ~ π ~

package bitmap

import (
	"fmt"
	"io"
	"math/bits"
	"slices"
	"strings"

	"github.com/alphazero/wahl/syslib/errors"
)

/// π WAHL π ////////////////////////////////////////////////////////////////

// WAHL is a Word Aligned Hybrid Long (32bit) compressed bitmap. The bits
// are 31-bit encoded into a sequence of 'tiles' (literal bit image) and
// 'fill' blocks (run-length encoding of a consecutive 0s or 1s). The block
// type is distinguished by a control bit at the MSB (bit 31) of the block.
//
// A tile block is a 32-bit word with MSB of 0 indicating the tile type. The
// remaining 31 bits are the literal sequence of the bitmap fragment. The
// positional order corresponds to the bits of the uint32 type.
//
// 0                                  1                                 ... L-word
//   30                            0    30                            0 ... word's bit
// +-x------x-------x-------x------x+ +-x------x-------x-------x------x+
// |0       t i l e   b l o c k     | |0       t i l e   b l o c k     |
// +-x------x-------x-------x------x+ +-x------x-------x-------x------x+
//   30     24      16      8      0    61     55      47      39    31 ... bitset bit
//
// Fill blocks are compressed form encoding of a monotonic sequence of 0s
// or 1s of length equal to a multiple of 31. An MSB of 1 indicates that
// the uint32 word is a fill block. The preceding bit indicates the fill
// sequence value. Bits (0, 29) encode the runlength factor k, with the
// sequence length being equal to k * 31. Fill blocks are only used for
// k >= 2; a single uniform word is a tile.
//
// 0                                  1                                 ... L-word
// 3130                            0  3130                            0 ... word's bit
// +xx------------------------------+ +xx-----------------------------x+
// |10  f i l l - 0   b l o c k     | |11  f i l l - 1   b l o c k     |
// +--------------------------------+ +--------------------------------+
//
// The bit length of the bitmap need not be a multiple of 31. Bits of the
// final word past the bit length are always 0.
//
// A Wahl is immutable except for the Append methods, which re-open only the
// final block. Concurrent readers may share a Wahl that is not appended to.
type Wahl struct {
	arr    []uint32
	nbits  int // logical bit length
	nwords int // decompressed word count
}

// Allocates a new, zerovalue, Wahl object.
func NewWahl() *Wahl { return &Wahl{arr: []uint32{}} }

// Allocates a new Wahl bitmap with the given bit positions set. The
// bit length of the bitmap is max(bits)+1.
func NewWahlInit(bits ...uint) *Wahl {
	if len(bits) == 0 {
		return NewWahl()
	}
	var sorted = slices.Clone(bits)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return fromPositions(sorted, int(sorted[len(sorted)-1])+1)
}

// positions must be sorted, unique, and < nbits.
func fromPositions(positions []uint, nbits int) *Wahl {
	var b = NewBuilder()
	var next uint
	for _, pos := range positions {
		b.AppendBits(false, int(pos-next))
		b.AppendBit(true)
		next = pos + 1
	}
	b.AppendBits(false, nbits-int(next))
	var w = &Wahl{}
	b.finish(w)
	return w
}

// FromBits returns the compressed form of the given bit sequence.
func FromBits(bits []bool) *Wahl {
	var b = NewBuilder()
	for _, bit := range bits {
		b.AppendBit(bit)
	}
	var w = &Wahl{}
	b.finish(w)
	return w
}

// FromString parses a bit sequence of '0' and '1' runes, e.g. "0110".
// '_' and ' ' are accepted as separators.
func FromString(s string) (*Wahl, error) {
	var b = NewBuilder()
	for i, c := range s {
		switch c {
		case '0':
			b.AppendBit(false)
		case '1':
			b.AppendBit(true)
		case '_', ' ':
		default:
			return nil, errors.For("FromString").InvalidArg("rune %q at %d", c, i)
		}
	}
	var w = &Wahl{}
	b.finish(w)
	return w, nil
}

// Returns the number of blocks
func (w *Wahl) Len() int { return len(w.arr) }

// Returns the (encoded) size in bytes.
func (w *Wahl) Size() int { return len(w.arr) << 2 }

// BitLen returns the logical length of the bitmap in bits.
func (w *Wahl) BitLen() int { return w.nbits }

// Words returns the decompressed length of the bitmap in 31-bit words.
func (w *Wahl) Words() int { return w.nwords }

// Elements returns a copy of the bitmap's blocks.
func (w *Wahl) Elements() []Element {
	var elems = make([]Element, len(w.arr))
	for i, v := range w.arr {
		elems[i] = Element(v)
	}
	return elems
}

// Clone returns a deep copy of the bitmap.
func (w *Wahl) Clone() *Wahl {
	return &Wahl{arr: slices.Clone(w.arr), nbits: w.nbits, nwords: w.nwords}
}

/// append /////////////////////////////////////////////////////////////////////

// AppendBit appends a single bit to the bitmap.
func (w *Wahl) AppendBit(bit bool) {
	var b = resume(w)
	b.AppendBit(bit)
	b.finish(w)
}

// AppendBits appends n copies of bit to the bitmap.
func (w *Wahl) AppendBits(bit bool, n int) {
	var b = resume(w)
	b.AppendBits(bit, n)
	b.finish(w)
}

// AppendWord appends the 31 bits of word. Returns a range error, and the
// bitmap is not modified, if the word has bit 31 set.
func (w *Wahl) AppendWord(word uint32) error {
	if word&^LiteralMask != 0 {
		return errors.For("Wahl.AppendWord").Range("word %#x exceeds %d bits", word, LiteralBits)
	}
	var b = resume(w)
	b.appendWord(word, 1)
	b.finish(w)
	return nil
}

/// queries ////////////////////////////////////////////////////////////////////

// Get returns the value of the bit at position n.
// Returns a range error if n is not in [0, BitLen()).
func (w *Wahl) Get(n int) (bool, error) {
	if n < 0 || n >= w.nbits {
		return false, errors.For("Wahl.Get").Range("bit %d not in [0, %d)", n, w.nbits)
	}
	var wn = n / LiteralBits // word containing bit n
	var r = w.getReader()
	for wn >= r.rlen {
		wn -= r.rlen
		r.advanceN(r.rlen)
	}
	return r.word&(1<<uint(n%LiteralBits)) != 0, nil
}

// Count returns the number of set bits.
func (w *Wahl) Count() int {
	var n int
	for _, v := range w.arr {
		switch e := Element(v); {
		case e.IsLiteral():
			n += bits.OnesCount32(v)
		case e.IsOneRun():
			n += e.rlen() * LiteralBits
		}
	}
	return n
}

// Equal returns true if both bitmaps have the same bit length and bits.
func (w *Wahl) Equal(other *Wahl) bool {
	if other == nil {
		return false
	}
	return w.nbits == other.nbits && slices.Equal(w.arr, other.arr)
}

// ToBits materializes the bitmap as a bit sequence of length BitLen().
func (w *Wahl) ToBits() []bool {
	var bits = make([]bool, w.nbits)
	var it = w.Iterator()
	for i := 0; i < w.nbits; {
		word, _ := it.Next()
		for j := 0; j < LiteralBits && i < w.nbits; j++ {
			bits[i] = word&(1<<uint(j)) != 0
			i++
		}
	}
	return bits
}

// Returns the position of all set bits in the bitmap. The returned
// bits are in ascending order. Returns array may be empty but never nil.
func (w *Wahl) Bits() Bitnums {
	var bits = []int{}
	var p0 int // bit position of the initial bit in the block
	var r = w.getReader()
	for r.rlen > 0 {
		var n = r.rlen
		switch r.word {
		case 0:
		case LiteralMask:
			for i := 0; i < n*LiteralBits; i++ {
				bits = append(bits, p0+i)
			}
		default:
			for v, i := r.word, 0; v != 0; v, i = v>>1, i+1 {
				if v&0x1 == 1 {
					bits = append(bits, p0+i)
				}
			}
		}
		p0 += n * LiteralBits
		r.advanceN(n)
	}
	return Bitnums(bits)
}

// String returns the bitmap's bits as a string of '0' and '1'.
func (w *Wahl) String() string {
	var sb strings.Builder
	sb.Grow(w.nbits)
	for _, bit := range w.ToBits() {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Print writes the block listing of the bitmap with the bit range covered
// by each block. Note that bits are reversed and printed LSB -> MSB
func (w *Wahl) Print(writer io.Writer) {
	var max = -1
	for i, v := range w.arr {
		var e = Element(v)
		r0 := max + 1
		max += e.Words() * LiteralBits
		fmt.Fprintf(writer, "[%4d]:%s (%d, %d)\n", i, e, r0, max)
	}
	fmt.Fprintf(writer, "bits:%d words:%d blocks:%d\n", w.nbits, w.nwords, len(w.arr))
}

/// Wahl helper types //////////////////////////////////////////////////////////

// Bitnums is a helper type for pretty printing bitnums
type Bitnums []int

func (a Bitnums) Print(w io.Writer) {
	fmt.Fprintf(w, "{ ")
	for _, pos := range a {
		fmt.Fprintf(w, "%d ", pos)
	}
	fmt.Fprintf(w, "}\n")
}
