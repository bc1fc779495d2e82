// Doost!

package bitmap

import (
	"math"
	"slices"

	kbitmap "github.com/kelindar/bitmap"

	"github.com/alphazero/wahl/syslib/errors"
)

/// uncompressed bitmap conversion /////////////////////////////////////////////

// FromBitmap compresses the uncompressed bitmap bm into a Wahl of bit
// length nbits. Returns a range error if bm has a bit set at or past nbits.
func FromBitmap(bm kbitmap.Bitmap, nbits int) (*Wahl, error) {
	var fn = errors.For("FromBitmap")
	if nbits < 0 {
		return nil, fn.Range("nbits %d", nbits)
	}
	var positions = make([]uint, 0, bm.Count())
	var oor = -1
	bm.Range(func(x uint32) {
		if int(x) >= nbits {
			if oor < 0 {
				oor = int(x)
			}
			return
		}
		positions = append(positions, uint(x))
	})
	if oor >= 0 {
		return nil, fn.Range("bit %d not in [0, %d)", oor, nbits)
	}
	slices.Sort(positions)
	return fromPositions(positions, nbits), nil
}

// Bitmap decompresses the Wahl into an uncompressed bitmap. Returns a range
// error if the bit length exceeds the 32-bit address space of the result.
func (w *Wahl) Bitmap() (kbitmap.Bitmap, error) {
	if uint64(w.nbits) > math.MaxUint32+1 {
		return nil, errors.For("Wahl.Bitmap").Range("bit length %d", w.nbits)
	}
	var bm kbitmap.Bitmap
	var p0 uint32 // bit position of the initial bit in the block
	var r = w.getReader()
	for r.rlen > 0 {
		var n = r.rlen
		switch r.word {
		case 0:
		case LiteralMask:
			for i := uint32(0); i < uint32(n*LiteralBits); i++ {
				bm.Set(p0 + i)
			}
		default:
			for v, i := r.word, uint32(0); v != 0; v, i = v>>1, i+1 {
				if v&0x1 == 1 {
					bm.Set(p0 + i)
				}
			}
		}
		p0 += uint32(n * LiteralBits)
		r.advanceN(n)
	}
	return bm, nil
}
