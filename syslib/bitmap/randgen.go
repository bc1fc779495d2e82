// Doost!

package bitmap

import (
	"math/rand"
)

// NewRandomWahl creates a new bitmap.Wahl bitmap of nbits bits with a random
// mix of FILL{0,1} and TILE blocks, built directly through a Builder.
func NewRandomWahl(rnd *rand.Rand, nbits uint) *Wahl {
	var b = NewBuilder()
	var nw = int(nbits / LiteralBits) // whole words
	var maxfill = nw>>5 + 1

	for i := 0; i < nw; {
		switch typ := rnd.Intn(100); {
		case typ < 50:
			x := min(rnd.Intn(maxfill)+1, nw-i)
			b.appendRun(uint(rnd.Int()&1), x)
			i += x
		default:
			x := min(rnd.Intn(12), nw-i) // larger x longer run of tiles
			for k := 0; k < x; k++ {
				b.appendWord(uint32(rnd.Int31())&LiteralMask, 1)
			}
			i += x
		}
	}
	for i := uint(0); i < nbits%LiteralBits; i++ {
		b.AppendBit(rnd.Int()&1 == 1)
	}
	var w = &Wahl{}
	b.finish(w)
	return w
}
