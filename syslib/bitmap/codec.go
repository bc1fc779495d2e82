// Doost!

package bitmap

import (
	"encoding/binary"
	"math"

	"github.com/alphazero/wahl/syslib/debug"
	"github.com/alphazero/wahl/syslib/errors"
)

/// Wahl codecs ////////////////////////////////////////////////////////////////

// Encoded layout (little-endian):
//
//	+--------------+--------+--------+-- .. --+
//	| bit length:8 | blk:4  | blk:4  |        |
//	+--------------+--------+--------+-- .. --+
const encodedHeaderSize = 8

// EncodedSize returns the number of bytes written by Encode.
func (w *Wahl) EncodedSize() int { return encodedHeaderSize + w.Size() }

// Writes the bit length and bitmap blocks to the given []byte slice.
// Error is returned if buf is nil or buf.len < wahl.EncodedSize().
func (w *Wahl) Encode(buf []byte) error {
	var fn = errors.For("Wahl.Encode")
	if buf == nil {
		return fn.InvalidArg("buf is nil")
	}
	if len(buf) < w.EncodedSize() {
		return fn.InvalidArg("buf.len: %d", len(buf))
	}
	binary.LittleEndian.PutUint64(buf, uint64(w.nbits))
	for i, v := range w.arr {
		binary.LittleEndian.PutUint32(buf[encodedHeaderSize+(i<<2):], v)
	}
	return nil
}

// Decode reads an encoded bitmap from the given []byte slice, replacing the
// receiver's content. The blocks are validated and re-canonicalized. The
// receiver is not modified on error.
//
// Returns an invalid arg error on nil or misaligned input, and a range error
// if the blocks do not agree with the bit length.
func (w *Wahl) Decode(buf []byte) error {
	var fn = errors.For("Wahl.Decode")
	if buf == nil {
		return fn.InvalidArg("buf is nil")
	}
	if len(buf) < encodedHeaderSize || (len(buf)-encodedHeaderSize)&0x3 != 0 {
		return fn.InvalidArg("buf.len: %d", len(buf))
	}
	var nbits = binary.LittleEndian.Uint64(buf)
	if nbits > math.MaxInt {
		return fn.Range("bit length %d", nbits)
	}
	var nblocks = (len(buf) - encodedHeaderSize) >> 2
	var expect = nbits / LiteralBits // words
	if nbits%LiteralBits != 0 {
		expect++
	}

	var ri = newWriter(nblocks)
	var last uint32 // final word image
	for i := 0; i < nblocks; i++ {
		var e = Element(binary.LittleEndian.Uint32(buf[encodedHeaderSize+(i<<2):]))
		var n = e.Words()
		if n == 0 {
			return fn.Range("block %d: fill with 0 run-length", i)
		}
		if uint64(ri.nwords+n) > expect {
			return fn.Range("block %d: %d words exceed bit length %d", i, ri.nwords+n, nbits)
		}
		last = e.Word()
		ri.writeN(last, n)
	}
	if uint64(ri.nwords) != expect {
		return fn.Range("%d words for bit length %d", ri.nwords, nbits)
	}
	if r := uint(nbits % LiteralBits); r != 0 && last&^lowMask(r) != 0 {
		return fn.Range("pad bits set in final word %#x", last)
	}
	w.arr = ri.done()
	w.nbits = int(nbits)
	w.nwords = ri.nwords
	debug.For("Wahl.Decode").Printf("bits:%d blocks:%d canonical:%d", nbits, nblocks, len(w.arr))
	return nil
}
