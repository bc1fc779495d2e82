// Doost!

package bitmap

import (
	"fmt"
	"math/bits"

	"github.com/alphazero/wahl/syslib/errors"
)

/// π Element π ////////////////////////////////////////////////////////////////

// WAHL word geometry.
const (
	WordBits     = 32
	LiteralBits  = WordBits - 1
	LiteralMask  = uint32(0x7fffffff) // all-1 tile; also the literal payload mask
	MaxRunLength = 0x3fffffff         // 2^30-1 words per fill block

	fillTag    = uint32(0x80000000)
	fillValBit = uint32(0x40000000)
	fillOneTag = fillTag | fillValBit
	rlenMask   = uint32(MaxRunLength)
)

// Element is a single Wahl block, either a tile (literal) or a fill (run).
// Elements are values; the only way to change a bitmap's blocks is through
// its writer.
//
//	 31 30 29                          0
//	+--+-------------------------------+
//	|0 |  31 literal bits              |  tile
//	+--+--+----------------------------+
//	|1 |f |  run length (words)        |  fill-f
//	+--+--+----------------------------+
type Element uint32

// NewLiteral returns the tile element for the 31-bit word.
// Returns a range error if word has bit 31 set.
func NewLiteral(word uint32) (Element, error) {
	if word&^LiteralMask != 0 {
		return 0, errors.For("NewLiteral").Range("word %#x exceeds %d bits", word, LiteralBits)
	}
	return Element(word), nil
}

// NewRun returns the fill element of 'count' words of 'fill' (0 or 1).
// Returns a range error if fill is not a bit or count is not in [1, MaxRunLength].
func NewRun(fill uint, count int) (Element, error) {
	var fn = errors.For("NewRun")
	if fill > 1 {
		return 0, fn.Range("fill value %d", fill)
	}
	if count < 1 || count > MaxRunLength {
		return 0, fn.Range("count %d not in [1, %d]", count, MaxRunLength)
	}
	return makeRun(uint32(fill), count), nil
}

// unchecked
func makeRun(fill uint32, count int) Element {
	return Element(fillTag | (fill << 30) | uint32(count))
}

func (e Element) IsLiteral() bool { return uint32(e)&fillTag == 0 }
func (e Element) IsRun() bool     { return uint32(e)&fillTag != 0 }
func (e Element) IsZeroRun() bool { return uint32(e)&fillOneTag == fillTag }
func (e Element) IsOneRun() bool  { return uint32(e)&fillOneTag == fillOneTag }

// Words returns the number of 31-bit words represented by the element.
func (e Element) Words() int {
	if e.IsLiteral() {
		return 1
	}
	return e.rlen()
}

// RunValue returns the fill bit of a run element.
func (e Element) RunValue() (uint, error) {
	if e.IsLiteral() {
		return 0, errors.For("Element.RunValue").Domain("%s", e)
	}
	return uint(e.fval()), nil
}

// RunLength returns the word count of a run element.
func (e Element) RunLength() (int, error) {
	if e.IsLiteral() {
		return 0, errors.For("Element.RunLength").Domain("%s", e)
	}
	return e.rlen(), nil
}

// Free returns the number of words the run element can still absorb.
func (e Element) Free() (int, error) {
	if e.IsLiteral() {
		return 0, errors.For("Element.Free").Domain("%s", e)
	}
	return MaxRunLength - e.rlen(), nil
}

// IsFull returns true if the run element's count field is saturated.
func (e Element) IsFull() (bool, error) {
	if e.IsLiteral() {
		return false, errors.For("Element.IsFull").Domain("%s", e)
	}
	return e.rlen() == MaxRunLength, nil
}

// Word returns the 31-bit word image of one of the element's words:
// the tile itself or the fill pattern.
func (e Element) Word() uint32 {
	switch {
	case e.IsLiteral():
		return uint32(e)
	case e.IsOneRun():
		return LiteralMask
	}
	return 0
}

// unchecked accessors for fills.
func (e Element) rlen() int    { return int(uint32(e) & rlenMask) }
func (e Element) fval() uint32 { return (uint32(e) >> 30) & 0x1 }

// Note that bits are reversed and printed LSB -> MSB
func (e Element) String() string {
	var revbit = bits.Reverse32(uint32(e))
	if e.IsRun() {
		typ := "fill-0"
		if e.IsOneRun() {
			typ = "fill-1"
		}
		return fmt.Sprintf("%030b %02b %-6s (+%d)", revbit>>2, revbit&0x3, typ, e.rlen()*LiteralBits)
	}
	return fmt.Sprintf("%031b-  %-6s +31", revbit>>1, "tile")
}
