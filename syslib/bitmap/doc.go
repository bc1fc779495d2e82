// Doost!

// package bitmap defines the Wahl compressed bitmap with facilities for
// performing bitwise logical operations on the compressed bitmap.
//
// Wahl is a canonical word-aligned-hybrid (per FastBit) with 32-bit blocks:
// 31-bit literal 'tiles' and run-length encoded 'fill' blocks of 0 or 1
// words. Bitmaps are built incrementally by a Builder (or by appending to a
// Wahl) without ever materializing the uncompressed form, and And, Or, Xor,
// Not operate on the compressed blocks directly, at the cost of the number
// of blocks of the operands.
//
// The block encoding is canonical: a uniform word that is not followed by
// an identical word is a tile, so two bitmaps with the same bits have the
// same blocks.
//
// Errors: construction and append of values that do not fit their field
// return errors matching errors.ErrRange; run-only Element accessors on
// tiles return errors matching errors.ErrDomain. Malformed blocks reaching
// the readers panic with errors.ErrInvariant.
package bitmap
