// Doost!

package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alphazero/wahl/cmd/exit"
	"github.com/alphazero/wahl/syslib/bitmap"
	"github.com/alphazero/wahl/system"
	"github.com/alphazero/wahl/system/log"
)

/// bitmap commands ////////////////////////////////////////////////////////////

var (
	bitmapAnd = bitmap.And
	bitmapOr  = bitmap.Or
	bitmapXor = bitmap.Xor
)

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s %s", exit.ErrUsage, cmd.CommandPath(), cmd.Use)
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: %s %s", exit.ErrUsage, cmd.CommandPath(), cmd.Use)
		}
		return nil
	}
}

func newEncodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <bits>",
		Short: "compress a 0/1 bit string; print blocks and the encoded hex",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, e := bitmap.FromString(args[0])
			if e != nil {
				return e
			}
			var buf = make([]byte, w.EncodedSize())
			if e := w.Encode(buf); e != nil {
				return e
			}
			var out = cmd.OutOrStdout()
			w.Print(out)
			fmt.Fprintf(out, "encoded: %s\n", hex.EncodeToString(buf))
			log.Log("encode: %d bits -> %d blocks (%d bytes)", w.BitLen(), w.Len(), len(buf))
			return nil
		},
	}
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "decode an encoded bitmap",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, e := hex.DecodeString(args[0])
			if e != nil {
				return fmt.Errorf("%w: decode: %v", exit.ErrUsage, e)
			}
			var w = bitmap.NewWahl()
			if e := w.Decode(buf); e != nil {
				return e
			}
			log.Log("decode: %d bytes -> %d bits", len(buf), w.BitLen())
			emit(cmd.OutOrStdout(), opts.cfg.Format, w)
			return nil
		},
	}
}

func newBitwiseCmd(opts *options, name string, op func(...*bitmap.Wahl) (*bitmap.Wahl, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <bits> <bits> ...",
		Short: "bitwise " + name + " of the bitmaps",
		Args:  minArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bitmaps, e := parseBitmaps(args)
			if e != nil {
				return e
			}
			res, e := op(bitmaps...)
			if e != nil {
				return e
			}
			log.Log("%s: %d bitmaps -> %d bits %d blocks", name, len(bitmaps), res.BitLen(), res.Len())
			emit(cmd.OutOrStdout(), opts.cfg.Format, res)
			return nil
		},
	}
}

func newNotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "not <bits>",
		Short: "bitwise not of the bitmap",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, e := bitmap.FromString(args[0])
			if e != nil {
				return e
			}
			emit(cmd.OutOrStdout(), opts.cfg.Format, w.Not())
			return nil
		},
	}
}

func parseBitmaps(args []string) ([]*bitmap.Wahl, error) {
	var bitmaps = make([]*bitmap.Wahl, len(args))
	for i, arg := range args {
		w, e := bitmap.FromString(arg)
		if e != nil {
			return nil, e
		}
		bitmaps[i] = w
	}
	return bitmaps, nil
}

// emit writes the bitmap in the given output format.
func emit(w io.Writer, format string, wahl *bitmap.Wahl) {
	switch format {
	case system.FormatBlocks:
		wahl.Print(w)
	case system.FormatPositions:
		wahl.Bits().Print(w)
	default:
		fmt.Fprintln(w, wahl.String())
	}
}
