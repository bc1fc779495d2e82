// Doost!

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alphazero/wahl/system"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(),
				"wahl - word aligned hybrid bitmaps - version %s (%s %s)\n",
				system.Version, runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
