// Doost!

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/alphazero/wahl/cmd/exit"
	"github.com/alphazero/wahl/syslib/debug"
	"github.com/alphazero/wahl/system"
	"github.com/alphazero/wahl/system/log"
)

/// command-line process ///////////////////////////////////////////////////////

// base command options
type options struct {
	config  string
	format  string
	verbose bool
	debug   bool

	cfg *system.Config // effective config
}

func newRootCmd() *cobra.Command {
	var opts = &options{}
	var root = &cobra.Command{
		Use:           "wahl",
		Short:         "wahl - word aligned hybrid compressed bitmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	var flags = root.PersistentFlags()
	flags.StringVar(&opts.config, "config", "", "yaml config file")
	flags.StringVar(&opts.format, "format", system.FormatBits, "output format: bits | blocks | positions")
	flags.BoolVar(&opts.verbose, "verbose", false, "verbose emits op log to stderr")
	flags.BoolVar(&opts.debug, "debug", false, "debug emits engine trace to stderr")

	root.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newBitwiseCmd(opts, "and", bitmapAnd),
		newBitwiseCmd(opts, "or", bitmapOr),
		newBitwiseCmd(opts, "xor", bitmapXor),
		newNotCmd(opts),
		newBenchCmd(opts),
		newVersionCmd(),
	)
	return root
}

// setup loads the config and applies the flags that were set.
func (p *options) setup(cmd *cobra.Command) error {
	p.cfg = system.DefaultConfig()
	if p.config != "" {
		cfg, e := system.LoadConfig(p.config)
		if e != nil {
			return e
		}
		p.cfg = cfg
	}
	var flags = cmd.Flags()
	if flags.Changed("format") {
		switch p.format {
		case system.FormatBits, system.FormatBlocks, system.FormatPositions:
		default:
			return fmt.Errorf("%w: unknown format %q", exit.ErrUsage, p.format)
		}
		p.cfg.Format = p.format
	}
	if flags.Changed("verbose") {
		p.cfg.Verbose = p.verbose
	}
	if flags.Changed("debug") {
		p.cfg.Debug = p.debug
	}

	if p.cfg.Verbose {
		log.Verbose(cmd.ErrOrStderr())
	}
	if p.cfg.Debug {
		debug.Writer = cmd.ErrOrStderr()
	}
	return nil
}

func main() {
	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var root = newRootCmd()
	if e := root.ExecuteContext(ctx); e != nil {
		stop()
		exit.On(os.Stderr, e)
	}
}
