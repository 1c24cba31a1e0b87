package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zostay/go-mbox/internal/zaplog"
)

var (
	threadCount int
	verbose     bool
	logger      *zap.SugaredLogger
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mboxidx",
		Short:         "Parse and index BSD mbox mail archives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, err := zaplog.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			} else {
				logger = zaplog.Nop()
			}
			return nil
		},
	}

	pflags := root.PersistentFlags()
	pflags.IntVarP(&threadCount, "threads", "t", runtime.NumCPU(), "total worker thread count (split evenly between I/O and parsing)")
	pflags.BoolVarP(&verbose, "verbose", "v", false, "enable structured logging to stderr")

	root.AddCommand(newParseCmd())
	root.AddCommand(newIndexCmd())
	root.AddCommand(newReloadCmd())
	root.AddCommand(newFilterCmd())
	root.AddCommand(newSortCmd())

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
