package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mbox"
	"github.com/zostay/go-mbox/record"
)

func newParseCmd() *cobra.Command {
	var chunkSize int64

	cmd := &cobra.Command{
		Use:   "parse <mbox-path>",
		Short: "Parse an mbox archive and report how many messages were found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mbox.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer m.Release()

			timer := record.NewTimer()

			opts := []mbox.ParseOption{mbox.WithLogger(logger)}
			if chunkSize > 0 {
				opts = append(opts, mbox.WithChunkSize(chunkSize))
			}

			records, err := mbox.Parse(m, threadCount, opts...)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d messages parsed (%.0f records/sec)\n",
				len(records), timer.RecordsPerSecond(len(records)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&chunkSize, "chunk-size", 0, "override the I/O read budget in bytes (default: region planner's default)")
	return cmd
}
