package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mbox"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <mbox-path> <idx-path>",
		Short: "Parse an mbox archive and persist its sidecar index file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mboxPath, idxPath := args[0], args[1]

			m, err := mbox.Open(mboxPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", mboxPath, err)
			}
			defer m.Release()

			records, err := mbox.Parse(m, threadCount, mbox.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("parse %s: %w", mboxPath, err)
			}

			if err := mbox.SaveIndex(idxPath, records); err != nil {
				return fmt.Errorf("save index %s: %w", idxPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d messages to %s\n", len(records), idxPath)
			return nil
		},
	}
}
