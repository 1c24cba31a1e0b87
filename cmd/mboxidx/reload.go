package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mbox"
	"github.com/zostay/go-mbox/record"
)

func newReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload <idx-path> <mbox-path>",
		Short: "Reload a previously saved index without re-scanning the whole archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idxPath, mboxPath := args[0], args[1]

			timer := record.NewTimer()
			records, err := mbox.LoadIndex(idxPath, mboxPath, threadCount)
			if err != nil {
				return fmt.Errorf("reload %s: %w", idxPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d messages reloaded (%.0f records/sec)\n",
				len(records), timer.RecordsPerSecond(len(records)))
			return nil
		},
	}
}
