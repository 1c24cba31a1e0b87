package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mbox"
)

func newSortCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "sort <idx-path> <mbox-path>",
		Short: "List indexed messages sorted by date or sender",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idxPath, mboxPath := args[0], args[1]

			records, err := mbox.LoadIndex(idxPath, mboxPath, threadCount)
			if err != nil {
				return fmt.Errorf("reload %s: %w", idxPath, err)
			}

			switch by {
			case "date":
				mbox.SortByDate(records)
			case "from":
				mbox.SortByFrom(records)
			default:
				return fmt.Errorf("unknown sort key %q, want \"date\" or \"from\"", by)
			}

			for _, r := range records {
				from := ""
				if r.From != nil {
					from = *r.From
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.UnixTimestamp, from)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "date", "sort key: \"date\" or \"from\"")
	return cmd
}
