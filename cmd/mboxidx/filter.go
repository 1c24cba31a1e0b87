package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mbox"
)

func newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter <idx-path> <mbox-path> <needle>",
		Short: "List indexed messages whose From field contains needle",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			idxPath, mboxPath, needle := args[0], args[1], args[2]

			records, err := mbox.LoadIndex(idxPath, mboxPath, threadCount)
			if err != nil {
				return fmt.Errorf("reload %s: %w", idxPath, err)
			}

			matched := mbox.FilterBySender(records, needle)
			for _, r := range matched {
				subject := ""
				if r.Subject != nil {
					subject = *r.Subject
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", *r.From, subject)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d messages matched %q\n", len(matched), len(records), needle)
			return nil
		},
	}
}
