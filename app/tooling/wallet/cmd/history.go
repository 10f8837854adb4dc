package cmd

import (
	"fmt"
	"time"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/spf13/cobra"
)

func historyCmd(s *settings) *cobra.Command {
	var query chain.ActivityQuery

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the most recent transaction signatures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := s.account()
			if err != nil {
				return err
			}

			client, err := s.client()
			if err != nil {
				return err
			}
			defer client.Close()

			acts, err := client.RecentActivity(cmd.Context(), account, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "For Account:", account)

			if len(acts) == 0 {
				fmt.Fprintln(out, "No recent transactions found.")
				return nil
			}

			for i, act := range acts {
				status := act.Status
				if act.Failed {
					status += " (failed)"
				}

				var when string
				if act.BlockTime != nil {
					when = act.BlockTime.Format(time.RFC3339)
				}

				fmt.Fprintf(out, "%d. %s slot:%d %s %s\n", i+1, act.Signature, act.Slot, status, when)

				switch {
				case act.DetailsErr != nil:
					fmt.Fprintf(out, "   details: %s\n", act.DetailsErr)
				case act.Details != nil:
					fmt.Fprintf(out, "   fee:%d change:%d logs:%d\n", act.Details.Fee, act.Details.BalanceChange, act.Details.LogMessages)
				}
			}

			return nil
		},
	}

	addAddressFlag(cmd, s)
	cmd.Flags().IntVarP(&query.Limit, "limit", "l", 5, "Number of signatures to fetch (1-1000).")
	cmd.Flags().BoolVarP(&query.Details, "details", "d", false, "Fetch the transaction for every signature.")

	return cmd
}
