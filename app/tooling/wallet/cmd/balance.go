package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func balanceCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print your balance.",
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

			fmt.Fprintln(cmd.OutOrStdout(), "For Account:", account)

			bal, err := client.Balance(cmd.Context(), account)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s SOL (%d lamports)\n", bal.SOL(), bal.Lamports)
			return nil
		},
	}

	addAddressFlag(cmd, s)

	return cmd
}
