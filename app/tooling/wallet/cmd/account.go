package cmd

import (
	"fmt"

	"github.com/ardanlabs/chaindemo/foundation/chain"
	"github.com/spf13/cobra"
)

func accountCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Print account for the specific wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := chain.LoadWallet(s.keypairPath)
			if err != nil {
				return err
			}

			account := wallet.PublicKey()
			fmt.Fprintln(cmd.OutOrStdout(), account)
			fmt.Fprintln(cmd.OutOrStdout(), chain.HexKey(account))
			return nil
		},
	}
}
